package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndMigrate(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	// Повторный прогон миграций — no-op
	require.NoError(t, RunMigrations(ctx, testDSN))

	database, err := New(ctx, testDSN)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.Brews().Record(ctx, BrewRow{PotionID: "MP1", RecipeName: "Plant Potion", MagicType: "Plant"}))

	var n int
	require.NoError(t, database.Pool().QueryRow(ctx, "SELECT count(*) FROM brew_log").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestNew_BadDSN(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(ctx, "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	assert.Error(t, err)
}
