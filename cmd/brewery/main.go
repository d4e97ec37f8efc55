package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/cauldron/internal/config"
	"github.com/udisondev/cauldron/internal/console"
	"github.com/udisondev/cauldron/internal/data"
	"github.com/udisondev/cauldron/internal/db"
	"github.com/udisondev/cauldron/internal/game/brew"
	"github.com/udisondev/cauldron/internal/game/deck"
	"github.com/udisondev/cauldron/internal/game/potion"
	"github.com/udisondev/cauldron/internal/game/recipe"
)

const DefaultConfigPath = "config/brewery.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// .env опционален
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	cfgPath := DefaultConfigPath
	if p := os.Getenv("CAULDRON_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadBrewery(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Логи в stderr, stdout занят консолью
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("cauldron starting",
		"log_level", cfg.LogLevel,
		"match_policy", cfg.MatchPolicy,
		"recipes_file", cfg.RecipesFile)

	catalog, err := data.NewCatalog()
	if err != nil {
		return fmt.Errorf("building ingredient catalog: %w", err)
	}

	selector, err := recipe.NewSelector(cfg.MatchPolicy, cfg.Scoring.BonusPerExtra, cfg.Scoring.Multiplier)
	if err != nil {
		return fmt.Errorf("match policy: %w", err)
	}
	loader := tableLoader(cfg.RecipesFile, selector)

	table, err := loader()
	if err != nil {
		return fmt.Errorf("loading recipe book: %w", err)
	}
	book, err := recipe.NewBook(table)
	if err != nil {
		return fmt.Errorf("creating recipe book: %w", err)
	}

	// Журнал варки: PostgreSQL или память
	var (
		journal brew.Journal
		codex   console.Codex
		history console.History
	)
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		repo := database.Brews()
		journal = &brewJournalAdapter{repo: repo}
		codex = &codexAdapter{repo: repo}
		history = &historyAdapter{repo: repo}
	} else {
		mem := newMemoryJournal()
		journal = mem
		codex = mem
		history = mem
		slog.Info("database disabled, brew journal kept in memory")
	}

	var rng *rand.Rand
	if cfg.Deck.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Deck.Seed, cfg.Deck.Seed))
	}
	basket := deck.NewBasket(deck.New(catalog, cfg.Deck.CopiesPerIngredient, rng), cfg.Deck.HandSize)
	ctrl := brew.NewController(book, potion.NewShelf(cfg.ShelfCapacity), journal)

	reload := func() error {
		return reloadBook(book, loader)
	}
	session := console.NewSession(os.Stdout, basket, ctrl, book,
		console.WithCodex(codex),
		console.WithHistory(history),
		console.WithReload(reload))

	sessionCtx, stop := context.WithCancel(ctx)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	g, gctx := errgroup.WithContext(sessionCtx)

	g.Go(func() error {
		// Выход из консоли завершает и остальные горутины
		defer stop()
		if err := session.Run(gctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("console: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("watching SIGHUP for recipe reload")
		return watchReload(gctx, hup, reload)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("brewery: %w", err)
	}

	slog.Info("cauldron stopped", "shelved", ctrl.Shelf().Len())
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
