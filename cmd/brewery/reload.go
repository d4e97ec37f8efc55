package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/udisondev/cauldron/internal/game/recipe"
)

// tableLoader returns a function building the recipe table: from path, or the
// built-in book when path is empty.
func tableLoader(path string, selector recipe.Selector) func() (*recipe.Table, error) {
	return func() (*recipe.Table, error) {
		if path == "" {
			return recipe.DefaultTable(selector)
		}
		return recipe.LoadTable(path, selector)
	}
}

// reloadBook rebuilds the table and swaps it in. On error the old table stays active.
func reloadBook(book *recipe.Book, load func() (*recipe.Table, error)) error {
	t, err := load()
	if err != nil {
		slog.Error("recipe reload failed, keeping current book", "error", err)
		return fmt.Errorf("reloading recipes: %w", err)
	}
	old, err := book.Swap(t)
	if err != nil {
		return fmt.Errorf("swapping recipe book: %w", err)
	}
	slog.Info("recipe book reloaded", "old", old.Len(), "new", t.Len())
	return nil
}

// watchReload calls reload on every signal until ctx is done.
// A failed reload is logged and does not stop the loop.
func watchReload(ctx context.Context, sig <-chan os.Signal, reload func() error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-sig:
			slog.Info("reload requested", "signal", s)
			_ = reload() // ошибка уже залогирована
		}
	}
}
