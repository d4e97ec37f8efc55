// Command recipedump writes the built-in recipe book as a YAML recipe file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/udisondev/cauldron/internal/game/recipe"
)

func main() {
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if err := run(*out); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(out string) error {
	t, err := recipe.DefaultTable(nil)
	if err != nil {
		return fmt.Errorf("building default table: %w", err)
	}

	raw, err := recipe.MarshalTable(t)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = os.Stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	slog.Info("recipes written", "path", out, "count", t.Len())
	return nil
}
