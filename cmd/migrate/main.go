// Command migrate runs the full registry migration: optional store reset,
// ingestion of the configured source files in order, a duplicate/style
// audit, the name-style normalization pass, a second audit, and a final
// summary on stdout.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/santantoniari/socidb/internal/audit"
	"github.com/santantoniari/socidb/internal/config"
	"github.com/santantoniari/socidb/internal/ingest"
	"github.com/santantoniari/socidb/internal/storage"
	"github.com/santantoniari/socidb/internal/storage/sqlite"
	"github.com/santantoniari/socidb/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Store initialized", "database", cfg.DBPath)

	if cfg.ResetDB {
		if err := store.Reset(ctx); err != nil {
			slog.Error("Failed to reset store", "error", err)
			os.Exit(1)
		}
		slog.Info("Store reset")
	}

	results := ingestAll(ctx, store, cfg.Files)

	fmt.Println("=== Audit before name normalization ===")
	runAudit(ctx, store)

	changed, err := audit.RestyleNames(ctx, store)
	if err != nil {
		slog.Error("Name normalization pass failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("\n=== Audit after name normalization ===")
	runAudit(ctx, store)

	fmt.Println("\n=== Migration summary ===")
	var processed, skipped, payments int
	for _, res := range results {
		fmt.Printf("%s: %d processed, %d skipped, %d payments added\n",
			res.File, res.Processed, res.Skipped, res.PaymentsAdded)
		processed += res.Processed
		skipped += res.Skipped
		payments += res.PaymentsAdded
	}
	fmt.Printf("Total: %d processed, %d skipped, %d payments added, %d names restyled\n",
		processed, skipped, payments, changed)
}

// ingestAll processes each source file in order. A missing or unreadable
// file is logged and skipped; only store failures abort the run.
func ingestAll(ctx context.Context, store storage.Store, files []string) []ingest.FileResult {
	in := ingest.New(store)
	var results []ingest.FileResult
	for _, f := range files {
		res, err := in.ProcessFile(ctx, f)
		if err != nil {
			if errors.Is(err, ingest.ErrSourceFile) {
				slog.Error("Skipping source file", "file", f, "error", err)
				continue
			}
			slog.Error("Migration aborted", "file", f, "error", err)
			os.Exit(1)
		}
		results = append(results, res)
	}
	return results
}

func runAudit(ctx context.Context, store storage.Store) {
	report, err := audit.Run(ctx, store)
	if err != nil {
		slog.Error("Audit failed", "error", err)
		os.Exit(1)
	}
	report.Render(os.Stdout)
}
