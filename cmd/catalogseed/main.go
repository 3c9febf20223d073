// Command catalogseed writes a catalog into Postgres so the site can be run
// with CATALOG_SOURCE=postgres.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourorg/housing-site/internal/env"
	"github.com/yourorg/housing-site/internal/logger"
	"github.com/yourorg/housing-site/internal/source"
	"github.com/yourorg/housing-site/internal/store"
)

func main() {
	slog.SetDefault(logger.New(os.Stderr, env.Get("LOG_LEVEL", "info")))
	dsn := env.Must("PG_DSN")

	kind := source.Builtin
	file := os.Getenv("CATALOG_FILE")
	if file != "" {
		kind = source.File
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, env.GetDuration("SEED_TIMEOUT", 30*time.Second))
	defer cancel()

	cat, err := source.Load(ctx, source.Config{Kind: kind, File: file})
	if err != nil {
		fatal("catalog load error", err)
	}

	st, err := store.Open(dsn)
	if err != nil {
		fatal("store open error", err)
	}
	defer st.DB.Close()

	if err := st.Ping(ctx); err != nil {
		fatal("postgres ping error", err)
	}
	if err := st.Migrate(ctx); err != nil {
		fatal("postgres migrate error", err)
	}
	if err := st.ReplaceCatalog(ctx, cat); err != nil {
		fatal("catalog write error", err)
	}
	slog.Info("catalog seeded", "properties", cat.Len(), "source", kind)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}
