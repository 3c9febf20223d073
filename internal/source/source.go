// Package source resolves where the catalog is read from at startup. The
// catalog is loaded exactly once; nothing here refreshes it later.
package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yourorg/housing-site/catalog"
	"github.com/yourorg/housing-site/feed"
	"github.com/yourorg/housing-site/internal/store"
)

const (
	Builtin  = "builtin"
	File     = "file"
	Postgres = "postgres"
	URL      = "url"
)

type Config struct {
	Kind   string
	File   string
	DSN    string
	URL    string
	APIKey string
}

func Load(ctx context.Context, cfg Config) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)
	switch cfg.Kind {
	case "", Builtin:
		c = catalog.Default()
	case File:
		if cfg.File == "" {
			return nil, fmt.Errorf("catalog source %q requires CATALOG_FILE", cfg.Kind)
		}
		c, err = catalog.LoadFile(cfg.File)
	case Postgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("catalog source %q requires PG_DSN", cfg.Kind)
		}
		c, err = loadPostgres(ctx, cfg.DSN)
	case URL:
		if cfg.URL == "" {
			return nil, fmt.Errorf("catalog source %q requires CATALOG_URL", cfg.Kind)
		}
		c, err = feed.NewClient(cfg.URL, cfg.APIKey).Catalog(ctx)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", cfg.Kind, err)
	}
	slog.Info("catalog loaded", "source", nonEmpty(cfg.Kind, Builtin), "properties", c.Len())
	return c, nil
}

func loadPostgres(ctx context.Context, dsn string) (*catalog.Catalog, error) {
	st, err := store.Open(dsn)
	if err != nil {
		return nil, err
	}
	defer st.DB.Close()
	if err := st.Ping(ctx); err != nil {
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return st.LoadCatalog(ctx)
}

func nonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
