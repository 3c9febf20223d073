package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	httpapi "github.com/yourorg/housing-site/http"
	"github.com/yourorg/housing-site/internal/activity"
	"github.com/yourorg/housing-site/internal/env"
	"github.com/yourorg/housing-site/internal/events"
	"github.com/yourorg/housing-site/internal/logger"
	"github.com/yourorg/housing-site/internal/redisx"
	"github.com/yourorg/housing-site/internal/session"
	"github.com/yourorg/housing-site/internal/source"
	"github.com/yourorg/housing-site/internal/view"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "housing-site: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	slog.SetDefault(logger.New(os.Stderr, env.Get("LOG_LEVEL", "info")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loadCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	cat, err := source.Load(loadCtx, source.Config{
		Kind:   env.Get("CATALOG_SOURCE", source.Builtin),
		File:   os.Getenv("CATALOG_FILE"),
		DSN:    os.Getenv("PG_DSN"),
		URL:    os.Getenv("CATALOG_URL"),
		APIKey: os.Getenv("CATALOG_API_KEY"),
	})
	cancel()
	if err != nil {
		return err
	}

	sessionTTL := env.GetDuration("SESSION_TTL", 30*time.Minute)
	var sessOpts []session.Option
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rc := redisx.New(addr, os.Getenv("REDIS_PASSWORD"), env.GetInt("REDIS_DB", 0))
		defer rc.Close()
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := rc.Ping(pingCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		sessOpts = append(sessOpts, session.WithMirror(&session.RedisMirror{Redis: rc, TTL: sessionTTL}))
		slog.Info("selection mirror enabled", "redis", addr)
	}
	sessions := session.NewManager(cat, sessionTTL, sessOpts...)
	defer sessions.Stop()

	renderer, err := view.New()
	if err != nil {
		return err
	}

	pub := events.NewInMemory(256)
	rec := &activity.Recorder{Pub: pub}
	go rec.Run(ctx)

	handler := BuildRouter(RouterDeps{
		Site: httpapi.SiteDeps{
			Catalog:      cat,
			Sessions:     sessions,
			View:         renderer,
			Site:         view.Site{Title: env.Get("SITE_TITLE", "Allan's Accommodation"), Tagline: env.Get("SITE_TAGLINE", "Premium Student Housing in Bellville South, Cape Town")},
			Pub:          pub,
			SecureCookie: env.GetBool("COOKIE_SECURE", false),
		},
		Activity:   rec,
		RatePerMin: env.GetInt("RATE_LIMIT_PER_MIN", 300),
	})

	addr := ":" + strconv.Itoa(env.GetInt("PORT", 4002))
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("housing-site listening", "addr", addr)
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}
	return nil
}
