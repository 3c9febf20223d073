package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	httpapi "github.com/yourorg/housing-site/http"
	"github.com/yourorg/housing-site/internal/activity"
	"github.com/yourorg/housing-site/internal/logger"
	"github.com/yourorg/housing-site/internal/view"
)

type RouterDeps struct {
	Site       httpapi.SiteDeps
	Activity   *activity.Recorder
	RatePerMin int
}

func BuildRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.Middleware)
	r.Use(middleware.Recoverer)
	if d.RatePerMin > 0 {
		r.Use(httprate.LimitByIP(d.RatePerMin, 1*time.Minute))
	}

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		body := map[string]any{"ok": true, "properties": d.Site.Catalog.Len()}
		if d.Activity != nil {
			body["activity"] = d.Activity.Counts()
		}
		render.JSON(w, req, body)
	})
	r.Handle("/assets/*", http.StripPrefix("/assets", view.Assets()))

	httpapi.RegisterSite(r, d.Site)
	httpapi.RegisterCatalog(r, httpapi.CatalogDeps{Catalog: d.Site.Catalog})
	httpapi.RegisterPlaceholder(r)

	return r
}
