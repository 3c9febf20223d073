package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/yourorg/housing-site/catalog"
)

type CatalogDeps struct {
	Catalog *catalog.Catalog
}

// RegisterCatalog exposes the catalog read-only as JSON.
func RegisterCatalog(r chi.Router, d CatalogDeps) {
	r.Route("/api/properties", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			props := d.Catalog.All()
			render.JSON(w, req, map[string]any{
				"ok":         true,
				"count":      len(props),
				"properties": props,
			})
		})

		r.Get("/{propertyID}", func(w http.ResponseWriter, req *http.Request) {
			id, err := strconv.Atoi(chi.URLParam(req, "propertyID"))
			if err != nil {
				writeError(w, req, http.StatusBadRequest, "invalid_id", "property id must be an integer")
				return
			}
			p, ok := d.Catalog.Lookup(id)
			if !ok {
				writeError(w, req, http.StatusNotFound, "not_found", "no property with id "+strconv.Itoa(id))
				return
			}
			render.JSON(w, req, map[string]any{"ok": true, "property": p})
		})
	})
}

func writeError(w http.ResponseWriter, req *http.Request, status int, code, detail string) {
	render.Status(req, status)
	render.JSON(w, req, map[string]any{"error": code, "detail": detail})
}
