package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxPlaceholderSide = 2000

// RegisterPlaceholder serves neutral SVG images of any size, for listings
// that have no photography yet.
func RegisterPlaceholder(r chi.Router) {
	r.Get("/api/placeholder/{width}/{height}", func(w http.ResponseWriter, req *http.Request) {
		width, err1 := strconv.Atoi(chi.URLParam(req, "width"))
		height, err2 := strconv.Atoi(chi.URLParam(req, "height"))
		if err1 != nil || err2 != nil {
			http.Error(w, "width and height must be integers", http.StatusBadRequest)
			return
		}
		width, height = clampSide(width), clampSide(height)
		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="#e5e7eb"/>`+
			`<text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" fill="#9ca3af" font-family="sans-serif" font-size="%d">%d×%d</text>`+
			`</svg>`, width, height, width, height, fontSize(width, height), width, height)
	})
}

func clampSide(v int) int {
	if v < 1 {
		return 1
	}
	if v > maxPlaceholderSide {
		return maxPlaceholderSide
	}
	return v
}

func fontSize(w, h int) int {
	s := w
	if h < s {
		s = h
	}
	if s/8 < 8 {
		return 8
	}
	return s / 8
}
