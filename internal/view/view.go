// Package view renders the site's HTML: the listing cards, the detail
// dialog, the contact form and the page that composes them.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/yourorg/housing-site/catalog"
	"github.com/yourorg/housing-site/internal/canon"
	"github.com/yourorg/housing-site/internal/contact"
	"github.com/yourorg/housing-site/internal/page"
)

// CardAmenityLimit is how many amenities a listing card shows.
const CardAmenityLimit = 4

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type Site struct {
	Title   string
	Tagline string
}

type ContactData struct {
	Submitted bool
	Values    contact.Submission
	Errors    contact.FieldErrors
}

type PageData struct {
	Site       Site
	Properties []catalog.Property
	Dialog     page.Dialog
	Contact    ContactData
}

type Renderer struct {
	t *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"anchor":        canon.Anchor,
		"icon":          iconHTML,
		"cardAmenities": cardAmenities,
	}
	t, err := template.New("_root").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t}, nil
}

func (r *Renderer) Page(w io.Writer, d PageData) error {
	return r.t.ExecuteTemplate(w, "page", d)
}

func (r *Renderer) Card(w io.Writer, p catalog.Property) error {
	return r.t.ExecuteTemplate(w, "card", p)
}

// Dialog renders the detail dialog for p. A nil property renders nothing,
// whatever open says.
func (r *Renderer) Dialog(w io.Writer, p *catalog.Property, open bool) error {
	if p == nil {
		return nil
	}
	return r.t.ExecuteTemplate(w, "dialog", page.Dialog{Property: p, Open: open})
}

func (r *Renderer) Contact(w io.Writer, d ContactData) error {
	return r.t.ExecuteTemplate(w, "contact", d)
}

// Assets serves the embedded stylesheet.
func Assets() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

func cardAmenities(a []catalog.Amenity) []catalog.Amenity {
	if len(a) > CardAmenityLimit {
		return a[:CardAmenityLimit]
	}
	return a
}

func iconHTML(i catalog.Icon) template.HTML {
	if i == "" {
		return ""
	}
	return template.HTML(`<span class="icon icon-` + template.HTMLEscapeString(string(i)) + `" aria-hidden="true"></span>`)
}
