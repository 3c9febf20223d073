package httpapi

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yourorg/housing-site/catalog"
	"github.com/yourorg/housing-site/internal/contact"
	"github.com/yourorg/housing-site/internal/events"
	"github.com/yourorg/housing-site/internal/session"
	"github.com/yourorg/housing-site/internal/view"
)

type SiteDeps struct {
	Catalog      *catalog.Catalog
	Sessions     *session.Manager
	View         *view.Renderer
	Site         view.Site
	Pub          events.Publisher
	SecureCookie bool
}

func RegisterSite(r chi.Router, d SiteDeps) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		s := sessionFor(w, req, d.Sessions, d.SecureCookie)
		renderPage(w, req, d, s, view.ContactData{Submitted: s.ContactSubmitted()}, http.StatusOK)
	})

	r.Post("/properties/{propertyID}/select", func(w http.ResponseWriter, req *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(req, "propertyID"))
		if err != nil {
			http.NotFound(w, req)
			return
		}
		s := sessionFor(w, req, d.Sessions, d.SecureCookie)
		if err := d.Sessions.Select(req.Context(), s, id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				http.NotFound(w, req)
				return
			}
			slog.Error("select property", "property", id, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		publish(req, d.Pub, events.Event{Kind: events.PropertySelected, SessionID: s.ID, PropertyID: id})
		http.Redirect(w, req, "/#property-dialog", http.StatusSeeOther)
	})

	r.Post("/dialog/close", func(w http.ResponseWriter, req *http.Request) {
		s := sessionFor(w, req, d.Sessions, d.SecureCookie)
		d.Sessions.CloseDialog(req.Context(), s)
		publish(req, d.Pub, events.Event{Kind: events.DialogClosed, SessionID: s.ID})
		http.Redirect(w, req, "/#properties", http.StatusSeeOther)
	})

	r.Post("/contact", func(w http.ResponseWriter, req *http.Request) {
		handleContact(w, req, d)
	})
}

func handleContact(w http.ResponseWriter, req *http.Request, d SiteDeps) {
	if err := req.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sub := contact.Submission{
		Name:    req.PostForm.Get("name"),
		Email:   req.PostForm.Get("email"),
		Message: req.PostForm.Get("message"),
	}
	s := sessionFor(w, req, d.Sessions, d.SecureCookie)
	err := s.SubmitContact(sub)
	var fe contact.FieldErrors
	switch {
	case err == nil:
		publish(req, d.Pub, events.Event{Kind: events.ContactSubmitted, SessionID: s.ID})
		http.Redirect(w, req, "/#contact", http.StatusSeeOther)
	case errors.As(err, &fe):
		renderPage(w, req, d, s, view.ContactData{
			Submitted: s.ContactSubmitted(),
			Values:    sub,
			Errors:    fe,
		}, http.StatusUnprocessableEntity)
	case errors.Is(err, contact.ErrClosed):
		// The session expired mid-request; start over on a fresh page.
		http.Redirect(w, req, "/#contact", http.StatusSeeOther)
	default:
		slog.Error("contact submit", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func renderPage(w http.ResponseWriter, req *http.Request, d SiteDeps, s *session.Session, cd view.ContactData, status int) {
	var buf bytes.Buffer
	err := d.View.Page(&buf, view.PageData{
		Site:       d.Site,
		Properties: d.Catalog.All(),
		Dialog:     s.Dialog(),
		Contact:    cd,
	})
	if err != nil {
		slog.ErrorContext(req.Context(), "render page", "err", err)
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func publish(req *http.Request, pub events.Publisher, evt events.Event) {
	if pub == nil {
		return
	}
	pub.Publish(req.Context(), evt)
}
