// Package session keeps per-visitor page state: the selected property and
// the contact form. Sessions expire after a period of inactivity; expiry is
// the teardown point for the state they own.
package session

import (
	"sync"

	"github.com/yourorg/housing-site/catalog"
	"github.com/yourorg/housing-site/internal/contact"
	"github.com/yourorg/housing-site/internal/page"
)

// Session serializes all mutations of one visitor's state. Selection
// changes go through Manager so the mirror stays in step.
type Session struct {
	ID string

	mu      sync.Mutex
	page    *page.Controller
	contact *contact.Form
}

func newSession(id string, c *catalog.Catalog, opts []contact.Option) *Session {
	return &Session{
		ID:      id,
		page:    page.New(c),
		contact: contact.New(opts...),
	}
}

func (s *Session) Dialog() page.Dialog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Dialog()
}

func (s *Session) SubmitContact(sub contact.Submission) error {
	return s.contact.Submit(sub)
}

func (s *Session) ContactSubmitted() bool {
	return s.contact.Submitted()
}

func (s *Session) close() {
	s.contact.Close()
}
