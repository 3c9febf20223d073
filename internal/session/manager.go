package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"github.com/yourorg/housing-site/catalog"
	"github.com/yourorg/housing-site/internal/contact"
)

// Mirror persists selections outside the process so another replica, or a
// restarted one, can restore them.
type Mirror interface {
	LoadSelection(ctx context.Context, sessionID string) (int, bool, error)
	SaveSelection(ctx context.Context, sessionID string, propertyID int) error
	ClearSelection(ctx context.Context, sessionID string) error
	// TouchSelection extends the lifetime of a stored selection, if any.
	TouchSelection(ctx context.Context, sessionID string) error
}

type Option func(*Manager)

func WithMirror(m Mirror) Option {
	return func(mg *Manager) { mg.mirror = m }
}

func WithContactOptions(opts ...contact.Option) Option {
	return func(mg *Manager) { mg.contactOpts = append(mg.contactOpts, opts...) }
}

type Manager struct {
	catalog     *catalog.Catalog
	cache       *ttlcache.Cache[string, *Session]
	mirror      Mirror
	contactOpts []contact.Option
}

func NewManager(c *catalog.Catalog, ttl time.Duration, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	m := &Manager{
		catalog: c,
		cache:   ttlcache.New(ttlcache.WithTTL[string, *Session](ttl)),
	}
	for _, o := range opts {
		o(m)
	}
	m.cache.OnEviction(func(_ context.Context, reason ttlcache.EvictionReason, item *ttlcache.Item[string, *Session]) {
		item.Value().close()
		slog.Debug("session evicted", "session", item.Key(), "reason", reason)
	})
	go m.cache.Start()
	return m
}

// Ensure returns the live session for id. An unknown or malformed id gets a
// session; a well-formed id keeps its value so a mirrored selection can be
// restored, a malformed one is replaced by a fresh random id. Concurrent
// calls for the same id share one session.
func (m *Manager) Ensure(ctx context.Context, id string) *Session {
	if item := m.cache.Get(id); item != nil {
		s := item.Value()
		m.touch(ctx, s)
		return s
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	s := newSession(id, m.catalog, m.contactOpts)

	// Held until the restore finishes so callers that find s in the cache
	// first see the restored selection.
	s.mu.Lock()
	item, found := m.cache.GetOrSet(id, s)
	if found {
		s.mu.Unlock()
		s.close()
		return item.Value()
	}
	m.restore(ctx, s)
	s.mu.Unlock()
	return s
}

// restore expects s.mu to be held.
func (m *Manager) restore(ctx context.Context, s *Session) {
	if m.mirror == nil {
		return
	}
	pid, ok, err := m.mirror.LoadSelection(ctx, s.ID)
	if err != nil {
		slog.Warn("selection restore failed", "session", s.ID, "err", err)
		return
	}
	if !ok {
		return
	}
	if err := s.page.SelectID(pid); err != nil {
		// The catalog changed since the selection was saved.
		slog.Debug("dropping stale selection", "session", s.ID, "property", pid)
	}
}

// touch keeps the mirrored selection alive as long as the session.
func (m *Manager) touch(ctx context.Context, s *Session) {
	if m.mirror == nil {
		return
	}
	if err := m.mirror.TouchSelection(ctx, s.ID); err != nil {
		slog.Warn("selection mirror touch failed", "session", s.ID, "err", err)
	}
}

// Select records the listing card choice for s. The mirror is written under
// the session lock so it always ends in the same state as memory.
func (m *Manager) Select(ctx context.Context, s *Session, propertyID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.page.SelectID(propertyID); err != nil {
		return err
	}
	if m.mirror != nil {
		if err := m.mirror.SaveSelection(ctx, s.ID, propertyID); err != nil {
			slog.Warn("selection mirror save failed", "session", s.ID, "err", err)
		}
	}
	return nil
}

// CloseDialog clears the selection for s.
func (m *Manager) CloseDialog(ctx context.Context, s *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page.Close()
	if m.mirror != nil {
		if err := m.mirror.ClearSelection(ctx, s.ID); err != nil {
			slog.Warn("selection mirror clear failed", "session", s.ID, "err", err)
		}
	}
}

func (m *Manager) Len() int { return m.cache.Len() }

// Stop tears down every live session and stops the expiry loop.
func (m *Manager) Stop() {
	m.cache.Stop()
	for _, item := range m.cache.Items() {
		item.Value().close()
	}
	m.cache.DeleteAll()
}
