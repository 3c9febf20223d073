package session

import (
	"context"
	"strconv"
	"time"

	"github.com/yourorg/housing-site/internal/redisx"
)

// RedisMirror stores selections under site:sel:<session>.
type RedisMirror struct {
	Redis *redisx.Client
	TTL   time.Duration
}

func (r *RedisMirror) key(sessionID string) string { return "site:sel:" + sessionID }

func (r *RedisMirror) LoadSelection(ctx context.Context, sessionID string) (int, bool, error) {
	v, ok, err := r.Redis.Get(ctx, r.key(sessionID))
	if err != nil || !ok {
		return 0, false, err
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func (r *RedisMirror) SaveSelection(ctx context.Context, sessionID string, propertyID int) error {
	return r.Redis.Set(ctx, r.key(sessionID), strconv.Itoa(propertyID), r.TTL)
}

func (r *RedisMirror) ClearSelection(ctx context.Context, sessionID string) error {
	return r.Redis.Del(ctx, r.key(sessionID))
}

// TouchSelection resets the key's expiry to TTL. A missing key is left
// missing.
func (r *RedisMirror) TouchSelection(ctx context.Context, sessionID string) error {
	if r.TTL <= 0 {
		return nil
	}
	return r.Redis.Expire(ctx, r.key(sessionID), r.TTL)
}
