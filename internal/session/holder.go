// Package session holds the process-wide current-user state, backed by a
// lightweight persistent slot that lives outside the transactional store.
package session

import (
	"context"
	"sync"

	"ripple/internal/models"
	"ripple/internal/observability"
)

// Slot persists a single current-user record. Implementations must treat an
// absent record as a normal state, not an error.
type Slot interface {
	Load(ctx context.Context) (*models.Identity, error)
	Save(ctx context.Context, id models.Identity) error
	Clear(ctx context.Context) error
}

// Holder guards the logged-in user's public identity. It is the sole source
// of "who is acting" for post and comment authorship snapshots.
type Holder struct {
	slot Slot

	mu      sync.RWMutex
	current *models.Identity
}

// NewHolder creates a Holder and loads any persisted session from the slot,
// so a login survives a process restart.
func NewHolder(ctx context.Context, slot Slot) (*Holder, error) {
	current, err := slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	return &Holder{slot: slot, current: current}, nil
}

// Current returns the logged-in user's identity, or nil when nobody is
// logged in.
func (h *Holder) Current() *models.Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil
	}
	id := *h.current
	return &id
}

// Login persists the user's public identity and makes it current. The
// credential never reaches the slot.
func (h *Holder) Login(ctx context.Context, user *models.User) error {
	observability.SessionOperations.WithLabelValues("login").Inc()
	id := user.Public()
	if err := h.slot.Save(ctx, id); err != nil {
		return err
	}
	h.mu.Lock()
	h.current = &id
	h.mu.Unlock()
	return nil
}

// Logout clears the persisted session and the in-memory state.
func (h *Holder) Logout(ctx context.Context) error {
	observability.SessionOperations.WithLabelValues("logout").Inc()
	if err := h.slot.Clear(ctx); err != nil {
		return err
	}
	h.mu.Lock()
	h.current = nil
	h.mu.Unlock()
	return nil
}
