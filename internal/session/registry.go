// Package session keeps one isolated eligibility Wizard per open dialog or
// page.
//
// Wizards themselves are single-threaded. The registry is what the MCP and
// HTTP adapters share, so it owns the locking: Do runs a callback with the
// session's own mutex held, and sessions never share state with each other.
// Nothing here is persisted; a process restart forgets every session.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/HendryAvila/sheraa-eligibility/internal/eligibility"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned for unknown, closed or expired session ids.
var ErrNotFound = errors.New("session not found")

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// newID is a package-level variable so tests can use predictable ids.
var newID = func() string { return uuid.NewString() }

// Info describes a live session.
type Info struct {
	ID       string              `json:"id"`
	Variant  eligibility.Variant `json:"variant"`
	OpenedAt time.Time           `json:"opened_at"`
	LastSeen time.Time           `json:"last_seen"`
}

type entry struct {
	mu       sync.Mutex
	wizard   *eligibility.Wizard
	openedAt time.Time
	lastSeen time.Time
	closed   bool
}

// Registry maps session ids to wizards.
type Registry struct {
	cat *catalog.Catalog
	log *zap.Logger

	mu       sync.Mutex
	sessions map[string]*entry
	observer eligibility.Observer
}

// NewRegistry creates an empty registry whose wizards all use cat.
func NewRegistry(cat *catalog.Catalog, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		cat:      cat,
		log:      logger,
		sessions: make(map[string]*entry),
	}
}

// SetObserver injects an Observer handed to every wizard opened afterwards.
func (r *Registry) SetObserver(obs eligibility.Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = obs
}

// Catalog returns the catalog shared by every session.
func (r *Registry) Catalog() *catalog.Catalog { return r.cat }

// Open starts a new wizard and returns its id.
func (r *Registry) Open(variant eligibility.Variant) (string, error) {
	if variant == "" {
		variant = eligibility.VariantDialog
	}
	if err := eligibility.ValidateVariant(variant); err != nil {
		return "", err
	}

	id := newID()
	now := timeNow()
	w := eligibility.NewWizard(r.cat, variant, r.log.With(zap.String("session", id)))

	r.mu.Lock()
	defer r.mu.Unlock()
	w.SetObserver(r.observer)
	r.sessions[id] = &entry{wizard: w, openedAt: now, lastSeen: now}

	r.log.Debug("session opened", zap.String("session", id), zap.String("variant", string(variant)))
	return id, nil
}

// Do runs fn with exclusive access to the session's wizard and refreshes
// its idle timer. The wizard must not be retained after fn returns.
func (r *Registry) Do(id string, fn func(w *eligibility.Wizard) error) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrNotFound
	}
	e.lastSeen = timeNow()
	return fn(e.wizard)
}

// Close discards a session. Closing an unknown id returns ErrNotFound.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	e, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	r.log.Debug("session closed", zap.String("session", id))
	return nil
}

// Info returns metadata for a live session.
func (r *Registry) Info(id string) (Info, error) {
	var info Info
	err := r.Do(id, func(w *eligibility.Wizard) error {
		info = Info{ID: id, Variant: w.Variant()}
		return nil
	})
	if err != nil {
		return Info{}, err
	}

	r.mu.Lock()
	e := r.sessions[id]
	r.mu.Unlock()
	if e != nil {
		e.mu.Lock()
		info.OpenedAt, info.LastSeen = e.openedAt, e.lastSeen
		e.mu.Unlock()
	}
	return info, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes sessions idle for longer than ttl and returns how many it
// closed. A non-positive ttl disables expiry.
func (r *Registry) Sweep(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := timeNow().Add(-ttl)

	r.mu.Lock()
	var expired []string
	for id, e := range r.sessions {
		e.mu.Lock()
		if e.lastSeen.Before(cutoff) {
			expired = append(expired, id)
		}
		e.mu.Unlock()
	}
	r.mu.Unlock()

	closed := 0
	for _, id := range expired {
		if err := r.Close(id); err == nil {
			closed++
		}
	}
	if closed > 0 {
		r.log.Info("expired idle sessions", zap.Int("count", closed), zap.Duration("ttl", ttl))
	}
	return closed
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (r *Registry) RunJanitor(ctx context.Context, ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(ttl)
		}
	}
}
