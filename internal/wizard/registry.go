package wizard

import (
	"log/slog"
	"sync"
	"time"
)

// Registry owns the live wizard sessions, one per session key. Access
// to a wizard is serialized through With, so transitions never race.
type Registry struct {
	mu      sync.Mutex
	drafts  DraftStore
	logger  *slog.Logger
	entries map[string]*entry
}

type entry struct {
	mu       sync.Mutex
	wizard   *Wizard
	lastUsed time.Time
}

// NewRegistry creates an empty session registry.
func NewRegistry(drafts DraftStore, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		drafts:  drafts,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// With runs fn with the wizard for key, creating the session on first
// use. The wizard must not be retained past fn's return.
func (r *Registry) With(key string, fn func(w *Wizard) error) error {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{}
		r.entries[key] = e
	}
	e.lastUsed = time.Now()
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.wizard == nil {
		e.wizard = New(key, r.drafts, r.logger)
	}
	return fn(e.wizard)
}

// Drop removes a session from the registry. The draft row, if any, is
// untouched; a later With recreates the wizard from it.
func (r *Registry) Drop(key string) {
	r.mu.Lock()
	delete(r.entries, key)
	r.mu.Unlock()
}

// Cleanup evicts sessions idle longer than maxIdle and returns the
// number evicted.
func (r *Registry) Cleanup(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for key, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, key)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
