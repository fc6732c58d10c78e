package registry

import (
	"errors"
	"sync"
	"time"

	"payproc/internal/services/payment"

	"github.com/google/uuid"
)

var (
	ErrMethodNotFound = errors.New("payment method not found")
	ErrNilMethod      = errors.New("payment method is nil")
)

// Entry is a saved payment method.
type Entry struct {
	ID        uuid.UUID
	Method    payment.Method
	CreatedAt time.Time
}

// Registry keeps the payment methods a user has saved, in insertion order.
// It is owned by whichever front end drives the processor.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[uuid.UUID]int
}

func New() *Registry {
	return &Registry{
		index: make(map[uuid.UUID]int),
	}
}

// Add saves m under a fresh ID.
func (r *Registry) Add(m payment.Method) (Entry, error) {
	if m == nil {
		return Entry{}, ErrNilMethod
	}

	entry := Entry{
		ID:        uuid.New(),
		Method:    m,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[entry.ID] = len(r.entries)
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *Registry) Get(id uuid.UUID) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return Entry{}, ErrMethodNotFound
	}
	return r.entries[i], nil
}

// List returns every saved method in the order it was added.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Fundable returns the saved methods that accept top-ups.
func (r *Registry) Fundable() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if payment.SupportsFunding(e.Method) {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// With runs fn on the method saved under id while holding the registry
// exclusively, so no other caller observes or mutates any method meanwhile.
func (r *Registry) With(id uuid.UUID, fn func(Entry) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return ErrMethodNotFound
	}
	return fn(r.entries[i])
}

// Each runs fn on every entry in order under a shared lock. fn must not
// mutate the methods.
func (r *Registry) Each(fn func(Entry)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		fn(e)
	}
}
