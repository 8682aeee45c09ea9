package profile

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pyoushmadan10/chatify/internal/authstore"
)

// entry is a live profile screen and the session store behind it.
type entry struct {
	view     *ProfileView
	store    *authstore.Store
	lastSeen time.Time
}

// Views keeps one ProfileView per browser session. Entries not used for
// longer than the TTL are dropped by Sweep.
type Views struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

// NewViews creates an empty registry.
func NewViews(ttl time.Duration) *Views {
	return &Views{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Add registers a view and returns its id.
func (r *Views) Add(view *ProfileView, store *authstore.Store) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.entries[id] = &entry{view: view, store: store, lastSeen: r.now()}
	r.mu.Unlock()
	return id
}

// Get returns the view and store registered under id and marks them used.
func (r *Views) Get(id string) (*ProfileView, *authstore.Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, nil, false
	}
	if r.expired(e) {
		delete(r.entries, id)
		return nil, nil, false
	}
	e.lastSeen = r.now()
	return e.view, e.store, true
}

// Remove drops id.
func (r *Views) Remove(id string) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

// ApplyProfilePic forwards a profile picture change to every open screen of
// userID, so other tabs show the new picture on their next render.
func (r *Views) ApplyProfilePic(userID, profilePic string) int {
	r.mu.Lock()
	stores := make([]*authstore.Store, 0, len(r.entries))
	for _, e := range r.entries {
		stores = append(stores, e.store)
	}
	r.mu.Unlock()

	applied := 0
	for _, s := range stores {
		if u := s.AuthUser(); u != nil && u.ID != nil && u.ID.String() == userID {
			s.ApplyProfilePic(userID, profilePic)
			applied++
		}
	}
	return applied
}

// Sweep removes expired entries and reports how many were dropped.
func (r *Views) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, e := range r.entries {
		if r.expired(e) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of registered views.
func (r *Views) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Views) expired(e *entry) bool {
	return r.ttl > 0 && r.now().Sub(e.lastSeen) > r.ttl
}
