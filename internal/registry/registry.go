// Package registry lets modules publish services for each other by typed key.
package registry

import (
	"fmt"
	"sync"

	"github.com/pyoushmadan10/chatify/internal/config"
)

// Key names a service of type T, conventionally "<module>.<service>".
type Key[T any] string

type Registry struct {
	mu       sync.RWMutex
	services map[string]any
	cfg      config.Provider
}

func New(cfg config.Provider) *Registry {
	return &Registry{services: make(map[string]any), cfg: cfg}
}

// Config returns the application configuration.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// Set stores value under key, replacing any earlier value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.mu.Lock()
	r.services[string(key)] = value
	r.mu.Unlock()
}

// Get returns the value stored under key. It reports false when nothing is
// stored or the stored value is not a T.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	r.mu.RLock()
	val, ok := r.services[string(key)]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := val.(T)
	return v, ok
}

// MustGet is Get for services a module cannot start without.
func MustGet[T any](r *Registry, key Key[T]) T {
	v, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("registry: no service %q", string(key)))
	}
	return v
}
