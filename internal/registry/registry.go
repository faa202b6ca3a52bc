package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/madhatterpub/site/internal/config"
)

// Key is a type-safe, generic key for registering and retrieving services.
// The string value should be a unique identifier, e.g., "moduleName.serviceName".
type Key[T any] string

// Registry provides a type-safe way for modules to share and discover services at runtime.
// It uses a sync.Map for concurrent-safe access.
type Registry struct {
	services sync.Map
	cfg      config.Provider
}

// New creates a new registry with the application's configuration provider.
func New(cfg config.Provider) *Registry {
	return &Registry{
		cfg: cfg,
	}
}

// Config returns the configuration provider stored in the registry.
func (r *Registry) Config() config.Provider {
	return r.cfg
}

// ErrAlreadyRegistered is returned by Provide when a key is taken.
var ErrAlreadyRegistered = errors.New("service already registered")

// Set registers a service instance against a type-safe key, replacing any
// previous value.
func Set[T any](r *Registry, key Key[T], value T) {
	r.services.Store(string(key), value)
}

// Provide registers a service only if nothing is registered under key yet.
// Modules use it in Register so two modules cannot claim the same service.
func Provide[T any](r *Registry, key Key[T], value T) error {
	if _, loaded := r.services.LoadOrStore(string(key), value); loaded {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, key)
	}
	return nil
}

// Get retrieves a service from the registry by its key.
func Get[T any](r *Registry, key Key[T]) (T, bool) {
	val, ok := r.services.Load(string(key))
	if !ok {
		var zero T
		return zero, false
	}

	result, ok := val.(T)
	if !ok {
		var zero T
		return zero, false
	}

	return result, true
}

// MustGet retrieves a service or panics if not found. This is useful for
// wiring up essential dependencies at startup.
func MustGet[T any](r *Registry, key Key[T]) T {
	val, ok := Get(r, key)
	if !ok {
		panic(fmt.Sprintf("service not found for key: %v", key))
	}
	return val
}
