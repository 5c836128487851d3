// Package registry holds expensive process-wide resources, typically
// model handles, behind lazy once-only initialization with explicit
// shutdown and reload hooks.
package registry

import (
	"context"
	"fmt"
	"sync"
)

// Loader builds a resource on first acquisition.
type Loader func(ctx context.Context) (any, error)

type entry struct {
	mu       sync.Mutex
	load     Loader
	instance any
	loaded   bool
}

// Registry is a process-wide named resource store. Acquisition is
// thread-safe; a resource loads at most once until Reload or Shutdown.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

func New() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds a named loader. Registering an existing name closes any
// loaded instance, best-effort, and replaces the loader.
func (r *Registry) Register(name string, load Loader) {
	r.mu.Lock()
	old, ok := r.entries[name]
	if !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = &entry{load: load}
	r.mu.Unlock()

	if ok {
		old.mu.Lock()
		closeInstance(old)
		old.mu.Unlock()
	}
}

// Get returns the named resource, loading it on first use. A failed load
// is not memoized; the next Get retries.
func (r *Registry) Get(ctx context.Context, name string) (any, error) {
	r.mu.Lock()
	e, ok := r.entries[name]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no loader registered for %q", name)
	}

	// Per-entry lock so one slow load does not block unrelated resources.
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded {
		return e.instance, nil
	}

	instance, err := e.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}

	e.instance = instance
	e.loaded = true
	return instance, nil
}

// Reload drops the named instance, closing it if it implements
// io.Closer; the next Get loads it afresh.
func (r *Registry) Reload(name string) error {
	r.mu.Lock()
	e, ok := r.entries[name]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("no loader registered for %q", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err := closeInstance(e)
	e.instance = nil
	e.loaded = false
	return err
}

// Shutdown closes all loaded resources in reverse registration order and
// drops them. The registry stays usable; Get reloads.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	r.mu.Unlock()

	var firstErr error
	for i := len(names) - 1; i >= 0; i-- {
		r.mu.Lock()
		e := r.entries[names[i]]
		r.mu.Unlock()

		e.mu.Lock()
		if err := closeInstance(e); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close %q: %w", names[i], err)
		}
		e.instance = nil
		e.loaded = false
		e.mu.Unlock()
	}
	return firstErr
}

func closeInstance(e *entry) error {
	if !e.loaded {
		return nil
	}
	if closer, ok := e.instance.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
