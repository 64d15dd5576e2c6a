// Package engine manages one or more named field-collection instances,
// each backed by a corpus provider, and orchestrates their rebuilds.
package engine

import (
	"context"
	"sync"

	"github.com/pkgsearch/search-core/config"
	"github.com/pkgsearch/search-core/corpus"
	searcherrors "github.com/pkgsearch/search-core/internal/errors"
)

// Engine holds every registered field-collection, keyed by name. Tests
// substitute a fresh Engine rather than reaching for ambient state.
type Engine struct {
	mu          sync.RWMutex
	collections map[string]*Collection
}

// New creates an empty Engine.
func New() *Engine {
	return &Engine{
		collections: make(map[string]*Collection),
	}
}

// Register validates settings, builds a new empty Collection bound to
// provider, and adds it under settings.Name. It does not perform an initial
// rebuild; callers call Rebuild explicitly (or the cmd entry point does, at
// startup).
func (e *Engine) Register(settings config.FieldCollectionSettings, provider corpus.Provider) (*Collection, error) {
	settings.ApplyDefaults()
	if conflicts := settings.ValidateFieldNames(); len(conflicts) > 0 {
		return nil, searcherrors.NewSettingsValidationError(settings.Name, conflicts[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.collections[settings.Name]; exists {
		return nil, searcherrors.NewFieldCollectionAlreadyExistsError(settings.Name)
	}

	instance := newCollection(settings, provider)
	e.collections[settings.Name] = instance
	return instance, nil
}

// Get returns the named collection.
func (e *Engine) Get(name string) (*Collection, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, ok := e.collections[name]
	if !ok {
		return nil, searcherrors.NewFieldCollectionNotFoundError(name)
	}
	return instance, nil
}

// Remove deletes the named collection.
func (e *Engine) Remove(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.collections[name]; !ok {
		return searcherrors.NewFieldCollectionNotFoundError(name)
	}
	delete(e.collections, name)
	return nil
}

// Rebuild satisfies services.Rebuilder: it looks up the named collection
// and forces a corpus resnapshot, returning the new index generation.
func (e *Engine) Rebuild(fieldCollection string) (uint64, error) {
	collection, err := e.Get(fieldCollection)
	if err != nil {
		return 0, err
	}
	return collection.Rebuild(context.Background())
}

// Names returns the registered collection names.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.collections))
	for name := range e.collections {
		names = append(names, name)
	}
	return names
}
