// Package memory provides an in-memory corpus.Provider backed by a plain
// map, used by tests and by embedders that already hold package metadata
// in process.
package memory

import (
	"context"
	"sync"

	"github.com/pkgsearch/search-core/corpus"
)

// Provider is a mutable, in-memory corpus.Provider. Safe for concurrent use.
type Provider struct {
	mu   sync.RWMutex
	docs map[string]corpus.Document
}

// New returns an empty Provider.
func New() *Provider {
	return &Provider{docs: make(map[string]corpus.Document)}
}

// Put inserts or replaces a document.
func (p *Provider) Put(doc corpus.Document) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.docs[doc.ID] = doc
}

// Delete removes a document, if present.
func (p *Provider) Delete(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.docs, id)
}

// Snapshot returns a defensive copy of the current document set.
func (p *Provider) Snapshot(ctx context.Context) (corpus.Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snapshot := make(corpus.Snapshot, len(p.docs))
	for id, doc := range p.docs {
		snapshot[id] = doc
	}
	return snapshot, nil
}
