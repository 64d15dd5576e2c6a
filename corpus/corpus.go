// Package corpus defines the external interface the search core consumes
// to (re)build its indexes: a read-only snapshot of documents, their
// fielded text, their tags, and the numeric fields non-relevance orderings
// sort by.
package corpus

import "context"

// Document is the unit a Provider hands the engine on rebuild.
type Document struct {
	ID string
	// Fields maps a field-collection field name (name, description, readme,
	// api_symbols, ...) to that field's raw text for this document.
	Fields map[string]string
	// Tags is the document's full tag set, consulted by tagpredicate.
	Tags map[string]struct{}
	// OrderingFields supplies the numeric values non-relevance orderings
	// (updated, created, popularity, likes, points, top) sort by.
	OrderingFields map[string]float64
}

// Snapshot is a complete corpus as of one point in time, keyed by document
// id. The engine rebuilds its index from one Snapshot atomically.
type Snapshot map[string]Document

// Provider is the only I/O surface the search core consumes. Snapshot may
// suspend on ctx; everything downstream of it is pure CPU.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
