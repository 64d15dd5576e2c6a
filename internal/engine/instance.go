package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkgsearch/search-core/config"
	"github.com/pkgsearch/search-core/corpus"
	searcherrors "github.com/pkgsearch/search-core/internal/errors"
	"github.com/pkgsearch/search-core/internal/fieldindex"
)

// snapshotState is one fully-built generation of a Collection: the
// field-collection index plus the per-document tag sets and ordering-field
// values the search service needs but the index itself doesn't store.
// Rebuild constructs a new snapshotState and swaps it in atomically, so a
// reader never observes a partially rebuilt index.
type snapshotState struct {
	index      *fieldindex.Collection
	tags       map[string]map[string]struct{}
	ordering   map[string]map[string]float64
	generation uint64
}

// Collection is one named field-collection instance: settings, the corpus
// provider that feeds it, and the current (atomically swappable) snapshot.
type Collection struct {
	name     string
	settings config.FieldCollectionSettings
	provider corpus.Provider

	state atomic.Pointer[snapshotState]
	// rebuildMu serializes rebuilds: one writer at a time.
	rebuildMu sync.Mutex
}

func newCollection(settings config.FieldCollectionSettings, provider corpus.Provider) *Collection {
	c := &Collection{
		name:     settings.Name,
		settings: settings,
		provider: provider,
	}
	c.state.Store(&snapshotState{
		index:    fieldindex.New(fieldsFromSettings(settings)),
		tags:     make(map[string]map[string]struct{}),
		ordering: make(map[string]map[string]float64),
	})
	return c
}

func fieldsFromSettings(settings config.FieldCollectionSettings) []fieldindex.Field {
	fields := make([]fieldindex.Field, 0, len(settings.Fields))
	for _, f := range settings.Fields {
		fields = append(fields, fieldindex.Field{Name: f.Name, Weight: f.Weight})
	}
	return fields
}

// Settings returns the collection's configuration.
func (c *Collection) Settings() config.FieldCollectionSettings {
	return c.settings
}

// Generation returns the generation of the snapshot currently in effect.
func (c *Collection) Generation() uint64 {
	return c.state.Load().generation
}

// FieldIndex returns the field-collection index for the current snapshot.
func (c *Collection) FieldIndex() *fieldindex.Collection {
	return c.state.Load().index
}

// Tags returns the tag set for docID as of the current snapshot.
func (c *Collection) Tags(docID string) (map[string]struct{}, bool) {
	tags, ok := c.state.Load().tags[docID]
	return tags, ok
}

// OrderingFields returns the ordering-field values for docID as of the
// current snapshot.
func (c *Collection) OrderingFields(docID string) (map[string]float64, bool) {
	fields, ok := c.state.Load().ordering[docID]
	return fields, ok
}

// DocumentIDs returns every document id present in the current snapshot.
func (c *Collection) DocumentIDs() []string {
	state := c.state.Load()
	ids := make([]string, 0, len(state.tags))
	for id := range state.tags {
		ids = append(ids, id)
	}
	return ids
}

// Rebuild asks the corpus provider for a fresh snapshot, builds a new
// field-collection index from it, and atomically swaps it in. Concurrent
// readers continue to see the prior generation until the swap completes.
func (c *Collection) Rebuild(ctx context.Context) (uint64, error) {
	c.rebuildMu.Lock()
	defer c.rebuildMu.Unlock()

	snapshot, err := c.provider.Snapshot(ctx)
	if err != nil {
		return 0, searcherrors.NewCorpusUnavailableError(c.name, err)
	}

	next := &snapshotState{
		index:      fieldindex.New(fieldsFromSettings(c.settings)),
		tags:       make(map[string]map[string]struct{}, len(snapshot)),
		ordering:   make(map[string]map[string]float64, len(snapshot)),
		generation: c.state.Load().generation + 1,
	}

	for docID, doc := range snapshot {
		next.index.Add(docID, doc.Fields)
		next.tags[docID] = doc.Tags
		next.ordering[docID] = doc.OrderingFields
	}

	c.state.Store(next)
	return next.generation, nil
}
