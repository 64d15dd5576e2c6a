// Package fieldindex bundles several named tokenindex.Index instances, one
// per document field, each with its own relevance weight.
package fieldindex

import (
	"github.com/pkgsearch/search-core/internal/scoremap"
	"github.com/pkgsearch/search-core/internal/tokenindex"
)

// Field names a single weighted field within a Collection.
type Field struct {
	Name   string
	Weight float64
}

// Collection is a named set of per-field token indexes searched together. A
// document scores as well as its best-matching field, never double-counted.
type Collection struct {
	fields []Field
	byName map[string]*tokenindex.Index
}

// New builds a Collection from fields, in the given order. Field order has
// no effect on scoring (Search combines fields via scoremap.Max) but is
// preserved for callers that want a stable field enumeration.
func New(fields []Field) *Collection {
	c := &Collection{
		fields: fields,
		byName: make(map[string]*tokenindex.Index, len(fields)),
	}
	for _, f := range fields {
		c.byName[f.Name] = tokenindex.New()
	}
	return c
}

// Fields returns the collection's fields in construction order.
func (c *Collection) Fields() []Field {
	return c.fields
}

// Add (re)indexes docID's field values. Fields absent from the map, or
// present with an empty string, are removed from their respective index.
func (c *Collection) Add(docID string, values map[string]string) {
	for _, f := range c.fields {
		idx := c.byName[f.Name]
		idx.Add(docID, values[f.Name])
	}
}

// Remove purges docID from every field's index.
func (c *Collection) Remove(docID string) {
	for _, idx := range c.byName {
		idx.Remove(docID)
	}
}

// Search scores words against every field and combines the results with
// scoremap.Max: a document's score is its best single field's score, so a
// match in one field is never diluted by a miss in another. If restrictTo is
// non-nil, candidates outside it are never scored.
func (c *Collection) Search(words []string, restrictTo map[string]struct{}) scoremap.Map {
	if restrictTo != nil && len(restrictTo) == 0 {
		return scoremap.Map{}
	}

	perField := make([]scoremap.Map, 0, len(c.fields))
	for _, f := range c.fields {
		idx := c.byName[f.Name]
		perField = append(perField, idx.SearchWords(words, f.Weight, restrictTo))
	}
	return scoremap.Max(perField...)
}

// DocumentCount returns the number of distinct documents indexed in any
// field, or 0 for an empty collection.
func (c *Collection) DocumentCount() int {
	max := 0
	for _, idx := range c.byName {
		if n := idx.DocumentCount(); n > max {
			max = n
		}
	}
	return max
}
