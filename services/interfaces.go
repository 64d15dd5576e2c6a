// Package services defines the wire-level request/response shapes and
// interfaces the HTTP query surface talks to, independent of how the
// search core is implemented underneath.
package services

// HitResult is a single document reference in a search response, carrying
// the score it was ranked by.
type HitResult struct {
	DocumentID string  `json:"document_id"`
	Score      float64 `json:"score"`
}

// SearchResult is the response from a single search call.
type SearchResult struct {
	Hits     []HitResult `json:"hits"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Took     int64       `json:"took_ms"`
	QueryID  string      `json:"query_id"`
}

// SearchQuery is the wire request a Searcher accepts: the normalized form
// produced by searchform.Form.ToServiceQuery, plus the field collection it
// targets.
type SearchQuery struct {
	FieldCollection string
	Q               string
	Tags            []string
	Offset          int
	Limit           int
	Sort            string
}

// Searcher runs one SearchQuery against a field collection.
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
}

// Rebuilder forces a corpus resnapshot and index rebuild for a named field
// collection, returning the resulting index generation.
type Rebuilder interface {
	Rebuild(fieldCollection string) (uint64, error)
}
