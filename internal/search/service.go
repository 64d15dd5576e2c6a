// Package search implements the orchestration step that turns a service
// query into a ranked, paginated list of document ids: filter by tags,
// score by text, prune, sort, and paginate.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkgsearch/search-core/internal/analyzer"
	"github.com/pkgsearch/search-core/internal/engine"
	searcherrors "github.com/pkgsearch/search-core/internal/errors"
	"github.com/pkgsearch/search-core/internal/queryparser"
	"github.com/pkgsearch/search-core/internal/scoremap"
	"github.com/pkgsearch/search-core/internal/tagpredicate"
	"github.com/pkgsearch/search-core/services"
)

// noiseFraction prunes score-map entries below this fraction of the top
// score.
const noiseFraction = 0.01

// Service orchestrates search for one field-collection Engine.
type Service struct {
	engine *engine.Engine
}

// NewService wraps an Engine in a Searcher.
func NewService(e *engine.Engine) *Service {
	return &Service{engine: e}
}

// Search implements services.Searcher.
func (s *Service) Search(query services.SearchQuery) (services.SearchResult, error) {
	start := time.Now()

	if query.Offset < 0 {
		return services.SearchResult{}, searcherrors.NewPaginationError("offset", query.Offset, "offset must be >= 0")
	}
	if query.Limit < 1 {
		return services.SearchResult{}, searcherrors.NewPaginationError("limit", query.Limit, "limit must be >= 1")
	}

	collection, err := s.engine.Get(query.FieldCollection)
	if err != nil {
		return services.SearchResult{}, err
	}

	parsed := queryparser.Parse(query.Q)
	predicate := buildPredicate(parsed, query.Tags)
	words := analyzer.SplitForIndexing(parsed.Text)
	ordering := queryparser.ParseOrdering(query.Sort)

	candidates := filterByTags(collection, predicate)
	if len(candidates) == 0 {
		return emptyResult(query, start), nil
	}

	var orderedIDs []string
	scores := scoremap.Map{}
	if len(words) == 0 {
		// A query with no free-text words never invents a "match everything"
		// text score under relevance ordering; any other ordering falls back
		// to ordering entirely by the requested field, unscored.
		if ordering == queryparser.OrderingRelevance {
			return emptyResult(query, start), nil
		}
		orderedIDs = sortByOrderingField(collection, candidates, string(ordering))
	} else {
		restrict := make(map[string]struct{}, len(candidates))
		for _, id := range candidates {
			restrict[id] = struct{}{}
		}

		scores = collection.FieldIndex().Search(words, restrict).RemoveLowValues(noiseFraction, 0)
		if ordering == queryparser.OrderingRelevance {
			orderedIDs = sortByScore(scores)
		} else {
			orderedIDs = sortByOrderingField(collection, scores.Keys(nil), string(ordering))
		}
	}

	total := len(orderedIDs)
	page := paginate(orderedIDs, query.Offset, query.Limit)

	hits := make([]services.HitResult, 0, len(page))
	for _, id := range page {
		hits = append(hits, services.HitResult{DocumentID: id, Score: scores.Get(id)})
	}

	return services.SearchResult{
		Hits:     hits,
		Total:    total,
		Page:     offsetToPage(query.Offset, query.Limit),
		PageSize: query.Limit,
		Took:     time.Since(start).Milliseconds(),
		QueryID:  uuid.NewString(),
	}, nil
}

// buildPredicate combines the required tags embedded in the parsed query
// text with the wire-format Tags list, which may carry negations (default
// suppressions) and, for forward compatibility with experimental filters,
// additional +/--prefixed literals.
func buildPredicate(parsed queryparser.ParsedQuery, wireTags []string) tagpredicate.Predicate {
	required := append([]string(nil), parsed.RequiredLiterals...)
	var forbidden []string

	for _, tag := range wireTags {
		if strings.HasPrefix(tag, "-") {
			forbidden = append(forbidden, strings.TrimPrefix(tag, "-"))
		} else if strings.HasPrefix(tag, "+") {
			required = append(required, strings.TrimPrefix(tag, "+"))
		} else if tag != "" {
			required = append(required, tag)
		}
	}

	return tagpredicate.New(required, forbidden)
}

func filterByTags(collection *engine.Collection, predicate tagpredicate.Predicate) []string {
	var matched []string
	for _, id := range collection.DocumentIDs() {
		tags, _ := collection.Tags(id)
		if predicate.Matches(tags) {
			matched = append(matched, id)
		}
	}
	return matched
}

func sortByScore(scores scoremap.Map) []string {
	ids := scores.Keys(nil)
	sort.Slice(ids, func(i, j int) bool {
		si, sj := scores.Get(ids[i]), scores.Get(ids[j])
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})
	return ids
}

func sortByOrderingField(collection *engine.Collection, candidates []string, field string) []string {
	ids := append([]string(nil), candidates...)
	valueOf := func(id string) float64 {
		fields, ok := collection.OrderingFields(id)
		if !ok {
			return 0
		}
		return fields[field]
	}
	sort.Slice(ids, func(i, j int) bool {
		vi, vj := valueOf(ids[i]), valueOf(ids[j])
		if vi != vj {
			return vi > vj
		}
		return ids[i] < ids[j]
	})
	return ids
}

func paginate(ids []string, offset, limit int) []string {
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	if end < offset {
		end = offset
	}
	return ids[offset:end]
}

func offsetToPage(offset, limit int) int {
	if limit <= 0 {
		return 1
	}
	return offset/limit + 1
}

func emptyResult(query services.SearchQuery, start time.Time) services.SearchResult {
	return services.SearchResult{
		Hits:     nil,
		Total:    0,
		Page:     offsetToPage(query.Offset, query.Limit),
		PageSize: query.Limit,
		Took:     time.Since(start).Milliseconds(),
		QueryID:  uuid.NewString(),
	}
}
