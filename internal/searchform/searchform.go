// Package searchform implements the bidirectional bridge between URL query
// parameters and a normalized internal query: pagination, link generation,
// and the wire format consumed by the search service.
package searchform

import (
	"net/url"
	"strconv"
	"strings"

	searcherrors "github.com/pkgsearch/search-core/internal/errors"
	"github.com/pkgsearch/search-core/internal/queryparser"
	"github.com/pkgsearch/search-core/internal/tagpredicate"
)

// Regular is the default UI context: an unscoped package search.
const Regular = "regular"

const defaultPageSize = 10

// Form is the immutable state behind one rendered search page:
// (context, query text, parsed query, ordering, current page, page size).
// Every mutator returns a new Form; none is mutated in place.
type Form struct {
	context string

	freeText     string
	requiredTags []string // original insertion order, including toggled-in tags
	shownTags    []string // raw show:X literals, original insertion order
	predicate    tagpredicate.Predicate

	ordering    queryparser.Ordering
	currentPage int
	pageSize    int
}

// New builds a Form by parsing queryText. currentPage below 1 is clamped to 1.
func New(queryText string, currentPage int) *Form {
	return newForm(Regular, queryText, currentPage, "")
}

// Parse builds a Form from a URL parameter map, recognizing the keys q,
// page, sort. Unrecognized keys are ignored; unknown tag scopes inside q
// are handled by the query parser. page must be a positive integer when
// present; sort falls back to relevance when absent or unrecognized, the
// one default this function substitutes silently. Any other malformed
// page value is an invalid-input error, not a default.
func Parse(context string, params map[string]string) (*Form, error) {
	page := 1
	if raw, ok := params["page"]; ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, searcherrors.NewPaginationError("page", 0, "page must be an integer")
		}
		if n <= 0 {
			return nil, searcherrors.NewPaginationError("page", n, "page must be >= 1")
		}
		page = n
	}
	return newForm(context, params["q"], page, params["sort"]), nil
}

func newForm(context, queryText string, currentPage int, sort string) *Form {
	parsed := queryparser.Parse(queryText)
	if currentPage < 1 {
		currentPage = 1
	}
	return &Form{
		context:      context,
		freeText:     parsed.Text,
		requiredTags: append([]string(nil), parsed.RequiredLiterals...),
		shownTags:    append([]string(nil), parsed.ShownLiterals...),
		predicate:    parsed.Predicate,
		ordering:     queryparser.ParseOrdering(sort),
		currentPage:  currentPage,
		pageSize:     defaultPageSize,
	}
}

// Context returns the form's UI scope.
func (f *Form) Context() string { return f.context }

// CurrentPage returns the 1-based page this form represents.
func (f *Form) CurrentPage() int { return f.currentPage }

// Ordering returns the form's resolved sort order.
func (f *Form) Ordering() queryparser.Ordering { return f.ordering }

// FreeText returns the non-tag portion of the query.
func (f *Form) FreeText() string { return f.freeText }

// RequiredTags returns the required tag literals in their current order.
func (f *Form) RequiredTags() []string {
	return append([]string(nil), f.requiredTags...)
}

// ShownTags returns the raw show:X literals in their original input order.
func (f *Form) ShownTags() []string {
	return append([]string(nil), f.shownTags...)
}

// ToggleRequiredTag flips tag's required membership and returns the
// resulting Form. Toggling a tag in appends it to the end of the required
// list (toggling in sdk:flutter after sdk:dart
// yields "sdk:dart sdk:flutter..."); toggling one off removes it from the
// list without reinstating any default-forbidden entry.
func (f *Form) ToggleRequiredTag(tag string) *Form {
	next := *f
	next.predicate = f.predicate.Toggle(tag)

	if next.predicate.IsRequired(tag) {
		next.requiredTags = append(append([]string(nil), f.requiredTags...), tag)
	} else {
		filtered := make([]string, 0, len(f.requiredTags))
		for _, t := range f.requiredTags {
			if t != tag {
				filtered = append(filtered, t)
			}
		}
		next.requiredTags = filtered
	}
	return &next
}

// canonicalQueryText renders the q value in canonical order: required tag
// literals first (current order), then show:X literals (current order),
// then free text. Keeping show:X literals here is what makes them survive
// a round trip through ToSearchLink/Parse instead of silently reinstating
// a default-forbidden tag the user had explicitly shown.
func (f *Form) canonicalQueryText() string {
	parts := make([]string, 0, len(f.requiredTags)+len(f.shownTags)+1)
	parts = append(parts, f.requiredTags...)
	parts = append(parts, f.shownTags...)
	if f.freeText != "" {
		parts = append(parts, f.freeText)
	}
	return strings.Join(parts, " ")
}

// ToSearchLink renders the canonical URL for this form. If page is nil, the
// form's current page is used. Defaults (page 1, relevance sort) are
// omitted; spaces in q become "+" and colons become "%3A", matching
// url.QueryEscape's standard encoding.
func (f *Form) ToSearchLink(page *int) string {
	effectivePage := f.currentPage
	if page != nil {
		effectivePage = *page
	}

	var pairs []string
	if q := f.canonicalQueryText(); q != "" {
		pairs = append(pairs, "q="+url.QueryEscape(q))
	}
	if effectivePage != 1 {
		pairs = append(pairs, "page="+strconv.Itoa(effectivePage))
	}
	if f.ordering != queryparser.OrderingRelevance {
		pairs = append(pairs, "sort="+string(f.ordering))
	}

	if len(pairs) == 0 {
		return "/packages"
	}
	return "/packages?" + strings.Join(pairs, "&")
}

// ServiceQuery is the wire request the search service consumes.
type ServiceQuery struct {
	Q      string
	Tags   []string
	Offset int
	Limit  int
	Sort   queryparser.Ordering
}

// ToURIQueryParameters renders the service query as the string-valued map
// form used in request logs and tests.
func (q ServiceQuery) ToURIQueryParameters() map[string]string {
	out := map[string]string{
		"q":      q.Q,
		"offset": strconv.Itoa(q.Offset),
		"limit":  strconv.Itoa(q.Limit),
	}
	if q.Sort != queryparser.OrderingRelevance {
		out["sort"] = string(q.Sort)
	}
	return out
}

// ToServiceQuery builds the backend request. Required tags are not repeated
// in Tags: they already travel as literals inside Q, and the service
// re-derives them by parsing it. Tags carries only the negations of
// whichever default-forbidden flags are still in effect.
func (f *Form) ToServiceQuery() ServiceQuery {
	return ServiceQuery{
		Q:      f.canonicalQueryText(),
		Tags:   f.predicate.NegatedDefaults(),
		Offset: (f.currentPage - 1) * f.pageSize,
		Limit:  f.pageSize,
		Sort:   f.ordering,
	}
}
