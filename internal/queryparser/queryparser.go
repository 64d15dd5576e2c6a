// Package queryparser turns a raw query string into free text plus a tag
// predicate. The parser is total: every input, including the empty string,
// yields a ParsedQuery without error.
package queryparser

import (
	"regexp"
	"strings"

	"github.com/pkgsearch/search-core/internal/tagpredicate"
)

// tagLiteral matches a complete tag literal: scope:value.
var tagLiteral = regexp.MustCompile(`^[a-z]+:[a-zA-Z0-9_.-]+$`)

// Ordering names the non-default sort order a query can request.
type Ordering string

const (
	OrderingRelevance  Ordering = ""
	OrderingTop        Ordering = "top"
	OrderingUpdated    Ordering = "updated"
	OrderingCreated    Ordering = "created"
	OrderingPopularity Ordering = "popularity"
	OrderingLikes      Ordering = "likes"
	OrderingPoints     Ordering = "points"
)

var knownOrderings = map[string]Ordering{
	"top":        OrderingTop,
	"updated":    OrderingUpdated,
	"created":    OrderingCreated,
	"popularity": OrderingPopularity,
	"likes":      OrderingLikes,
	"points":     OrderingPoints,
}

// ParseOrdering resolves a sort name; unknown values are ignored in favor of
// relevance ordering.
func ParseOrdering(name string) Ordering {
	if ordering, ok := knownOrderings[name]; ok {
		return ordering
	}
	return OrderingRelevance
}

// ParsedQuery is the immutable record produced by Parse: free text plus the
// structured tag predicate extracted from the input, independent of
// pagination and ordering (those live on the search form).
type ParsedQuery struct {
	// Text is the space-joined concatenation of non-tag tokens, in input order.
	Text string
	// Predicate is the tag predicate with default-forbidden tags applied.
	Predicate tagpredicate.Predicate
	// RequiredLiterals preserves the original input order of required tag
	// literals, used to render a form's canonical query text and, on the
	// service side, to rebuild the required half of the predicate.
	RequiredLiterals []string
	// ShownLiterals preserves the original input order of the raw show:X
	// tokens (e.g. "show:unlisted", "show:hidden"), so a form can fold them
	// back into its canonical query text and round-trip through a link.
	ShownLiterals []string
}

// Parse splits raw on unquoted whitespace, classifying each token as a tag
// literal (scope:value) or free text. Unknown tag scopes are preserved
// verbatim as required tags, passed through for the service to interpret.
func Parse(raw string) ParsedQuery {
	fields := strings.Fields(raw)

	var textParts []string
	var required []string
	var shown []string
	var shownLiterals []string

	for _, field := range fields {
		if !tagLiteral.MatchString(field) {
			textParts = append(textParts, field)
			continue
		}

		scope, value, _ := strings.Cut(field, ":")
		switch scope {
		case "is":
			required = append(required, "is:"+value)
		case "show":
			shownLiterals = append(shownLiterals, field)
			if value == "hidden" {
				// show:hidden suppresses every default-forbidden flag at once,
				// rather than naming one of them individually.
				shown = append(shown, tagpredicate.DefaultForbidden()...)
			} else {
				shown = append(shown, "is:"+value)
			}
		default:
			required = append(required, field)
		}
	}

	predicate := tagpredicate.ApplyDefaults(required, nil, shown)

	return ParsedQuery{
		Text:             strings.Join(textParts, " "),
		Predicate:        predicate,
		RequiredLiterals: required,
		ShownLiterals:    shownLiterals,
	}
}

// IsTagLiteral reports whether token is syntactically a tag literal
// (scope:value), the same test Parse uses to classify tokens.
func IsTagLiteral(token string) bool {
	return tagLiteral.MatchString(token)
}
