// Package tagpredicate implements the required/forbidden tag-set filter
// documents are matched against, independent of text relevance.
package tagpredicate

import "sort"

// defaultForbidden holds the tags forbidden unless the query explicitly
// mentions them via is:X or show:X.
var defaultForbidden = []string{"is:discontinued", "is:unlisted", "is:legacy"}

// Predicate is a conjunctive (required ⊆ tags) ∧ (forbidden ∩ tags = ∅)
// filter. The zero value matches every document (no constraints).
type Predicate struct {
	required  map[string]struct{}
	forbidden map[string]struct{}
}

// DefaultForbidden returns the tags forbidden unless the query explicitly
// mentions them, in the fixed order ApplyDefaults and NegatedDefaults both
// use. show:hidden suppresses all of them at once.
func DefaultForbidden() []string {
	out := make([]string, len(defaultForbidden))
	copy(out, defaultForbidden)
	return out
}

// New builds a Predicate from explicit required/forbidden tag sets. Callers
// normally go through ApplyDefaults (called by the query parser) rather than
// constructing a Predicate directly with the three sensitive defaults baked
// in — New itself applies no defaults.
func New(required, forbidden []string) Predicate {
	return Predicate{
		required:  toSet(required),
		forbidden: toSet(forbidden),
	}
}

func toSet(tags []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		out[t] = struct{}{}
	}
	return out
}

// ApplyDefaults returns a Predicate with the default-forbidden tags
// (is:discontinued, is:unlisted, is:legacy) added to forbidden, except for
// any of those the caller has already mentioned via required or via an
// explicit "show" set: mentioning is:X or show:X for one of the
// three removes it from the default-forbidden set, and is:X additionally
// requires X.
func ApplyDefaults(required, forbidden, shown []string) Predicate {
	reqSet := toSet(required)
	forbidSet := toSet(forbidden)
	shownSet := toSet(shown)

	for _, tag := range defaultForbidden {
		if _, isRequired := reqSet[tag]; isRequired {
			continue
		}
		if _, isShown := shownSet[tag]; isShown {
			continue
		}
		forbidSet[tag] = struct{}{}
	}

	return Predicate{required: reqSet, forbidden: forbidSet}
}

// Matches reports whether docTags satisfies the predicate: every required
// tag is present and no forbidden tag is present.
func (p Predicate) Matches(docTags map[string]struct{}) bool {
	for tag := range p.required {
		if _, ok := docTags[tag]; !ok {
			return false
		}
	}
	for tag := range p.forbidden {
		if _, ok := docTags[tag]; ok {
			return false
		}
	}
	return true
}

// Toggle flips tag's required membership: if it's required, the returned
// predicate drops it; otherwise the returned predicate adds it (and removes
// it from forbidden, since a tag cannot be simultaneously required and
// forbidden).
func (p Predicate) Toggle(tag string) Predicate {
	required := copySet(p.required)
	forbidden := copySet(p.forbidden)

	if _, ok := required[tag]; ok {
		delete(required, tag)
	} else {
		required[tag] = struct{}{}
		delete(forbidden, tag)
	}
	return Predicate{required: required, forbidden: forbidden}
}

func copySet(s map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// RequiredTags returns the required tags in ascending order.
func (p Predicate) RequiredTags() []string {
	return sortedKeys(p.required)
}

// ForbiddenTags returns the forbidden tags in ascending order.
func (p Predicate) ForbiddenTags() []string {
	return sortedKeys(p.forbidden)
}

// IsRequired reports whether tag is currently required.
func (p Predicate) IsRequired(tag string) bool {
	_, ok := p.required[tag]
	return ok
}

func sortedKeys(s map[string]struct{}) []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ToQueryParameters serializes the predicate's required tags as the bare
// literals a URL query string would carry: forbidden defaults are
// never rendered here, only explicit required tags.
func (p Predicate) ToQueryParameters() []string {
	return p.RequiredTags()
}

// NegatedDefaults returns, in the fixed order -is:discontinued,
// -is:unlisted, -is:legacy, the negation literal for each default-forbidden
// tag that is still forbidden on this predicate. This is the wire-format
// "tags" suffix the search service consumes.
func (p Predicate) NegatedDefaults() []string {
	out := make([]string, 0, len(defaultForbidden))
	for _, tag := range defaultForbidden {
		if _, ok := p.forbidden[tag]; ok {
			out = append(out, "-"+tag)
		}
	}
	return out
}
