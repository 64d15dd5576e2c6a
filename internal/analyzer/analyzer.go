// Package analyzer normalizes raw field text into weighted tokens.
package analyzer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRun matches a run of characters that do not belong in a token.
var nonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)

// acronymBoundary handles runs like "HTTPRequest" -> "HTTP Request".
var acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)

// camelBoundary handles "theOffice" -> "the Office", "myAPI" -> "my API", and digit
// boundaries like "ipv4Addr" -> "ipv4 Addr".
var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// TokenWeights maps a token to its weight in (0, 1].
type TokenWeights map[string]float64

// SplitForIndexing normalizes text into the ordered list of lowercase words
// of length >= 2, without prefixes or weights, used by the query side to
// decide what words to look up. Unlike Analyze, it splits camel-case,
// acronym and digit boundaries into separate words ("HTTPRequest" yields
// "http", "request").
func SplitForIndexing(text string) []string {
	if text == "" {
		return nil
	}
	normalized := normalize(text)
	fields := strings.Fields(normalized)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			words = append(words, f)
		}
	}
	return words
}

// normalize lowercases text, splits camel-case/acronym/digit boundaries with a
// space, and collapses every run of non-alphanumeric characters to a single space.
func normalize(text string) string {
	withBoundaries := acronymBoundary.ReplaceAllString(text, "$1 $2")
	withBoundaries = camelBoundary.ReplaceAllString(withBoundaries, "$1 $2")
	lower := strings.ToLower(withBoundaries)
	return nonAlphanumericRun.ReplaceAllString(lower, " ")
}

// segments splits a word at internal camel-case/acronym/digit boundaries and
// lowercases each resulting segment. It takes the original-case word, since
// the boundaries are case transitions, and returns nil when the word has no
// internal boundary.
func segments(word string) []string {
	withBoundaries := acronymBoundary.ReplaceAllString(word, "$1 $2")
	withBoundaries = camelBoundary.ReplaceAllString(withBoundaries, "$1 $2")
	parts := strings.Fields(withBoundaries)
	if len(parts) <= 1 {
		return nil
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(p))
	}
	return out
}

// Analyze tokenizes text into a weighted token map. The full word always gets
// weight 1.0. When split is true, or the word is long enough (len >= 4) to be
// worth it regardless, prefixes of length >= 2 and camel/digit-boundary
// segments of length >= 2 are also emitted, each weighted k/L for a
// contributing substring of length k from a word of length L. Duplicate
// tokens keep the maximum weight seen.
func Analyze(text string, split bool) TokenWeights {
	if strings.TrimSpace(text) == "" {
		return TokenWeights{}
	}

	// Recover word boundaries from the original text before case folding, so
	// segments() can still see the case/digit transitions.
	rawFields := strings.Fields(collapseSeparators(text))

	out := TokenWeights{}
	for _, raw := range rawFields {
		word := strings.ToLower(raw)
		l := len(word)
		if l < 2 {
			continue
		}
		put(out, word, 1.0)

		if !split && l < 4 {
			continue
		}

		for k := 2; k < l; k++ {
			prefix := word[:k]
			put(out, prefix, float64(k)/float64(l))
		}

		for _, seg := range segments(raw) {
			if len(seg) >= 2 && seg != word {
				put(out, seg, float64(len(seg))/float64(l))
			}
		}
	}
	return out
}

// collapseSeparators replaces runs of non-alphanumeric characters with a
// single space without touching letter case, so segments() can still detect
// camel-case boundaries in the surviving words.
func collapseSeparators(text string) string {
	var b strings.Builder
	lastWasSep := false
	for _, r := range text {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastWasSep = false
		} else if !lastWasSep {
			b.WriteRune(' ')
			lastWasSep = true
		}
	}
	return b.String()
}

func put(m TokenWeights, token string, weight float64) {
	if existing, ok := m[token]; !ok || weight > existing {
		m[token] = weight
	}
}
