// Package scoremap implements a sparse, immutable doc-id -> score mapping
// with the union/intersection/threshold/top-k algebra the search core is
// built from.
package scoremap

import "sort"

// Map is a sparse mapping from document id to a non-negative score. A
// missing key is semantically equivalent to a score of 0. Values are never
// NaN; callers must not construct a Map containing NaN.
type Map map[string]float64

// New returns a Map built from the given values, defensively copied so the
// caller's map can be mutated afterwards without affecting the result.
func New(values map[string]float64) Map {
	out := make(Map, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the map has no entries.
func (m Map) IsEmpty() bool {
	return len(m) == 0
}

// Get returns the score for key, defaulting to 0 if absent.
func (m Map) Get(key string) float64 {
	return m[key]
}

// MaxValue returns the highest score in the map, or 0 for an empty map.
func (m Map) MaxValue() float64 {
	max := 0.0
	for _, v := range m {
		if v > max {
			max = v
		}
	}
	return max
}

// Keys returns the map's keys. If filter is non-nil, only keys for which
// filter returns true are included.
func (m Map) Keys(filter func(string) bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if filter == nil || filter(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Project restricts the map to the intersection of its keys with allowed.
func (m Map) Project(allowed map[string]struct{}) Map {
	out := make(Map, len(m))
	for k, v := range m {
		if _, ok := allowed[k]; ok {
			out[k] = v
		}
	}
	return out
}

// MapValues applies f to every value, preserving keys.
func (m Map) MapValues(f func(float64) float64) Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = f(v)
	}
	return out
}

// RemoveLowValues keeps only entries whose value is >= max(minValue,
// fraction*MaxValue()). At least one of fraction, minValue must be positive;
// passing both 0 returns every non-negative entry unchanged.
func (m Map) RemoveLowValues(fraction, minValue float64) Map {
	threshold := minValue
	if fraction > 0 {
		if byFraction := fraction * m.MaxValue(); byFraction > threshold {
			threshold = byFraction
		}
	}
	out := make(Map, len(m))
	for k, v := range m {
		if v >= threshold {
			out[k] = v
		}
	}
	return out
}

// entry pairs a key with its value, used for top-k ordering.
type entry struct {
	key   string
	value float64
}

// Top returns the n entries with the highest value, ties broken by key
// ascending. If minValue > 0, entries below it are excluded first.
func (m Map) Top(n int, minValue float64) []string {
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		if v < minValue {
			continue
		}
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].key < entries[j].key
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.key
	}
	return out
}

// Multiply computes the key-wise product of all maps in the sequence,
// restricted to their common keys. It short-circuits to an empty Map as
// soon as any intermediate intersection becomes empty. Multiplying a single
// map returns an equal map; multiplying zero maps returns an empty map.
func Multiply(maps ...Map) Map {
	if len(maps) == 0 {
		return Map{}
	}
	acc := New(maps[0])
	for _, next := range maps[1:] {
		if acc.IsEmpty() {
			return Map{}
		}
		merged := make(Map, len(acc))
		for k, v := range acc {
			if nv, ok := next[k]; ok {
				merged[k] = v * nv
			}
		}
		acc = merged
	}
	return acc
}

// Max computes the key-wise maximum across all maps, over the union of
// their keys.
func Max(maps ...Map) Map {
	out := Map{}
	for _, m := range maps {
		for k, v := range m {
			if existing, ok := out[k]; !ok || v > existing {
				out[k] = v
			}
		}
	}
	return out
}
