// Package tokenindex implements a single inverted index: token -> {doc-id:
// weight}, with document-length normalization and multi-word scoring.
package tokenindex

import (
	"hash/fnv"
	"math"
	"sync"

	"github.com/pkgsearch/search-core/internal/analyzer"
	"github.com/pkgsearch/search-core/internal/scoremap"
)

// presenceRatio is the fraction of the top query-side weight a token must
// reach in lookupTokens to be kept.
const presenceRatio = 0.7

// Index is one token -> posting-list map for a single field. It is safe for
// concurrent readers once built; mutations (Add/Remove) take an exclusive
// lock.
type Index struct {
	mu sync.RWMutex

	// postings maps token -> docID -> weight.
	postings map[string]map[string]float64
	// docSize holds the size proxy for each indexed document.
	docSize map[string]float64
	// docTokenCount holds the distinct token count backing docSize, kept
	// around so Remove doesn't need to recompute it.
	docTokenCount map[string]int
	// textHash detects no-op re-adds.
	textHash map[string]uint64
}

// New returns an empty Index.
func New() *Index {
	return &Index{
		postings:      make(map[string]map[string]float64),
		docSize:       make(map[string]float64),
		docTokenCount: make(map[string]int),
		textHash:      make(map[string]uint64),
	}
}

// tokenMatch is the per-token set of query-side weights returned by
// lookupTokens, keyed by the indexed token.
type tokenMatch map[string]float64

func hashText(text string, tokenCount int) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	sum := h.Sum64()
	// Fold in the token count so a text mutation that happens to hash-collide
	// on content alone still changes the combined digest.
	return sum ^ (uint64(tokenCount) * 0x9E3779B97F4A7C15)
}

// Add (re)indexes docID's text. An empty tokenization removes any prior
// entry for docID. A text identical (by hash) to what's already indexed for
// docID is a no-op.
func (idx *Index) Add(docID, text string) {
	weights := analyzer.Analyze(text, false)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if len(weights) == 0 {
		idx.removeLocked(docID)
		return
	}

	newHash := hashText(text, len(weights))
	if existing, ok := idx.textHash[docID]; ok && existing == newHash {
		return
	}

	idx.removeLocked(docID)

	for token, weight := range weights {
		bucket, ok := idx.postings[token]
		if !ok {
			bucket = make(map[string]float64)
			idx.postings[token] = bucket
		}
		if existing, ok := bucket[docID]; !ok || weight > existing {
			bucket[docID] = weight
		}
	}
	idx.docTokenCount[docID] = len(weights)
	idx.docSize[docID] = sizeProxy(len(weights))
	idx.textHash[docID] = newHash
}

// sizeProxy computes a smoothed
// logarithmic measure of distinct token count.
func sizeProxy(distinctTokens int) float64 {
	return 1 + math.Log(1+float64(distinctTokens))/100
}

// Remove purges docID from every posting list, deleting any posting list
// that becomes empty.
func (idx *Index) Remove(docID string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeLocked(docID)
}

func (idx *Index) removeLocked(docID string) {
	for token, bucket := range idx.postings {
		if _, ok := bucket[docID]; ok {
			delete(bucket, docID)
			if len(bucket) == 0 {
				delete(idx.postings, token)
			}
		}
	}
	delete(idx.docSize, docID)
	delete(idx.docTokenCount, docID)
	delete(idx.textHash, docID)
}

// lookupTokens resolves one query word to the set of indexed tokens it
// should contribute to scoring. Returns an empty tokenMatch if the
// word matches nothing in this index.
func (idx *Index) lookupTokens(word string) tokenMatch {
	queryWeights := analyzer.Analyze(word, true)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	present := make(tokenMatch)
	maxWeight := 0.0
	for token, weight := range queryWeights {
		if _, ok := idx.postings[token]; !ok {
			continue
		}
		present[token] = weight
		if weight > maxWeight {
			maxWeight = weight
		}
	}
	if len(present) == 0 {
		return tokenMatch{}
	}

	threshold := presenceRatio * maxWeight
	kept := make(tokenMatch, len(present))
	for token, weight := range present {
		if weight >= threshold {
			kept[token] = weight
		}
	}
	return kept
}

// scoreDocs combines a token-match's posting
// lists into a doc-id -> score map, normalized by each document's size proxy
// raised to 1/wordCount, then scaled by the field weight.
func (idx *Index) scoreDocs(match tokenMatch, weight float64, wordCount int, restrictTo map[string]struct{}) scoremap.Map {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	raw := make(map[string]float64)
	for token, queryWeight := range match {
		bucket := idx.postings[token]
		for doc, docWeight := range bucket {
			if restrictTo != nil {
				if _, ok := restrictTo[doc]; !ok {
					continue
				}
			}
			contribution := queryWeight * docWeight
			if existing, ok := raw[doc]; !ok || contribution > existing {
				raw[doc] = contribution
			}
		}
	}

	if wordCount <= 0 {
		wordCount = 1
	}
	exponent := 1.0 / float64(wordCount)

	out := make(scoremap.Map, len(raw))
	for doc, score := range raw {
		size := idx.docSize[doc]
		if size <= 0 {
			size = 1
		}
		adjustedSize := math.Pow(size, exponent)
		out[doc] = weight * score / adjustedSize
	}
	return out
}

// Search scores a free-text string against this index with weight 1,
// equivalent to SearchWords(SplitForIndexing(text), 1, nil).
func (idx *Index) Search(text string) scoremap.Map {
	return idx.SearchWords(analyzer.SplitForIndexing(text), 1, nil)
}

// SearchWords scores a list of already-split query words, intersecting each
// word's per-word score map via scoremap.Multiply so a document must be
// relevant to every word, while each word is free to match any token it
// contains. If restrictTo is non-nil and empty, the result
// is empty without touching the postings.
func (idx *Index) SearchWords(words []string, weight float64, restrictTo map[string]struct{}) scoremap.Map {
	if restrictTo != nil && len(restrictTo) == 0 {
		return scoremap.Map{}
	}
	if len(words) == 0 {
		return scoremap.Map{}
	}

	perWord := make([]scoremap.Map, 0, len(words))
	for _, word := range words {
		match := idx.lookupTokens(word)
		if len(match) == 0 {
			// No indexed token can satisfy this word at all: the whole query
			// fails for this field, short-circuiting Multiply's eventual
			// empty-intersection result without extra posting-list walks.
			return scoremap.Map{}
		}
		perWord = append(perWord, idx.scoreDocs(match, weight, len(words), restrictTo))
	}
	return scoremap.Multiply(perWord...)
}

// TokenCount returns the number of distinct tokens currently indexed.
func (idx *Index) TokenCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.postings)
}

// DocumentCount returns the number of distinct documents currently indexed.
func (idx *Index) DocumentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.docSize)
}
