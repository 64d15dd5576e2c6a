package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmpty(t *testing.T) {
	assert.Empty(t, Analyze("", false))
	assert.Empty(t, Analyze("   ", true))
}

func TestAnalyzeFullWordWeight(t *testing.T) {
	weights := Analyze("search", false)
	assert.Equal(t, 1.0, weights["search"])
}

func TestAnalyzePrefixesOnLongWord(t *testing.T) {
	// "search" has length 6 >= 4, so prefixes are emitted even without split.
	weights := Analyze("search", false)
	assert.InDelta(t, 2.0/6.0, weights["se"], 1e-9)
	assert.InDelta(t, 5.0/6.0, weights["searc"], 1e-9)
	assert.Equal(t, 1.0, weights["search"])
}

func TestAnalyzeShortWordNeedsSplit(t *testing.T) {
	weights := Analyze("cat", false)
	_, hasPrefix := weights["ca"]
	assert.False(t, hasPrefix, "short word should not emit prefixes without split")

	withSplit := Analyze("cat", true)
	assert.InDelta(t, 2.0/3.0, withSplit["ca"], 1e-9)
}

func TestAnalyzeCamelCaseSegments(t *testing.T) {
	weights := Analyze("HTTPRequest", true)
	assert.Contains(t, weights, "http")
	assert.Contains(t, weights, "request")
	assert.Contains(t, weights, "httprequest")
}

func TestAnalyzeDuplicateTokensCombineByMax(t *testing.T) {
	weights := Analyze("cartoon cat", true)
	// "ca" is a prefix of both "cartoon" (2/7) and "cat" (2/3); max wins.
	assert.InDelta(t, 2.0/3.0, weights["ca"], 1e-9)
}

func TestSplitForIndexing(t *testing.T) {
	words := SplitForIndexing("Web Framework! for Dart-lang")
	assert.Equal(t, []string{"web", "framework", "for", "dart", "lang"}, words)
}

func TestSplitForIndexingEmpty(t *testing.T) {
	assert.Nil(t, SplitForIndexing(""))
}
