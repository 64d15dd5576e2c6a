package queryparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmptyStringIsTotal(t *testing.T) {
	p := Parse("")
	assert.Equal(t, "", p.Text)
	assert.Empty(t, p.RequiredLiterals)
}

func TestParseSeparatesTextFromTagLiterals(t *testing.T) {
	p := Parse("http client sdk:dart")
	assert.Equal(t, "http client", p.Text)
	assert.Equal(t, []string{"sdk:dart"}, p.RequiredLiterals)
	assert.True(t, p.Predicate.IsRequired("sdk:dart"))
}

func TestParseIsScopeRequiresTheTag(t *testing.T) {
	p := Parse("is:discontinued")
	assert.True(t, p.Predicate.IsRequired("is:discontinued"))
	// Only is:discontinued leaves the default-forbidden set; the other two stay.
	assert.Equal(t, []string{"is:legacy", "is:unlisted"}, p.Predicate.ForbiddenTags())
}

func TestParseShowScopeSuppressesDefaultForbid(t *testing.T) {
	p := Parse("show:unlisted")
	assert.False(t, p.Predicate.IsRequired("is:unlisted"))
	assert.NotContains(t, p.Predicate.ForbiddenTags(), "is:unlisted")
	assert.Contains(t, p.Predicate.ForbiddenTags(), "is:discontinued")
	assert.Equal(t, []string{"show:unlisted"}, p.ShownLiterals)
}

func TestParseShowHiddenSuppressesAllDefaultForbid(t *testing.T) {
	p := Parse("show:hidden")
	assert.Empty(t, p.Predicate.ForbiddenTags())
	assert.Empty(t, p.Predicate.RequiredTags())
	assert.Equal(t, []string{"show:hidden"}, p.ShownLiterals)
}

func TestParseUnknownScopePassesThroughAsRequired(t *testing.T) {
	p := Parse("sdk:flutter platform:web")
	assert.ElementsMatch(t, []string{"sdk:flutter", "platform:web"}, p.RequiredLiterals)
}

func TestParseDefaultForbidsWhenNothingMentioned(t *testing.T) {
	p := Parse("json parser")
	assert.ElementsMatch(t, []string{"is:discontinued", "is:unlisted", "is:legacy"}, p.Predicate.ForbiddenTags())
}

func TestParseWhitespaceOnlyYieldsEmptyText(t *testing.T) {
	p := Parse("   \t  ")
	assert.Equal(t, "", p.Text)
}

func TestIsTagLiteralRejectsUppercaseScope(t *testing.T) {
	assert.False(t, IsTagLiteral("SDK:dart"))
	assert.True(t, IsTagLiteral("sdk:dart"))
}

func TestParseOrderingUnknownFallsBackToRelevance(t *testing.T) {
	assert.Equal(t, OrderingRelevance, ParseOrdering("bogus"))
	assert.Equal(t, OrderingTop, ParseOrdering("top"))
}
