package fieldindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestCollection() *Collection {
	return New([]Field{
		{Name: "name", Weight: 3},
		{Name: "description", Weight: 1},
	})
}

func TestSearchBestFieldWins(t *testing.T) {
	c := newTestCollection()
	c.Add("a", map[string]string{"name": "retry", "description": "unrelated text"})
	c.Add("b", map[string]string{"name": "unrelated", "description": "retry helper"})

	scores := c.Search([]string{"retry"}, nil)
	assert.Contains(t, scores, "a")
	assert.Contains(t, scores, "b")
	assert.Greater(t, scores["a"], scores["b"], "name field weight should dominate description")
}

func TestSearchRequiresAllWordsWithinCombinedFields(t *testing.T) {
	c := newTestCollection()
	c.Add("a", map[string]string{"name": "http client", "description": ""})

	scores := c.Search([]string{"http", "client"}, nil)
	assert.Contains(t, scores, "a")

	none := c.Search([]string{"http", "zzz"}, nil)
	assert.True(t, none.IsEmpty())
}

func TestRemoveClearsAllFields(t *testing.T) {
	c := newTestCollection()
	c.Add("a", map[string]string{"name": "retry", "description": "retry helper"})
	c.Remove("a")

	assert.Equal(t, 0, c.DocumentCount())
	assert.True(t, c.Search([]string{"retry"}, nil).IsEmpty())
}

func TestSearchRestrictToFiltersAcrossFields(t *testing.T) {
	c := newTestCollection()
	c.Add("a", map[string]string{"name": "retry", "description": ""})
	c.Add("b", map[string]string{"name": "retry", "description": ""})

	restrict := map[string]struct{}{"b": {}}
	scores := c.Search([]string{"retry"}, restrict)
	assert.NotContains(t, scores, "a")
	assert.Contains(t, scores, "b")
}

func TestFieldsPreservesConstructionOrder(t *testing.T) {
	c := newTestCollection()
	fields := c.Fields()
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, "description", fields[1].Name)
}
