package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgsearch/search-core/corpus"
)

func TestSnapshotReflectsPutAndDelete(t *testing.T) {
	p := New()
	p.Put(corpus.Document{ID: "a", Fields: map[string]string{"name": "retry"}})
	p.Put(corpus.Document{ID: "b", Fields: map[string]string{"name": "backoff"}})

	snapshot, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot, 2)

	p.Delete("a")
	snapshot, err = p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot, 1)
	assert.Contains(t, snapshot, "b")
}

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	p := New()
	p.Put(corpus.Document{ID: "a", Fields: map[string]string{"name": "retry"}})

	snapshot, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	snapshot["a"] = corpus.Document{ID: "a", Fields: map[string]string{"name": "mutated"}}

	second, err := p.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "retry", second["a"].Fields["name"])
}
