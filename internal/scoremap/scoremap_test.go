package scoremap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyMapDefaults(t *testing.T) {
	var m Map
	assert.True(t, m.IsEmpty())
	assert.Equal(t, 0.0, m.MaxValue())
	assert.Equal(t, 0.0, m.Get("missing"))
}

func TestRemoveLowValuesKeepsAboveThreshold(t *testing.T) {
	m := New(map[string]float64{"a": 10, "b": 5, "c": 1})
	kept := m.RemoveLowValues(0.5, 0)
	for k, v := range kept {
		assert.GreaterOrEqual(t, v, 0.5*m.MaxValue(), "entry %s below threshold", k)
	}
	assert.NotContains(t, kept, "c")
	assert.Contains(t, kept, "a")
}

func TestTopReturnsAtMostNHighest(t *testing.T) {
	m := New(map[string]float64{"a": 1, "b": 3, "c": 2, "d": 3})
	top := m.Top(2, 0)
	assert.Len(t, top, 2)
	// ties on value 3 broken by key ascending: "b" before "d".
	assert.Equal(t, []string{"b", "d"}, top)
}

func TestMultiplySingle(t *testing.T) {
	m := New(map[string]float64{"a": 0.5})
	assert.Equal(t, m, Multiply(m))
}

func TestMultiplyWithEmptyIsEmpty(t *testing.T) {
	m := New(map[string]float64{"a": 0.5})
	assert.True(t, Multiply(m, Map{}).IsEmpty())
}

func TestMultiplyIsCommutative(t *testing.T) {
	a := New(map[string]float64{"x": 0.4, "y": 0.1})
	b := New(map[string]float64{"x": 0.5, "y": 0.9, "z": 1.0})
	ab := Multiply(a, b)
	ba := Multiply(b, a)
	assert.InDelta(t, ab["x"], ba["x"], 1e-12)
	assert.InDelta(t, ab["y"], ba["y"], 1e-12)
	assert.NotContains(t, ab, "z")
}

func TestMaxIsIdempotentAndCommutative(t *testing.T) {
	a := New(map[string]float64{"x": 0.4})
	b := New(map[string]float64{"x": 0.9, "y": 0.2})
	assert.Equal(t, Max(a, b), Max(b, a))
	assert.Equal(t, Max(a), a)
	assert.Equal(t, Max(a, a), a)
}

func TestProjectRestrictsToAllowed(t *testing.T) {
	m := New(map[string]float64{"a": 1, "b": 2})
	allowed := map[string]struct{}{"a": {}}
	assert.Equal(t, New(map[string]float64{"a": 1}), m.Project(allowed))
}

func TestMapValuesTransformsEachEntry(t *testing.T) {
	m := New(map[string]float64{"a": 2})
	doubled := m.MapValues(func(v float64) float64 { return v * 2 })
	assert.Equal(t, 4.0, doubled["a"])
	assert.Equal(t, 2.0, m["a"], "input must not be mutated")
}
