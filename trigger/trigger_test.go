package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fuzzytime/errors"
)

func TestNamedTriggerBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		trigger Func
		value   float64
		want    bool
	}{
		{"exact true at 1", ExactTrue, 1.0, true},
		{"exact true at 0.999", ExactTrue, 0.999, false},
		{"positive at 0", Positive, 0, false},
		{"positive at 0.01", Positive, 0.01, true},
		{"non negative at 0", NonNegative, 0, true},
		{"non negative at -0.01", NonNegative, -0.01, false},
		{"majority at 0.5", Majority, 0.5, false},
		{"majority at 0.51", Majority, 0.51, true},
		{"strong at 0.69999", Strong, 0.69999, false},
		{"strong at 0.7", Strong, 0.7, true},
		{"always true at -1", AlwaysTrue, -1, true},
		{"always false at 1", AlwaysFalse, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.trigger(tt.value))
		})
	}
}

func TestThresholdConstructors(t *testing.T) {
	assert.True(t, AboveThreshold(0.5)(0.75))
	assert.False(t, AboveThreshold(0.75)(0.75))
	assert.True(t, AtOrAboveThreshold(0.75)(0.75))
	assert.False(t, AtOrAboveThreshold(0.75)(0.74))
	assert.True(t, BelowThreshold(0)(-0.1))
	assert.False(t, BelowThreshold(0)(0))

	band := InRange(-0.2, 0.2)
	assert.True(t, band(-0.2))
	assert.True(t, band(0.2))
	assert.True(t, band(0))
	assert.False(t, band(0.21))
}

func TestTriggersIgnoreDomain(t *testing.T) {
	// Range checks are the caller's job
	assert.True(t, Positive(7))
	assert.True(t, BelowThreshold(0)(-3))
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec  string
		value float64
		want  bool
	}{
		{"exact_true", 1, true},
		{"EXACT-TRUE", 0.99, false},
		{" strong ", 0.7, true},
		{"majority", 0.5, false},
		{"non_negative", 0, true},
		{"always_false", 1, false},
		{"above:0.5", 0.5, false},
		{"at_or_above:0.6", 0.6, true},
		{"below:-0.5", -0.6, true},
		{"in_range:-0.1:0.1", 0.05, true},
		{"in_range:-0.1:0.1", 0.2, false},
		{"above:-0.3", -0.29, true},
		{"above:-0.3", -0.3, false},
		{"AT-OR-ABOVE:-0.2", -0.2, true},
		{"in_range:-0.2:0.2", -0.21, false},
		{"in_range: -0.2 : 0.2", -0.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			fn, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fn(tt.value))
		})
	}
}

func TestParse_MixedForms(t *testing.T) {
	exact, err := Parse("EXACT-TRUE")
	require.NoError(t, err)
	below, err := Parse("below:-0.5")
	require.NoError(t, err)

	for _, v := range []float64{-1, -0.51, -0.5, 0, 1} {
		assert.Equal(t, v == 1, exact(v), "exact_true(%v)", v)
		assert.Equal(t, v < -0.5, below(v), "below:-0.5(%v)", v)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, spec := range []string{"", "sometimes", "above", "above:x", "below:0.1:0.2", "in_range:0.5", "in_range:0.5:0.1", "below:_0.5", "in_range:0.2:-0.2", "exact_true:1"} {
		t.Run(spec, func(t *testing.T) {
			fn, err := Parse(spec)
			require.Error(t, err)
			assert.Nil(t, fn)
			assert.True(t, errors.Is(err, errors.ErrInvalidTrigger))
		})
	}
}

func TestNamesResolve(t *testing.T) {
	names := Names()
	require.Len(t, names, 7)
	for _, name := range names {
		_, err := Parse(name)
		assert.NoError(t, err, name)
	}
}
