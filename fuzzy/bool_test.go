package fuzzy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/trigger"
)

// grid returns every two-decimal value in [-1, +1]
func grid() []float64 {
	values := make([]float64, 0, 201)
	for i := -100; i <= 100; i++ {
		values = append(values, float64(i)/100)
	}
	return values
}

func TestNew(t *testing.T) {
	b, err := New(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, b.Truth())
	assert.False(t, b.Trigger(), "default trigger is ExactTrue")
}

func TestNew_Rounds(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.123, 0.12},
		{0.125, 0.13},
		{-0.125, -0.12},
		{0.999, 1.0},
		{-0.004, 0},
		{0.69999, 0.7},
		{0.285, 0.28}, // 0.285 is stored just below the half step
	}
	for _, tt := range tests {
		b, err := New(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, b.Truth(), "New(%v)", tt.in)
	}
}

func TestNew_OutOfRange(t *testing.T) {
	for _, v := range []float64{-1.1, 2.144, 1.0001, math.NaN(), math.Inf(1)} {
		b, err := New(v)
		assert.Nil(t, b)
		assert.True(t, errors.IsRangeError(err), "New(%v) should be a range error", v)
	}
}

func TestNewWithTrigger_NilTrigger(t *testing.T) {
	b, err := NewWithTrigger(0.3, nil)
	assert.Nil(t, b)
	assert.True(t, errors.IsNullArgumentError(err))
}

func TestOf_Canonical(t *testing.T) {
	assert.Same(t, True, Must(Of(1.0)))
	assert.Same(t, False, Must(Of(-1.0)))
	assert.Same(t, Unknown, Must(Of(0.0)))

	// Repeated calls keep returning the same instance
	assert.Same(t, Must(Of(1.0)), Must(Of(1.0)))

	// Values that round to a canonical magnitude are fresh
	nearly := Must(Of(0.999))
	assert.NotSame(t, True, nearly)
	assert.True(t, nearly.Equal(True))
}

func TestOfWithTrigger_HonoursTrigger(t *testing.T) {
	b := Must(OfWithTrigger(0, trigger.NonNegative))
	assert.NotSame(t, Unknown, b)
	assert.True(t, b.Trigger())
	assert.False(t, Unknown.Trigger())
}

func TestFromBool(t *testing.T) {
	assert.Same(t, True, FromBool(true))
	assert.Same(t, False, FromBool(false))
}

func TestNot(t *testing.T) {
	assert.Equal(t, 1.0, False.FuzzyNot())
	assert.Equal(t, -1.0, True.FuzzyNot())
	assert.Equal(t, -0.8, Must(Of(0.8)).FuzzyNot())
	assert.Equal(t, 0.0, Unknown.FuzzyNot())

	original := Must(Of(0.8))
	negated := original.Not()
	assert.Equal(t, 0.8, original.Truth())
	assert.Equal(t, -0.8, negated.Truth())
}

func TestNot_ZeroIsFixedPoint(t *testing.T) {
	assert.Same(t, Unknown, Unknown.Not())

	other := Must(NewWithTrigger(0, trigger.Positive))
	assert.Same(t, Unknown, other.Not())
	assert.False(t, math.Signbit(other.Not().Truth()))
}

func TestNot_KeepsTrigger(t *testing.T) {
	b := Must(NewWithTrigger(-0.6, trigger.Majority))
	assert.True(t, b.Not().Trigger())
}

func TestNot_DoubleNegation(t *testing.T) {
	for _, x := range grid() {
		b := Must(New(x))
		assert.True(t, b.Not().Not().Equal(b), "not(not(%v))", x)
	}
}

func TestFuzzyAnd(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{1, 0, 0},
		{0, 0.5, 0},
		{1, -1, -1},
		{-1, -1, -1},
		{-1, 1, -1},
		{0.9, 0.4, 0.36},
		{-0.9, 0.4, -0.36},
		{0.99, 0.47, 0.47},
		{-0.91, -0.5, -0.46},
	}
	for _, tt := range tests {
		got, err := Must(Of(tt.a)).FuzzyAnd(tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v and %v", tt.a, tt.b)
	}
}

func TestFuzzyAnd_ZeroHasNoSign(t *testing.T) {
	got, err := Must(Of(-0.5)).FuzzyAnd(0)
	require.NoError(t, err)
	assert.False(t, math.Signbit(got))
}

func TestAnd(t *testing.T) {
	a := Must(Of(0.8))
	b := Must(Of(0.5))

	result, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, 0.8, a.Truth())
	assert.Equal(t, 0.5, b.Truth())
	assert.Equal(t, 0.4, result.Truth())
	assert.True(t, result.IsPositive())
}

func TestAnd_NegativeDominates(t *testing.T) {
	result, err := FromBool(true).And(FromBool(false))
	require.NoError(t, err)
	assert.Equal(t, -1.0, result.Truth())
}

func TestAnd_Property(t *testing.T) {
	for _, a := range grid() {
		for _, b := range []float64{-1, -0.73, -0.5, -0.01, 0, 0.01, 0.33, 0.5, 1} {
			result, err := Must(New(a)).AndValue(b)
			require.NoError(t, err)

			magnitude := round(math.Abs(a * b))
			assert.Equal(t, magnitude, math.Abs(result.Truth()), "|%v and %v|", a, b)
			wantNegative := (a < 0 || b < 0) && magnitude != 0
			assert.Equal(t, wantNegative, result.IsNegative(), "sign of %v and %v", a, b)
		}
	}
}

func TestAnd_Errors(t *testing.T) {
	_, err := True.AndValue(1.5)
	assert.True(t, errors.IsRangeError(err))

	_, err = True.FuzzyAnd(-1.01)
	assert.True(t, errors.IsRangeError(err))

	_, err = True.And(nil)
	assert.True(t, errors.IsNullArgumentError(err))
}

func TestFuzzyOr(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{0.4, -0.4, 0.4},
		{0.84, 0.76, 0.84},
		{-1, 0, -1},
		{0, 0.5, 0.5},
		{0, 0, 0},
		{-0.9, -0.2, -0.2},
	}
	for _, tt := range tests {
		got, err := Must(Of(tt.a)).FuzzyOr(tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v or %v", tt.a, tt.b)
	}
}

func TestOr(t *testing.T) {
	a := Must(Of(0.3))
	b := Must(Of(0.7))

	result, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, 0.3, a.Truth())
	assert.Equal(t, 0.7, b.Truth())
	assert.Equal(t, 0.7, result.Truth())
}

func TestOr_Property(t *testing.T) {
	for _, a := range grid() {
		for _, b := range []float64{-1, -0.42, -0.1, 0, 0.2, 0.65, 1} {
			result, err := Must(New(a)).Or(Must(New(b)))
			require.NoError(t, err)

			if a != 0 && b != 0 {
				assert.True(t, result.Equal(Must(New(math.Max(a, b)))), "%v or %v", a, b)
			} else {
				assert.Equal(t, a+b, result.Truth(), "%v or %v", a, b)
			}
		}
	}
}

func TestOr_Errors(t *testing.T) {
	_, err := Unknown.OrValue(-3)
	assert.True(t, errors.IsRangeError(err))

	_, err = Unknown.Or(nil)
	assert.True(t, errors.IsNullArgumentError(err))
}

func TestOperationsKeepReceiverTrigger(t *testing.T) {
	a := Must(NewWithTrigger(0.8, trigger.Positive))

	and, err := a.And(True)
	require.NoError(t, err)
	assert.True(t, and.Trigger())

	or, err := a.Or(False)
	require.NoError(t, err)
	assert.True(t, or.Trigger())
}

func TestTrigger_Default(t *testing.T) {
	assert.True(t, True.Trigger())
	assert.False(t, Must(Of(0.99)).Trigger())
	assert.False(t, Unknown.Trigger())
	assert.False(t, False.Trigger())
}

func TestTriggerWith(t *testing.T) {
	b := Must(Of(0.6))

	for fn, want := range map[string]bool{"positive": true, "majority": true, "strong": false, "exact_true": false} {
		parsed, err := trigger.Parse(fn)
		require.NoError(t, err)
		got, err := b.TriggerWith(parsed)
		require.NoError(t, err)
		assert.Equal(t, want, got, fn)
	}

	_, err := b.TriggerWith(nil)
	assert.True(t, errors.IsNullArgumentError(err))
}

func TestTriggerWith_Thresholds(t *testing.T) {
	b := Must(Of(0.75))

	above, _ := b.TriggerWith(trigger.AboveThreshold(0.5))
	atOrAbove, _ := b.TriggerWith(trigger.AtOrAboveThreshold(0.75))
	strictlyAbove, _ := b.TriggerWith(trigger.AboveThreshold(0.75))

	assert.True(t, above)
	assert.True(t, atOrAbove)
	assert.False(t, strictlyAbove)
}

func TestTriggerValue(t *testing.T) {
	b := Must(NewWithTrigger(-0.9, trigger.Positive))

	assert.True(t, b.TriggerValue(0.1), "uses the supplied value, not the receiver's")
	assert.False(t, b.TriggerValue(-0.1))
	assert.False(t, b.TriggerValue(1.5), "out of range is false")
	assert.False(t, Must(NewWithTrigger(0, trigger.AlwaysTrue)).TriggerValue(-2))
}

func TestSignPredicates(t *testing.T) {
	positive := Must(Of(0.5))
	negative := Must(Of(-0.5))

	assert.True(t, positive.IsPositive())
	assert.False(t, positive.IsNegative())
	assert.False(t, positive.IsUnknown())

	assert.False(t, negative.IsPositive())
	assert.True(t, negative.IsNegative())
	assert.False(t, negative.IsUnknown())

	assert.False(t, Unknown.IsPositive())
	assert.False(t, Unknown.IsNegative())
	assert.True(t, Unknown.IsUnknown())
}

func TestEqual(t *testing.T) {
	assert.True(t, Must(Of(0.5)).Equal(Must(Of(0.5))))
	assert.False(t, Must(Of(0.5)).Equal(Must(Of(0.6))))
	assert.True(t, Must(NewWithTrigger(0.5, trigger.Strong)).Equal(Must(Of(0.5))), "triggers are ignored")
	assert.False(t, Unknown.Equal(nil))
}

func TestWithTrigger(t *testing.T) {
	original := Must(Of(0.8))
	withPositive, err := original.WithTrigger(trigger.Positive)
	require.NoError(t, err)

	assert.False(t, original.Trigger())
	assert.True(t, withPositive.Trigger())
	assert.Equal(t, original.Truth(), withPositive.Truth())
	assert.NotSame(t, original, withPositive)

	_, err = original.WithTrigger(nil)
	assert.True(t, errors.IsNullArgumentError(err))
}

func TestString(t *testing.T) {
	assert.Equal(t, "FuzzyBool[0.50]", Must(Of(0.5)).String())
	assert.Equal(t, "FuzzyBool[-1.00]", False.String())
}

func TestMust_Panics(t *testing.T) {
	assert.Panics(t, func() { Must(New(3)) })
}
