// Package trigger bridges fuzzy truth values and two-valued boolean logic.
//
// A Func decides when a truth value counts as "true". Triggers know nothing
// about the valid [-1, +1] domain; range checking belongs to the caller.
package trigger

// Func reports whether v should be read as boolean true.
type Func func(v float64) bool

var (
	// ExactTrue is true only when v is exactly +1.0
	ExactTrue Func = func(v float64) bool { return v == 1.0 }

	// Positive is true when v > 0
	Positive Func = func(v float64) bool { return v > 0 }

	// NonNegative is true when v >= 0
	NonNegative Func = func(v float64) bool { return v >= 0 }

	// Majority is true when v > 0.5
	Majority Func = func(v float64) bool { return v > 0.5 }

	// Strong is true when v >= 0.7
	Strong Func = func(v float64) bool { return v >= 0.7 }

	// AlwaysTrue ignores v
	AlwaysTrue Func = func(float64) bool { return true }

	// AlwaysFalse ignores v
	AlwaysFalse Func = func(float64) bool { return false }
)

// AboveThreshold returns a trigger that is true when v > threshold
func AboveThreshold(threshold float64) Func {
	return func(v float64) bool { return v > threshold }
}

// AtOrAboveThreshold returns a trigger that is true when v >= threshold
func AtOrAboveThreshold(threshold float64) Func {
	return func(v float64) bool { return v >= threshold }
}

// BelowThreshold returns a trigger that is true when v < threshold
func BelowThreshold(threshold float64) Func {
	return func(v float64) bool { return v < threshold }
}

// InRange returns a trigger that is true when min <= v <= max
func InRange(min, max float64) Func {
	return func(v float64) bool { return v >= min && v <= max }
}
