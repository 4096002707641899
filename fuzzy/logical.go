// Package fuzzy implements signed fuzzy booleans with truth values in [-1, +1].
//
// Negative values are graded falsity, positive values graded truth and zero is
// unknown. A Bool carries a default trigger that collapses its truth value into
// a plain bool.
package fuzzy

// Logical is the common fuzzy logic algebra over a base type T. The receiver
// is the first operand.
type Logical[T any] interface {
	// FuzzyNot returns the negation of the receiver
	FuzzyNot() T

	// FuzzyAnd combines the receiver with second
	FuzzyAnd(second T) (T, error)

	// FuzzyOr combines the receiver with second
	FuzzyOr(second T) (T, error)

	// TriggerValue reports whether value counts as true under the receiver's trigger
	TriggerValue(value T) bool
}

// Bounds of the signed float domain
const (
	MinValue = -1.0
	MaxValue = +1.0
)

// precision is the rounding grid: truth values keep two decimals
const precision = 100.0

// IsValid reports whether v lies in [MinValue, MaxValue]
func IsValid(v float64) bool {
	return v >= MinValue && v <= MaxValue
}
