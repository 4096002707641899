package fuzzy

import (
	"fmt"
	"math"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/trigger"
)

// Bool is an immutable fuzzy boolean. Use it through *Bool: the canonical
// values True, False and Unknown are shared instances.
type Bool struct {
	truth   float64
	trigger trigger.Func
}

var _ Logical[float64] = (*Bool)(nil)

// Canonical instances
var (
	// True is absolute truth (+1.0)
	True = &Bool{truth: MaxValue, trigger: trigger.ExactTrue}

	// False is absolute falsity (-1.0)
	False = &Bool{truth: MinValue, trigger: trigger.ExactTrue}

	// Unknown is the neutral value (0.0)
	Unknown = &Bool{truth: 0, trigger: trigger.ExactTrue}
)

// New creates a Bool with the ExactTrue trigger. The truth value is rounded
// to two decimals.
func New(truth float64) (*Bool, error) {
	return NewWithTrigger(truth, trigger.ExactTrue)
}

// NewWithTrigger creates a Bool with a custom default trigger
func NewWithTrigger(truth float64, fn trigger.Func) (*Bool, error) {
	if !IsValid(truth) {
		return nil, errors.NewRangeError("truth %v", truth)
	}
	if fn == nil {
		return nil, errors.NewNullArgumentError("trigger")
	}
	return &Bool{truth: round(truth), trigger: fn}, nil
}

// Of is New with caching: exactly +1, -1 and 0 return True, False and Unknown.
func Of(truth float64) (*Bool, error) {
	switch truth {
	case MaxValue:
		return True, nil
	case MinValue:
		return False, nil
	case 0:
		return Unknown, nil
	}
	return New(truth)
}

// OfWithTrigger always returns a fresh instance so that fn is honoured, even
// for the canonical magnitudes.
func OfWithTrigger(truth float64, fn trigger.Func) (*Bool, error) {
	return NewWithTrigger(truth, fn)
}

// FromBool converts a plain bool to True or False
func FromBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}

// Must panics if err is non-nil. Intended for constants and tests.
func Must(b *Bool, err error) *Bool {
	if err != nil {
		panic(err)
	}
	return b
}

// Truth returns the rounded truth value
func (b *Bool) Truth() float64 {
	return b.truth
}

// TriggerFunc returns the default trigger
func (b *Bool) TriggerFunc() trigger.Func {
	return b.trigger
}

// WithTrigger returns a copy of b with a different default trigger
func (b *Bool) WithTrigger(fn trigger.Func) (*Bool, error) {
	return NewWithTrigger(b.truth, fn)
}

// FuzzyNot computes not a ≡ -a. Zero stays zero (never -0).
func (b *Bool) FuzzyNot() float64 {
	if b.truth == 0 {
		return 0
	}
	return -b.truth
}

// Not returns the negation of b carrying b's trigger. The negation of any
// zero is the Unknown instance itself.
func (b *Bool) Not() *Bool {
	if b.truth == 0 {
		return Unknown
	}
	return &Bool{truth: -b.truth, trigger: b.trigger}
}

// FuzzyAnd computes a AND b ≡ -|a×b| if a < 0 or b < 0, else |a×b|. The
// product magnitude is rounded before the sign is applied.
func (b *Bool) FuzzyAnd(second float64) (float64, error) {
	if !IsValid(second) {
		return 0, errors.NewRangeError("and operand %v", second)
	}
	product := round(math.Abs(b.truth * second))
	if product == 0 {
		return 0, nil
	}
	if b.truth < 0 || second < 0 {
		return -product, nil
	}
	return product, nil
}

// And returns b AND other carrying b's trigger
func (b *Bool) And(other *Bool) (*Bool, error) {
	if other == nil {
		return nil, errors.NewNullArgumentError("other")
	}
	return b.AndValue(other.truth)
}

// AndValue returns b AND value carrying b's trigger
func (b *Bool) AndValue(value float64) (*Bool, error) {
	result, err := b.FuzzyAnd(value)
	if err != nil {
		return nil, err
	}
	return OfWithTrigger(result, b.trigger)
}

// FuzzyOr computes a OR b ≡ max(a, b) if a ≠ 0 and b ≠ 0, else a + b
func (b *Bool) FuzzyOr(second float64) (float64, error) {
	if !IsValid(second) {
		return 0, errors.NewRangeError("or operand %v", second)
	}
	if b.truth != 0 && second != 0 {
		return math.Max(b.truth, second), nil
	}
	return b.truth + second, nil
}

// Or returns b OR other carrying b's trigger
func (b *Bool) Or(other *Bool) (*Bool, error) {
	if other == nil {
		return nil, errors.NewNullArgumentError("other")
	}
	return b.OrValue(other.truth)
}

// OrValue returns b OR value carrying b's trigger
func (b *Bool) OrValue(value float64) (*Bool, error) {
	result, err := b.FuzzyOr(value)
	if err != nil {
		return nil, err
	}
	return OfWithTrigger(result, b.trigger)
}

// Trigger evaluates the default trigger against b's own truth value
func (b *Bool) Trigger() bool {
	return b.trigger(b.truth)
}

// TriggerWith evaluates fn against b's truth value, ignoring the default
func (b *Bool) TriggerWith(fn trigger.Func) (bool, error) {
	if fn == nil {
		return false, errors.NewNullArgumentError("trigger")
	}
	return fn(b.truth), nil
}

// TriggerValue evaluates the default trigger against an external value.
// Values outside [-1, +1] are false rather than an error.
func (b *Bool) TriggerValue(value float64) bool {
	if !IsValid(value) {
		return false
	}
	return b.trigger(value)
}

// IsPositive reports truth > 0
func (b *Bool) IsPositive() bool {
	return b.truth > 0
}

// IsNegative reports truth < 0
func (b *Bool) IsNegative() bool {
	return b.truth < 0
}

// IsUnknown reports truth == 0
func (b *Bool) IsUnknown() bool {
	return b.truth == 0
}

// Equal compares truth values only; triggers are ignored
func (b *Bool) Equal(other *Bool) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return b.truth == other.truth
}

func (b *Bool) String() string {
	return fmt.Sprintf("FuzzyBool[%.2f]", b.truth)
}

// round snaps v to the two-decimal grid, halves rounding up
func round(v float64) float64 {
	r := math.Floor(v*precision+0.5) / precision
	if r == 0 {
		return 0
	}
	return r
}
