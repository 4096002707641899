package temporal

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/fuzzy"
)

// TimeFunc defines the rule mapping a moment to a fuzzy boolean
type TimeFunc func(t time.Time) (*fuzzy.Bool, error)

// Factory produces fuzzy booleans according to its time function
type Factory struct {
	timeFunc TimeFunc
	clock    clockwork.Clock
}

var _ Container[*fuzzy.Bool, time.Time] = (*Factory)(nil)

// Option configures a Factory
type Option func(*Factory)

// WithClock sets the clock used by Now. Defaults to the real clock.
func WithClock(clock clockwork.Clock) Option {
	return func(f *Factory) {
		if clock != nil {
			f.clock = clock
		}
	}
}

// NewFactory creates a factory around fn
func NewFactory(fn TimeFunc, opts ...Option) (*Factory, error) {
	if fn == nil {
		return nil, errors.NewNullArgumentError("time function")
	}
	return newFactory(fn, opts...), nil
}

// NewUnknownFactory creates a factory that always produces fuzzy.Unknown
func NewUnknownFactory(opts ...Option) *Factory {
	return newFactory(func(time.Time) (*fuzzy.Bool, error) {
		return fuzzy.Unknown, nil
	}, opts...)
}

func newFactory(fn TimeFunc, opts ...Option) *Factory {
	f := &Factory{
		timeFunc: fn,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TimeFunc returns the wrapped time function
func (f *Factory) TimeFunc() TimeFunc {
	return f.timeFunc
}

// Clock returns the clock used by Now
func (f *Factory) Clock() clockwork.Clock {
	return f.clock
}

// Evaluate produces the fuzzy boolean for t. The zero time counts as unset.
func (f *Factory) Evaluate(t time.Time) (*fuzzy.Bool, error) {
	if t.IsZero() {
		return nil, errors.NewNullArgumentError("time")
	}
	b, err := f.timeFunc(t)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errors.Wrapf(errors.NewNullArgumentError("time function result"), "at %s", t.Format(time.RFC3339))
	}
	return b, nil
}

// Get implements Container
func (f *Factory) Get(t time.Time) (*fuzzy.Bool, error) {
	return f.Evaluate(t)
}

// Now produces the fuzzy boolean for the current time of the factory's clock
func (f *Factory) Now() (*fuzzy.Bool, error) {
	return f.Evaluate(f.clock.Now())
}

// And returns a factory producing f(t) AND other(t)
func (f *Factory) And(other *Factory) (*Factory, error) {
	if other == nil {
		return nil, errors.NewNullArgumentError("other factory")
	}
	return f.derive(func(t time.Time) (*fuzzy.Bool, error) {
		left, right, err := evaluatePair(f, other, t)
		if err != nil {
			return nil, err
		}
		return left.And(right)
	}), nil
}

// Or returns a factory producing f(t) OR other(t)
func (f *Factory) Or(other *Factory) (*Factory, error) {
	if other == nil {
		return nil, errors.NewNullArgumentError("other factory")
	}
	return f.derive(func(t time.Time) (*fuzzy.Bool, error) {
		left, right, err := evaluatePair(f, other, t)
		if err != nil {
			return nil, err
		}
		return left.Or(right)
	}), nil
}

// Not returns a factory producing NOT f(t)
func (f *Factory) Not() *Factory {
	return f.derive(func(t time.Time) (*fuzzy.Bool, error) {
		b, err := f.Evaluate(t)
		if err != nil {
			return nil, err
		}
		return b.Not(), nil
	})
}

// derive builds a composite sharing f's clock
func (f *Factory) derive(fn TimeFunc) *Factory {
	return &Factory{timeFunc: fn, clock: f.clock}
}

func evaluatePair(left, right *Factory, t time.Time) (*fuzzy.Bool, *fuzzy.Bool, error) {
	l, err := left.Evaluate(t)
	if err != nil {
		return nil, nil, err
	}
	r, err := right.Evaluate(t)
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
