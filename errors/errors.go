// Package errors provides error handling for fuzzytime.
//
// This package re-exports github.com/cockroachdb/errors so every package gets
// stack traces, wrapping, hints and details from a single import, and defines
// the sentinel errors of the fuzzy algebra.
//
// Usage:
//
//	b, err := fuzzy.New(1.2)
//	if errors.IsRangeError(err) {
//	    // magnitude outside [-1, +1]
//	}
//
//	// Wrap with context
//	if err := p.Validate(); err != nil {
//	    return errors.Wrapf(err, "profile %q", p.Name)
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf

	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is            = crdb.Is
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors. Match with Is; wrap to add context without losing the type.
var (
	// ErrRange indicates a truth value or operand outside [-1, +1]
	ErrRange = New("value out of range [-1, +1]")

	// ErrNullArgument indicates a required collaborator was not supplied
	ErrNullArgument = New("required argument is nil")

	// ErrInvalidTrigger indicates a trigger spec that cannot be resolved
	ErrInvalidTrigger = New("invalid trigger")

	// ErrInvalidProfile indicates a schedule profile that fails validation
	ErrInvalidProfile = New("invalid profile")

	// ErrUnknownTimezone indicates a timezone name that resolves to no IANA zone
	ErrUnknownTimezone = New("unknown timezone")
)

// IsRangeError checks if an error is or wraps ErrRange
func IsRangeError(err error) bool {
	return err != nil && Is(err, ErrRange)
}

// IsNullArgumentError checks if an error is or wraps ErrNullArgument
func IsNullArgumentError(err error) bool {
	return err != nil && Is(err, ErrNullArgument)
}

// NewRangeError creates a range error with a formatted message
func NewRangeError(format string, args ...interface{}) error {
	err := Wrap(ErrRange, Newf(format, args...).Error())
	return WithHint(err, "truth values must lie between -1.0 and +1.0 inclusive")
}

// NewNullArgumentError creates a null-argument error naming the missing argument
func NewNullArgumentError(name string) error {
	return Wrapf(ErrNullArgument, "%s", name)
}
