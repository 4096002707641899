package trigger

import (
	"strconv"
	"strings"

	"github.com/teranos/fuzzytime/errors"
)

// Names of the built-in triggers as accepted by Parse
const (
	NameExactTrue   = "exact_true"
	NamePositive    = "positive"
	NameNonNegative = "non_negative"
	NameMajority    = "majority"
	NameStrong      = "strong"
	NameAlwaysTrue  = "always_true"
	NameAlwaysFalse = "always_false"
)

// Prefixes of the parameterized forms, e.g. "above:0.5" or "in_range:-0.2:0.2"
const (
	PrefixAbove     = "above"
	PrefixAtOrAbove = "at_or_above"
	PrefixBelow     = "below"
	PrefixInRange   = "in_range"
)

var named = map[string]Func{
	NameExactTrue:   ExactTrue,
	NamePositive:    Positive,
	NameNonNegative: NonNegative,
	NameMajority:    Majority,
	NameStrong:      Strong,
	NameAlwaysTrue:  AlwaysTrue,
	NameAlwaysFalse: AlwaysFalse,
}

// Names returns the built-in trigger names in a stable order
func Names() []string {
	return []string{
		NameExactTrue,
		NamePositive,
		NameNonNegative,
		NameMajority,
		NameStrong,
		NameAlwaysTrue,
		NameAlwaysFalse,
	}
}

// Parse resolves a trigger spec. Names and prefixes are case-insensitive and
// may use dashes in place of underscores; thresholds may be negative.
func Parse(spec string) (Func, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return nil, errors.Wrap(errors.ErrInvalidTrigger, "empty trigger spec")
	}

	// Only the name is normalized; arguments may carry a minus sign
	parts := strings.Split(trimmed, ":")
	parts[0] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(parts[0])), "-", "_")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) == 1 {
		if fn, ok := named[parts[0]]; ok {
			return fn, nil
		}
	}

	switch parts[0] {
	case PrefixAbove, PrefixAtOrAbove, PrefixBelow:
		if len(parts) != 2 {
			return nil, invalid(spec, "expected %s:<threshold>", parts[0])
		}
		threshold, err := parseFloat(spec, parts[1])
		if err != nil {
			return nil, err
		}
		switch parts[0] {
		case PrefixAbove:
			return AboveThreshold(threshold), nil
		case PrefixAtOrAbove:
			return AtOrAboveThreshold(threshold), nil
		default:
			return BelowThreshold(threshold), nil
		}

	case PrefixInRange:
		if len(parts) != 3 {
			return nil, invalid(spec, "expected in_range:<min>:<max>")
		}
		min, err := parseFloat(spec, parts[1])
		if err != nil {
			return nil, err
		}
		max, err := parseFloat(spec, parts[2])
		if err != nil {
			return nil, err
		}
		if min > max {
			return nil, invalid(spec, "min %v is greater than max %v", min, max)
		}
		return InRange(min, max), nil
	}

	return nil, invalid(spec, "unknown trigger")
}

func parseFloat(spec, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalid(spec, "bad number %q", raw)
	}
	return v, nil
}

func invalid(spec, format string, args ...interface{}) error {
	err := errors.Wrapf(errors.ErrInvalidTrigger, "%q: "+format, append([]interface{}{spec}, args...)...)
	return errors.WithHintf(err, "known triggers: %s, or above:<t>, at_or_above:<t>, below:<t>, in_range:<min>:<max>",
		strings.Join(Names(), ", "))
}
