package schedule

import (
	"strings"

	"github.com/teranos/fuzzytime/errors"
	"github.com/teranos/fuzzytime/temporal"
)

// Op is a binary composition operator
type Op string

const (
	OpAnd Op = "and"
	OpOr  Op = "or"
)

// ParseOp resolves "and" or "or", case-insensitively
func ParseOp(s string) (Op, error) {
	switch Op(strings.ToLower(strings.TrimSpace(s))) {
	case OpAnd:
		return OpAnd, nil
	case OpOr:
		return OpOr, nil
	}
	return "", errors.Newf("unknown operator %q (supported: and, or)", s)
}

// Compose left-folds factories with op: ((f0 op f1) op f2) ...
func Compose(op Op, factories ...*temporal.Factory) (*temporal.Factory, error) {
	if len(factories) == 0 {
		return nil, errors.NewNullArgumentError("factories")
	}

	result := factories[0]
	if result == nil {
		return nil, errors.NewNullArgumentError("factory 0")
	}
	for _, next := range factories[1:] {
		var err error
		switch op {
		case OpAnd:
			result, err = result.And(next)
		case OpOr:
			result, err = result.Or(next)
		default:
			return nil, errors.Newf("unknown operator %q", op)
		}
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
