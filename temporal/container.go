// Package temporal lifts fuzzy booleans into functions of time.
//
// A Factory is a "time machine" producing a *fuzzy.Bool whose state depends on
// a definite moment. Factories compose with And, Or and Not; composition is
// lazy and every evaluation re-runs the operands at the same timestamp.
package temporal

// Container produces objects of type O in a state determined by a parameter T
type Container[O, T any] interface {
	Get(parameter T) (O, error)
}
