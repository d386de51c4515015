// Package iterate provides chainable for-each helpers over slices,
// maps, and the standard iterator sequences. Each helper visits every
// element of its sequence exactly once, in the sequence's own
// iteration order, hands it to a consumer, and then returns the
// original sequence so that calls compose:
//
//	sorted := sort(iterate.Each(ids, audit))
//
// A consumer never returns a value. Callers that wish to pass a
// value-returning function wrap it in a discarding closure.
//
// The sequence and consumer arguments are mandatory. A nil slice, nil
// map, nil sequence, or nil consumer raises an issue.Reported panic
// before any element is visited. An empty (but non-nil) sequence is
// valid and results in zero consumer invocations.
//
// A panic raised by a consumer propagates to the caller unmodified.
// Iteration stops at the element where the panic occurred and no
// later element is visited.
//
// The behavior when a sequence is mutated by another goroutine while
// it is being iterated is undefined. It is whatever Go's range
// semantics make of it.
package iterate
