// Package dfs defines result types, options and errors for depth-first
// traversal.
package dfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// ErrCycleDetected indicates that a cycle was encountered where a DAG was
// required. Returned (wrapped in *CycleError) by TopologicalSort.
var ErrCycleDetected = errors.New("dfs: cycle detected")

// CycleError carries the offending cycle alongside ErrCycleDetected.
// The Cycle sequence runs from the back-edge target around to itself.
type CycleError[N cmp.Ordered] struct {
	Cycle []N
}

// Error implements the error interface.
func (e *CycleError[N]) Error() string {
	return fmt.Sprintf("dfs: cycle detected: %v", e.Cycle)
}

// Unwrap lets errors.Is match ErrCycleDetected.
func (e *CycleError[N]) Unwrap() error { return ErrCycleDetected }

// Option configures optional DFS behavior.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a Background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N cmp.Ordered] struct {
	// Order records nodes in pre-order visit sequence.
	Order []N

	// VisitedCount is the number of distinct nodes reached.
	VisitedCount int
}

// CycleResult reports whether a directed graph contains a cycle and, if so,
// one witnessing node sequence closed on the back-edge target.
type CycleResult[N cmp.Ordered] struct {
	HasCycle bool
	Cycle    []N
}
