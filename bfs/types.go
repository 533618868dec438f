// Package bfs defines tunable options, errors and result types for
// breadth-first traversal.
package bfs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Option configures BFS behavior via functional arguments. An invalid value
// (e.g. a negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds parameters customizing a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this hop distance.
	// 0 explicitly disables the limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a Background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes in visit (dequeue) sequence.
//   - Dist: hop distance from the start for every reached node.
//   - Parent: predecessor in the BFS tree; the start node has no entry.
//   - VisitedCount: number of distinct nodes reached.
type Result[N cmp.Ordered] struct {
	Order        []N
	Dist         map[N]int
	Parent       map[N]N
	VisitedCount int
}

// PathTo reconstructs the hop-shortest path from the traversal's start node
// to dest by walking Parent links backwards. The second return is false if
// dest was never reached.
func (r *Result[N]) PathTo(dest N) ([]N, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	path := []N{dest}
	cur := dest
	for {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	reverse(path)

	return path, true
}

// PathResult is the point-to-point query output: Found is false when end is
// unreachable from start; Length is the edge count len(Path)-1 otherwise.
type PathResult[N cmp.Ordered] struct {
	Found  bool
	Path   []N
	Length int
}

// reverse flips s in place.
func reverse[N any](s []N) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
