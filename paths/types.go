// Package paths: types, options, and error definitions for single-source
// shortest-path computation over a core.Graph.
package paths

import (
	"errors"

	"github.com/PatrickLaban/graphine/core"
)

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrSourceNotFound indicates the source does not resolve to a node
	// owned by the graph.
	ErrSourceNotFound = errors.New("paths: source node not found")

	// ErrNegativeWeight indicates the weight function produced a negative
	// value; relaxation over a min-heap is unsound for negative weights.
	ErrNegativeWeight = errors.New("paths: negative edge weight")
)

// WeightFunc maps an edge to its traversal cost. The default weighs every
// edge 1, turning distance into hop count.
type WeightFunc func(e *core.Edge) float64

// UnitWeight is the default WeightFunc: every edge costs 1.
func UnitWeight(*core.Edge) float64 { return 1 }

// WeightFromAttr builds a WeightFunc reading the named attribute,
// coercing numeric and string-numeric values. Edges without a usable
// value fall back to cost 1.
func WeightFromAttr(key string) WeightFunc {
	return func(e *core.Edge) float64 {
		if w, ok := e.Attrs().Float64(key); ok {
			return w
		}

		return 1
	}
}

// Path is the computed route to one target: the cumulative distance and
// the ordered edges from the source. The source maps to {0, nil}.
type Path struct {
	Distance float64
	Edges    []*core.Edge
}

// Option configures ShortestPaths via functional arguments.
type Option func(*Options)

// Options holds the shortest-path parameters.
type Options struct {
	// Weight is the edge cost function; defaults to UnitWeight.
	Weight WeightFunc
}

// DefaultOptions returns Options with unit edge weights.
func DefaultOptions() Options {
	return Options{Weight: UnitWeight}
}

// WithWeightFunc sets the edge cost function.
func WithWeightFunc(fn WeightFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Weight = fn
		}
	}
}

// WithWeightAttr is shorthand for WithWeightFunc(WeightFromAttr(key)).
func WithWeightAttr(key string) Option {
	return WithWeightFunc(WeightFromAttr(key))
}
