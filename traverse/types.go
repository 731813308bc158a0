// Package traverse: options, errors, and the frontier/selector contract
// for the unified traversal engine.
package traverse

import (
	"context"
	"errors"

	"github.com/PatrickLaban/graphine/core"
)

// Sentinel errors for traversal and walk execution.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrNilSelector is returned when Traverse is given a nil selector.
	ErrNilSelector = errors.New("traverse: selector is nil")

	// ErrSelectorContract is returned when a selector removes anything
	// other than exactly one element from the frontier.
	ErrSelectorContract = errors.New("traverse: selector must remove exactly one element")

	// ErrNotInFrontier is returned when a walk Step selects an element
	// that is not currently reachable from the walk position.
	ErrNotInFrontier = errors.New("traverse: selection not in frontier")
)

// Frontier is the live ordered collection of discovered, not-yet-visited
// nodes. A Selector inspects it and removes exactly one node via Take;
// the engine enforces that contract.
type Frontier struct {
	nodes  []*core.Node
	member map[string]bool
}

// Len returns the number of discovered nodes awaiting a visit.
func (f *Frontier) Len() int { return len(f.nodes) }

// Peek returns the i-th discovered node without removing it. Oldest
// entries sit at index 0.
func (f *Frontier) Peek(i int) *core.Node { return f.nodes[i] }

// Take removes and returns the i-th discovered node.
func (f *Frontier) Take(i int) *core.Node {
	n := f.nodes[i]
	f.nodes = append(f.nodes[:i], f.nodes[i+1:]...)
	delete(f.member, n.Name())

	return n
}

func (f *Frontier) push(n *core.Node) {
	f.nodes = append(f.nodes, n)
	f.member[n.Name()] = true
}

func (f *Frontier) contains(n *core.Node) bool { return f.member[n.Name()] }

// Selector picks and removes exactly one node from the frontier,
// determining the traversal order. PopNewest yields depth-first order,
// PopOldest breadth-first; any other policy (highest out-degree, best
// heuristic score) plugs in the same way.
type Selector func(f *Frontier) *core.Node

// PopNewest removes the most recently discovered node: stack discipline,
// depth-first order.
func PopNewest(f *Frontier) *core.Node { return f.Take(f.Len() - 1) }

// PopOldest removes the earliest discovered node: queue discipline,
// breadth-first order.
func PopOldest(f *Frontier) *core.Node { return f.Take(0) }

// Option configures traversal behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called as each node is yielded; returning an error
	// aborts the traversal with that error.
	OnVisit func(n *core.Node) error

	// FilterNeighbor can prune discovery: return false to keep the
	// neighbor out of the frontier for this crossing.
	FilterNeighbor func(from, to *core.Node) bool

	// UndirectedView, when set, treats every edge as crossable both ways
	// (incoming edges become neighbors too). Used for weak connectivity.
	UndirectedView bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no filtering, and direction-respecting neighbor expansion.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(*core.Node) error { return nil },
		FilterNeighbor: func(_, _ *core.Node) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked as each node is yielded.
// Returning an error aborts the traversal.
func WithOnVisit(fn func(n *core.Node) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips discovery of neighbors for which fn returns
// false.
func WithFilterNeighbor(fn func(from, to *core.Node) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithUndirectedView makes the traversal ignore edge direction.
func WithUndirectedView() Option {
	return func(o *Options) { o.UndirectedView = true }
}
