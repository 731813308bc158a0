// Package core defines the central Graph, Node, and Edge types:
// an in-memory directed/undirected multigraph whose elements carry
// open attribute bags.
//
// This file declares the Graph type, GraphOption and EdgeOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrElementNotFound      - a name or reference did not resolve to an owned element.
//	ErrDuplicateName        - an element with the given name already exists.
//	ErrEndpointMismatch     - OtherEnd called with a non-endpoint or the head of a directed edge.
//	ErrReservedAttribute    - an attribute key collides with a structural field name.
//	ErrAmbiguousContraction - ContractEdge called on an edge that is not the sole
//	                          connection between its endpoints.
//	ErrCycleForbidden       - the Acyclic edge policy rejected a cycle-creating edge.
//	ErrNilElement           - a nil node or edge reference was supplied.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrElementNotFound indicates an operation referenced a node or edge
	// that is not owned by the graph.
	ErrElementNotFound = errors.New("core: element not found")

	// ErrDuplicateName indicates an element with the requested name already
	// exists in the graph.
	ErrDuplicateName = errors.New("core: duplicate element name")

	// ErrEndpointMismatch indicates OtherEnd was called with a node that is
	// not an endpoint of the edge, or with the head of a directed edge.
	ErrEndpointMismatch = errors.New("core: endpoint mismatch")

	// ErrReservedAttribute indicates an attribute key collides with a
	// reserved structural field name (name, start, end, incoming, outgoing,
	// bidirectional).
	ErrReservedAttribute = errors.New("core: reserved attribute key")

	// ErrAmbiguousContraction indicates ContractEdge was called on an edge
	// that is not the only connection between its endpoints.
	ErrAmbiguousContraction = errors.New("core: ambiguous contraction")

	// ErrCycleForbidden indicates the Acyclic edge policy rejected an edge
	// whose insertion would create a cycle.
	ErrCycleForbidden = errors.New("core: edge would create a cycle")

	// ErrNilElement indicates a nil *Node or *Edge was supplied where a
	// live reference was required.
	ErrNilElement = errors.New("core: nil element")

	// ErrInvalidReference indicates an element reference of an unsupported
	// type was supplied where a *Node, *Edge, or name was expected.
	ErrInvalidReference = errors.New("core: invalid element reference")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithEdgePolicy installs a policy that validates or transforms every edge
// before it is wired into the graph. See Acyclic and Undirected.
func WithEdgePolicy(p EdgePolicy) GraphOption {
	return func(g *Graph) { g.policy = p }
}

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeName assigns an explicit name to the edge instead of a
// generated one.
func WithEdgeName(name string) EdgeOption {
	return func(e *Edge) { e.name = name }
}

// WithUndirected marks the edge as undirected. Edges are directed by
// default.
func WithUndirected() EdgeOption {
	return func(e *Edge) { e.directed = false }
}

// Graph is the core in-memory multigraph. It owns its nodes and edges,
// keyed by name, and maintains per-node adjacency (incoming, outgoing,
// bidirectional) as edges are added and removed.
//
// A Graph assumes exclusive single-writer access: it performs no locking,
// and mutating it while a traversal is in progress is a precondition
// violation with undefined behavior. Guard externally if you must share.
type Graph struct {
	policy EdgePolicy

	nodes map[string]*Node
	edges map[string]*Edge

	// Enumeration order for Nodes/Edges/Search*: insertion order.
	// Removal compacts the slice, so order is not stable across removals.
	nodeOrder []*Node
	edgeOrder []*Edge
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
