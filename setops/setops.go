// Package setops implements the structural graph algebra: union,
// intersection, difference, merge, induced subgraphs, and edge-induced
// subgraphs. Every operation is pure: it builds and returns a new
// core.Graph and never mutates an operand. Copied elements are fresh
// data-copies, never aliases into the operands.
//
// Two comparison regimes coexist and are never conflated: identity
// (names, used to key storage) and equivalence (attribute-derived keys,
// see core.NodeKey/core.EdgeKey). The algebra compares by equivalence:
// two identity-distinct nodes with equal attribute bags are the same
// element as far as intersection, difference, and merge are concerned.
// Union deliberately does not deduplicate; it is the node-disjoint copy,
// while Merge is the equivalence-deduplicated one.
package setops

import (
	"github.com/PatrickLaban/graphine/core"
)

// Union returns the node-disjoint combination of a and b: every node and
// edge of both operands is copied, even when operands carry equivalent
// data. Name collisions across operands are resolved by generating fresh
// names for the b-side copies, so |Union(a,b)| = |a| + |b| always.
func Union(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}
	out := core.NewGraph()
	if err := copyAllInto(out, a); err != nil {
		return nil, err
	}
	if err := copyAllInto(out, b); err != nil {
		return nil, err
	}

	return out, nil
}

// copyAllInto copies every node and edge of src into out, tracking the
// src-name to copy mapping so edges land on the right endpoint copies.
func copyAllInto(out, src *core.Graph) error {
	copies := make(map[string]*core.Node, src.Order())
	for _, n := range src.Nodes() {
		cp, err := copyNodeInto(out, n)
		if err != nil {
			return err
		}
		copies[n.Name()] = cp
	}
	for _, e := range src.Edges() {
		if _, err := copyEdgeInto(out, e, copies[e.Start().Name()], copies[e.End().Name()]); err != nil {
			return err
		}
	}

	return nil
}

// Intersection returns the graph of edges structurally equivalent
// (flattened keys: attributes, direction, and endpoint data) in both
// operands, together with the endpoints those edges require, plus the
// zero-degree nodes equivalent-present as zero-degree in both. Element
// names come from the a side.
func Intersection(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}
	bEdges, err := edgeKeySet(b)
	if err != nil {
		return nil, err
	}
	bIsolated, err := isolatedKeySet(b)
	if err != nil {
		return nil, err
	}

	out := core.NewGraph()
	copies := make(map[string]*core.Node)
	ensure := func(n *core.Node) (*core.Node, error) {
		if cp, ok := copies[n.Name()]; ok {
			return cp, nil
		}
		cp, cErr := copyNodeInto(out, n)
		if cErr != nil {
			return nil, cErr
		}
		copies[n.Name()] = cp

		return cp, nil
	}

	for _, e := range a.Edges() {
		k, kErr := core.EdgeKey(e, true)
		if kErr != nil {
			return nil, kErr
		}
		if !bEdges[k] {
			continue
		}
		start, sErr := ensure(e.Start())
		if sErr != nil {
			return nil, sErr
		}
		end, eErr := ensure(e.End())
		if eErr != nil {
			return nil, eErr
		}
		if _, cErr := copyEdgeInto(out, e, start, end); cErr != nil {
			return nil, cErr
		}
	}
	for _, n := range a.Nodes() {
		if n.Degree() != 0 {
			continue
		}
		k, kErr := core.NodeKey(n)
		if kErr != nil {
			return nil, kErr
		}
		if bIsolated[k] {
			if _, cErr := ensure(n); cErr != nil {
				return nil, cErr
			}
		}
	}

	return out, nil
}

// Difference returns the elements of a with no equivalent in b: nodes
// whose attribute key matches no b node, and edges whose flattened key
// matches no b edge. An edge survives only if both its endpoints do;
// a surviving edge cannot dangle from a removed node.
func Difference(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}
	bNodes, err := nodeKeySet(b)
	if err != nil {
		return nil, err
	}
	bEdges, err := edgeKeySet(b)
	if err != nil {
		return nil, err
	}

	out := core.NewGraph()
	copies := make(map[string]*core.Node)
	for _, n := range a.Nodes() {
		k, kErr := core.NodeKey(n)
		if kErr != nil {
			return nil, kErr
		}
		if bNodes[k] {
			continue
		}
		cp, cErr := copyNodeInto(out, n)
		if cErr != nil {
			return nil, cErr
		}
		copies[n.Name()] = cp
	}
	for _, e := range a.Edges() {
		k, kErr := core.EdgeKey(e, true)
		if kErr != nil {
			return nil, kErr
		}
		if bEdges[k] {
			continue
		}
		start, okS := copies[e.Start().Name()]
		end, okE := copies[e.End().Name()]
		if !okS || !okE {
			continue
		}
		if _, cErr := copyEdgeInto(out, e, start, end); cErr != nil {
			return nil, cErr
		}
	}

	return out, nil
}

// Merge returns the union of a and b deduplicated by equivalence:
// nodes with equal attribute bags collapse to one copy, edges with equal
// flattened keys likewise. Names come from the first occurrence
// (a before b).
func Merge(a, b *core.Graph) (*core.Graph, error) {
	if a == nil || b == nil {
		return nil, ErrNilGraph
	}
	out := core.NewGraph()
	byNodeKey := make(map[uint64]*core.Node)
	seenEdges := make(map[uint64]bool)

	for _, src := range []*core.Graph{a, b} {
		for _, n := range src.Nodes() {
			k, err := core.NodeKey(n)
			if err != nil {
				return nil, err
			}
			if _, ok := byNodeKey[k]; ok {
				continue
			}
			cp, err := copyNodeInto(out, n)
			if err != nil {
				return nil, err
			}
			byNodeKey[k] = cp
		}
		for _, e := range src.Edges() {
			k, err := core.EdgeKey(e, true)
			if err != nil {
				return nil, err
			}
			if seenEdges[k] {
				continue
			}
			seenEdges[k] = true
			startKey, err := core.NodeKey(e.Start())
			if err != nil {
				return nil, err
			}
			endKey, err := core.NodeKey(e.End())
			if err != nil {
				return nil, err
			}
			if _, err = copyEdgeInto(out, e, byNodeKey[startKey], byNodeKey[endKey]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// nodeKeySet collects the equivalence keys of every node in g.
func nodeKeySet(g *core.Graph) (map[uint64]bool, error) {
	out := make(map[uint64]bool, g.Order())
	for _, n := range g.Nodes() {
		k, err := core.NodeKey(n)
		if err != nil {
			return nil, err
		}
		out[k] = true
	}

	return out, nil
}

// edgeKeySet collects the flattened equivalence keys of every edge in g.
func edgeKeySet(g *core.Graph) (map[uint64]bool, error) {
	out := make(map[uint64]bool, g.Size())
	for _, e := range g.Edges() {
		k, err := core.EdgeKey(e, true)
		if err != nil {
			return nil, err
		}
		out[k] = true
	}

	return out, nil
}

// isolatedKeySet collects the equivalence keys of g's zero-degree nodes.
func isolatedKeySet(g *core.Graph) (map[uint64]bool, error) {
	out := make(map[uint64]bool)
	for _, n := range g.Nodes() {
		if n.Degree() != 0 {
			continue
		}
		k, err := core.NodeKey(n)
		if err != nil {
			return nil, err
		}
		out[k] = true
	}

	return out, nil
}
