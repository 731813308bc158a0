package core

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Equivalence is the data-based comparison used by the algebra operations,
// distinct from identity: two elements are equivalent iff their attribute
// bags are equal, and edges additionally require matching direction and
// (for the flattened form) equivalent endpoints. Keys are derived hashes,
// so they are recomputed from current attribute state and are valid map
// keys for deduplication.

// edgeKeyShape is the hashed representation of an edge's equivalence data.
// StartKey/EndKey are zero for the plain (non-flattened) form. For
// undirected edges the endpoint keys are order-normalized so that A—B and
// B—A hash identically.
type edgeKeyShape struct {
	StartKey uint64
	EndKey   uint64
	Directed bool
	Attrs    Attrs
}

// NodeKey returns the equivalence key of a node: a hash of its current
// attribute bag.
func NodeKey(n *Node) (uint64, error) {
	if n == nil {
		return 0, ErrNilElement
	}
	k, err := hashstructure.Hash(n.attrs, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("core: hashing node %q attributes: %w", n.name, err)
	}

	return k, nil
}

// EdgeKey returns the equivalence key of an edge. The plain form
// (flatten=false) hashes attributes and direction only; the flattened
// form also folds in both endpoints' node keys, giving the deep
// structural equivalence used by intersection, difference, and merge.
func EdgeKey(e *Edge, flatten bool) (uint64, error) {
	if e == nil {
		return 0, ErrNilElement
	}
	shape := edgeKeyShape{Directed: e.directed, Attrs: e.attrs}
	if flatten {
		sk, err := NodeKey(e.start)
		if err != nil {
			return 0, err
		}
		ek, err := NodeKey(e.end)
		if err != nil {
			return 0, err
		}
		if !e.directed && sk > ek {
			sk, ek = ek, sk
		}
		shape.StartKey, shape.EndKey = sk, ek
	}
	k, err := hashstructure.Hash(shape, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("core: hashing edge %q: %w", e.name, err)
	}

	return k, nil
}

// Equivalent reports whether two nodes carry equal attribute bags.
func Equivalent(a, b *Node) (bool, error) {
	ka, err := NodeKey(a)
	if err != nil {
		return false, err
	}
	kb, err := NodeKey(b)
	if err != nil {
		return false, err
	}

	return ka == kb, nil
}

// EquivalentEdges reports whether two edges are structurally equivalent:
// equal attribute bags and direction and, when flatten is true, pairwise
// equivalent endpoints.
func EquivalentEdges(a, b *Edge, flatten bool) (bool, error) {
	ka, err := EdgeKey(a, flatten)
	if err != nil {
		return false, err
	}
	kb, err := EdgeKey(b, flatten)
	if err != nil {
		return false, err
	}

	return ka == kb, nil
}
