package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatrickLaban/graphine/core"
)

func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	n, err := g.AddNode("A", core.Attrs{"color": "red"})
	require.NoError(t, err)
	assert.Equal(t, "A", n.Name())
	assert.Equal(t, "red", n.Attrs()["color"])
	assert.True(t, g.HasNode("A"))
	assert.Equal(t, 1, g.Order())

	// Duplicate names are an error, never a silent replace.
	_, err = g.AddNode("A", nil)
	assert.ErrorIs(t, err, core.ErrDuplicateName)
	assert.Equal(t, 1, g.Order())

	// Empty name requests a generated one.
	anon, err := g.AddNode("", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, anon.Name())
	assert.True(t, g.HasNode(anon.Name()))
}

func TestGraph_ReservedAttributes(t *testing.T) {
	g := core.NewGraph()

	for _, key := range []string{"name", "start", "end", "incoming", "outgoing", "bidirectional"} {
		_, err := g.AddNode("", core.Attrs{key: 1})
		assert.ErrorIs(t, err, core.ErrReservedAttribute, "key %q", key)
	}
	assert.Equal(t, 0, g.Order())

	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)
	_, err := g.AddEdge(a, b, core.Attrs{"start": "x"})
	assert.ErrorIs(t, err, core.ErrReservedAttribute)
	assert.Equal(t, 0, g.Size())
}

func TestGraph_AddEdge_DirectedAdjacency(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)

	e, err := g.AddEdge("A", "B", core.Attrs{"w": 3}, core.WithEdgeName("ab"))
	require.NoError(t, err)
	assert.True(t, e.Directed())
	assert.Same(t, a, e.Start())
	assert.Same(t, b, e.End())

	// Directed adjacency: exactly start.outgoing and end.incoming.
	require.Len(t, a.Outgoing(), 1)
	require.Len(t, b.Incoming(), 1)
	assert.Same(t, e, a.Outgoing()[0])
	assert.Same(t, e, b.Incoming()[0])
	assert.Empty(t, a.Incoming())
	assert.Empty(t, b.Outgoing())
	assert.Empty(t, a.Bidirectional())

	// Removal detaches from both views exactly once.
	require.NoError(t, g.RemoveEdge(e))
	assert.Empty(t, a.Outgoing())
	assert.Empty(t, b.Incoming())
	assert.Equal(t, 0, g.Size())
}

func TestGraph_AddEdge_UndirectedAdjacency(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)

	e, err := g.AddEdge(a, b, nil, core.WithUndirected())
	require.NoError(t, err)
	assert.False(t, e.Directed())
	require.Len(t, a.Bidirectional(), 1)
	require.Len(t, b.Bidirectional(), 1)
	assert.Empty(t, a.Outgoing())
	assert.Empty(t, b.Incoming())
}

func TestGraph_UndirectedSelfLoop_CountedOnce(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)

	loop, err := g.AddEdge(a, a, nil, core.WithUndirected(), core.WithEdgeName("loop"))
	require.NoError(t, err)

	// The loop appears exactly once in the node's views.
	assert.Len(t, a.Bidirectional(), 1)
	assert.Len(t, a.Edges(), 1)
	assert.Equal(t, 1, a.Degree())

	other, err := loop.OtherEnd(a)
	require.NoError(t, err)
	assert.Same(t, a, other)

	require.NoError(t, g.RemoveEdge("loop"))
	assert.Empty(t, a.Bidirectional())
}

func TestGraph_AddEdge_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A", nil)

	_, err := g.AddEdge("A", "missing", nil)
	assert.ErrorIs(t, err, core.ErrElementNotFound)

	// A node owned by a different graph does not resolve.
	other := core.NewGraph()
	foreign, _ := other.AddNode("A", nil)
	_, err = g.AddEdge(foreign, "A", nil)
	assert.ErrorIs(t, err, core.ErrElementNotFound)

	_, err = g.AddEdge(nil, "A", nil)
	assert.ErrorIs(t, err, core.ErrNilElement)

	_, err = g.AddEdge(42, "A", nil)
	assert.ErrorIs(t, err, core.ErrInvalidReference)
}

func TestGraph_RemoveNode_Cascades(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)
	c, _ := g.AddNode("C", nil)
	g.AddEdge(a, b, nil, core.WithEdgeName("ab"))
	g.AddEdge(c, a, nil, core.WithEdgeName("ca"))
	g.AddEdge(a, a, nil, core.WithUndirected(), core.WithEdgeName("loop"))
	g.AddEdge(b, c, nil, core.WithEdgeName("bc"))

	removed, err := g.RemoveNode("A")
	require.NoError(t, err)
	assert.Same(t, a, removed)

	// Every incident edge is gone; the untouched edge survives.
	assert.False(t, g.HasEdge("ab"))
	assert.False(t, g.HasEdge("ca"))
	assert.False(t, g.HasEdge("loop"))
	assert.True(t, g.HasEdge("bc"))
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())

	// Adjacency on the surviving endpoints was repaired.
	assert.Empty(t, b.Incoming())
	assert.Empty(t, c.Outgoing())

	_, err = g.RemoveNode("A")
	assert.ErrorIs(t, err, core.ErrElementNotFound)
}

func TestGraph_OrderSize_Invariant(t *testing.T) {
	g := core.NewGraph()
	names := []string{"A", "B", "C", "D"}
	for _, name := range names {
		g.AddNode(name, nil)
	}
	g.AddEdge("A", "B", nil, core.WithEdgeName("e1"))
	g.AddEdge("B", "C", nil, core.WithEdgeName("e2"))
	g.AddEdge("C", "D", nil, core.WithEdgeName("e3"))
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Len(t, g.Nodes(), g.Order())
	assert.Len(t, g.Edges(), g.Size())

	g.RemoveEdge("e2")
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())

	g.RemoveNode("B")
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 1, g.Size())
	assert.Len(t, g.Nodes(), 3)
}

func TestGraph_SearchNodes(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A", core.Attrs{"color": "red", "size": 1})
	g.AddNode("B", core.Attrs{"color": "red", "size": 2})
	g.AddNode("C", core.Attrs{"color": "blue"})

	red := g.SearchNodes(core.Attrs{"color": "red"})
	require.Len(t, red, 2)
	assert.Equal(t, "A", red[0].Name())
	assert.Equal(t, "B", red[1].Name())

	// Superset semantics: all constraints must hold.
	assert.Len(t, g.SearchNodes(core.Attrs{"color": "red", "size": 2}), 1)
	assert.Empty(t, g.SearchNodes(core.Attrs{"color": "green"}))
	// Empty constraints match everything.
	assert.Len(t, g.SearchNodes(nil), 3)

	// Each call produces a fresh sequence.
	again := g.SearchNodes(core.Attrs{"color": "red"})
	assert.Len(t, again, 2)
}

func TestGraph_SearchEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A", nil)
	g.AddNode("B", nil)
	g.AddEdge("A", "B", core.Attrs{"kind": "road", "lanes": 2}, core.WithEdgeName("e1"))
	g.AddEdge("B", "A", core.Attrs{"kind": "rail"}, core.WithEdgeName("e2"))

	roads := g.SearchEdges(core.Attrs{"kind": "road"})
	require.Len(t, roads, 1)
	assert.Equal(t, "e1", roads[0].Name())

	// Structurally compared values work as constraints.
	g.AddEdge("A", "B", core.Attrs{"tags": []string{"x", "y"}}, core.WithEdgeName("e3"))
	tagged := g.SearchEdges(core.Attrs{"tags": []string{"x", "y"}})
	require.Len(t, tagged, 1)
	assert.Equal(t, "e3", tagged[0].Name())
}

func TestGraph_CommonEdges(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)
	c, _ := g.AddNode("C", nil)
	g.AddEdge(a, b, nil, core.WithEdgeName("ab1"))
	g.AddEdge(b, a, nil, core.WithEdgeName("ba"))
	g.AddEdge(a, b, nil, core.WithUndirected(), core.WithEdgeName("ab2"))
	g.AddEdge(a, c, nil, core.WithEdgeName("ac"))
	g.AddEdge(a, a, nil, core.WithUndirected(), core.WithEdgeName("loop"))

	common, err := g.CommonEdges(a, b)
	require.NoError(t, err)
	names := edgeNames(common)
	assert.Equal(t, []string{"ab1", "ab2", "ba"}, names)

	// Same node on both sides selects the self-loops.
	loops, err := g.CommonEdges(a, a)
	require.NoError(t, err)
	assert.Equal(t, []string{"loop"}, edgeNames(loops))

	_, err = g.CommonEdges(a, "missing")
	assert.ErrorIs(t, err, core.ErrElementNotFound)
}

func TestGraph_Adjacent(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)
	c, _ := g.AddNode("C", nil)
	d, _ := g.AddNode("D", nil)
	g.AddEdge(a, b, nil)                        // out: reachable
	g.AddEdge(c, a, nil)                        // in only: not reachable
	g.AddEdge(a, d, nil, core.WithUndirected()) // undirected: reachable

	adj, err := g.Adjacent("A")
	require.NoError(t, err)
	names := make([]string, len(adj))
	for i, n := range adj {
		names[i] = n.Name()
	}
	assert.Equal(t, []string{"B", "D"}, names)
}

func TestEdge_OtherEnd(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddNode("A", nil)
	b, _ := g.AddNode("B", nil)
	c, _ := g.AddNode("C", nil)
	directed, _ := g.AddEdge(a, b, nil)
	undirected, _ := g.AddEdge(a, b, nil, core.WithUndirected())

	// Directed edges cross tail→head only.
	got, err := directed.OtherEnd(a)
	require.NoError(t, err)
	assert.Same(t, b, got)
	_, err = directed.OtherEnd(b)
	assert.ErrorIs(t, err, core.ErrEndpointMismatch)

	// Undirected edges cross either way.
	got, err = undirected.OtherEnd(b)
	require.NoError(t, err)
	assert.Same(t, a, got)

	// Non-endpoints are rejected.
	_, err = directed.OtherEnd(c)
	assert.ErrorIs(t, err, core.ErrEndpointMismatch)
	_, err = directed.OtherEnd(nil)
	assert.ErrorIs(t, err, core.ErrNilElement)
}

func TestGraph_Lookup(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A", nil)
	g.AddNode("B", nil)
	g.AddEdge("A", "B", nil, core.WithEdgeName("ab"))

	n, err := g.Node("A")
	require.NoError(t, err)
	assert.Equal(t, "A", n.Name())

	e, err := g.Edge("ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", e.Name())

	_, err = g.Node("Z")
	assert.True(t, errors.Is(err, core.ErrElementNotFound))
	_, err = g.Edge("zz")
	assert.True(t, errors.Is(err, core.ErrElementNotFound))
}

func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	g.AddNode("A", core.Attrs{"x": 1})
	g.AddNode("B", nil)
	g.AddEdge("A", "B", core.Attrs{"w": 2}, core.WithEdgeName("ab"), core.WithUndirected())

	cp := g.Clone()
	require.Equal(t, g.Order(), cp.Order())
	require.Equal(t, g.Size(), cp.Size())

	// Copies are fresh: mutating the clone leaves the original alone.
	cpA, _ := cp.Node("A")
	cpA.Attrs()["x"] = 99
	origA, _ := g.Node("A")
	assert.Equal(t, 1, origA.Attrs()["x"])

	cp.RemoveNode("B")
	assert.True(t, g.HasNode("B"))
	assert.True(t, g.HasEdge("ab"))
}

func edgeNames(edges []*core.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Name()
	}

	return out
}
