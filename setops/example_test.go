package setops_test

import (
	"fmt"

	"github.com/PatrickLaban/graphine/core"
	"github.com/PatrickLaban/graphine/setops"
)

// Union keeps everything; Merge collapses elements that carry the same
// data. The operands are never touched.
func ExampleMerge() {
	east := core.NewGraph()
	east.AddNode("hub", core.Attrs{"zone": "central"})
	east.AddNode("e1", core.Attrs{"zone": "east"})
	east.AddEdge("hub", "e1", core.Attrs{"kind": "trunk"}, core.WithEdgeName("t-e"))

	west := core.NewGraph()
	west.AddNode("center", core.Attrs{"zone": "central"}) // same data as hub
	west.AddNode("w1", core.Attrs{"zone": "west"})
	west.AddEdge("center", "w1", core.Attrs{"kind": "trunk"}, core.WithEdgeName("t-w"))

	u, _ := setops.Union(east, west)
	m, _ := setops.Merge(east, west)

	fmt.Println("union:", u.Order(), "nodes,", u.Size(), "edges")
	fmt.Println("merge:", m.Order(), "nodes,", m.Size(), "edges")

	// Output:
	// union: 4 nodes, 2 edges
	// merge: 3 nodes, 2 edges
}

// Carve the neighborhood of one node out of a larger graph.
func ExampleInduce() {
	g := core.NewGraph()
	for _, n := range []string{"core", "web", "cache", "api", "db"} {
		g.AddNode(n, nil)
	}
	g.AddEdge("web", "cache", nil, core.WithEdgeName("l1"))
	g.AddEdge("api", "core", nil, core.WithEdgeName("l2"))
	g.AddEdge("core", "db", nil, core.WithEdgeName("l3"))

	sub, _ := setops.Induce(g, "api", "core", "db")
	fmt.Println("nodes:", sub.Order(), "edges:", sub.Size())
	fmt.Println("kept l2:", sub.HasEdge("l2"), "kept l1:", sub.HasEdge("l1"))

	// Output:
	// nodes: 3 edges: 2
	// kept l2: true kept l1: false
}
