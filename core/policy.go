package core

import "fmt"

// EdgePolicy validates or transforms an edge before the graph wires it in.
// Admit runs after endpoint resolution and attribute validation but before
// any graph state changes, so a veto leaves the graph untouched. Admit may
// mutate the candidate edge (for example to force it undirected).
//
// A policy replaces what would otherwise be a Graph subclass: select it at
// construction with WithEdgePolicy.
type EdgePolicy interface {
	Admit(g *Graph, e *Edge) error
}

// acyclicPolicy rejects edges that would create a cycle.
type acyclicPolicy struct{}

// Acyclic returns a policy for building DAGs: any edge whose insertion
// would make its start reachable from its end (including self-loops) is
// rejected with ErrCycleForbidden.
func Acyclic() EdgePolicy { return acyclicPolicy{} }

func (acyclicPolicy) Admit(g *Graph, e *Edge) error {
	if e.start == e.end {
		return fmt.Errorf("%w: self-loop on %q", ErrCycleForbidden, e.start.name)
	}
	if reachable(e.end, e.start) {
		return fmt.Errorf("%w: %q is reachable from %q", ErrCycleForbidden, e.start.name, e.end.name)
	}

	return nil
}

// reachable walks outgoing and undirected adjacency from src looking for
// dst. Local to the policy so core stays the dependency root.
func reachable(src, dst *Node) bool {
	if src == dst {
		return true
	}
	visited := map[*Node]bool{src: true}
	stack := []*Node{src}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range cur.outgoing {
			if e.end == dst {
				return true
			}
			if !visited[e.end] {
				visited[e.end] = true
				stack = append(stack, e.end)
			}
		}
		for _, e := range cur.bidirectional {
			other, err := e.OtherEnd(cur)
			if err != nil {
				continue
			}
			if other == dst {
				return true
			}
			if !visited[other] {
				visited[other] = true
				stack = append(stack, other)
			}
		}
	}

	return false
}

// undirectedPolicy forces every edge undirected.
type undirectedPolicy struct{}

// Undirected returns a policy that normalizes every inserted edge to
// undirected, regardless of options, yielding a purely undirected graph.
func Undirected() EdgePolicy { return undirectedPolicy{} }

func (undirectedPolicy) Admit(_ *Graph, e *Edge) error {
	e.directed = false

	return nil
}
