// Package graphine is an in-memory playground for attributed graphs:
// build directed, undirected, or mixed multigraphs whose nodes and edges
// carry arbitrary application data, then query, traverse, and combine
// them.
//
// What you get:
//
//   - Core primitives: named nodes & edges with open attribute bags,
//     bidirectional adjacency tracking, cascading removal
//   - Traversals: one selector-driven engine powering DFS, BFS, and
//     custom heuristic orders, plus caller-driven interactive walks
//   - Shortest paths: Dijkstra-style relaxation with pluggable weights
//   - Connectivity: weak and strong components
//   - Structural algebra: union, intersection, difference, merge,
//     induced subgraphs, edge contraction
//
// Everything is organized under five subpackages:
//
//	core/       fundamental Graph, Node, Edge types and mutations
//	traverse/   traversal engine and interactive walks
//	paths/      single-source shortest paths
//	components/ weak and strong connectivity
//	setops/     pure graph algebra producing new graphs
//
// Two comparison regimes run through the whole library and are never
// conflated: identity (the stable name assigned at creation, used for
// storage and membership) and equivalence (keys derived from current
// attribute data, used by the algebra). See core.NodeKey and
// core.EdgeKey.
//
// The data model assumes exclusive single-writer access: no locking is
// performed, and mutating a graph during a traversal is a precondition
// violation. Guard externally if you share a graph across goroutines.
package graphine
