// Package superbubble identifies superbubbles in an AlignableGraph: nested
// subgraphs with a unique entrance and unique exit such that every path
// from the entrance reaches the exit and vice versa, with no edges leaving
// or entering the region except through those two nodes.
//
// Superbubbles correspond exactly to edges that are simultaneously a
// dominator-tree edge and a postdominator-tree edge: entrance u immediately
// dominates exit v, and v immediately postdominates u. This package
// computes both trees from a single reverse-postorder DFS (the teacher's
// own topological-sort shape: vertex coloring, back-edge cycle detection,
// reverse post-order) and pairs them, rather than the stack-based online
// algorithm of Brankovic et al. -- see DESIGN.md for why that trade was
// made.
package superbubble
