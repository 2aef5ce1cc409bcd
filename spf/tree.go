package spf

import "github.com/rhartert/lsroute/spf/paths"

// Tree is the shortest-path tree computed from a single source.
type Tree struct {
	// Source is the root of the tree.
	Source int

	// Dist[v] is the cost of the shortest path from Source to v, or Infinity
	// if v is unreachable.
	Dist []int

	// Paths[v] is one shortest path from Source to v. The path of an
	// unreachable node is the trivial path made of Source only.
	Paths []paths.Path

	// Order lists the nodes in the order they were finalized, starting with
	// Source. Unreachable nodes never appear in Order.
	Order []int
}

// Len returns the number of nodes covered by the tree.
func (t *Tree) Len() int {
	return len(t.Dist)
}

// Reachable returns true if there is a path from the source to node v.
func (t *Tree) Reachable(v int) bool {
	return t.Dist[v] != Infinity
}

// Distance returns the cost of the shortest path to v. The second returned
// value is false if v is unreachable.
func (t *Tree) Distance(v int) (int, bool) {
	if !t.Reachable(v) {
		return Infinity, false
	}
	return t.Dist[v], true
}

// Path returns a shortest path to v. The second returned value is false if v
// is unreachable.
func (t *Tree) Path(v int) (paths.Path, bool) {
	if !t.Reachable(v) {
		return nil, false
	}
	return t.Paths[v], true
}
