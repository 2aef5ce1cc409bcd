// Package paths provides a small representation of routing paths as ordered
// sequences of router IDs.
package paths

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of node IDs going from a source (first element)
// to a destination (last element).
//
// Paths returned by this package never share their backing array, so a path
// can be extended without affecting the path it was derived from.
type Path []int

// New returns the trivial path made of the single node src.
func New(src int) Path {
	return Path{src}
}

// Extend returns a new path made of p followed by node.
func (p Path) Extend(node int) Path {
	np := make(Path, len(p)+1)
	copy(np, p)
	np[len(p)] = node
	return np
}

// Len returns the length of the path in terms of nodes.
func (p Path) Len() int {
	return len(p)
}

// Source returns the first node of the path. It panics if the path is empty.
func (p Path) Source() int {
	return p[0]
}

// Destination returns the last node of the path. It panics if the path is
// empty.
func (p Path) Destination() int {
	return p[len(p)-1]
}

// Equal returns true if both paths visit the same nodes in the same order.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Format returns the path with each node replaced by its name in names and
// joined by sep. Nodes without a name are printed as their ID.
func (p Path) Format(names []string, sep string) string {
	sb := strings.Builder{}
	for i, n := range p {
		if i > 0 {
			sb.WriteString(sep)
		}
		if 0 <= n && n < len(names) {
			sb.WriteString(names[n])
		} else {
			sb.WriteString(fmt.Sprintf("%d", n))
		}
	}
	return sb.String()
}

// String returns a string representation of the path as a sequence of nodes
// separated by " -> ". For example: "0 -> 4 -> 3 -> 1".
func (p Path) String() string {
	return p.Format(nil, " -> ")
}
