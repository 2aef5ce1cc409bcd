package spf

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

// Frontier identifies the strategy used to select the next node to finalize.
// All strategies select nodes in the same order: the unvisited node with the
// smallest finite distance, ties broken in favor of the smallest node ID.
type Frontier int8

const (
	// ScanFrontier scans all the nodes at each iteration. This is the best
	// choice for small and dense graphs.
	ScanFrontier Frontier = iota

	// HeapFrontier maintains the tentative distances in an indexed heap.
	HeapFrontier
)

func (f Frontier) String() string {
	switch f {
	case ScanFrontier:
		return "scan"
	case HeapFrontier:
		return "heap"
	default:
		return fmt.Sprintf("Frontier(%d)", int8(f))
	}
}

// ParseFrontier returns the frontier with the given name.
func ParseFrontier(name string) (Frontier, error) {
	switch name {
	case "scan":
		return ScanFrontier, nil
	case "heap":
		return HeapFrontier, nil
	default:
		return 0, fmt.Errorf("unknown frontier %q", name)
	}
}

type frontier interface {
	// update records that the tentative distance of node v is now d.
	update(v int, d int)

	// next removes and returns the next node to finalize, or -1 if all the
	// remaining nodes are unreachable.
	next() int
}

type scanFrontier struct {
	dist    []int
	visited *sparsesets.Set
}

func (f *scanFrontier) update(int, int) {}

func (f *scanFrontier) next() int {
	best := Infinity
	u := -1
	for v, d := range f.dist {
		if !f.visited.Contains(v) && d < best {
			best = d
			u = v
		}
	}
	return u
}

// heapFrontier keeps the tentative distances of the nodes reached so far in
// an indexed heap ordered by (distance, ID).
type heapFrontier struct {
	queue *minQueue
}

func newHeapFrontier(n int) *heapFrontier {
	return &heapFrontier{queue: newMinQueue(n)}
}

func (f *heapFrontier) update(v int, d int) {
	f.queue.put(v, d)
}

func (f *heapFrontier) next() int {
	if f.queue.Len() == 0 {
		return -1
	}
	u, _ := f.queue.pop()
	return u
}
