// Package spf computes shortest-path trees over small link-state topologies,
// the way a router running a link-state protocol derives its routes from its
// view of the network.
package spf

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/rhartert/lsroute/spf/paths"
	"github.com/rhartert/sparsesets"
)

type options struct {
	frontier Frontier
	logger   hclog.Logger
	onVisit  func(node int, dist int)
}

// Option configures a shortest-path computation.
type Option func(*options)

// WithFrontier sets the strategy used to select the next node to finalize.
// The default is ScanFrontier. The choice of frontier does not change the
// computed tree.
func WithFrontier(f Frontier) Option {
	return func(o *options) {
		o.frontier = f
	}
}

// WithLogger sets the logger used to trace the computation. Visits and
// relaxations are logged at the Trace level.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithVisitFunc registers a function called each time the distance of a node
// becomes final, starting with the source.
func WithVisitFunc(fn func(node int, dist int)) Option {
	return func(o *options) {
		o.onVisit = fn
	}
}

// Compute returns the shortest-path tree rooted at src in graph g.
//
// The returned error wraps ErrInvalidInput if g is not a square matrix of
// non-negative costs or if src is not one of its nodes. Unreachable nodes are
// not an error: their distance is Infinity.
func Compute(g Matrix, src int, opts ...Option) (*Tree, error) {
	return ComputeContext(context.Background(), g, src, opts...)
}

// ComputeContext is like Compute but stops early with the context's error if
// ctx is done. The context is checked once per finalized node.
func ComputeContext(ctx context.Context, g Matrix, src int, opts ...Option) (*Tree, error) {
	cfg := options{
		frontier: ScanFrontier,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, src); err != nil {
		return nil, err
	}

	n := len(g)
	dist := make([]int, n)
	tree := &Tree{
		Source: src,
		Dist:   dist,
		Paths:  make([]paths.Path, n),
		Order:  make([]int, 0, n),
	}
	for v := range dist {
		dist[v] = Infinity
		tree.Paths[v] = paths.New(src)
	}
	dist[src] = 0

	visited := sparsesets.New(n)
	var front frontier
	switch cfg.frontier {
	case ScanFrontier:
		front = &scanFrontier{dist: dist, visited: visited}
	case HeapFrontier:
		front = newHeapFrontier(n)
	default:
		return nil, fmt.Errorf("unsupported frontier: %s", cfg.frontier)
	}
	front.update(src, 0)

	settle := func(u int) {
		visited.Insert(u)
		tree.Order = append(tree.Order, u)
		cfg.logger.Trace("visit", "node", u, "dist", dist[u])
		if cfg.onVisit != nil {
			cfg.onVisit(u, dist[u])
		}
	}

	for i := 0; i < n-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("spf: computation interrupted: %w", err)
		}

		u := front.next()
		if u == -1 {
			cfg.logger.Debug("remaining nodes are unreachable", "source", src, "visited", len(tree.Order))
			return tree, nil
		}
		settle(u)

		for v, c := range g[u] {
			if c == 0 || visited.Contains(v) {
				continue
			}
			nd := addCost(dist[u], c)
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			tree.Paths[v] = tree.Paths[u].Extend(v)
			front.update(v, nd)
			cfg.logger.Trace("relax", "from", u, "to", v, "dist", nd)
		}
	}

	// After n-1 iterations, at most one node is left. Its distance is already
	// final since there is no unvisited node left to relax.
	if u := front.next(); u != -1 {
		settle(u)
	}

	return tree, nil
}

// addCost returns d+c saturated at Infinity.
func addCost(d int, c int) int {
	if d == Infinity || c > Infinity-d {
		return Infinity
	}
	return d + c
}
