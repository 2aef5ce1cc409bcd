package report

import (
	"os"

	"github.com/rhartert/lsroute/spf"
)

func ExampleWrite() {
	topo := spf.SampleTopology()
	tree, _ := spf.Compute(topo.Matrix(), 0)

	Write(os.Stdout, tree, topo.Labels)

	// Output:
	// Shortest paths from a:
	// a -> b = 2 (a->b)
	// a -> c = 3 (a->b->c)
	// a -> d = 4 (a->b->d)
	// a -> e = 4 (a->b->c->e)
	// a -> f = 7 (a->b->c->f)
	// a -> g = 7 (a->b->d->g)
}

func ExampleWrite_unreachable() {
	g := spf.Matrix{
		{0, 3, 0},
		{3, 0, 0},
		{0, 0, 0},
	}
	tree, _ := spf.Compute(g, 1)

	Write(os.Stdout, tree, nil) // no names: routers are printed as IDs

	// Output:
	// Shortest paths from 1:
	// 1 -> 0 = 3 (1->0)
	// 1 -> 2 = unreachable
}

func ExampleWriteRoutes() {
	topo := spf.SampleTopology()
	tree, _ := spf.Compute(topo.Matrix(), 6)

	WriteRoutes(os.Stdout, spf.NewRoutingTable(tree), topo.Labels)

	// Output:
	// Routing table of g:
	// a via d cost 7
	// b via d cost 5
	// c via f cost 6
	// d via d cost 3
	// e via e cost 5
	// f via f cost 2
}

func ExampleWriteNextHops() {
	topo := spf.SampleTopology()
	hops, _ := spf.NextHops(topo.Matrix(), 2)

	WriteNextHops(os.Stdout, 2, hops, topo.Labels)

	// Output:
	// Next hops of c:
	// a via b
	// b via b
	// d via b, d, e
	// e via e
	// f via f
	// g via b, d, e, f
}
