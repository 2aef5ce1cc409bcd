package spf

import (
	"fmt"
	"sort"

	"github.com/rhartert/sparsesets"
)

// Link is a directed link between two routers.
type Link struct {
	From int
	To   int
}

// ShortestDAG returns the DAG that encapsulates all the shortest paths from
// node src to all other nodes in g.
//
// The returned slice maps each node v to the sorted list of its predecessors
// u such that link (u, v) is part of at least one shortest path from src to v.
// If v is unreachable from src (or if v is src), its list is empty.
func ShortestDAG(g Matrix, src int) ([][]int, error) {
	prevs, _, err := shortestDAG(g, src)
	return prevs, err
}

// NextHops returns, for each destination, the sorted list of neighbors of src
// that are the first hop of at least one shortest path to that destination.
// The list is empty for src itself and for unreachable destinations.
func NextHops(g Matrix, src int) ([][]int, error) {
	prevs, costs, err := shortestDAG(g, src)
	if err != nil {
		return nil, err
	}

	n := len(g)
	byCost := make([]int, 0, n)
	for v, c := range costs {
		if c != Infinity {
			byCost = append(byCost, v)
		}
	}
	sort.SliceStable(byCost, func(i, j int) bool {
		return costs[byCost[i]] < costs[byCost[j]]
	})

	// Predecessors are always strictly closer to src than their successors
	// as link costs are positive. Processing nodes by increasing cost thus
	// guarantees that the hops of all predecessors are known.
	hops := make([][]int, n)
	set := sparsesets.New(n)
	for _, v := range byCost {
		if v == src {
			continue
		}
		set.Clear()
		for _, u := range prevs[v] {
			if u == src {
				set.Insert(v)
				continue
			}
			for _, h := range hops[u] {
				set.Insert(h)
			}
		}
		hops[v] = append([]int{}, set.Content()...)
		sort.Ints(hops[v])
	}

	return hops, nil
}

// SplitRatios computes the fraction of traffic sent on each link when sending
// traffic from node s to node t, assuming that each router splits its traffic
// evenly over all its shortest-path next hops toward t.
//
// The returned ratios respect the following invariants where in[n] is the
// total ratio on links reaching node n and out[n] the total ratio on links
// leaving n:
//   - in[s] = 0 and out[s] = 1,
//   - in[t] = 1 and out[t] = 0,
//   - in[n] = out[n] for all node n != s, t.
//
// The map is empty if s == t or if t is unreachable from s.
func SplitRatios(g Matrix, s int, t int) (map[Link]float64, error) {
	prevs, _, err := shortestDAG(g, s)
	if err != nil {
		return nil, err
	}
	if t < 0 || len(g) <= t {
		return nil, fmt.Errorf("%w: node %d is not in the graph", ErrInvalidInput, t)
	}
	return forwardingGraph(prevs, s, t), nil
}

// forwardingGraph operates in two phases. The first phase traverses prevs
// from t to s to extract the DAG of all the shortest paths from s to t. The
// second phase traverses that DAG in topological order so that the total
// ratio received by node u is known before it is split over u's links.
func forwardingGraph(prevs [][]int, s int, t int) map[Link]float64 {
	nNodes := len(prevs)
	ratios := make(map[Link]float64) // result
	if s == t {
		return ratios
	}

	// Step 1: extract DAG
	// -------------------
	nexts := make([][]int, nNodes)
	degrees := make([]int, nNodes)

	queue := []int{t}
	inQueue := sparsesets.New(nNodes)
	inQueue.Insert(t)

	for i := 0; i < len(queue); i++ {
		v := queue[i]
		degrees[v] = len(prevs[v])
		for _, u := range prevs[v] {
			if !inQueue.Contains(u) {
				queue = append(queue, u)
				inQueue.Insert(u)
			}
			nexts[u] = append(nexts[u], v)
		}
	}

	// Step 2: compute ratios
	// ----------------------
	nodeRatio := make([]float64, nNodes)

	queue = queue[:0] // reset
	queue = append(queue, s)
	nodeRatio[s] = 1.0
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, v := range nexts[u] {
			r := nodeRatio[u] / float64(len(nexts[u]))
			ratios[Link{u, v}] = r
			nodeRatio[v] += r

			degrees[v] -= 1
			if degrees[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return ratios
}

func shortestDAG(g Matrix, src int) ([][]int, []int, error) {
	if err := validate(g, src); err != nil {
		return nil, nil, err
	}

	nNodes := len(g)
	prevs := make([][]int, nNodes)
	costs := make([]int, nNodes)
	for i := range costs {
		costs[i] = Infinity
	}

	q := newMinQueue(nNodes)
	q.put(src, 0)
	costs[src] = 0

	for q.Len() > 0 {
		u, c := q.pop()

		for v, w := range g[u] {
			if w == 0 || v == u {
				continue
			}
			newCost := addCost(c, w)

			// Path src -> u -> v is worse than the best known path.
			if costs[v] < newCost {
				continue
			}

			// Path src -> u -> v is one of the best paths to v so far.
			if costs[v] == newCost {
				if newCost != Infinity {
					prevs[v] = append(prevs[v], u)
				}
				continue
			}

			// Path src -> u -> v is better than the best path to v so far.
			costs[v] = newCost
			prevs[v] = []int{u}
			q.put(v, newCost)
		}
	}

	for _, p := range prevs {
		sort.Ints(p)
	}
	return prevs, costs, nil
}
