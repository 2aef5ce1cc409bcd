package spf

// Route is an entry of a routing table: traffic to Destination is forwarded
// to the neighbor NextHop and reaches Destination with a total cost of Cost.
type Route struct {
	Destination int
	NextHop     int
	Cost        int
}

// RoutingTable maps each reachable destination to the first hop of its
// shortest path from the table's source.
type RoutingTable struct {
	Source int
	routes []Route
	index  []int // index[v] is the position of v's route in routes or -1
}

// NewRoutingTable derives the routing table of the tree's source.
func NewRoutingTable(t *Tree) *RoutingTable {
	rt := &RoutingTable{
		Source: t.Source,
		index:  make([]int, t.Len()),
	}
	for v := range rt.index {
		rt.index[v] = -1
		if v == t.Source || !t.Reachable(v) {
			continue
		}
		p := t.Paths[v]
		rt.index[v] = len(rt.routes)
		rt.routes = append(rt.routes, Route{
			Destination: v,
			NextHop:     p[1],
			Cost:        t.Dist[v],
		})
	}
	return rt
}

// Route returns the route to dst. The second returned value is false if dst
// is the source, is unreachable, or is not a node of the tree.
func (rt *RoutingTable) Route(dst int) (Route, bool) {
	if dst < 0 || len(rt.index) <= dst || rt.index[dst] == -1 {
		return Route{}, false
	}
	return rt.routes[rt.index[dst]], true
}

// Routes returns all the routes ordered by destination.
//
// Important: the slice is a view on the table's internal structure and should
// only be used in read-only operations.
func (rt *RoutingTable) Routes() []Route {
	return rt.routes
}
