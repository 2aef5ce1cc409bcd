package spf

// Edge represents a bidirectional link between two routers.
type Edge struct {
	From int
	To   int
	Cost int
}

// Topology represents a network of named routers connected by bidirectional
// links.
type Topology struct {
	Labels []string
	Edges  []Edge

	// Nexts[u] lists the indices in Edges of the links attached to router u.
	Nexts [][]int

	index map[string]int
}

// NewTopology creates a new topology with the specified router labels and
// links. The number of routers is len(labels). It is important to ensure that
// links are only between routers within the range [0, len(labels)); otherwise,
// the function will panic.
func NewTopology(labels []string, edges []Edge) *Topology {
	t := &Topology{
		Labels: make([]string, len(labels)),
		Edges:  make([]Edge, len(edges)),
		Nexts:  make([][]int, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		t.Labels[i] = l
		if _, ok := t.index[l]; !ok {
			t.index[l] = i
		}
	}
	for i, e := range edges {
		t.Edges[i] = e
		t.Nexts[e.From] = append(t.Nexts[e.From], i)
		if e.From != e.To {
			t.Nexts[e.To] = append(t.Nexts[e.To], i)
		}
	}
	return t
}

// Len returns the number of routers in the topology.
func (t *Topology) Len() int {
	return len(t.Labels)
}

// Label returns the label of router u.
func (t *Topology) Label(u int) string {
	return t.Labels[u]
}

// Index returns the ID of the first router with the given label.
func (t *Topology) Index(label string) (int, bool) {
	u, ok := t.index[label]
	return u, ok
}

// Matrix returns the adjacency matrix of the topology. If several links
// connect the same pair of routers, the cheapest one is kept. Links with a
// zero cost and self-loops cannot be represented and are ignored.
func (t *Topology) Matrix() Matrix {
	n := len(t.Labels)
	m := make(Matrix, n)
	for u := range m {
		m[u] = make([]int, n)
		for _, i := range t.Nexts[u] {
			e := t.Edges[i]
			v := e.To
			if v == u {
				v = e.From
			}
			if v == u || e.Cost == 0 {
				continue
			}
			if c := m[u][v]; c == 0 || e.Cost < c {
				m[u][v] = e.Cost
			}
		}
	}
	return m
}

// SampleTopology returns a network of seven routers a..g used as the default
// network by the example program.
func SampleTopology() *Topology {
	const (
		a = iota
		b
		c
		d
		e
		f
		g
	)
	return NewTopology(
		[]string{"a", "b", "c", "d", "e", "f", "g"},
		[]Edge{
			{a, b, 2},
			{a, c, 5},
			{b, c, 1},
			{b, d, 2},
			{c, d, 3},
			{c, e, 1},
			{c, f, 4},
			{d, e, 2},
			{d, g, 3},
			{e, g, 5},
			{f, g, 2},
		},
	)
}
