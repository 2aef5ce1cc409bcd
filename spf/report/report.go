// Package report formats shortest-path trees and routing tables for humans.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/rhartert/lsroute/spf"
)

// PathSeparator separates consecutive routers in printed paths.
const PathSeparator = "->"

// Write prints the distance and path from the tree's source to every other
// router, in the following format:
//
//	Shortest paths from a:
//	a -> b = 2 (a->b)
//	a -> c = unreachable
//
// Routers are printed with their name in names, or with their ID if names
// has no entry for them.
func Write(w io.Writer, t *spf.Tree, names []string) error {
	bw := bufio.NewWriter(w)
	src := name(names, t.Source)
	fmt.Fprintf(bw, "Shortest paths from %s:\n", src)
	for v := 0; v < t.Len(); v++ {
		if v == t.Source {
			continue
		}
		d, ok := t.Distance(v)
		if !ok {
			fmt.Fprintf(bw, "%s -> %s = unreachable\n", src, name(names, v))
			continue
		}
		p, _ := t.Path(v)
		fmt.Fprintf(bw, "%s -> %s = %d (%s)\n", src, name(names, v), d, p.Format(names, PathSeparator))
	}
	return bw.Flush()
}

// WriteRoutes prints the routing table, one route per line:
//
//	Routing table of a:
//	b via b cost 2
func WriteRoutes(w io.Writer, rt *spf.RoutingTable, names []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Routing table of %s:\n", name(names, rt.Source))
	for _, r := range rt.Routes() {
		fmt.Fprintf(bw, "%s via %s cost %d\n", name(names, r.Destination), name(names, r.NextHop), r.Cost)
	}
	return bw.Flush()
}

// WriteNextHops prints the equal-cost next hops of src toward each
// destination, as returned by spf.NextHops.
//
//	Next hops of c:
//	g via b, d, e, f
func WriteNextHops(w io.Writer, src int, hops [][]int, names []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Next hops of %s:\n", name(names, src))
	for v, hs := range hops {
		if v == src {
			continue
		}
		if len(hs) == 0 {
			fmt.Fprintf(bw, "%s unreachable\n", name(names, v))
			continue
		}
		fmt.Fprintf(bw, "%s via ", name(names, v))
		for i, h := range hs {
			if i > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(name(names, h))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

func name(names []string, v int) string {
	if 0 <= v && v < len(names) {
		return names[v]
	}
	return strconv.Itoa(v)
}
