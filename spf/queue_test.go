package spf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type queueOp struct {
	pop  bool
	node int
	cost int
}

func TestMinQueue(t *testing.T) {
	testCases := []struct {
		desc string
		n    int
		ops  []queueOp
		want [][2]int // (node, cost) pairs popped, in order
	}{
		{
			desc: "ordered by cost",
			n:    4,
			ops:  []queueOp{{node: 0, cost: 5}, {node: 1, cost: 2}, {node: 2, cost: 9}, {node: 3, cost: 1}},
			want: [][2]int{{3, 1}, {1, 2}, {0, 5}, {2, 9}},
		},
		{
			desc: "ties broken by node",
			n:    4,
			ops:  []queueOp{{node: 3, cost: 1}, {node: 1, cost: 1}, {node: 2, cost: 1}, {node: 0, cost: 4}},
			want: [][2]int{{1, 1}, {2, 1}, {3, 1}, {0, 4}},
		},
		{
			desc: "decrease cost in place",
			n:    3,
			ops:  []queueOp{{node: 0, cost: 5}, {node: 1, cost: 6}, {node: 2, cost: 7}, {node: 2, cost: 1}},
			want: [][2]int{{2, 1}, {0, 5}, {1, 6}},
		},
		{
			desc: "update after pops",
			n:    6,
			ops: []queueOp{
				{node: 2, cost: 7},
				{node: 3, cost: 9},
				{pop: true},
				{node: 1, cost: 14},
				{node: 3, cost: 8},
				{node: 4, cost: 8},
				{pop: true},
				{node: 1, cost: 10},
				{pop: true},
			},
			want: [][2]int{{2, 7}, {3, 8}, {4, 8}, {1, 10}},
		},
		{
			desc: "node queued again after its pop",
			n:    2,
			ops:  []queueOp{{node: 0, cost: 3}, {pop: true}, {node: 1, cost: 4}, {node: 0, cost: 2}},
			want: [][2]int{{0, 3}, {0, 2}, {1, 4}},
		},
		{
			desc: "infinite costs",
			n:    3,
			ops:  []queueOp{{node: 0, cost: Infinity}, {node: 1, cost: Infinity - 1}, {node: 2, cost: Infinity}},
			want: [][2]int{{1, Infinity - 1}, {0, Infinity}, {2, Infinity}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			q := newMinQueue(tc.n)
			var got [][2]int
			for _, op := range tc.ops {
				if op.pop {
					u, c := q.pop()
					got = append(got, [2]int{u, c})
					continue
				}
				q.put(op.node, op.cost)
			}
			for q.Len() > 0 {
				u, c := q.pop()
				got = append(got, [2]int{u, c})
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("pop order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
