package spf

import "container/heap"

type queueItem struct {
	node  int
	cost  int
	index int // position of the item in the heap
}

// minQueue is an indexed min-heap of nodes ordered by (cost, node). Each node
// is in the queue at most once; putting a node already in the queue updates
// its cost in place.
type minQueue struct {
	items []*queueItem
	nodes []*queueItem // nodes[v] is v's item or nil if v is not queued
}

func newMinQueue(nNodes int) *minQueue {
	return &minQueue{
		items: make([]*queueItem, 0, nNodes),
		nodes: make([]*queueItem, nNodes),
	}
}

func (q *minQueue) Len() int { return len(q.items) }

func (q *minQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.node < b.node
}

func (q *minQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push is called by heap.Push. Use put instead.
func (q *minQueue) Push(x any) {
	it := x.(*queueItem)
	it.index = len(q.items)
	q.items = append(q.items, it)
	q.nodes[it.node] = it
}

// Pop is called by heap.Pop. Use pop instead.
func (q *minQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items[n-1] = nil
	q.items = q.items[:n-1]
	q.nodes[it.node] = nil
	it.index = -1
	return it
}

// put inserts node with the given cost or updates its cost if node is
// already queued.
func (q *minQueue) put(node int, cost int) {
	if it := q.nodes[node]; it != nil {
		it.cost = cost
		heap.Fix(q, it.index)
		return
	}
	heap.Push(q, &queueItem{node: node, cost: cost})
}

// pop removes and returns the node with the smallest cost. The queue must not
// be empty.
func (q *minQueue) pop() (node int, cost int) {
	it := heap.Pop(q).(*queueItem)
	return it.node, it.cost
}
