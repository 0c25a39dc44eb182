package astar

// item is a node together with its search priority: f = g + h, and a
// strictly increasing insertion counter that breaks ties so FIFO order
// holds among equal-f nodes, per the spec's reproducibility requirement.
type item struct {
	n       *node
	f       int
	counter int
}

// openQueue is a min-heap of *item ordered by (f, counter) ascending,
// the same container/heap shape as the teacher's dijkstra.nodePQ.
type openQueue []*item

func (pq openQueue) Len() int { return len(pq) }

func (pq openQueue) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].counter < pq[j].counter
}

func (pq openQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openQueue) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *openQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
