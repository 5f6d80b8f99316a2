package shortest

import (
	"container/heap"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Solver routes every demand along its cheapest path by cost, ignoring
// capacity. It is deterministic and parameter-free.
type Solver struct{}

// New returns the baseline solver.
func New() *Solver { return &Solver{} }

// Name implements solver.Solver.
func (s *Solver) Name() string { return "dijkstra" }

// Solve implements solver.Solver. The history has exactly one entry: there
// is nothing iterative about an exact shortest-path computation.
func (s *Solver) Solve(net *network.Network, ev *fitness.Evaluator) (solver.Result, error) {
	if net == nil {
		return solver.Result{}, solver.ErrNilNetwork
	}
	if ev == nil {
		return solver.Result{}, solver.ErrNilEvaluator
	}

	demands := net.Demands()
	cand := fitness.Candidate{Paths: make([][]string, len(demands))}

	var i int
	for i = range demands {
		cand.Paths[i] = dijkstra(net, demands[i].Src, demands[i].Dst)
	}

	sc := ev.Evaluate(cand)

	return solver.Result{
		Best:    cand,
		Score:   sc,
		History: []solver.Iteration{{Best: sc.Total, Mean: sc.Total}},
	}, nil
}

// pqItem is one entry of the lazy-deletion priority queue.
type pqItem struct {
	node int
	dist float64
}

// pq orders by distance, ties by node index for full determinism.
type pq []pqItem

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}

	return q[i].node < q[j].node
}
func (q pq) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// dijkstra returns the cheapest src→dst path by edge cost, or nil when dst
// is unreachable (the evaluator penalizes the demand as unmet).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func dijkstra(net *network.Network, src, dst string) []string {
	srcIdx, ok := net.NodeIndex(src)
	if !ok {
		return nil
	}
	dstIdx, ok := net.NodeIndex(dst)
	if !ok {
		return nil
	}

	const unreached = -1

	var (
		n       = net.NodeCount()
		dist    = make([]float64, n)
		prev    = make([]int, n)
		settled = make([]bool, n)
		i       int
	)
	for i = 0; i < n; i++ {
		dist[i] = 0
		prev[i] = unreached
	}

	q := &pq{{node: srcIdx, dist: 0}}
	prev[srcIdx] = srcIdx

	var (
		cur  pqItem
		arcs []network.Arc
		nd   float64
		to   int
	)
	for q.Len() > 0 {
		cur = heap.Pop(q).(pqItem)
		if settled[cur.node] {
			continue // stale lazy-deletion entry
		}
		settled[cur.node] = true
		if cur.node == dstIdx {
			break
		}

		arcs = net.NeighborsAt(cur.node)
		for i = range arcs {
			to = arcs[i].ToIndex
			if settled[to] {
				continue
			}
			nd = cur.dist + net.EdgeAt(arcs[i].EdgeIndex).Cost
			if prev[to] == unreached || nd < dist[to] {
				dist[to] = nd
				prev[to] = cur.node
				heap.Push(q, pqItem{node: to, dist: nd})
			}
		}
	}

	if !settled[dstIdx] {
		return nil
	}

	// Reconstruct by walking predecessors back to the source.
	rev := []int{dstIdx}
	for i = dstIdx; i != srcIdx; i = prev[i] {
		rev = append(rev, prev[i])
	}

	path := make([]string, len(rev))
	for i = range rev {
		path[i] = net.NodeID(rev[len(rev)-1-i])
	}

	return path
}
