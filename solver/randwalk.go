package solver

import (
	"math/rand"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// RandomWalk builds a random simple path from src to dst by repeatedly
// stepping to a uniformly chosen unvisited neighbor. It returns nil when the
// walk dead-ends or exceeds maxHops before reaching dst — callers treat that
// as a failed path and let the evaluator penalize it.
//
// Contracts:
//   - src and dst must be node IDs of net (unknown IDs simply fail the walk);
//   - maxHops >= 1; the result has at most maxHops edges;
//   - the visited set forbids revisits, so the walk always terminates and the
//     returned path is simple.
//
// Determinism: depends only on rng state and net's sorted adjacency order.
//
// Complexity: O(maxHops · maxDegree) time, O(V) space.
func RandomWalk(net *network.Network, src, dst string, maxHops int, rng *rand.Rand) []string {
	cur, ok := net.NodeIndex(src)
	if !ok {
		return nil
	}
	if _, ok = net.NodeIndex(dst); !ok {
		return nil
	}

	path := make([]string, 1, maxHops+1)
	path[0] = src
	if src == dst {
		return path
	}

	visited := make([]bool, net.NodeCount())
	visited[cur] = true

	// Scratch reused across steps to avoid per-hop allocations.
	candidates := make([]network.Arc, 0, 8)

	var (
		hop  int
		arcs []network.Arc
		next network.Arc
		i    int
	)
	for hop = 0; hop < maxHops; hop++ {
		arcs = net.NeighborsAt(cur)
		candidates = candidates[:0]
		for i = range arcs {
			if !visited[arcs[i].ToIndex] {
				candidates = append(candidates, arcs[i])
			}
		}
		if len(candidates) == 0 {
			return nil // dead end
		}

		next = candidates[rng.Intn(len(candidates))]
		path = append(path, next.To)
		visited[next.ToIndex] = true
		cur = next.ToIndex

		if next.To == dst {
			return path
		}
	}

	return nil // hop bound exceeded
}
