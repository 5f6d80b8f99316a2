package network

import (
	"fmt"
	"sort"
)

// Network is the immutable routing topology shared by all solvers.
//
// Nodes and edges carry dense indices assigned in input order; adjacency
// lists are sorted by neighbor ID so that any traversal respecting list
// order is deterministic.
type Network struct {
	nodes     []Node
	edges     []Edge
	demands   []Demand
	nodeIndex map[string]int // node ID -> dense index
	edgeByKey map[string]int // canonical "u|v" -> dense edge index
	adjacency [][]Arc        // adjacency[nodeIndex], sorted by Arc.To
}

// Build validates the given topology and assembles a Network.
//
// Contracts:
//   - every Edge and Demand endpoint must exist in nodes;
//   - Edge.Capacity >= 0, Edge.Cost >= 0, Demand.Flow > 0;
//   - node IDs unique and non-empty; no self-loops; no duplicate edges.
//
// On any violation Build returns a sentinel wrapping ErrInvalidTopology and
// no partial Network.
//
// Complexity: O(V + E·log E + D) time, O(V + E) space.
func Build(nodes []Node, edges []Edge, demands []Demand) (*Network, error) {
	n := &Network{
		nodes:     make([]Node, len(nodes)),
		edges:     make([]Edge, len(edges)),
		demands:   make([]Demand, len(demands)),
		nodeIndex: make(map[string]int, len(nodes)),
		edgeByKey: make(map[string]int, len(edges)),
		adjacency: make([][]Arc, len(nodes)),
	}

	// Stage 1: nodes — unique, non-empty IDs; indices follow input order.
	var (
		i  int
		ok bool
	)
	for i = range nodes {
		if nodes[i].ID == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyNodeID, i)
		}
		if _, ok = n.nodeIndex[nodes[i].ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, nodes[i].ID)
		}
		n.nodeIndex[nodes[i].ID] = i
		n.nodes[i] = nodes[i]
	}

	// Stage 2: edges — known endpoints, sane numeric fields, no dupes/loops.
	var (
		e      Edge
		fi, ti int
		key    string
	)
	for i = range edges {
		e = edges[i]
		if fi, ok = n.nodeIndex[e.From]; !ok {
			return nil, fmt.Errorf("%w: edge %q-%q", ErrUnknownNode, e.From, e.To)
		}
		if ti, ok = n.nodeIndex[e.To]; !ok {
			return nil, fmt.Errorf("%w: edge %q-%q", ErrUnknownNode, e.From, e.To)
		}
		if fi == ti {
			return nil, fmt.Errorf("%w: %q", ErrSelfLoop, e.From)
		}
		if e.Capacity < 0 {
			return nil, fmt.Errorf("%w: edge %q-%q (%g)", ErrNegativeCapacity, e.From, e.To, e.Capacity)
		}
		if e.Cost < 0 {
			return nil, fmt.Errorf("%w: edge %q-%q (%g)", ErrNegativeCost, e.From, e.To, e.Cost)
		}
		key = pairKey(e.From, e.To)
		if _, ok = n.edgeByKey[key]; ok {
			return nil, fmt.Errorf("%w: %q-%q", ErrDuplicateEdge, e.From, e.To)
		}
		n.edgeByKey[key] = i
		n.edges[i] = e

		// Undirected: one Arc per direction.
		n.adjacency[fi] = append(n.adjacency[fi], Arc{To: e.To, ToIndex: ti, EdgeIndex: i})
		n.adjacency[ti] = append(n.adjacency[ti], Arc{To: e.From, ToIndex: fi, EdgeIndex: i})
	}

	// Stage 3: demands — known endpoints, strictly positive flow.
	var d Demand
	for i = range demands {
		d = demands[i]
		if _, ok = n.nodeIndex[d.Src]; !ok {
			return nil, fmt.Errorf("%w: demand %q->%q", ErrUnknownNode, d.Src, d.Dst)
		}
		if _, ok = n.nodeIndex[d.Dst]; !ok {
			return nil, fmt.Errorf("%w: demand %q->%q", ErrUnknownNode, d.Src, d.Dst)
		}
		if d.Flow <= 0 {
			return nil, fmt.Errorf("%w: demand %q->%q (%g)", ErrNonPositiveFlow, d.Src, d.Dst, d.Flow)
		}
		n.demands[i] = d
	}

	// Stage 4: fix adjacency order — sorted by neighbor ID so that every
	// index-based traversal is reproducible.
	for i = range n.adjacency {
		arcs := n.adjacency[i]
		sort.Slice(arcs, func(a, b int) bool { return arcs[a].To < arcs[b].To })
	}

	return n, nil
}

// pairKey returns the canonical map key for an undirected endpoint pair.
func pairKey(u, v string) string {
	if u > v {
		u, v = v, u
	}

	return u + "\x00" + v
}

// NodeCount reports the number of nodes.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount reports the number of edges.
func (n *Network) EdgeCount() int { return len(n.edges) }

// DemandCount reports the number of demands.
func (n *Network) DemandCount() int { return len(n.demands) }

// Nodes returns the node list in dense-index order.
// The returned slice is shared; callers must not modify it.
func (n *Network) Nodes() []Node { return n.nodes }

// Edges returns the edge list in dense-index order.
// The returned slice is shared; callers must not modify it.
func (n *Network) Edges() []Edge { return n.edges }

// Demands returns the demand list in input order.
// The returned slice is shared; callers must not modify it.
func (n *Network) Demands() []Demand { return n.demands }

// NodeIndex resolves a node ID to its dense index.
func (n *Network) NodeIndex(id string) (int, bool) {
	idx, ok := n.nodeIndex[id]

	return idx, ok
}

// NodeID resolves a dense index back to the node ID.
// Panics on out-of-range index (programming error, not user input).
func (n *Network) NodeID(idx int) string { return n.nodes[idx].ID }

// EdgeAt returns the edge at the given dense index.
func (n *Network) EdgeAt(idx int) Edge { return n.edges[idx] }

// Neighbors returns the adjacency list of the node with the given ID, sorted
// by neighbor ID. The returned slice is shared; callers must not modify it.
// Unknown IDs yield a nil slice.
func (n *Network) Neighbors(id string) []Arc {
	idx, ok := n.nodeIndex[id]
	if !ok {
		return nil
	}

	return n.adjacency[idx]
}

// NeighborsAt returns the adjacency list of the node at the given dense
// index, sorted by neighbor ID. The returned slice is shared.
func (n *Network) NeighborsAt(idx int) []Arc { return n.adjacency[idx] }

// EdgeBetween returns the edge joining u and v, if any. Direction is
// irrelevant (undirected model).
func (n *Network) EdgeBetween(u, v string) (Edge, bool) {
	idx, ok := n.edgeByKey[pairKey(u, v)]
	if !ok {
		return Edge{}, false
	}

	return n.edges[idx], true
}

// EdgeIndexBetween returns the dense index of the edge joining u and v.
func (n *Network) EdgeIndexBetween(u, v string) (int, bool) {
	idx, ok := n.edgeByKey[pairKey(u, v)]

	return idx, ok
}

// DefaultMaxHops is the hop bound used by solvers when their options leave
// MaxHops at zero: twice the node count, enough for any simple path while
// still guaranteeing termination of randomized walks.
func (n *Network) DefaultMaxHops() int { return 2 * len(n.nodes) }
