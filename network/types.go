package network

import (
	"errors"
	"fmt"
)

// ErrInvalidTopology is the base sentinel for every topology validation
// failure. All specific sentinels below wrap it, so callers can match the
// whole family with errors.Is(err, ErrInvalidTopology).
var ErrInvalidTopology = errors.New("network: invalid topology")

// Specific validation sentinels. Each wraps ErrInvalidTopology.
var (
	// ErrEmptyNodeID indicates a node with an empty identifier.
	ErrEmptyNodeID = fmt.Errorf("%w: empty node ID", ErrInvalidTopology)

	// ErrDuplicateNode indicates two nodes sharing the same identifier.
	ErrDuplicateNode = fmt.Errorf("%w: duplicate node ID", ErrInvalidTopology)

	// ErrUnknownNode indicates an edge or demand referencing a node that is
	// not part of the node set.
	ErrUnknownNode = fmt.Errorf("%w: unknown node reference", ErrInvalidTopology)

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = fmt.Errorf("%w: self-loop edge", ErrInvalidTopology)

	// ErrDuplicateEdge indicates a second edge between the same endpoint pair.
	ErrDuplicateEdge = fmt.Errorf("%w: duplicate edge", ErrInvalidTopology)

	// ErrNegativeCapacity indicates an edge with capacity < 0.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidTopology)

	// ErrNegativeCost indicates an edge with cost < 0.
	ErrNegativeCost = fmt.Errorf("%w: negative cost", ErrInvalidTopology)

	// ErrNonPositiveFlow indicates a demand with flow <= 0.
	ErrNonPositiveFlow = fmt.Errorf("%w: non-positive demand flow", ErrInvalidTopology)
)

// Node is a vertex of the routing topology. Identity only; no mutable state.
type Node struct {
	// ID uniquely identifies this node within its Network.
	ID string
}

// Edge is an undirected link between two nodes.
//
// Capacity bounds the flow the link may carry without penalty; Cost is the
// per-unit-of-flow price of traversing it. Both are fixed once loaded.
type Edge struct {
	From     string  // one endpoint
	To       string  // the other endpoint
	Capacity float64 // >= 0
	Cost     float64 // >= 0
}

// Demand is a required flow between a source and a destination node that a
// candidate solution must route (or pay an unmet penalty for).
type Demand struct {
	Src  string  // source node ID
	Dst  string  // destination node ID
	Flow float64 // > 0
}

// Arc is one direction of an undirected edge as seen from a node's adjacency
// list. ToIndex and EdgeIndex are dense indices into the Network's node and
// edge slices, so hot loops never touch a map.
type Arc struct {
	To        string // neighbor node ID
	ToIndex   int    // dense index of the neighbor
	EdgeIndex int    // dense index of the underlying edge
}
