// Package network defines the shared routing topology consumed by every
// solver in this module: nodes, undirected capacitated edges, and traffic
// demands, assembled once per experiment into an immutable Network.
//
// A Network is built from already-parsed lists (loading from files is the
// caller's concern) and validated eagerly:
//
//	net, err := network.Build(nodes, edges, demands)
//	if err != nil { ... } // errors.Is(err, network.ErrInvalidTopology)
//
// After Build succeeds the Network is read-only. It exposes:
//
//   - dense integer indices for nodes and edges, so solver state (pheromone
//     tables, Q-tables) can live in flat slices instead of identity-keyed maps;
//   - adjacency lists sorted by neighbor ID, so every traversal order is
//     deterministic given a fixed seed;
//   - O(1) edge lookup between two endpoints.
//
// Validation rules (all fatal at Build, no partial model is returned):
//
//	– every edge and demand endpoint must name an existing node;
//	– capacities and costs must be non-negative, demand flows strictly positive;
//	– node IDs must be unique and non-empty;
//	– self-loops and duplicate edges are rejected (undirected model).
//
// Complexity: Build is O(V + E·log E + D); all lookups are O(1) or O(deg).
package network
