// Package agopt compares metaheuristic routing strategies on capacitated
// networks: given a topology (nodes, undirected cost/capacity edges) and a
// set of traffic demands, each engine searches for one path per demand that
// minimizes total routing cost plus congestion and infeasibility penalties.
//
// The module is organized as small focused packages:
//
//	network/    — validated immutable topology model with dense indices
//	fitness/    — pure candidate evaluation (cost + overload + unmet penalties)
//	solver/     — shared Solver interface, seeded RNG streams, random walks
//	genetic/    — genetic algorithm engine
//	antcolony/  — ant colony optimization engine (optionally parallel ants)
//	qlearning/  — tabular Q-learning engine
//	shortest/   — deterministic Dijkstra baseline (ignores capacity)
//	experiment/ — comparative runner, YAML config, CSV topology I/O, sinks
//	cmd/agopt   — the experiment CLI
//
// All engines share one convention: scores are totals to minimize, runs are
// reproducible from a single int64 seed, and evaluation never mutates the
// network.
package agopt
