// Package shortest is the non-learning comparator: per-demand Dijkstra over
// edge cost, capacity-blind. It implements the same Solver interface as the
// metaheuristics so the experiment runner can report it alongside them — its
// score is the floor every engine should approach when capacities are slack,
// and a reference point (not a bound) when they are tight, since Dijkstra
// ignores congestion entirely.
package shortest
