// Package antcolony implements Ant Colony Optimization over the shared
// routing model: per-edge pheromone trails guide probabilistic path
// construction, evaporation forgets stale information, and the iteration-best
// solution reinforces the edges it used.
//
// Construction rule (per ant, per demand, per hop): the probability of
// stepping along edge e to an unvisited neighbor is proportional to
//
//	τ(e)^Alpha · η(e)^Beta      with η(e) = 1 / (cost(e) + 0.1)
//
// normalized over the admissible neighbors; a dead end or an exhausted hop
// bound fails the path, which the evaluator penalizes as unmet.
//
// Update rule (per iteration, after all ants finish): every edge evaporates
// by factor (1 − Evaporation) and is clamped to MinPheromone so exploration
// never dies out entirely; then the edges of the iteration-best candidate
// receive Deposit / score extra pheromone — cheaper solutions reinforce more.
//
// Pheromone lives in one dense slice indexed by edge, owned exclusively by
// the running solve. With Workers > 0 the ants of an iteration construct in
// parallel on a goroutine pool; they only read pheromone, each draws from its
// own derived RNG stream, and results land in pre-indexed slots, so the
// outcome is bit-identical to the sequential run. The pheromone update
// happens strictly after the construction barrier.
package antcolony
