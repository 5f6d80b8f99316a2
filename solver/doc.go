// Package solver defines the capability shared by all optimization engines
// in this module — "given a network and an evaluator, produce a best-found
// candidate plus a convergence history" — together with the deterministic
// randomness utilities every engine draws from.
//
// The three metaheuristics (genetic, antcolony, qlearning) and the exact
// shortest-path baseline all implement Solver, which is what lets the
// experiment runner treat them uniformly and makes their scores directly
// comparable: a single evaluator, a single "lower is better" convention.
//
// Determinism policy (applies module-wide):
//   - every engine owns exactly one seeded *rand.Rand, created via RNG;
//   - seed 0 maps to a fixed default, never to wall-clock time;
//   - independent substreams (parallel ants, repeated runs) are derived with
//     DeriveSeed/DeriveRNG, a SplitMix64-style mix, so results do not depend
//     on scheduling.
package solver
