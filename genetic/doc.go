// Package genetic implements a population-based search over routing
// candidates: tournament selection, per-demand uniform crossover, random-walk
// mutation, and elitism, over a fixed generation budget.
//
// Encoding: one chromosome = one fitness.Candidate (a path per demand).
// Genes are whole paths, so crossover never splices two half-paths together —
// a child inherits each demand's complete path from one parent or the other,
// which keeps every gene individually feasible.
//
// Determinism:
//   - a single seeded RNG drives initialization, selection, crossover and
//     mutation;
//   - selection ties break by lower score, then lower population index;
//   - identical (network, seed, options) ⇒ identical Result, history included.
//
// Complexity: O(G · P · (E + D·H·deg)) where G = generations, P = population,
// H = hop bound; evaluation dominates on dense demand sets.
package genetic
