// Package fitness scores candidate routing solutions against a Network.
//
// A Candidate assigns one path per demand; the Evaluator reduces it to a
// single Score under a fixed convention shared by every solver in this
// module: lower is better.
//
//	score = Σ (edge cost × aggregated flow over that edge)
//	      + OverloadPenalty × Σ max(0, load − capacity)
//	      + UnmetPenalty × number of demands without a valid path
//
// A path is valid when it starts at the demand's source, ends at its
// destination, and every consecutive node pair is an existing edge. Anything
// else (nil path, broken link, wrong endpoints) counts the demand as unmet —
// a scoring penalty, never an error, so solvers can keep optimizing around
// infeasibility.
//
// Evaluate is deterministic and side-effect free: the same candidate and
// network always produce the same Score, and no state is cached between
// calls.
package fitness
