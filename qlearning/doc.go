// Package qlearning implements tabular Q-learning over routing decisions.
//
// State is the pair (demand, current node); an action is stepping to one
// neighbor. The Q-table is a dense [demand][node][actionPos] slice where
// actionPos indexes the node's sorted adjacency list, so exploitation ties
// always break toward the lowest neighbor ID and runs are reproducible.
//
// Rewards: −edge cost per hop, +GoalReward on reaching the destination,
// −CutoffPenalty when the walk dead-ends or exhausts MaxSteps. Updates follow
// the standard rule
//
//	Q[s,a] += Alpha · (r + Gamma · max_a' Q[s',a'] − Q[s,a])
//
// with zero future value at terminal states; the max runs over the successor's
// unvisited neighbors, matching the loop-avoidance used during the walk.
//
// Each episode routes every demand once under an epsilon-greedy policy,
// assembles the walked paths into a candidate, and scores it with the shared
// evaluator, so the recorded history is directly comparable to the other
// engines. Epsilon decays geometrically per episode down to EpsilonMin.
package qlearning
