// Package experiment orchestrates comparative runs: every registered engine
// is executed against the same network and evaluator, several times with
// independently derived seeds, and the collected scores, runtimes and
// convergence histories are aggregated into per-solver reports.
//
// The package also carries the thin I/O the analysis workflow needs: YAML
// experiment configuration, the three-table CSV topology format (nodes,
// edges, demands), a CSV summary writer and an SQLite run store. None of it
// leaks into the core packages: solvers only ever see the parsed Network.
package experiment
