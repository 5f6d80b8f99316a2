package experiment

import (
	"time"

	"gonum.org/v1/gonum/stat"
)

// summarize reduces the repeats of one solver to a Report.
func summarize(name string, runs []RunRecord) Report {
	rep := Report{Solver: name, Runs: runs}

	var (
		totals   = make([]float64, len(runs))
		runtimes time.Duration
		i        int
	)
	for i = range runs {
		totals[i] = runs[i].Score.Total
		runtimes += runs[i].Runtime
		if totals[i] < totals[rep.BestRun] {
			rep.BestRun = i
		}
	}

	rep.BestScore = totals[rep.BestRun]
	rep.WorstScore = totals[0]
	for i = range totals {
		if totals[i] > rep.WorstScore {
			rep.WorstScore = totals[i]
		}
	}

	rep.MeanScore = stat.Mean(totals, nil)
	if len(totals) > 1 {
		rep.StdDevScore = stat.StdDev(totals, nil)
	}
	rep.MeanRuntime = runtimes / time.Duration(len(runs))

	return rep
}
