package fitness

import (
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// Evaluator scores candidates against one fixed Network. It is stateless
// beyond its configuration and safe for concurrent use.
type Evaluator struct {
	net  *network.Network
	opts Options
}

// NewEvaluator validates opts and binds an Evaluator to net.
func NewEvaluator(net *network.Network, opts Options) (*Evaluator, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if opts.OverloadPenalty <= 0 || opts.UnmetPenalty <= 0 {
		return nil, ErrBadPenalty
	}

	return &Evaluator{net: net, opts: opts}, nil
}

// Network returns the topology this evaluator is bound to.
func (ev *Evaluator) Network() *network.Network { return ev.net }

// Evaluate computes the Score of a candidate.
//
// Contracts:
//   - pure: no caching, no mutation of c or the network;
//   - candidates shorter than the demand list are allowed — missing entries
//     count as unmet;
//   - load is aggregated across all demands before overload is measured, so
//     two demands sharing an edge are penalized on their combined flow.
//
// Complexity: O(E + Σ path length) time, O(E) space per call.
func (ev *Evaluator) Evaluate(c Candidate) Score {
	demands := ev.net.Demands()
	load := make([]float64, ev.net.EdgeCount())

	var (
		s    Score
		i    int
		path []string
	)
	for i = range demands {
		path = nil
		if i < len(c.Paths) {
			path = c.Paths[i]
		}
		if !ev.accumulate(demands[i], path, load) {
			s.Unmet++
		}
	}

	// Reduce aggregated per-edge load to cost and overload terms.
	edges := ev.net.Edges()
	var over float64
	for i = range edges {
		if load[i] == 0 {
			continue
		}
		s.BaseCost += edges[i].Cost * load[i]
		if over = load[i] - edges[i].Capacity; over > 0 {
			s.OverloadUnits += over
		}
	}

	s.Total = s.BaseCost +
		ev.opts.OverloadPenalty*s.OverloadUnits +
		ev.opts.UnmetPenalty*float64(s.Unmet)

	return s
}

// accumulate adds d.Flow onto every edge of path, returning false (and
// touching nothing) when the path does not validly route d.
func (ev *Evaluator) accumulate(d network.Demand, path []string, load []float64) bool {
	if len(path) == 0 || path[0] != d.Src || path[len(path)-1] != d.Dst {
		return false
	}

	// Resolve every hop before committing any load: a broken link anywhere
	// invalidates the whole path.
	var (
		i, ei int
		ok    bool
	)
	hops := make([]int, 0, len(path)-1)
	for i = 0; i+1 < len(path); i++ {
		if ei, ok = ev.net.EdgeIndexBetween(path[i], path[i+1]); !ok {
			return false
		}
		hops = append(hops, ei)
	}

	for _, ei = range hops {
		load[ei] += d.Flow
	}

	return true
}
