// Package fitness_test verifies the scoring contract: pure evaluation, load
// aggregation across demands, and the penalty arithmetic for overloaded edges
// and unmet demands.
package fitness_test

import (
	"errors"
	"testing"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// diamond builds A-B-D / A-C-D with a shared bottleneck B-D used by tests
// that need two demands competing for capacity.
func diamond(t *testing.T, demands []network.Demand) *network.Network {
	t.Helper()

	net, err := network.Build(
		[]network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
		[]network.Edge{
			{From: "A", To: "B", Capacity: 10, Cost: 1},
			{From: "B", To: "D", Capacity: 3, Cost: 1},
			{From: "A", To: "C", Capacity: 10, Cost: 2},
			{From: "C", To: "D", Capacity: 10, Cost: 2},
		},
		demands,
	)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return net
}

func newEvaluator(t *testing.T, net *network.Network) *fitness.Evaluator {
	t.Helper()

	ev, err := fitness.NewEvaluator(net, fitness.DefaultOptions())
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}

	return ev
}

func TestNewEvaluator_Validation(t *testing.T) {
	if _, err := fitness.NewEvaluator(nil, fitness.DefaultOptions()); !errors.Is(err, fitness.ErrNilNetwork) {
		t.Fatalf("nil network: err = %v; want ErrNilNetwork", err)
	}

	net := diamond(t, nil)
	if _, err := fitness.NewEvaluator(net, fitness.Options{OverloadPenalty: 0, UnmetPenalty: 1}); !errors.Is(err, fitness.ErrBadPenalty) {
		t.Fatalf("zero overload penalty: err = %v; want ErrBadPenalty", err)
	}
	if _, err := fitness.NewEvaluator(net, fitness.Options{OverloadPenalty: 1, UnmetPenalty: -1}); !errors.Is(err, fitness.ErrBadPenalty) {
		t.Fatalf("negative unmet penalty: err = %v; want ErrBadPenalty", err)
	}
}

func TestEvaluate_BaseCostOnly(t *testing.T) {
	net := diamond(t, []network.Demand{{Src: "A", Dst: "D", Flow: 2}})
	ev := newEvaluator(t, net)

	sc := ev.Evaluate(fitness.Candidate{Paths: [][]string{{"A", "B", "D"}}})

	// Two unit-cost hops carrying flow 2, no capacity violated.
	if sc.BaseCost != 4 {
		t.Errorf("BaseCost = %g; want 4", sc.BaseCost)
	}
	if sc.OverloadUnits != 0 || sc.Unmet != 0 {
		t.Errorf("unexpected penalties: overload %g, unmet %d", sc.OverloadUnits, sc.Unmet)
	}
	if sc.Total != sc.BaseCost {
		t.Errorf("Total = %g; want BaseCost %g", sc.Total, sc.BaseCost)
	}
}

func TestEvaluate_OverloadAggregatesAcrossDemands(t *testing.T) {
	// Two demands of flow 2 both squeezed through B-D (capacity 3): the
	// overload is measured on the combined load, 4 − 3 = 1 unit.
	net := diamond(t, []network.Demand{
		{Src: "A", Dst: "D", Flow: 2},
		{Src: "A", Dst: "D", Flow: 2},
	})
	ev := newEvaluator(t, net)

	sc := ev.Evaluate(fitness.Candidate{Paths: [][]string{
		{"A", "B", "D"},
		{"A", "B", "D"},
	}})

	if sc.OverloadUnits != 1 {
		t.Errorf("OverloadUnits = %g; want 1", sc.OverloadUnits)
	}
	if want := sc.BaseCost + fitness.DefaultOverloadPenalty; sc.Total != want {
		t.Errorf("Total = %g; want %g", sc.Total, want)
	}
}

func TestEvaluate_UnmetVariants(t *testing.T) {
	net := diamond(t, []network.Demand{{Src: "A", Dst: "D", Flow: 1}})
	ev := newEvaluator(t, net)

	cases := []struct {
		name  string
		paths [][]string
	}{
		{name: "nil path", paths: [][]string{nil}},
		{name: "missing entry", paths: nil},
		{name: "wrong source", paths: [][]string{{"B", "D"}}},
		{name: "wrong destination", paths: [][]string{{"A", "B"}}},
		{name: "broken hop", paths: [][]string{{"A", "D"}}},
		{name: "unknown node", paths: [][]string{{"A", "X", "D"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := ev.Evaluate(fitness.Candidate{Paths: tc.paths})
			if sc.Unmet != 1 {
				t.Fatalf("Unmet = %d; want 1", sc.Unmet)
			}
			if sc.Total != fitness.DefaultUnmetPenalty {
				t.Fatalf("Total = %g; want %g (penalty only)", sc.Total, float64(fitness.DefaultUnmetPenalty))
			}
		})
	}
}

func TestEvaluate_InvalidPathAddsNoLoad(t *testing.T) {
	// One demand routed, one with a path broken mid-way: the broken path must
	// not contribute any load to the edges it did resolve.
	net := diamond(t, []network.Demand{
		{Src: "A", Dst: "D", Flow: 2},
		{Src: "A", Dst: "D", Flow: 9},
	})
	ev := newEvaluator(t, net)

	sc := ev.Evaluate(fitness.Candidate{Paths: [][]string{
		{"A", "B", "D"},
		{"A", "B", "C", "D"}, // B-C does not exist
	}})

	if sc.Unmet != 1 {
		t.Fatalf("Unmet = %d; want 1", sc.Unmet)
	}
	// Flow 9 never lands on A-B or B-D, so no overload appears.
	if sc.OverloadUnits != 0 {
		t.Errorf("OverloadUnits = %g; want 0", sc.OverloadUnits)
	}
	if want := 4 + float64(fitness.DefaultUnmetPenalty); sc.Total != want {
		t.Errorf("Total = %g; want %g", sc.Total, want)
	}
}

func TestEvaluate_PureAndRepeatable(t *testing.T) {
	net := diamond(t, []network.Demand{{Src: "A", Dst: "D", Flow: 2}})
	ev := newEvaluator(t, net)

	cand := fitness.Candidate{Paths: [][]string{{"A", "B", "D"}}}
	first := ev.Evaluate(cand)
	second := ev.Evaluate(cand)

	if first != second {
		t.Fatalf("evaluation not repeatable: %+v vs %+v", first, second)
	}
	if cand.Paths[0][0] != "A" || len(cand.Paths[0]) != 3 {
		t.Fatal("Evaluate mutated the candidate")
	}
}

func TestCandidate_CloneIsDeep(t *testing.T) {
	orig := fitness.Candidate{Paths: [][]string{{"A", "B"}, nil}}
	cp := orig.Clone()

	cp.Paths[0][0] = "X"
	if orig.Paths[0][0] != "A" {
		t.Fatal("Clone shares backing arrays with the original")
	}
	if cp.Paths[1] != nil {
		t.Fatal("Clone must preserve nil paths as nil")
	}
}
