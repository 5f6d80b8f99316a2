package antcolony

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
)

// White-box checks on the pheromone update itself: decay is monotone on
// unreinforced edges, the floor holds, and only the best candidate's edges
// gain trail.

func pheromoneNet(t *testing.T) *network.Network {
	t.Helper()

	net, err := network.Build(
		[]network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]network.Edge{
			{From: "A", To: "B", Capacity: 10, Cost: 1},
			{From: "B", To: "C", Capacity: 10, Cost: 1},
			{From: "A", To: "C", Capacity: 10, Cost: 5},
		},
		nil,
	)
	require.NoError(t, err)

	return net
}

func TestUpdatePheromones_DecayAndDeposit(t *testing.T) {
	net := pheromoneNet(t)
	s := &Solver{opts: DefaultOptions()}

	pheromone := []float64{1.0, 1.0, 1.0}
	best := antResult{
		cand:  fitness.Candidate{Paths: [][]string{{"A", "B", "C"}}},
		score: fitness.Score{Total: 4},
	}

	s.updatePheromones(net, pheromone, best)

	abIdx, _ := net.EdgeIndexBetween("A", "B")
	bcIdx, _ := net.EdgeIndexBetween("B", "C")
	acIdx, _ := net.EdgeIndexBetween("A", "C")

	decayed := 1.0 * (1 - s.opts.Evaporation)
	delta := s.opts.Deposit / (best.score.Total + depositFloor)

	require.InDelta(t, decayed+delta, pheromone[abIdx], 1e-12)
	require.InDelta(t, decayed+delta, pheromone[bcIdx], 1e-12)
	require.InDelta(t, decayed, pheromone[acIdx], 1e-12, "unused edge only decays")
}

func TestUpdatePheromones_UnreinforcedEdgesDecayToFloor(t *testing.T) {
	net := pheromoneNet(t)
	s := &Solver{opts: DefaultOptions()}

	// No candidate edges at all: pure evaporation every round.
	best := antResult{score: fitness.Score{Total: 1}}

	pheromone := []float64{1.0, 1.0, 1.0}
	prev := append([]float64(nil), pheromone...)
	for round := 0; round < 20; round++ {
		s.updatePheromones(net, pheromone, best)
		for i := range pheromone {
			require.LessOrEqual(t, pheromone[i], prev[i], "decay must be monotone (round %d)", round)
			require.GreaterOrEqual(t, pheromone[i], s.opts.MinPheromone, "floor violated (round %d)", round)
		}
		copy(prev, pheromone)
	}

	for i := range pheromone {
		require.Equal(t, s.opts.MinPheromone, pheromone[i], "trail must settle exactly on the floor")
	}
}
