package antcolony_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/antcolony"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/network"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// triangleFixture: direct A-C costs 5 per unit, the detour via B costs 2.
// One demand of flow 2, so the optimum total is 4.
func triangleFixture(t *testing.T) (*network.Network, *fitness.Evaluator) {
	t.Helper()

	net, err := network.Build(
		[]network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		[]network.Edge{
			{From: "A", To: "B", Capacity: 10, Cost: 1},
			{From: "B", To: "C", Capacity: 10, Cost: 1},
			{From: "A", To: "C", Capacity: 10, Cost: 5},
		},
		[]network.Demand{{Src: "A", Dst: "C", Flow: 2}},
	)
	require.NoError(t, err)

	ev, err := fitness.NewEvaluator(net, fitness.DefaultOptions())
	require.NoError(t, err)

	return net, ev
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*antcolony.Options)
		want   error
	}{
		{"no ants", func(o *antcolony.Options) { o.Ants = 0 }, antcolony.ErrBadAnts},
		{"no iterations", func(o *antcolony.Options) { o.Iterations = 0 }, antcolony.ErrBadIterations},
		{"negative alpha", func(o *antcolony.Options) { o.Alpha = -1 }, antcolony.ErrBadExponent},
		{"negative beta", func(o *antcolony.Options) { o.Beta = -1 }, antcolony.ErrBadExponent},
		{"evaporation at 0", func(o *antcolony.Options) { o.Evaporation = 0 }, antcolony.ErrBadEvaporation},
		{"evaporation at 1", func(o *antcolony.Options) { o.Evaporation = 1 }, antcolony.ErrBadEvaporation},
		{"zero deposit", func(o *antcolony.Options) { o.Deposit = 0 }, antcolony.ErrBadDeposit},
		{"zero initial pheromone", func(o *antcolony.Options) { o.InitialPheromone = 0 }, antcolony.ErrBadPheromone},
		{"floor above initial", func(o *antcolony.Options) { o.MinPheromone = 2; o.InitialPheromone = 1 }, antcolony.ErrBadPheromone},
		{"negative max hops", func(o *antcolony.Options) { o.MaxHops = -1 }, antcolony.ErrBadMaxHops},
		{"negative workers", func(o *antcolony.Options) { o.Workers = -1 }, antcolony.ErrBadWorkers},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := antcolony.DefaultOptions()
			tc.mutate(&opts)
			_, err := antcolony.New(opts)
			require.ErrorIs(t, err, tc.want)
		})
	}

	eng, err := antcolony.New(antcolony.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "antcolony", eng.Name())
}

func TestSolve_NilArguments(t *testing.T) {
	net, ev := triangleFixture(t)
	eng, err := antcolony.New(antcolony.DefaultOptions())
	require.NoError(t, err)

	_, err = eng.Solve(nil, ev)
	require.ErrorIs(t, err, solver.ErrNilNetwork)

	_, err = eng.Solve(net, nil)
	require.ErrorIs(t, err, solver.ErrNilEvaluator)
}

func TestSolve_FindsTriangleOptimum(t *testing.T) {
	net, ev := triangleFixture(t)

	opts := antcolony.DefaultOptions()
	opts.Seed = 21
	eng, err := antcolony.New(opts)
	require.NoError(t, err)

	res, err := eng.Solve(net, ev)
	require.NoError(t, err)

	require.InDelta(t, 4.0, res.Score.Total, 1e-9, "optimum routes via B")
	require.Equal(t, []string{"A", "B", "C"}, res.Best.Paths[0])
	require.Len(t, res.History, opts.Iterations)
}

func TestSolve_BestNeverRegresses(t *testing.T) {
	net, ev := triangleFixture(t)

	opts := antcolony.DefaultOptions()
	opts.Seed = 4
	eng, err := antcolony.New(opts)
	require.NoError(t, err)

	res, err := eng.Solve(net, ev)
	require.NoError(t, err)

	for i := 1; i < len(res.History); i++ {
		require.LessOrEqual(t, res.History[i].Best, res.History[i-1].Best,
			"best-so-far must never regress (iteration %d)", i)
	}
	require.Equal(t, res.Score.Total, res.History[len(res.History)-1].Best)
}

func TestSolve_FixedSeedReproducible(t *testing.T) {
	net, ev := triangleFixture(t)

	run := func() solver.Result {
		opts := antcolony.DefaultOptions()
		opts.Seed = 777
		eng, err := antcolony.New(opts)
		require.NoError(t, err)
		res, err := eng.Solve(net, ev)
		require.NoError(t, err)

		return res
	}

	a, b := run(), run()
	require.Equal(t, a.Score, b.Score)
	require.Equal(t, a.Best, b.Best)
	require.Equal(t, a.History, b.History)
}

func TestSolve_ParallelMatchesSequential(t *testing.T) {
	// Per-ant RNG streams are derived before construction fans out, so a
	// pooled run must be bit-identical to the sequential one.
	net, ev := triangleFixture(t)

	run := func(workers int) solver.Result {
		opts := antcolony.DefaultOptions()
		opts.Seed = 99
		opts.Workers = workers
		eng, err := antcolony.New(opts)
		require.NoError(t, err)
		res, err := eng.Solve(net, ev)
		require.NoError(t, err)

		return res
	}

	seq := run(0)
	for _, workers := range []int{1, 4} {
		par := run(workers)
		require.Equal(t, seq.Score, par.Score, "workers=%d", workers)
		require.Equal(t, seq.Best, par.Best, "workers=%d", workers)
		require.Equal(t, seq.History, par.History, "workers=%d", workers)
	}
}

func TestSolve_UnreachableDemandStillTerminates(t *testing.T) {
	net, err := network.Build(
		[]network.Node{{ID: "A"}, {ID: "B"}},
		nil,
		[]network.Demand{{Src: "A", Dst: "B", Flow: 1}},
	)
	require.NoError(t, err)
	ev, err := fitness.NewEvaluator(net, fitness.DefaultOptions())
	require.NoError(t, err)

	opts := antcolony.DefaultOptions()
	opts.Iterations = 5
	eng, err := antcolony.New(opts)
	require.NoError(t, err)

	res, err := eng.Solve(net, ev)
	require.NoError(t, err)
	require.Equal(t, 1, res.Score.Unmet)
	require.InDelta(t, fitness.DefaultUnmetPenalty, res.Score.Total, 1e-9)
}
