package solver_test

import (
	"testing"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// drain pulls n draws so two generators can be compared by their sequences.
func drain(rng interface{ Int63() int64 }, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = rng.Int63()
	}

	return out
}

func TestRNG_ZeroSeedMapsToDefault(t *testing.T) {
	a := drain(solver.RNG(0), 16)
	b := drain(solver.RNG(solver.DefaultSeed), 16)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: RNG(0) must equal RNG(DefaultSeed)", i)
		}
	}
}

func TestRNG_SameSeedSameSequence(t *testing.T) {
	a := drain(solver.RNG(42), 16)
	b := drain(solver.RNG(42), 16)
	c := drain(solver.RNG(43), 16)

	var diverged bool
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs under identical seeds", i)
		}
		if a[i] != c[i] {
			diverged = true
		}
	}
	if !diverged {
		t.Fatal("seeds 42 and 43 produced identical sequences")
	}
}

func TestDeriveSeed_StreamsAreDistinct(t *testing.T) {
	seen := make(map[int64]uint64)

	var s uint64
	for s = 0; s < 1000; s++ {
		d := solver.DeriveSeed(7, s)
		if prev, dup := seen[d]; dup {
			t.Fatalf("streams %d and %d collide on seed %d", prev, s, d)
		}
		seen[d] = s
	}

	if solver.DeriveSeed(7, 0) != solver.DeriveSeed(7, 0) {
		t.Fatal("DeriveSeed is not a pure function")
	}
	if solver.DeriveSeed(7, 0) == solver.DeriveSeed(8, 0) {
		t.Fatal("different parents map to the same derived seed")
	}
}

func TestDeriveRNG_ConsumesBase(t *testing.T) {
	// Deriving twice with the same stream id must still give distinct
	// children, because each derivation advances the base generator.
	base := solver.RNG(5)
	a := drain(solver.DeriveRNG(base, 3), 8)
	b := drain(solver.DeriveRNG(base, 3), 8)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("repeated stream id yielded an identical child generator")
	}
}

func TestDeriveRNG_NilBase(t *testing.T) {
	a := drain(solver.DeriveRNG(nil, 1), 8)
	b := drain(solver.DeriveRNG(nil, 1), 8)

	for i := range a {
		if a[i] != b[i] {
			t.Fatal("nil-base derivation must be deterministic")
		}
	}
}
