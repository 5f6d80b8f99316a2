package antcolony

import "errors"

// Sentinel errors returned by New for invalid hyperparameters.
var (
	// ErrBadAnts indicates Ants < 1.
	ErrBadAnts = errors.New("antcolony: ant count must be at least 1")

	// ErrBadIterations indicates Iterations < 1.
	ErrBadIterations = errors.New("antcolony: iterations must be at least 1")

	// ErrBadExponent indicates Alpha < 0 or Beta < 0.
	ErrBadExponent = errors.New("antcolony: alpha and beta must be non-negative")

	// ErrBadEvaporation indicates Evaporation outside the open interval (0, 1).
	ErrBadEvaporation = errors.New("antcolony: evaporation must be in (0, 1)")

	// ErrBadDeposit indicates Deposit <= 0.
	ErrBadDeposit = errors.New("antcolony: deposit weight must be positive")

	// ErrBadPheromone indicates InitialPheromone <= 0, MinPheromone < 0, or
	// MinPheromone > InitialPheromone.
	ErrBadPheromone = errors.New("antcolony: invalid pheromone bounds")

	// ErrBadMaxHops indicates MaxHops < 0.
	ErrBadMaxHops = errors.New("antcolony: max hops must be non-negative")

	// ErrBadWorkers indicates Workers < 0.
	ErrBadWorkers = errors.New("antcolony: workers must be non-negative")
)

// etaSmoothing keeps the heuristic term finite on zero-cost edges:
// η = 1 / (cost + etaSmoothing).
const etaSmoothing = 0.1

// depositFloor guards the deposit division against a zero score (possible on
// a topology with all-zero costs).
const depositFloor = 1e-9

// Options configures the colony.
//
// MaxHops == 0 defers to the network's DefaultMaxHops (2·V). Seed == 0 maps
// to the fixed default seed. Workers == 0 constructs sequentially; any
// positive value fans construction out on a goroutine pool of that size
// without changing the result.
type Options struct {
	Ants             int     // ants per iteration; >= 1
	Iterations       int     // fixed budget; >= 1
	Alpha            float64 // pheromone importance; >= 0
	Beta             float64 // heuristic importance; >= 0
	Evaporation      float64 // trail decay per iteration; (0, 1)
	Deposit          float64 // reinforcement weight Q; > 0
	InitialPheromone float64 // uniform starting trail; > 0
	MinPheromone     float64 // evaporation floor; [0, InitialPheromone]
	MaxHops          int     // per-path hop bound; 0 = 2·V
	Seed             int64   // RNG seed; 0 = fixed default
	Workers          int     // parallel construction pool size; 0 = sequential
}

// DefaultOptions mirrors the classic Ant System constants that work well on
// small QoS topologies.
func DefaultOptions() Options {
	return Options{
		Ants:             20,
		Iterations:       30,
		Alpha:            1.0,
		Beta:             2.0,
		Evaporation:      0.5,
		Deposit:          100.0,
		InitialPheromone: 1.0,
		MinPheromone:     0.01,
		MaxHops:          0,
		Seed:             0,
		Workers:          0,
	}
}

// validate reports the first hyperparameter violation, if any.
func (o Options) validate() error {
	if o.Ants < 1 {
		return ErrBadAnts
	}
	if o.Iterations < 1 {
		return ErrBadIterations
	}
	if o.Alpha < 0 || o.Beta < 0 {
		return ErrBadExponent
	}
	if o.Evaporation <= 0 || o.Evaporation >= 1 {
		return ErrBadEvaporation
	}
	if o.Deposit <= 0 {
		return ErrBadDeposit
	}
	if o.InitialPheromone <= 0 || o.MinPheromone < 0 || o.MinPheromone > o.InitialPheromone {
		return ErrBadPheromone
	}
	if o.MaxHops < 0 {
		return ErrBadMaxHops
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}
