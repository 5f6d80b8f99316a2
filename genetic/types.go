package genetic

import "errors"

// Sentinel errors returned by New for invalid hyperparameters.
var (
	// ErrBadPopulation indicates PopulationSize < 2.
	ErrBadPopulation = errors.New("genetic: population size must be at least 2")

	// ErrBadGenerations indicates Generations < 1.
	ErrBadGenerations = errors.New("genetic: generations must be at least 1")

	// ErrBadElite indicates Elite outside [0, PopulationSize).
	ErrBadElite = errors.New("genetic: elite count must be in [0, population)")

	// ErrBadTournament indicates TournamentSize < 1.
	ErrBadTournament = errors.New("genetic: tournament size must be at least 1")

	// ErrBadRate indicates a crossover or mutation rate outside [0, 1].
	ErrBadRate = errors.New("genetic: rates must be within [0, 1]")

	// ErrBadMaxHops indicates MaxHops < 0.
	ErrBadMaxHops = errors.New("genetic: max hops must be non-negative")
)

// Options configures the genetic engine.
//
// MaxHops == 0 defers to the network's DefaultMaxHops (2·V) at solve time.
// Seed == 0 maps to the module-wide fixed default seed.
type Options struct {
	PopulationSize int     // P; >= 2
	Generations    int     // fixed budget; >= 1
	Elite          int     // individuals copied unchanged each generation; [0, P)
	TournamentSize int     // selection pressure; >= 1
	CrossoverRate  float64 // probability of recombining two parents; [0, 1]
	MutationRate   float64 // per-demand path replacement probability; [0, 1]
	MaxHops        int     // random-walk hop bound; 0 = 2·V
	Seed           int64   // RNG seed; 0 = fixed default
}

// DefaultOptions returns a configuration that converges on small and medium
// topologies within a couple of seconds.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 60,
		Generations:    120,
		Elite:          2,
		TournamentSize: 4,
		CrossoverRate:  0.9,
		MutationRate:   0.15,
		MaxHops:        0,
		Seed:           0,
	}
}

// validate reports the first hyperparameter violation, if any.
func (o Options) validate() error {
	if o.PopulationSize < 2 {
		return ErrBadPopulation
	}
	if o.Generations < 1 {
		return ErrBadGenerations
	}
	if o.Elite < 0 || o.Elite >= o.PopulationSize {
		return ErrBadElite
	}
	if o.TournamentSize < 1 {
		return ErrBadTournament
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return ErrBadRate
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrBadRate
	}
	if o.MaxHops < 0 {
		return ErrBadMaxHops
	}

	return nil
}
