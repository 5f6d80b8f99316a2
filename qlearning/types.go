package qlearning

import "errors"

// Sentinel errors returned by New for invalid hyperparameters.
var (
	// ErrBadEpisodes indicates Episodes < 1.
	ErrBadEpisodes = errors.New("qlearning: episodes must be at least 1")

	// ErrBadAlpha indicates a learning rate outside (0, 1].
	ErrBadAlpha = errors.New("qlearning: alpha must be in (0, 1]")

	// ErrBadGamma indicates a discount factor outside [0, 1].
	ErrBadGamma = errors.New("qlearning: gamma must be in [0, 1]")

	// ErrBadEpsilon indicates EpsilonStart outside [0, 1] or EpsilonMin
	// outside [0, EpsilonStart].
	ErrBadEpsilon = errors.New("qlearning: invalid epsilon bounds")

	// ErrBadDecay indicates EpsilonDecay outside (0, 1].
	ErrBadDecay = errors.New("qlearning: epsilon decay must be in (0, 1]")

	// ErrBadMaxSteps indicates MaxSteps < 0.
	ErrBadMaxSteps = errors.New("qlearning: max steps must be non-negative")

	// ErrBadReward indicates GoalReward <= 0 or CutoffPenalty < 0.
	ErrBadReward = errors.New("qlearning: invalid reward shaping")
)

// Options configures the learner.
//
// MaxSteps == 0 defers to the network's DefaultMaxHops (2·V). Seed == 0 maps
// to the fixed default seed.
type Options struct {
	Episodes      int     // fixed budget; >= 1
	Alpha         float64 // learning rate; (0, 1]
	Gamma         float64 // discount factor; [0, 1]
	EpsilonStart  float64 // initial exploration rate; [0, 1]
	EpsilonMin    float64 // exploration floor; [0, EpsilonStart]
	EpsilonDecay  float64 // geometric decay per episode; (0, 1]
	MaxSteps      int     // per-demand hop budget per episode; 0 = 2·V
	GoalReward    float64 // terminal bonus on reaching the destination; > 0
	CutoffPenalty float64 // terminal penalty on dead end / step cutoff; >= 0
	Seed          int64   // RNG seed; 0 = fixed default
}

// DefaultOptions follows the usual tabular-routing constants: slow decay,
// strong terminal signal.
func DefaultOptions() Options {
	return Options{
		Episodes:      1500,
		Alpha:         0.15,
		Gamma:         0.92,
		EpsilonStart:  1.0,
		EpsilonMin:    0.01,
		EpsilonDecay:  0.99,
		MaxSteps:      0,
		GoalReward:    100.0,
		CutoffPenalty: 50.0,
		Seed:          0,
	}
}

// validate reports the first hyperparameter violation, if any.
func (o Options) validate() error {
	if o.Episodes < 1 {
		return ErrBadEpisodes
	}
	if o.Alpha <= 0 || o.Alpha > 1 {
		return ErrBadAlpha
	}
	if o.Gamma < 0 || o.Gamma > 1 {
		return ErrBadGamma
	}
	if o.EpsilonStart < 0 || o.EpsilonStart > 1 {
		return ErrBadEpsilon
	}
	if o.EpsilonMin < 0 || o.EpsilonMin > o.EpsilonStart {
		return ErrBadEpsilon
	}
	if o.EpsilonDecay <= 0 || o.EpsilonDecay > 1 {
		return ErrBadDecay
	}
	if o.MaxSteps < 0 {
		return ErrBadMaxSteps
	}
	if o.GoalReward <= 0 || o.CutoffPenalty < 0 {
		return ErrBadReward
	}

	return nil
}
