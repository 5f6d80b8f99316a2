package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/antcolony"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/genetic"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/qlearning"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/shortest"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/solver"
)

// Config is the YAML experiment description. A solver section that is absent
// disables that engine; inside a present section, zero-valued fields fall
// back to the engine's DefaultOptions.
type Config struct {
	Topology  TopologyConfig  `yaml:"topology"`
	Seed      int64           `yaml:"seed"`
	Repeats   int             `yaml:"repeats"`
	Evaluator EvaluatorConfig `yaml:"evaluator"`
	Solvers   SolversConfig   `yaml:"solvers"`
	Output    OutputConfig    `yaml:"output"`
}

// TopologyConfig names the three CSV tables of the network instance.
type TopologyConfig struct {
	Nodes   string `yaml:"nodes"`
	Edges   string `yaml:"edges"`
	Demands string `yaml:"demands"`
}

// EvaluatorConfig overrides the scoring penalties; zero = default.
type EvaluatorConfig struct {
	OverloadPenalty float64 `yaml:"overload_penalty"`
	UnmetPenalty    float64 `yaml:"unmet_penalty"`
}

// SolversConfig holds one optional section per engine.
type SolversConfig struct {
	Dijkstra  *DijkstraConfig  `yaml:"dijkstra"`
	Genetic   *GeneticConfig   `yaml:"genetic"`
	AntColony *AntColonyConfig `yaml:"antcolony"`
	QLearning *QLearningConfig `yaml:"qlearning"`
}

// DijkstraConfig enables the parameter-free baseline.
type DijkstraConfig struct{}

// GeneticConfig mirrors genetic.Options minus the seed (seeds are derived by
// the runner).
type GeneticConfig struct {
	Population    int     `yaml:"population"`
	Generations   int     `yaml:"generations"`
	Elite         int     `yaml:"elite"`
	Tournament    int     `yaml:"tournament"`
	CrossoverRate float64 `yaml:"crossover_rate"`
	MutationRate  float64 `yaml:"mutation_rate"`
	MaxHops       int     `yaml:"max_hops"`
}

// AntColonyConfig mirrors antcolony.Options minus the seed.
type AntColonyConfig struct {
	Ants             int     `yaml:"ants"`
	Iterations       int     `yaml:"iterations"`
	Alpha            float64 `yaml:"alpha"`
	Beta             float64 `yaml:"beta"`
	Evaporation      float64 `yaml:"evaporation"`
	Deposit          float64 `yaml:"deposit"`
	InitialPheromone float64 `yaml:"initial_pheromone"`
	MinPheromone     float64 `yaml:"min_pheromone"`
	MaxHops          int     `yaml:"max_hops"`
	Workers          int     `yaml:"workers"`
}

// QLearningConfig mirrors qlearning.Options minus the seed.
type QLearningConfig struct {
	Episodes      int     `yaml:"episodes"`
	Alpha         float64 `yaml:"alpha"`
	Gamma         float64 `yaml:"gamma"`
	EpsilonStart  float64 `yaml:"epsilon_start"`
	EpsilonMin    float64 `yaml:"epsilon_min"`
	EpsilonDecay  float64 `yaml:"epsilon_decay"`
	MaxSteps      int     `yaml:"max_steps"`
	GoalReward    float64 `yaml:"goal_reward"`
	CutoffPenalty float64 `yaml:"cutoff_penalty"`
}

// OutputConfig names the result sinks; empty paths disable a sink.
type OutputConfig struct {
	SummaryCSV string `yaml:"summary_csv"`
	SQLite     string `yaml:"sqlite"`
}

// LoadConfig reads and parses an experiment configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("experiment: read config: %w", err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("experiment: parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills experiment-level gaps. Per-solver gaps are filled in
// BuildSpecs, penalty gaps in EvaluatorOptions.
func (c *Config) applyDefaults() {
	if c.Repeats == 0 {
		c.Repeats = 5
	}
}

// EvaluatorOptions converts the config section to fitness.Options.
func (c *Config) EvaluatorOptions() fitness.Options {
	opts := fitness.DefaultOptions()
	if c.Evaluator.OverloadPenalty > 0 {
		opts.OverloadPenalty = c.Evaluator.OverloadPenalty
	}
	if c.Evaluator.UnmetPenalty > 0 {
		opts.UnmetPenalty = c.Evaluator.UnmetPenalty
	}

	return opts
}

// BuildSpecs converts the enabled solver sections into runner Specs, in the
// fixed report order: dijkstra, genetic, antcolony, qlearning.
func BuildSpecs(cfg *Config) []Spec {
	var specs []Spec

	if cfg.Solvers.Dijkstra != nil {
		specs = append(specs, Spec{
			Name: "dijkstra",
			Build: func(int64) (solver.Solver, error) {
				return shortest.New(), nil // deterministic; seed unused
			},
		})
	}

	if g := cfg.Solvers.Genetic; g != nil {
		specs = append(specs, Spec{Name: "genetic", Build: func(seed int64) (solver.Solver, error) {
			opts := genetic.DefaultOptions()
			overrideInt(&opts.PopulationSize, g.Population)
			overrideInt(&opts.Generations, g.Generations)
			overrideInt(&opts.Elite, g.Elite)
			overrideInt(&opts.TournamentSize, g.Tournament)
			overrideFloat(&opts.CrossoverRate, g.CrossoverRate)
			overrideFloat(&opts.MutationRate, g.MutationRate)
			overrideInt(&opts.MaxHops, g.MaxHops)
			opts.Seed = seed

			return genetic.New(opts)
		}})
	}

	if a := cfg.Solvers.AntColony; a != nil {
		specs = append(specs, Spec{Name: "antcolony", Build: func(seed int64) (solver.Solver, error) {
			opts := antcolony.DefaultOptions()
			overrideInt(&opts.Ants, a.Ants)
			overrideInt(&opts.Iterations, a.Iterations)
			overrideFloat(&opts.Alpha, a.Alpha)
			overrideFloat(&opts.Beta, a.Beta)
			overrideFloat(&opts.Evaporation, a.Evaporation)
			overrideFloat(&opts.Deposit, a.Deposit)
			overrideFloat(&opts.InitialPheromone, a.InitialPheromone)
			overrideFloat(&opts.MinPheromone, a.MinPheromone)
			overrideInt(&opts.MaxHops, a.MaxHops)
			overrideInt(&opts.Workers, a.Workers)
			opts.Seed = seed

			return antcolony.New(opts)
		}})
	}

	if q := cfg.Solvers.QLearning; q != nil {
		specs = append(specs, Spec{Name: "qlearning", Build: func(seed int64) (solver.Solver, error) {
			opts := qlearning.DefaultOptions()
			overrideInt(&opts.Episodes, q.Episodes)
			overrideFloat(&opts.Alpha, q.Alpha)
			overrideFloat(&opts.Gamma, q.Gamma)
			overrideFloat(&opts.EpsilonStart, q.EpsilonStart)
			overrideFloat(&opts.EpsilonMin, q.EpsilonMin)
			overrideFloat(&opts.EpsilonDecay, q.EpsilonDecay)
			overrideInt(&opts.MaxSteps, q.MaxSteps)
			overrideFloat(&opts.GoalReward, q.GoalReward)
			overrideFloat(&opts.CutoffPenalty, q.CutoffPenalty)
			opts.Seed = seed

			return qlearning.New(opts)
		}})
	}

	return specs
}

// overrideInt applies a config value onto a default when the config value is
// set (non-zero). Zero means "keep the default" throughout the config schema.
func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func overrideFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
