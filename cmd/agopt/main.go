// Command agopt runs comparative routing experiments from a YAML
// configuration: it loads a CSV topology, executes every enabled solver the
// configured number of times, prints the per-solver summaries and optionally
// persists them to CSV and SQLite.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/experiment"
	"github.com/canszvrd/Cok-Kriterli-Ag-Optimizasyonu-ve-Yonlendirme-Paneli/fitness"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "agopt",
		Short:         "multi-criteria network routing optimizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newRunCmd(&verbose))

	return root
}

func newRunCmd(verbose *bool) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "execute the experiment described by a config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExperiment(cfgPath, *verbose, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "experiment.yaml", "experiment config file")

	return cmd
}

func runExperiment(cfgPath string, verbose bool, out io.Writer) error {
	log := newLogger(verbose)

	cfg, err := experiment.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	net, err := experiment.LoadCSV(cfg.Topology.Nodes, cfg.Topology.Edges, cfg.Topology.Demands)
	if err != nil {
		return err
	}
	log.Info().
		Int("nodes", net.NodeCount()).
		Int("edges", net.EdgeCount()).
		Int("demands", net.DemandCount()).
		Msg("topology loaded")

	ev, err := fitness.NewEvaluator(net, cfg.EvaluatorOptions())
	if err != nil {
		return err
	}

	runner, err := experiment.NewRunner(net, ev, experiment.RunnerOptions{
		Seed:    cfg.Seed,
		Repeats: cfg.Repeats,
		Logger:  &log,
	})
	if err != nil {
		return err
	}

	reports, err := runner.Run(experiment.BuildSpecs(cfg))
	if err != nil {
		return err
	}
	printReports(out, reports)

	if cfg.Output.SummaryCSV != "" {
		if err = experiment.WriteSummaryCSV(cfg.Output.SummaryCSV, reports); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.SummaryCSV).Msg("summary written")
	}
	if cfg.Output.SQLite != "" {
		if err = saveToStore(cfg.Output.SQLite, reports); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.SQLite).Msg("runs stored")
	}

	return nil
}

func saveToStore(path string, reports []experiment.Report) error {
	store, err := experiment.OpenStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveReports(reports)
}

func printReports(out io.Writer, reports []experiment.Report) {
	fmt.Fprintf(out, "%-12s %8s %12s %12s %12s %12s %14s\n",
		"solver", "runs", "best", "worst", "mean", "stddev", "mean runtime")
	for _, rep := range reports {
		fmt.Fprintf(out, "%-12s %8d %12.2f %12.2f %12.2f %12.2f %14s\n",
			rep.Solver, len(rep.Runs),
			rep.BestScore, rep.WorstScore, rep.MeanScore, rep.StdDevScore,
			rep.MeanRuntime.Round(10*time.Microsecond).String())
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
