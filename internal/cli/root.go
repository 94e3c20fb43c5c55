// Package cli implements the pic3d command-line surface: run from a
// configuration file, or run a benchmark distribution directly. It is
// built the usual cobra way: a single cobra.Command with
// PersistentFlags and a RunE that reads a config file before
// dispatching to the model.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ctessum/pic3d"
	"github.com/ctessum/pic3d/config"
	"github.com/ctessum/pic3d/solver"
)

// RootCmd is the pic3d command: `pic3d <configfile>` or `pic3d :X:N`.
var RootCmd = &cobra.Command{
	Use:   "pic3d <configfile>|:X:N",
	Short: "A 3D electromagnetic particle-in-cell plasma simulator.",
	Long: `pic3d runs the particle-in-cell pipeline: projecting particle
contributions onto a grid, solving the electromagnetic field, interpolating
fields back to particles, advancing them with a Boris integrator, and
migrating particles across periodic cell boundaries.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	RootCmd.PersistentFlags().IntVar(&benchmarkCycles, "benchmark-cycles", 5, "number of timed cycles to run in benchmark mode")
	RootCmd.PersistentFlags().IntVar(&warmupCycles, "warmup-cycles", 2, "number of untimed warmup cycles to run before a benchmark")
	RootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "random seed for benchmark particle distributions")
}

var (
	benchmarkCycles int
	warmupCycles    int
	seed            int64
)

// Execute runs the root command; cmd/pic3d's main delegates directly to
// this so the CLI's construction lives in one importable package.
func Execute() error {
	return RootCmd.Execute()
}

// run dispatches to the benchmark or configuration-file path depending
// on the argument's shape: "<program> <configfile>" vs "<program>
// :X:N".
func run(arg string) error {
	if strings.HasPrefix(arg, ":") {
		return runBenchmark(arg)
	}
	return runConfigFile(arg)
}

// runConfigFile loads a configuration file, builds the universe it
// describes, seeds it from the configured species, and runs it to
// completion.
func runConfigFile(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	props := cfg.UniverseProperties()
	strategy := selectStrategy(cfg)

	u, err := pic3d.NewUniverse(props, strategy)
	if err != nil {
		return err
	}

	seedSpecies(u, cfg.Species, seed)

	logrus.WithFields(logrus.Fields{
		"useCase": props.UseCase,
		"ncycles": cfg.NCycles,
		"cells":   u.Cells.Len(),
	}).Info("starting run")

	return u.Run(cfg.NCycles, func(u *pic3d.Universe) {
		if cfg.FieldOutputCycle > 0 && u.Cycle%cfg.FieldOutputCycle == 0 {
			logrus.WithField("cycle", u.Cycle).Debug("field output cycle")
		}
		if cfg.ParticlesOutputCycle > 0 && u.Cycle%cfg.ParticlesOutputCycle == 0 {
			logrus.WithField("cycle", u.Cycle).Debug("particle output cycle")
		}
	})
}

// selectStrategy picks the field-solver Strategy a loaded configuration
// calls for: Static or Forward for Dipole (cfg.Solver breaks the tie
// between the two), Uniform otherwise.
func selectStrategy(cfg *config.Config) pic3d.Strategy {
	if cfg.UseCase != pic3d.Dipole {
		return solver.Uniform{B0: cfg.B0}
	}
	b0 := math.Sqrt(cfg.B0.X*cfg.B0.X + cfg.B0.Y*cfg.B0.Y + cfg.B0.Z*cfg.B0.Z)
	switch cfg.Solver {
	case "forward":
		return solver.Forward{B0: b0, PlanetRadius: cfg.PlanetRadius, ObjectCenter: cfg.ObjectCenter}
	default:
		return solver.Static{B0: b0, PlanetRadius: cfg.PlanetRadius, ObjectCenter: cfg.ObjectCenter}
	}
}

// runBenchmark parses the `:X:N` benchmark designation and runs N
// particles of distribution X through warmupCycles untimed cycles
// followed by benchmarkCycles timed ones.
func runBenchmark(arg string) error {
	if len(arg) <= 3 || arg[0] != ':' || arg[2] != ':' {
		return fmt.Errorf("pic3d: malformed benchmark designation %q; want :X:N where X is one of U,C,E,B", arg)
	}
	n, err := strconv.Atoi(arg[3:])
	if err != nil {
		return fmt.Errorf("pic3d: invalid particle count in %q: %w", arg, err)
	}

	u, particles, err := newBenchmarkUniverse(arg[1], n)
	if err != nil {
		return err
	}
	u.Seed(particles)

	logrus.WithFields(logrus.Fields{
		"distribution": string(arg[1]),
		"particles":    n,
	}).Info("running benchmark")

	if err := u.Run(warmupCycles, nil); err != nil {
		return err
	}
	start := time.Now()
	if err := u.Run(benchmarkCycles, nil); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"cycles":  benchmarkCycles,
		"elapsed": time.Since(start),
	}).Info("benchmark finished")
	return nil
}
