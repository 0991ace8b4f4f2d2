package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wavestring/field"
	"github.com/katalvlaran/wavestring/record"
	"github.com/katalvlaran/wavestring/render"
	"github.com/katalvlaran/wavestring/scenario"
	"github.com/katalvlaran/wavestring/wave"
)

// runFlags holds the flags of the run command that are not grid parameters.
type runFlags struct {
	config    string
	envFile   string
	outDir    string
	dbPath    string
	scenarios []string
	firstStep string
	workers   int
	interval  time.Duration
}

func newRunCmd() *cobra.Command {
	var f runFlags
	c := &cobra.Command{
		Use:   "run",
		Short: "Solve the selected scenarios and write snapshot and frame tables.",
		Long: "run solves each selected scenario with the shared grid parameters " +
			"and writes <out>/<name>_snapshots.csv and <out>/<name>_frames.csv. " +
			"With --db every field is also stored in a SQLite database.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScenarios(cmd, f)
		},
	}

	d := scenario.Defaults()
	flags := c.Flags()
	flags.StringVar(&f.config, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&f.envFile, "env-file", ".env", "dotenv file loaded before reading WAVE_* variables")
	flags.StringVarP(&f.outDir, "out", "o", "out", "output directory")
	flags.StringVar(&f.dbPath, "db", "", "SQLite file recording every field (disabled when empty)")
	flags.StringSliceVarP(&f.scenarios, "scenario", "s", nil, "scenario names (default: all)")
	flags.StringVar(&f.firstStep, "first-step", wave.DefaultFirstStep.String(), "first step scheme: taylor or literal")
	flags.IntVar(&f.workers, "workers", wave.DefaultWorkers, "goroutines per spatial sweep")
	flags.DurationVar(&f.interval, "interval", render.DefaultInterval, "animation frame interval")
	flags.Int("n", d.N, "number of spatial intervals")
	flags.Int("nt", d.Nt, "number of time steps")
	flags.Float64("l", d.L, "string length")
	flags.Float64("c", d.C, "wave speed")
	flags.Float64("dt", d.Dt, "time step")

	return c
}

// loadParams resolves grid parameters: flags > environment (.env included) > config file > defaults.
func loadParams(cmd *cobra.Command, f runFlags) (scenario.Params, error) {
	if f.envFile != "" {
		if err := godotenv.Load(f.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return scenario.Params{}, fmt.Errorf("loading %s: %w", f.envFile, err)
		}
	}

	v, err := scenario.NewViper(f.config)
	if err != nil {
		return scenario.Params{}, err
	}
	if err = bindGridFlags(v, cmd); err != nil {
		return scenario.Params{}, err
	}

	return scenario.FromViper(v)
}

func bindGridFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		scenario.KeyN:  "n",
		scenario.KeyNt: "nt",
		scenario.KeyL:  "l",
		scenario.KeyC:  "c",
		scenario.KeyDt: "dt",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}

func runScenarios(cmd *cobra.Command, f runFlags) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	params, err := loadParams(cmd, f)
	if err != nil {
		return err
	}
	selected, err := scenario.Select(f.scenarios...)
	if err != nil {
		return err
	}
	firstStep, err := wave.ParseFirstStep(f.firstStep)
	if err != nil {
		return err
	}
	if f.workers < 1 {
		return fmt.Errorf("--workers must be >= 1, got %d", f.workers)
	}

	var rec *record.Recorder
	if f.dbPath != "" {
		rec, err = record.Open(f.dbPath, record.WithLogger(logger))
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				level.Error(logger).Log("msg", "closing recorder", "err", cerr)
			}
		}()
	}

	level.Info(logger).Log(
		"msg", "running scenarios",
		"count", len(selected),
		"N", params.N, "Nt", params.Nt, "L", params.L, "c", params.C, "dt", params.Dt,
		"courant", params.Courant(),
	)
	for _, s := range selected {
		scnLogger := kitlog.With(logger, "scenario", s.Name)
		solver, err := s.Solve(params,
			wave.WithFirstStep(firstStep),
			wave.WithWorkers(f.workers),
			wave.WithLogger(scnLogger),
		)
		if err != nil {
			return err
		}
		if !solver.Stable() {
			level.Warn(scnLogger).Log("msg", "courant number above 1, expect divergence", "courant", solver.Courant())
		}

		csv := &render.CSV{Dir: f.outDir, Name: s.Name}
		if err = render.Publish(csv, solver, f.interval); err != nil {
			return fmt.Errorf("scenario %s: %w", s.Name, err)
		}

		runID := ""
		if rec != nil {
			if runID, err = rec.Record(solver); err != nil {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
		}

		maxAbs, err := field.MaxAbs(solver.Psi())
		if err != nil {
			return err
		}
		level.Info(scnLogger).Log("msg", "scenario done", "max_abs", maxAbs, "snapshots", csv.SnapshotsPath(), "run", runID)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\tr=%.4f\tmax|ψ|=%.3f\t%s\t%s\n",
			s.Name, solver.Courant(), maxAbs, csv.SnapshotsPath(), csv.FramesPath())
	}

	return nil
}
