// Command aoc runs the Advent of Code puzzle solvers.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-ricrob/aoc/internal/config"
	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/logging"
	"github.com/go-ricrob/aoc/internal/solutions"
	"github.com/go-ricrob/aoc/internal/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	registry *solver.Registry

	// flags
	configPath string
	verbose    bool
	year, day  string
	inputPath  string
	all        bool

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	return nil
}

func (a *app) runner() *solver.Runner {
	return solver.NewRunner(a.registry, a.logger, a.cfg.Workers)
}

func printAnswers(w io.Writer, answers solver.Answers) {
	for _, answer := range answers {
		fmt.Fprintln(w, answer)
	}
}

func (a *app) solve(ctx context.Context, w io.Writer) error {
	if a.year == "" || a.day == "" {
		return errors.New("both --year and --day are required unless --all is set")
	}
	key, err := solver.ParseKey(a.year, a.day)
	if err != nil {
		return err
	}
	if _, err := a.registry.Lookup(key); err != nil {
		return err
	}
	path := a.inputPath
	if path == "" {
		path = a.cfg.InputPath(key.Year, key.Day)
	}
	s, err := input.Read(path)
	if err != nil {
		return err
	}
	res := a.runner().Run(ctx, solver.Job{Key: key, Input: s})
	if res.Err != nil {
		return res.Err
	}
	printAnswers(w, res.Answers)
	return nil
}

func (a *app) solveAll(ctx context.Context, w io.Writer) error {
	var jobs []solver.Job
	for _, key := range a.registry.Keys() {
		path := a.cfg.InputPath(key.Year, key.Day)
		s, err := input.Read(path)
		if errors.Is(err, os.ErrNotExist) {
			a.logger.Debug("no input", zap.Stringer("solver", key), zap.String("path", path))
			continue
		}
		if err != nil {
			return err
		}
		jobs = append(jobs, solver.Job{Key: key, Input: s})
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no puzzle inputs found in %s", a.cfg.InputDir)
	}

	var failed int
	for _, res := range a.runner().RunAll(ctx, jobs) {
		fmt.Fprintf(w, "%s (%s)\n", res.Key, res.Duration)
		if res.Err != nil {
			failed++
			a.logger.Error("solve failed", zap.Error(res.Err))
			continue
		}
		printAnswers(w, res.Answers)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d solvers failed", failed, len(jobs))
	}
	return nil
}

func newRootCmd(registry *solver.Registry) *cobra.Command {
	a := &app{registry: registry}

	rootCmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code puzzle solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "aoc.yaml", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a puzzle",
		Long: `Solves the puzzle selected by year and day and prints its answers.

Without --input the puzzle input is read from <input_dir>/<year>/<day>.input.

Examples:
  aoc run -y 2023 -d 4 -i day4.txt
  aoc run --year year2015 --day day5
  aoc run --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.all {
				return a.solveAll(cmd.Context(), cmd.OutOrStdout())
			}
			return a.solve(cmd.Context(), cmd.OutOrStdout())
		},
	}
	runCmd.Flags().StringVarP(&a.year, "year", "y", "", "puzzle year, e.g. 2023")
	runCmd.Flags().StringVarP(&a.day, "day", "d", "", "puzzle day, e.g. 4")
	runCmd.Flags().StringVarP(&a.inputPath, "input", "i", "", "puzzle input file")
	runCmd.Flags().BoolVar(&a.all, "all", false, "solve every puzzle with an input file")
	runCmd.MarkFlagsMutuallyExclusive("all", "year")
	runCmd.MarkFlagsMutuallyExclusive("all", "day")
	runCmd.MarkFlagsMutuallyExclusive("all", "input")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered solvers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range a.registry.Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd)
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(solutions.Registry()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
		os.Exit(1)
	}
}
