// Command yasat is the command-line driver for the solver: it parses a
// DIMACS CNF instance, runs the search, and reports the outcome with the
// exit codes from §6 (UNKNOWN=0, SAT=10, UNSAT=20).
package main

import (
	"os"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhartert/yasat/internal/dimacs"
	"github.com/rhartert/yasat/internal/sat"
	yasat "github.com/rhartert/yasat/sat"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   false,
		TimestampFormat: time.RFC3339,
	})
	return l
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		cpuProfile   string
		memProfile   string
		maxConflicts int64
	)

	exitCode := sat.Unknown.ExitCode()

	cmd := &cobra.Command{
		Use:   "yasat <instance.cnf>",
		Short: "yasat solves a DIMACS CNF instance with a CDCL search engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}

			status, err := solveInstance(args[0], maxConflicts)
			if err != nil {
				return err
			}
			exitCode = status.ExitCode()

			if memProfile != "" {
				f, err := os.Create(memProfile)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := pprof.WriteHeapProfile(f); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	cmd.Flags().StringVar(&memProfile, "memprofile", "", "write a heap profile to this file")
	cmd.Flags().Int64Var(&maxConflicts, "max_conflicts", -1, "unused, kept for CLI compatibility; the core has no total conflict budget (§5)")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Fatal("yasat failed")
	}

	return exitCode
}

func solveInstance(filename string, maxConflicts int64) (sat.Status, error) {
	if maxConflicts >= 0 {
		log.Warn("--max_conflicts is accepted for compatibility but has no effect: the search driver has no total conflict budget, only the per-episode Luby-paced restart budget (§5)")
	}

	solver := yasat.NewDefaultSolver()
	if err := dimacs.Load(filename, solver); err != nil {
		return sat.Unknown, err
	}

	log.WithFields(logrus.Fields{
		"variables": solver.NumVariables(),
		"clauses":   solver.NumConstraints(),
	}).Info("instance loaded")

	stats := newRunningStats()
	solver.OnProgress = func(s sat.Statistics) {
		stats.record(s)
		log.WithFields(logrus.Fields{
			"iterations": s.Iterations,
			"conflicts":  s.Conflicts,
			"restarts":   s.Restarts,
			"learnts":    solver.NumLearnts(),
			"confl_sec":  stats.conflictsPerSecond(),
		}).Info("progress")
	}

	start := time.Now()
	status := solver.Solve()
	elapsed := time.Since(start)

	log.WithFields(logrus.Fields{
		"status":     status.String(),
		"elapsed_s":  elapsed.Seconds(),
		"conflicts":  solver.Statistics().Conflicts,
		"decisions":  solver.Statistics().Decisions,
		"restarts":   solver.Statistics().Restarts,
		"propagated": solver.Statistics().Propagations,
	}).Info("search finished")

	return status, nil
}
