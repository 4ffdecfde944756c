package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/internal/storage"
	"github.com/katalvlaran/gridnav/scenario"
)

var flagNoSave bool

var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Simulate a scenario",
	Long: `Load a scenario, step every agent until all are idle or the frame cap
is hit, print the report and store it in the run history.

Without an argument the scenario is looked up in
~/.gridnav/scenarios/default.yaml, then ./scenarios/default.yaml, then the
built-in funnel.

Examples:
  navsim run
  navsim run maze.yaml --no-save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not store the report")
}

func runRun(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report, err := scenario.Run(ctx, sc, logger.WithPrefix(sc.Name))
	if err != nil && ctx.Err() == nil {
		return err
	}
	printReport(report)
	if err != nil {
		logger.Warn("run interrupted", "frames", report.Frames)
	}

	if flagNoSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	id, err := store.SaveRun(report)
	if err != nil {
		return err
	}
	logger.Info("run saved", "id", id, "db", flagDBPath)
	return nil
}

func printReport(r scenario.Report) {
	fmt.Printf("Scenario %s: %d frames, %d/%d agents reached, %d collisions (%s)\n",
		r.Scenario, r.Frames, r.Reached(), len(r.Agents), r.Collisions, r.Elapsed.Round(time.Millisecond))
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-8s  %-8s  %-7s  %-9s  %-5s  %s\n",
		"Agent", "Start", "Goal", "End", "Reached", "Reachable", "First", "Recomputes")
	for _, a := range r.Agents {
		fmt.Printf("  %-8s  %-8v  %-8v  %-8v  %-7t  %-9t  %-5t  %d\n",
			a.Name, a.Start, a.Goal, a.End, a.Reached, a.Reachable, a.FirstComplete, a.Recomputes)
	}
}
