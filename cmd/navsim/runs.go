package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/internal/storage"
)

var (
	flagLimit int
	flagRunID int64
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show stored run history",
	Long: `List the most recent runs, or the per-agent results of one run.

Examples:
  navsim runs
  navsim runs --limit 5
  navsim runs --id 12`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().Int64Var(&flagRunID, "id", 0, "Show agent results for this run")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagRunID > 0 {
		agents, err := store.AgentResults(flagRunID)
		if err != nil {
			return err
		}
		if len(agents) == 0 {
			fmt.Printf("No agent results for run %d.\n", flagRunID)
			return nil
		}
		fmt.Printf("  %-8s  %-8s  %-8s  %-8s  %-7s  %-10s  %s\n",
			"Agent", "Start", "Goal", "End", "Reached", "Recomputes", "Travelled")
		for _, a := range agents {
			fmt.Printf("  %-8s  %-8v  %-8v  %-8v  %-7t  %-10d  %.2f\n",
				a.Name, a.Start, a.Goal, a.End, a.Reached, a.Recomputes, a.Travelled)
		}
		return nil
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Try 'navsim run' to simulate the built-in funnel.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %-10s  %s\n", "ID", "Scenario", "Reached", "Frames", "Collisions", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-6s  %-10s  %s\n", "--", "--------", "-------", "------", "----------", "----")
	for _, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-7s  %-6d  %-10d  %s\n",
			r.ID, r.Scenario, fmt.Sprintf("%d/%d", r.Reached, r.Agents), r.Frames, r.Collisions,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
