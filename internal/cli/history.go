package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutu-network/mathsheet/internal/domain"
)

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list (0 = all)")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
	rootCmd.AddCommand(historyCmd)
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List earlier generate runs",
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one run and the files it wrote",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Remove a run from the history",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := newService(nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.History == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "History is disabled. Set [history] enabled = true in the config.")
		return nil
	}

	runs, err := s.Runs(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded. Run 'mathsheet generate <file>' to get started.")
		return nil
	}
	return printRuns(cmd.OutOrStdout(), runs)
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	s, err := newService(nil)
	if err != nil {
		return err
	}
	defer s.Close()

	run, err := s.Run(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := printRuns(out, []domain.Run{*run}); err != nil {
		return err
	}
	fmt.Fprintln(out)
	for _, f := range run.Files {
		fmt.Fprintf(out, "  %s\t%s\n", f.Task, f.Solution)
	}
	fmt.Fprintf(out, "\nReproduce with: mathsheet generate %s.pdf -n %d --seed %d --digits-min %d --digits-max %d -a %s\n",
		run.Base, run.Count, run.Seed, run.DigitsMin, run.DigitsMax, joinTypes(run.TaskTypes))
	return nil
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	s, err := newService(nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteRun(args[0]); err != nil {
		return fmt.Errorf("remove %s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
	return nil
}
