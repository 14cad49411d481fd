package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CaffeineLoop/rubiks-cube-solver/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent solves",
	Long:  `Display recent solves from the history database, newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of solves to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No solves recorded yet."))
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-16s  %5s  %6s  %6s  %s\n",
		"ID", "WHEN", "SIZE", "MOVES", "SCORE", "RESULT")
	for _, s := range solves {
		fmt.Fprintf(out, "%-36s  %-16s  %2dx%-2d  %6d  %6d  %s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Size, s.Size,
			s.MoveCount,
			s.Efficiency,
			renderStatus(s.Solved, "solved", "unsolved"))
	}
	return nil
}

var showLast bool

var showCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a recorded solve",
	Long: `Display the scramble, solution, and outcome of a recorded solve.

Use --last to show the most recent solve instead of naming an ID.`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")
}

func runShow(cmd *cobra.Command, args []string) error {
	if !showLast && len(args) != 1 {
		return fmt.Errorf("provide a solve ID or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	var solve *storage.Solve
	if showLast {
		solve, err = repo.Latest()
	} else {
		solve, err = repo.Get(args[0])
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headingStyle.Render("Solve "+solve.SolveID))
	fmt.Fprintf(out, "  When:     %s\n", solve.CreatedAt.Local().Format(time.RFC1123))
	fmt.Fprintf(out, "  Cube:     %dx%d\n", solve.Size, solve.Size)
	fmt.Fprintf(out, "  Scramble: %s\n", solve.Scramble)
	if solve.Solution != "" {
		fmt.Fprintf(out, "  Solution: %s\n", solve.Solution)
	}
	fmt.Fprintf(out, "  Moves:    %d\n", solve.MoveCount)
	fmt.Fprintf(out, "  Score:    %d\n", solve.Efficiency)
	fmt.Fprintf(out, "  Duration: %s\n", solve.Duration)
	fmt.Fprintf(out, "  Result:   %s", renderStatus(solve.Solved, "solved", "unsolved"))
	if !solve.Converged {
		fmt.Fprintf(out, " %s", badStyle.Render("(non-converged phases)"))
	}
	fmt.Fprintln(out)
	return nil
}
