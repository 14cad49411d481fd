package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CaffeineLoop/rubiks-cube-solver/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate solve statistics",
	Long:  `Summarize all recorded solves: counts, move averages, and best results.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := storage.NewSolveRepository(db).Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if st.Total == 0 {
		fmt.Fprintln(out, dimStyle.Render("No solves recorded yet."))
		return nil
	}

	fmt.Fprintln(out, headingStyle.Render("Statistics"))
	fmt.Fprintf(out, "  Solves:          %d (%d solved)\n", st.Total, st.SolvedCount)
	fmt.Fprintf(out, "  Average moves:   %.1f\n", st.AvgMoveCount)
	fmt.Fprintf(out, "  Best solve:      %d moves\n", st.BestMoveCount)
	fmt.Fprintf(out, "  Best score:      %d\n", st.BestEfficiency)
	fmt.Fprintf(out, "  Average solve:   %s\n",
		(time.Duration(st.AvgDurationMs) * time.Millisecond).Round(time.Millisecond))
	return nil
}
