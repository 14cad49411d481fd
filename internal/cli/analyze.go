package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CaffeineLoop/rubiks-cube-solver/internal/analysis"
	"github.com/CaffeineLoop/rubiks-cube-solver/internal/storage"
)

var (
	analyzeLimit    int
	analyzeMinCount int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Mine recorded solutions for recurring patterns",
	Long: `Look across recorded solutions for recurring move patterns and count
how often the solver's named algorithms appear.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().IntVarP(&analyzeLimit, "limit", "n", 50, "Number of recent solves to analyze")
	analyzeCmd.Flags().IntVar(&analyzeMinCount, "min-count", 3, "Minimum occurrences for a pattern to report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(analyzeLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(solves) == 0 {
		fmt.Fprintln(out, dimStyle.Render("No solves recorded yet."))
		return nil
	}

	notations := make([]string, 0, len(solves))
	for _, s := range solves {
		notations = append(notations, s.Solution)
	}
	solutions := analysis.ParseSolutions(notations)
	logger.Debug("analyzing", "solves", len(solutions))

	algCounts := make(map[string]int)
	for _, moves := range solutions {
		for name, n := range analysis.AlgorithmCounts(moves) {
			algCounts[name] += n
		}
	}

	fmt.Fprintln(out, headingStyle.Render("Known algorithms"))
	if len(algCounts) == 0 {
		fmt.Fprintln(out, dimStyle.Render("  none found"))
	}
	for _, alg := range []string{"sexy move", "sune", "yellow cross", "A perm", "T perm", "U perm"} {
		if n, ok := algCounts[alg]; ok {
			fmt.Fprintf(out, "  %-14s %d\n", alg, n)
		}
	}
	fmt.Fprintln(out)

	patterns := analysis.MinePatterns(solutions, 3, 8, analyzeMinCount)
	fmt.Fprintln(out, headingStyle.Render("Recurring patterns"))
	if len(patterns) == 0 {
		fmt.Fprintln(out, dimStyle.Render("  none above threshold"))
		return nil
	}
	if len(patterns) > 15 {
		patterns = patterns[:15]
	}
	for _, p := range patterns {
		fmt.Fprintf(out, "  %3dx  %s\n", p.Count, p.Notation)
	}
	return nil
}
