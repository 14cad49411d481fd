package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	rubik "github.com/CaffeineLoop/rubiks-cube-solver"
	"github.com/CaffeineLoop/rubiks-cube-solver/internal/storage"
)

var (
	solveMoves   int
	solveSeed    int64
	solveNoSave  bool
	solveShowNet bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Scramble and solve a 3x3 cube",
	Long: `Solve a 3x3 cube with the layer-by-layer method.

With arguments, the scramble is taken as notation (e.g. "R U R' U'");
otherwise a random scramble is generated. The solve is stored in the
history database unless --no-save is given.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVarP(&solveMoves, "moves", "m", 0, "Random scramble length (default from config)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for a reproducible scramble")
	solveCmd.Flags().BoolVar(&solveNoSave, "no-save", false, "Do not record the solve in history")
	solveCmd.Flags().BoolVar(&solveShowNet, "net", false, "Show the scrambled cube before solving")
}

func runSolve(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	cube, err := newConfiguredCube(3, solveSeed)
	if err != nil {
		return err
	}

	var scramble string
	if len(args) > 0 {
		scramble = strings.Join(args, " ")
		if err := cube.Execute(scramble); err != nil {
			return fmt.Errorf("bad scramble: %w", err)
		}
	} else {
		length := solveMoves
		if length == 0 {
			length = cfg.Cube.ScrambleLength
		}
		scramble = rubik.FormatMoves(cube.Scramble(length))
	}
	logger.Debug("scrambled", "notation", scramble)

	if solveShowNet {
		fmt.Fprint(out, renderNet(cube))
		fmt.Fprintln(out)
	}

	solver, err := rubik.NewSolver(cube)
	if err != nil {
		return err
	}
	result := solver.Solve()
	logger.Debug("solved", "moves", result.MoveCount(), "duration", result.Duration)

	fmt.Fprintln(out, headingStyle.Render("Scramble"))
	fmt.Fprintln(out, " ", scramble)
	fmt.Fprintln(out)
	fmt.Fprint(out, renderPhases(result.Phases))
	fmt.Fprintln(out)
	fmt.Fprintln(out, headingStyle.Render("Solution"))
	if result.MoveCount() == 0 {
		fmt.Fprintln(out, " ", dimStyle.Render("(already solved)"))
	} else {
		fmt.Fprintln(out, " ", result.Notation())
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s  %d moves, score %d, %s\n",
		renderStatus(result.Solved, "solved", "unsolved"),
		result.MoveCount(), result.EfficiencyScore(),
		result.Duration.Round(time.Microsecond))

	if solveNoSave {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	id, err := repo.Create(storage.Solve{
		Size:       cube.Size(),
		Scramble:   scramble,
		Solution:   result.Notation(),
		MoveCount:  result.MoveCount(),
		Solved:     result.Solved,
		Converged:  result.Converged(),
		Efficiency: result.EfficiencyScore(),
		Duration:   result.Duration,
	})
	if err != nil {
		return err
	}
	logger.Info("recorded solve", "id", id)
	return nil
}
