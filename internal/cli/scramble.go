package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubik "github.com/CaffeineLoop/rubiks-cube-solver"
)

var (
	scrambleSize  int
	scrambleMoves int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and display a scramble",
	Long: `Generate a random scramble for a cube of the given size, print the
move sequence, and show the resulting state.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleSize, "size", "s", 0, "Cube size (default from config)")
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "m", 0, "Scramble length (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
}

func newConfiguredCube(size int, seed int64) (*rubik.Cube, error) {
	if size == 0 {
		size = cfg.Cube.Size
	}
	if seed == 0 {
		seed = cfg.Cube.Seed
	}
	var opts []rubik.Option
	if seed != 0 {
		opts = append(opts, rubik.WithSeed(seed))
	}
	return rubik.New(size, opts...)
}

func runScramble(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())

	cube, err := newConfiguredCube(scrambleSize, scrambleSeed)
	if err != nil {
		return err
	}

	length := scrambleMoves
	if length == 0 {
		length = cfg.Cube.ScrambleLength
	}

	moves := cube.Scramble(length)
	logger.Debug("scrambled", "size", cube.Size(), "moves", length)

	fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render("Scramble"))
	fmt.Fprintln(cmd.OutOrStdout(), " ", rubik.FormatMoves(moves))
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), renderNet(cube))
	return nil
}
