package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	rubik "github.com/CaffeineLoop/rubiks-cube-solver"
)

var playSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Turn the cube from the keyboard and watch the phase detection follow.

Keys:
  u d f b r l   face turns (hold shift for counter-clockwise)
  m e s         slice turns (3x3 and other odd sizes)
  space         scramble
  ctrl+z        reset to solved
  enter         solve (3x3 only)
  q             quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playSize, "size", "s", 0, "Cube size (default from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cube, err := newConfiguredCube(playSize, 0)
	if err != nil {
		return err
	}

	model := playModel{cube: cube, status: "ready"}
	_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	return err
}

// keyMoves maps keypresses to moves. Uppercase means counter-clockwise.
var keyMoves = map[string]rubik.Move{
	"u": rubik.U, "U": rubik.UPrime,
	"d": rubik.D, "D": rubik.DPrime,
	"f": rubik.F, "F": rubik.FPrime,
	"b": rubik.B, "B": rubik.BPrime,
	"r": rubik.R, "R": rubik.RPrime,
	"l": rubik.L, "L": rubik.LPrime,
	"m": rubik.M, "e": rubik.E, "s": rubik.S,
}

type playModel struct {
	cube     *rubik.Cube
	status   string
	solution string
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case " ":
		moves := m.cube.Scramble(cfg.Cube.ScrambleLength)
		m.status = "scrambled: " + rubik.FormatMoves(moves)
		m.solution = ""

	case "ctrl+z":
		m.cube.Reset()
		m.status = "reset"
		m.solution = ""

	case "enter":
		solver, err := rubik.NewSolver(m.cube)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		result := solver.Solve()
		m.status = result.Summary()
		m.solution = result.Notation()

	default:
		move, ok := keyMoves[key]
		if !ok {
			return m, nil
		}
		if err := m.cube.Apply(move); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "applied " + move.Notation()
		m.solution = ""
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(renderNet(m.cube))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %d moves\n",
		headingStyle.Render(m.cube.DetectPhase().DisplayName()),
		renderStatus(m.cube.IsSolved(), "solved", "scrambled"),
		len(m.cube.History())))
	b.WriteString(dimStyle.Render(m.status))
	b.WriteString("\n")
	if m.solution != "" {
		b.WriteString("solution: " + m.solution + "\n")
	}
	b.WriteString(dimStyle.Render("u/d/f/b/r/l turn  shift: reverse  space: scramble  enter: solve  q: quit"))
	b.WriteString("\n")
	return b.String()
}
