package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	rubik "github.com/CaffeineLoop/rubiks-cube-solver"
)

// Sticker styles, one per face color.
var stickerStyles = map[rubik.Color]lipgloss.Style{
	rubik.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	rubik.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	rubik.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
	rubik.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
	rubik.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15")),
	rubik.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

func sticker(c rubik.Color) string {
	return stickerStyles[c].Render(" " + c.String() + " ")
}

func faceRow(cube *rubik.Cube, f rubik.CubeFace, row int) string {
	var b strings.Builder
	for col := 0; col < cube.Size(); col++ {
		b.WriteString(sticker(cube.Facelet(f, row, col)))
	}
	return b.String()
}

// renderNet draws the cube as a colored unfolded net: U on top, the
// L F R B band in the middle, D below.
func renderNet(cube *rubik.Cube) string {
	n := cube.Size()
	pad := strings.Repeat(" ", 3*n)

	var b strings.Builder
	for r := 0; r < n; r++ {
		b.WriteString(pad)
		b.WriteString(faceRow(cube, rubik.Up, r))
		b.WriteString("\n")
	}
	band := []rubik.CubeFace{rubik.Left, rubik.Front, rubik.Right, rubik.Back}
	for r := 0; r < n; r++ {
		for _, f := range band {
			b.WriteString(faceRow(cube, f, r))
		}
		b.WriteString("\n")
	}
	for r := 0; r < n; r++ {
		b.WriteString(pad)
		b.WriteString(faceRow(cube, rubik.Down, r))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStatus(ok bool, yes, no string) string {
	if ok {
		return okStyle.Render(yes)
	}
	return badStyle.Render(no)
}

// renderPhases formats the per-phase solver outcome.
func renderPhases(phases []rubik.PhaseResult) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Phases"))
	b.WriteString("\n")
	for _, p := range phases {
		status := renderStatus(p.Converged, "ok", "stuck")
		b.WriteString(fmt.Sprintf("  %-18s %3d moves  %d/%d attempts  %s\n",
			p.Target.DisplayName(), p.Moves, p.Attempts, p.MaxAttempts, status))
	}
	return b.String()
}
