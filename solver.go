package rubik

import (
	"fmt"
	"strings"
	"time"
)

// Solver implements a six-phase layer-by-layer solve of a 3x3 cube:
// white cross, first-layer corners, middle edges, yellow cross, yellow
// corner orientation, and last-layer permutation. The cross phase first
// re-homes any centers a slice-bearing scramble displaced.
//
// The solver mutates the cube it was constructed with; pass a Clone to
// keep the scrambled state. Every phase runs under a bounded attempt
// ceiling and records its outcome in a PhaseResult; a phase that fails to
// converge is reported, never panicked, and later phases still run.
type Solver struct {
	cube  *Cube
	moves []Move
}

// NewSolver creates a solver for the given cube.
// Only 3x3 cubes are supported; anything else fails with
// ErrUnsupportedSize.
func NewSolver(c *Cube) (*Solver, error) {
	if c.Size() != trackerSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrUnsupportedSize, c.Size(), c.Size())
	}
	return &Solver{cube: c}, nil
}

// PhaseResult records one phase's outcome. Target is the milestone the
// phase establishes; Converged reports whether its completion predicate
// held within MaxAttempts.
type PhaseResult struct {
	Target      Phase
	Moves       int
	Attempts    int
	MaxAttempts int
	Converged   bool
}

// Err returns nil for a converged phase and an ErrNotConverged-wrapped
// error otherwise.
func (p PhaseResult) Err() error {
	if p.Converged {
		return nil
	}
	return fmt.Errorf("%w: %s after %d attempts", ErrNotConverged, p.Target, p.Attempts)
}

// Result is the outcome of a full solve.
type Result struct {
	Moves    []Move
	Solved   bool
	Phases   []PhaseResult
	Duration time.Duration
}

// MoveCount returns the number of logical moves in the solution.
func (r *Result) MoveCount() int {
	return len(r.Moves)
}

// Notation returns the solution as a space-separated move sequence.
func (r *Result) Notation() string {
	return FormatMoves(r.Moves)
}

// EfficiencyScore rates the solve: max(0, 100 - moves) plus a 50-point
// bonus when the cube ended solved.
func (r *Result) EfficiencyScore() int {
	score := 100 - r.MoveCount()
	if score < 0 {
		score = 0
	}
	if r.Solved {
		score += 50
	}
	return score
}

// Converged reports whether every phase met its completion predicate.
func (r *Result) Converged() bool {
	for _, p := range r.Phases {
		if !p.Converged {
			return false
		}
	}
	return true
}

// Summary returns a one-line human-readable description of the result.
func (r *Result) Summary() string {
	status := "unsolved"
	if r.Solved {
		status = "solved"
	}
	var stuck []string
	for _, p := range r.Phases {
		if !p.Converged {
			stuck = append(stuck, p.Target.String())
		}
	}
	s := fmt.Sprintf("%s in %d moves (score %d)", status, r.MoveCount(), r.EfficiencyScore())
	if len(stuck) > 0 {
		s += ", non-converged: " + strings.Join(stuck, ", ")
	}
	return s
}

// Solve runs all six phases and returns the aggregate result.
func (s *Solver) Solve() *Result {
	start := time.Now()

	phases := []func() PhaseResult{
		s.solveWhiteCross,
		s.solveFirstLayerCorners,
		s.solveMiddleEdges,
		s.solveYellowCross,
		s.orientYellowCorners,
		s.permuteLastLayer,
	}

	result := &Result{}
	for _, phase := range phases {
		result.Phases = append(result.Phases, phase())
	}

	result.Moves = make([]Move, len(s.moves))
	copy(result.Moves, s.moves)
	result.Solved = s.cube.IsSolved()
	result.Duration = time.Since(start)
	return result
}

// exec applies moves to the cube and appends them to the solution.
func (s *Solver) exec(moves ...Move) {
	_ = s.cube.Apply(moves...) // face and slice moves on a 3x3 cannot fail
	s.moves = append(s.moves, moves...)
}

// center returns the color of a face's center facelet.
func (s *Solver) center(f CubeFace) Color {
	return s.cube.facelets[f][1][1]
}

// restoreCenters re-homes the six centers with slice moves. Face moves
// never displace centers, but scrambles may contain M/E/S, and every
// placement decision below reads facelets against the home color frame.
// Slice notation carries no prime or double suffix, so larger turns
// repeat the base move. Centers rotate rigidly: once white sits on D,
// one E alignment of the green center homes the rest.
func (s *Solver) restoreCenters() {
	switch {
	case s.center(Up) == White:
		s.exec(M, M)
	case s.center(Front) == White:
		s.exec(M)
	case s.center(Back) == White:
		s.exec(M, M, M)
	case s.center(Right) == White:
		s.exec(S)
	case s.center(Left) == White:
		s.exec(S, S, S)
	}
	switch {
	case s.center(Right) == Green:
		s.exec(E, E, E)
	case s.center(Back) == Green:
		s.exec(E, E)
	case s.center(Left) == Green:
		s.exec(E)
	}
}

// syncTracker rebuilds the piece tracker from the facelet grid. The
// tracker skips slice moves, so a scramble containing them leaves it
// behind the grid; the solver re-derives piece state once centers are
// home and the tracker stays current through the face-move phases.
func (s *Solver) syncTracker() {
	t := s.cube.tracker
	for slot := range edgeCoords {
		a, b := s.edgeColors(slot)
		p := edgePiece{id: int8(edgeHome(a, b))}
		if a != edgeReference(a, b) {
			p.ori = 1
		}
		t.edges[slot] = p
	}
	for slot := range cornerCoords {
		cols := s.cornerColors(slot)
		p := cornerPiece{id: int8(cornerHome(cols[0], cols[1], cols[2]))}
		for i, col := range cols {
			if col == White || col == Yellow {
				p.ori = int8(i)
				break
			}
		}
		t.corners[slot] = p
	}
}

// edgeReference picks the sticker that defines an edge's orientation:
// the white or yellow sticker when the piece has one, the green or blue
// sticker otherwise. A piece is unflipped when that sticker sits on the
// first facelet of its slot.
func edgeReference(a, b Color) Color {
	switch {
	case a == White || a == Yellow:
		return a
	case b == White || b == Yellow:
		return b
	case a == Green || a == Blue:
		return a
	default:
		return b
	}
}

// uAlign emits k clockwise U turns collapsed to a single logical move.
func (s *Solver) uAlign(k int) {
	switch ((k % 4) + 4) % 4 {
	case 1:
		s.exec(U)
	case 2:
		s.exec(U2)
	case 3:
		s.exec(UPrime)
	}
}

// coord addresses a single facelet.
type coord struct {
	f    CubeFace
	r, c int
}

// edgeCoords lists both facelets of each edge slot. The first entry is
// the U/D facelet for top/bottom slots and the F/B facelet for middle
// slots.
var edgeCoords = [numEdges][2]coord{
	EdgeUF: {{Up, 2, 1}, {Front, 0, 1}},
	EdgeUR: {{Up, 1, 2}, {Right, 0, 1}},
	EdgeUB: {{Up, 0, 1}, {Back, 0, 1}},
	EdgeUL: {{Up, 1, 0}, {Left, 0, 1}},
	EdgeDF: {{Down, 0, 1}, {Front, 2, 1}},
	EdgeDR: {{Down, 1, 2}, {Right, 2, 1}},
	EdgeDB: {{Down, 2, 1}, {Back, 2, 1}},
	EdgeDL: {{Down, 1, 0}, {Left, 2, 1}},
	EdgeFR: {{Front, 1, 2}, {Right, 1, 0}},
	EdgeFL: {{Front, 1, 0}, {Left, 1, 2}},
	EdgeBR: {{Back, 1, 0}, {Right, 1, 2}},
	EdgeBL: {{Back, 1, 2}, {Left, 1, 0}},
}

// cornerCoords lists the three facelets of each corner slot in twist
// order: the U/D facelet first, then clockwise around the corner as seen
// from outside.
var cornerCoords = [numCorners][3]coord{
	CornerUFR: {{Up, 2, 2}, {Right, 0, 0}, {Front, 0, 2}},
	CornerUFL: {{Up, 2, 0}, {Front, 0, 0}, {Left, 0, 2}},
	CornerUBL: {{Up, 0, 0}, {Left, 0, 0}, {Back, 0, 2}},
	CornerUBR: {{Up, 0, 2}, {Back, 0, 0}, {Right, 0, 2}},
	CornerDFR: {{Down, 0, 2}, {Front, 2, 2}, {Right, 2, 0}},
	CornerDFL: {{Down, 0, 0}, {Left, 2, 2}, {Front, 2, 0}},
	CornerDBL: {{Down, 2, 0}, {Back, 2, 2}, {Left, 2, 0}},
	CornerDBR: {{Down, 2, 2}, {Right, 2, 2}, {Back, 2, 0}},
}

func (s *Solver) at(co coord) Color {
	return s.cube.facelets[co.f][co.r][co.c]
}

// edgeColors returns the two sticker colors at an edge slot.
func (s *Solver) edgeColors(slot int) (Color, Color) {
	return s.at(edgeCoords[slot][0]), s.at(edgeCoords[slot][1])
}

// edgeHome returns the slot whose solved stickers carry the given color
// pair.
func edgeHome(a, b Color) int {
	for slot, coords := range edgeCoords {
		x, y := Color(coords[0].f), Color(coords[1].f)
		if (x == a && y == b) || (x == b && y == a) {
			return slot
		}
	}
	return -1
}

// findEdge locates the slot currently holding the edge piece with the
// given color pair. Identity comes from the piece tracker rather than a
// sticker scan; orientation decisions still read facelets.
func (s *Solver) findEdge(a, b Color) int {
	id := int8(edgeHome(a, b))
	for slot, p := range s.cube.tracker.edges {
		if p.id == id {
			return slot
		}
	}
	return -1
}

// cornerColors returns the three sticker colors at a corner slot in
// twist order.
func (s *Solver) cornerColors(slot int) [3]Color {
	var out [3]Color
	for i, co := range cornerCoords[slot] {
		out[i] = s.at(co)
	}
	return out
}

// cornerHome returns the slot whose solved stickers carry the given
// color set.
func cornerHome(a, b, c Color) int {
	for slot, coords := range cornerCoords {
		var match int
		for _, want := range [3]Color{a, b, c} {
			for _, co := range coords {
				if Color(co.f) == want {
					match++
					break
				}
			}
		}
		if match == 3 {
			return slot
		}
	}
	return -1
}

// findCorner locates the slot currently holding the corner piece with
// the given color set, by tracker identity.
func (s *Solver) findCorner(a, b, c Color) int {
	id := int8(cornerHome(a, b, c))
	for slot, p := range s.cube.tracker.corners {
		if p.id == id {
			return slot
		}
	}
	return -1
}

// cornerFacelet returns which facelet of a corner slot shows the given
// color, in the twist order of cornerCoords, or -1 when absent.
func (s *Solver) cornerFacelet(slot int, col Color) int {
	for i, co := range cornerCoords[slot] {
		if s.at(co) == col {
			return i
		}
	}
	return -1
}
