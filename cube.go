package rubik

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	Yellow Color = iota // U face
	White               // D face
	Green               // F face
	Blue                // B face
	Red                 // R face
	Orange              // L face
)

// String returns a single-letter color code.
func (c Color) String() string {
	switch c {
	case Yellow:
		return "Y"
	case White:
		return "W"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// CubeFace identifies one of the six faces of the cube grid.
// The zero-based index doubles as the face's native color: a solved
// cube shows Color(f) on every facelet of face f.
type CubeFace int

const (
	Up CubeFace = iota
	Down
	Front
	Back
	Right
	Left
)

// String returns the single-letter face name.
func (f CubeFace) String() string {
	return [...]string{"U", "D", "F", "B", "R", "L"}[f]
}

// gridFace maps a notation face to its grid face.
func gridFace(f Face) CubeFace {
	switch f {
	case FaceU:
		return Up
	case FaceD:
		return Down
	case FaceF:
		return Front
	case FaceB:
		return Back
	case FaceR:
		return Right
	default:
		return Left
	}
}

// Cube is an NxN x6 facelet model of a Rubik's cube.
//
// The color frame is fixed: yellow up, white down, green front, blue back,
// red right, orange left. Each face is an NxN matrix indexed [row][col];
// row 0 of a side face touches U, and the face matrices are oriented so
// that the unfolded net in String() reads naturally.
//
// A 3x3 cube also carries a piece-level Tracker that is updated in
// lockstep with every face move. Slice moves displace center facelets and
// are outside the piece model; they mutate the grid and the history only.
type Cube struct {
	size     int
	facelets [6][][]Color
	history  []Move
	tracker  *Tracker
	rng      *rand.Rand
	record   bool
}

// New creates a solved cube of the given size (at least 2).
func New(size int, opts ...Option) (*Cube, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		size:   size,
		rng:    cfg.rng,
		record: cfg.moveHistory,
	}
	for f := range c.facelets {
		c.facelets[f] = solvedFace(CubeFace(f), size)
	}
	if size == trackerSize {
		c.tracker = NewTracker()
	}
	return c, nil
}

func solvedFace(f CubeFace, size int) [][]Color {
	grid := make([][]Color, size)
	for r := range grid {
		grid[r] = make([]Color, size)
		for i := range grid[r] {
			grid[r][i] = Color(f)
		}
	}
	return grid
}

// Size returns the cube dimension N.
func (c *Cube) Size() int {
	return c.size
}

// Tracker returns the piece tracker, or nil for sizes other than 3x3.
func (c *Cube) Tracker() *Tracker {
	return c.tracker
}

// Facelet returns the color at the given face, row and column.
func (c *Cube) Facelet(f CubeFace, row, col int) Color {
	return c.facelets[f][row][col]
}

// FaceGrid returns a copy of one face's color matrix.
func (c *Cube) FaceGrid(f CubeFace) [][]Color {
	grid := make([][]Color, c.size)
	for r := range grid {
		grid[r] = make([]Color, c.size)
		copy(grid[r], c.facelets[f][r])
	}
	return grid
}

// History returns the logical moves applied since creation or Reset.
// Primes and doubles are recorded as single entries.
func (c *Cube) History() []Move {
	out := make([]Move, len(c.history))
	copy(out, c.history)
	return out
}

// IsSolved reports whether every facelet shows its face's native color.
func (c *Cube) IsSolved() bool {
	for f := range c.facelets {
		want := Color(f)
		for _, row := range c.facelets[f] {
			for _, col := range row {
				if col != want {
					return false
				}
			}
		}
	}
	return true
}

// Reset restores the solved state and clears the history.
func (c *Cube) Reset() {
	for f := range c.facelets {
		c.facelets[f] = solvedFace(CubeFace(f), c.size)
	}
	c.history = c.history[:0]
	if c.tracker != nil {
		c.tracker.Reset()
	}
}

// Clone returns a deep copy of the cube, including history and tracker.
// The copy shares the RNG source with the original.
func (c *Cube) Clone() *Cube {
	clone := &Cube{
		size:    c.size,
		history: make([]Move, len(c.history)),
		rng:     c.rng,
		record:  c.record,
	}
	copy(clone.history, c.history)
	for f := range c.facelets {
		clone.facelets[f] = make([][]Color, c.size)
		for r := range c.facelets[f] {
			clone.facelets[f][r] = make([]Color, c.size)
			copy(clone.facelets[f][r], c.facelets[f][r])
		}
	}
	if c.tracker != nil {
		clone.tracker = c.tracker.Clone()
	}
	return clone
}

// Apply applies one or more typed moves to the cube.
// It fails with ErrUnknownMove if a slice move is applied below size 3.
func (c *Cube) Apply(moves ...Move) error {
	for _, m := range moves {
		if err := c.applyMove(m); err != nil {
			return err
		}
	}
	return nil
}

// Execute applies a whitespace-separated notation sequence.
//
// Bad tokens never abort the sequence: every valid token is applied and
// each failure is reported in the returned (joined) error.
func (c *Cube) Execute(notation string) error {
	var errs []error
	for _, token := range strings.Fields(notation) {
		m, err := ParseMove(token)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownMove, token))
			continue
		}
		if err := c.applyMove(m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scramble applies n random moves drawn from the legal alphabet for this
// size and returns them. The alphabet is the 18 face moves plus the three
// slice moves on sizes >= 3.
func (c *Cube) Scramble(n int) []Move {
	faces := []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}
	turns := []Turn{CW, CCW, Double}

	alphabet := make([]Move, 0, 21)
	for _, f := range faces {
		for _, t := range turns {
			alphabet = append(alphabet, Move{Face: f, Turn: t})
		}
	}
	if c.size >= 3 {
		alphabet = append(alphabet, M, E, S)
	}

	moves := make([]Move, n)
	for i := range moves {
		moves[i] = alphabet[c.rng.Intn(len(alphabet))]
		_ = c.applyMove(moves[i]) // alphabet is size-legal
	}
	return moves
}

func (c *Cube) applyMove(m Move) error {
	if m.IsSlice() {
		if c.size < 3 {
			return fmt.Errorf("%w: %s requires size >= 3, cube is %dx%d",
				ErrUnknownMove, m.Face, c.size, c.size)
		}
		// Even sizes have no middle layer; the token is still recorded.
		if c.size%2 == 1 {
			for i := 0; i < m.Turn.QuarterTurns(); i++ {
				c.cycleStrips(sliceStrips(m.Face))
			}
		}
	} else {
		face := gridFace(m.Face)
		for i := 0; i < m.Turn.QuarterTurns(); i++ {
			c.rotateFaceCW(face)
			c.cycleStrips(sideStrips[face])
		}
		if c.tracker != nil {
			c.tracker.Apply(m)
		}
	}
	if c.record {
		c.history = append(c.history, m)
	}
	return nil
}

// rotateFaceCW rotates one face matrix 90 degrees clockwise in place.
func (c *Cube) rotateFaceCW(f CubeFace) {
	n := c.size
	old := c.facelets[f]
	grid := make([][]Color, n)
	for r := range grid {
		grid[r] = make([]Color, n)
		for col := range grid[r] {
			grid[r][col] = old[n-1-col][r]
		}
	}
	c.facelets[f] = grid
}

// stripPos selects which row/column of a face a strip occupies.
type stripPos int

const (
	posFirst stripPos = iota // row/col 0
	posLast                  // row/col N-1
	posMid                   // row/col N/2 (odd sizes)
)

// strip identifies one border row or column of a face, in cycle order.
// rev flips the element order so that adjacent strips pair up facelet by
// facelet when the layer turns.
type strip struct {
	face CubeFace
	col  bool
	pos  stripPos
	rev  bool
}

// sideStrips tabulates, for each face, the four adjacent strips in the
// order their contents travel under a clockwise turn of that face.
var sideStrips = [6][4]strip{
	Up: {
		{face: Front, pos: posFirst},
		{face: Left, pos: posFirst},
		{face: Back, pos: posFirst},
		{face: Right, pos: posFirst},
	},
	Down: {
		{face: Front, pos: posLast},
		{face: Right, pos: posLast},
		{face: Back, pos: posLast},
		{face: Left, pos: posLast},
	},
	Front: {
		{face: Up, pos: posLast},
		{face: Right, col: true, pos: posFirst},
		{face: Down, pos: posFirst, rev: true},
		{face: Left, col: true, pos: posLast, rev: true},
	},
	Back: {
		{face: Up, pos: posFirst, rev: true},
		{face: Left, col: true, pos: posFirst},
		{face: Down, pos: posLast},
		{face: Right, col: true, pos: posLast, rev: true},
	},
	Right: {
		{face: Up, col: true, pos: posLast},
		{face: Back, col: true, pos: posFirst, rev: true},
		{face: Down, col: true, pos: posLast},
		{face: Front, col: true, pos: posLast},
	},
	Left: {
		{face: Up, col: true, pos: posFirst},
		{face: Front, col: true, pos: posFirst},
		{face: Down, col: true, pos: posFirst},
		{face: Back, col: true, pos: posLast, rev: true},
	},
}

// sliceStrips returns the strip cycle for a middle-layer move. M follows
// the L cycle, E follows D, S follows F, each on the middle index.
func sliceStrips(f Face) [4]strip {
	switch f {
	case SliceM:
		return [4]strip{
			{face: Up, col: true, pos: posMid},
			{face: Front, col: true, pos: posMid},
			{face: Down, col: true, pos: posMid},
			{face: Back, col: true, pos: posMid, rev: true},
		}
	case SliceE:
		return [4]strip{
			{face: Front, pos: posMid},
			{face: Right, pos: posMid},
			{face: Back, pos: posMid},
			{face: Left, pos: posMid},
		}
	default: // SliceS
		return [4]strip{
			{face: Up, pos: posMid},
			{face: Right, col: true, pos: posMid},
			{face: Down, pos: posMid, rev: true},
			{face: Left, col: true, pos: posMid, rev: true},
		}
	}
}

func (c *Cube) stripIndex(p stripPos) int {
	switch p {
	case posLast:
		return c.size - 1
	case posMid:
		return c.size / 2
	default:
		return 0
	}
}

func (c *Cube) readStrip(s strip) []Color {
	n := c.size
	idx := c.stripIndex(s.pos)
	out := make([]Color, n)
	for j := 0; j < n; j++ {
		pos := j
		if s.rev {
			pos = n - 1 - j
		}
		if s.col {
			out[j] = c.facelets[s.face][pos][idx]
		} else {
			out[j] = c.facelets[s.face][idx][pos]
		}
	}
	return out
}

func (c *Cube) writeStrip(s strip, vals []Color) {
	n := c.size
	idx := c.stripIndex(s.pos)
	for j := 0; j < n; j++ {
		pos := j
		if s.rev {
			pos = n - 1 - j
		}
		if s.col {
			c.facelets[s.face][pos][idx] = vals[j]
		} else {
			c.facelets[s.face][idx][pos] = vals[j]
		}
	}
}

// cycleStrips moves the contents of strip i to strip i+1 for one quarter
// turn of the layer the strips surround.
func (c *Cube) cycleStrips(ss [4]strip) {
	bufs := [4][]Color{}
	for i, s := range ss {
		bufs[i] = c.readStrip(s)
	}
	for i, s := range ss {
		c.writeStrip(s, bufs[(i+3)%4])
	}
}

// StateString returns the full facelet state as a flat string of color
// letters in U D F B R L face order, row-major within each face.
func (c *Cube) StateString() string {
	var b strings.Builder
	b.Grow(6 * c.size * c.size)
	for f := range c.facelets {
		for _, row := range c.facelets[f] {
			for _, col := range row {
				b.WriteString(col.String())
			}
		}
	}
	return b.String()
}

// String returns the unfolded net:
//
//	      U
//	    L F R B
//	      D
func (c *Cube) String() string {
	var b strings.Builder
	pad := strings.Repeat("  ", c.size)

	writeRow := func(row []Color) {
		for i, col := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(col.String())
		}
	}

	for _, row := range c.facelets[Up] {
		b.WriteString(pad)
		writeRow(row)
		b.WriteByte('\n')
	}
	for r := 0; r < c.size; r++ {
		for i, f := range []CubeFace{Left, Front, Right, Back} {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeRow(c.facelets[f][r])
		}
		b.WriteByte('\n')
	}
	for _, row := range c.facelets[Down] {
		b.WriteString(pad)
		writeRow(row)
		b.WriteByte('\n')
	}
	return b.String()
}
