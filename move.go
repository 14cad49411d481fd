package rubik

import "strings"

// Face represents a cube face (or middle slice) in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	// Middle slices, odd sizes >= 3 only.
	SliceM Face = "M" // Middle layer, follows L
	SliceE Face = "E" // Equator layer, follows D
	SliceS Face = "S" // Standing layer, follows F
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// QuarterTurns returns how many clockwise quarter turns the turn expands to.
func (t Turn) QuarterTurns() int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// Move represents a single logical cube move.
type Move struct {
	Face Face // Which face or slice to turn
	Turn Turn // Direction and amount
}

// IsSlice reports whether the move turns a middle slice rather than a face.
func (m Move) IsSlice() bool {
	return m.Face == SliceM || m.Face == SliceE || m.Face == SliceS
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2, M
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move.
//
// Face tokens U D R L F B take an optional ' or 2 suffix. Slice tokens
// M E S take no suffix. Anything else fails with ErrUnknownMove.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrUnknownMove
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'M':
		face = SliceM
	case 'E':
		face = SliceE
	case 'S':
		face = SliceS
	default:
		return Move{}, ErrUnknownMove
	}

	turn := CW
	if len(s) > 1 {
		if face == SliceM || face == SliceE || face == SliceS {
			return Move{}, ErrUnknownMove
		}
		switch s[1:] {
		case "'", "`":
			turn = CCW
		case "2", "2'", "2`":
			turn = Double
		default:
			return Move{}, ErrUnknownMove
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Invalid tokens are skipped; use Cube.Execute to have skips reported.
func ParseMoves(s string) []Move {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			continue
		}
		moves = append(moves, move)
	}

	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InverseMoves returns the move sequence that undoes moves,
// i.e. the individual inverses in reverse order.
func InverseMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
