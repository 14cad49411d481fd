package rubik

import (
	"errors"
	"fmt"
)

// trackerSize is the only cube size the piece tracker models.
const trackerSize = 3

// Edge slots, indexed by solved position.
const (
	EdgeUF = iota
	EdgeUR
	EdgeUB
	EdgeUL
	EdgeDF
	EdgeDR
	EdgeDB
	EdgeDL
	EdgeFR
	EdgeFL
	EdgeBR
	EdgeBL
	numEdges
)

// Corner slots, indexed by solved position.
const (
	CornerUFR = iota
	CornerUFL
	CornerUBL
	CornerUBR
	CornerDFR
	CornerDFL
	CornerDBL
	CornerDBR
	numCorners
)

var edgeSlotNames = [numEdges]string{
	"UF", "UR", "UB", "UL", "DF", "DR", "DB", "DL", "FR", "FL", "BR", "BL",
}

var cornerSlotNames = [numCorners]string{
	"UFR", "UFL", "UBL", "UBR", "DFR", "DFL", "DBL", "DBR",
}

// EdgeSlotName returns the conventional name of an edge slot (e.g. "UF").
func EdgeSlotName(slot int) string {
	return edgeSlotNames[slot]
}

// CornerSlotName returns the conventional name of a corner slot (e.g. "UFR").
func CornerSlotName(slot int) string {
	return cornerSlotNames[slot]
}

// edgePiece is one edge cubie: its identity (solved slot) and flip state.
// Orientation 0 means the piece is flipped an even number of times; only
// F and B quarter turns flip edges.
type edgePiece struct {
	id  int8
	ori int8 // mod 2
}

// cornerPiece is one corner cubie: identity plus twist state mod 3.
// Orientation counts how far the piece's U/D sticker sits from the U/D
// facelet of its current slot, going clockwise around the corner.
type cornerPiece struct {
	id  int8
	ori int8 // mod 3
}

// Tracker follows the 20 moving pieces of a 3x3 cube at the cubie level.
//
// State lives in two slot-indexed arrays; a face turn rotates four entries
// of each array in place and adjusts orientations. The tracker never
// rejects a state: Validate reports broken invariants, it does not repair
// them.
type Tracker struct {
	edges   [numEdges]edgePiece
	corners [numCorners]cornerPiece
}

// NewTracker returns a tracker in the solved state.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.Reset()
	return t
}

// Reset returns every piece to its home slot with zero orientation.
func (t *Tracker) Reset() {
	for i := range t.edges {
		t.edges[i] = edgePiece{id: int8(i)}
	}
	for i := range t.corners {
		t.corners[i] = cornerPiece{id: int8(i)}
	}
}

// Clone returns an independent copy of the tracker.
func (t *Tracker) Clone() *Tracker {
	clone := *t
	return &clone
}

// faceTable describes what one clockwise face turn does to the piece
// arrays: a 4-cycle of edge slots, a 4-cycle of corner slots, whether the
// moved edges flip, and the twist added to each corner cycle slot after
// the rotation.
type faceTable struct {
	edgeCycle   [4]int
	cornerCycle [4]int
	edgeFlip    bool
	twist       [4]int8 // aligned with cornerCycle
}

// faceTables is exhaustive over the six face moves, indexed by grid face.
// Contents travel cycle[0] -> cycle[1] -> cycle[2] -> cycle[3] -> cycle[0].
var faceTables = [6]faceTable{
	Up: {
		edgeCycle:   [4]int{EdgeUF, EdgeUL, EdgeUB, EdgeUR},
		cornerCycle: [4]int{CornerUFR, CornerUFL, CornerUBL, CornerUBR},
	},
	Down: {
		edgeCycle:   [4]int{EdgeDF, EdgeDR, EdgeDB, EdgeDL},
		cornerCycle: [4]int{CornerDFR, CornerDBR, CornerDBL, CornerDFL},
	},
	Right: {
		edgeCycle:   [4]int{EdgeUR, EdgeBR, EdgeDR, EdgeFR},
		cornerCycle: [4]int{CornerUFR, CornerUBR, CornerDBR, CornerDFR},
		twist:       [4]int8{2, 1, 2, 1},
	},
	Left: {
		edgeCycle:   [4]int{EdgeUL, EdgeFL, EdgeDL, EdgeBL},
		cornerCycle: [4]int{CornerUFL, CornerDFL, CornerDBL, CornerUBL},
		twist:       [4]int8{1, 2, 1, 2},
	},
	Front: {
		edgeCycle:   [4]int{EdgeUF, EdgeFR, EdgeDF, EdgeFL},
		cornerCycle: [4]int{CornerUFR, CornerDFR, CornerDFL, CornerUFL},
		edgeFlip:    true,
		twist:       [4]int8{1, 2, 1, 2},
	},
	Back: {
		edgeCycle:   [4]int{EdgeUB, EdgeBL, EdgeDB, EdgeBR},
		cornerCycle: [4]int{CornerUBR, CornerUBL, CornerDBL, CornerDBR},
		edgeFlip:    true,
		twist:       [4]int8{2, 1, 2, 1},
	},
}

// Apply updates the tracker for one logical face move.
// Primes expand to three base rotations, doubles to two. Slice moves are
// not part of the piece model and are ignored.
func (t *Tracker) Apply(m Move) {
	if m.IsSlice() {
		return
	}
	table := faceTables[gridFace(m.Face)]
	for i := 0; i < m.Turn.QuarterTurns(); i++ {
		t.applyQuarter(table)
	}
}

func (t *Tracker) applyQuarter(ft faceTable) {
	ec := ft.edgeCycle
	tmp := t.edges[ec[3]]
	t.edges[ec[3]] = t.edges[ec[2]]
	t.edges[ec[2]] = t.edges[ec[1]]
	t.edges[ec[1]] = t.edges[ec[0]]
	t.edges[ec[0]] = tmp
	if ft.edgeFlip {
		for _, slot := range ec {
			t.edges[slot].ori ^= 1
		}
	}

	cc := ft.cornerCycle
	ctmp := t.corners[cc[3]]
	t.corners[cc[3]] = t.corners[cc[2]]
	t.corners[cc[2]] = t.corners[cc[1]]
	t.corners[cc[1]] = t.corners[cc[0]]
	t.corners[cc[0]] = ctmp
	for i, slot := range cc {
		t.corners[slot].ori = (t.corners[slot].ori + ft.twist[i]) % 3
	}
}

// IsEdgeSolved reports whether the edge slot holds its own piece,
// unflipped.
func (t *Tracker) IsEdgeSolved(slot int) bool {
	return t.edges[slot].id == int8(slot) && t.edges[slot].ori == 0
}

// IsCornerSolved reports whether the corner slot holds its own piece,
// untwisted.
func (t *Tracker) IsCornerSolved(slot int) bool {
	return t.corners[slot].id == int8(slot) && t.corners[slot].ori == 0
}

// IsSolved reports whether all 20 pieces are home and oriented.
func (t *Tracker) IsSolved() bool {
	for i := range t.edges {
		if !t.IsEdgeSolved(i) {
			return false
		}
	}
	for i := range t.corners {
		if !t.IsCornerSolved(i) {
			return false
		}
	}
	return true
}

// Validate checks the tracker's structural invariants:
//
//   - each edge and corner piece appears in exactly one slot
//   - edge flip parity: orientation sum is even
//   - corner twist parity: orientation sum is divisible by 3
//
// All violations found are reported together, wrapped in
// ErrStateInconsistent. A healthy tracker returns nil; face moves alone
// can never break these invariants.
func (t *Tracker) Validate() error {
	var errs []error

	var edgeSeen [numEdges]bool
	edgeOriSum := 0
	for slot, e := range t.edges {
		if e.id < 0 || e.id >= numEdges {
			errs = append(errs, fmt.Errorf("%w: edge slot %s holds invalid id %d",
				ErrStateInconsistent, edgeSlotNames[slot], e.id))
			continue
		}
		if edgeSeen[e.id] {
			errs = append(errs, fmt.Errorf("%w: edge piece %s appears twice",
				ErrStateInconsistent, edgeSlotNames[e.id]))
		}
		edgeSeen[e.id] = true
		edgeOriSum += int(e.ori)
	}
	if edgeOriSum%2 != 0 {
		errs = append(errs, fmt.Errorf("%w: edge orientation sum %d is odd",
			ErrStateInconsistent, edgeOriSum))
	}

	var cornerSeen [numCorners]bool
	cornerOriSum := 0
	for slot, c := range t.corners {
		if c.id < 0 || c.id >= numCorners {
			errs = append(errs, fmt.Errorf("%w: corner slot %s holds invalid id %d",
				ErrStateInconsistent, cornerSlotNames[slot], c.id))
			continue
		}
		if cornerSeen[c.id] {
			errs = append(errs, fmt.Errorf("%w: corner piece %s appears twice",
				ErrStateInconsistent, cornerSlotNames[c.id]))
		}
		cornerSeen[c.id] = true
		cornerOriSum += int(c.ori)
	}
	if cornerOriSum%3 != 0 {
		errs = append(errs, fmt.Errorf("%w: corner orientation sum %d is not divisible by 3",
			ErrStateInconsistent, cornerOriSum))
	}

	return errors.Join(errs...)
}

// TrackerDiagnostics is a point-in-time snapshot of the piece state.
type TrackerDiagnostics struct {
	EdgeIDs            [numEdges]int
	EdgeOrientations   [numEdges]int
	CornerIDs          [numCorners]int
	CornerOrientations [numCorners]int
	SolvedEdges        int
	SolvedCorners      int
	Validation         error
}

// Diagnostics reports per-slot piece placement, solved counts, and the
// current validation result.
func (t *Tracker) Diagnostics() TrackerDiagnostics {
	d := TrackerDiagnostics{Validation: t.Validate()}
	for slot, e := range t.edges {
		d.EdgeIDs[slot] = int(e.id)
		d.EdgeOrientations[slot] = int(e.ori)
		if t.IsEdgeSolved(slot) {
			d.SolvedEdges++
		}
	}
	for slot, c := range t.corners {
		d.CornerIDs[slot] = int(c.id)
		d.CornerOrientations[slot] = int(c.ori)
		if t.IsCornerSolved(slot) {
			d.SolvedCorners++
		}
	}
	return d
}
