package rubik

// Phase one: the white cross. The four white edges go to the bottom
// layer, each with its side color matching the adjacent center.

// crossTargets pairs each bottom edge slot with the side color it must
// show, in solve order.
var crossTargets = [4]struct {
	slot int
	side Color
}{
	{EdgeDF, Green},
	{EdgeDR, Red},
	{EdgeDB, Blue},
	{EdgeDL, Orange},
}

// bottomEdgeSide maps a bottom edge slot (offset from EdgeDF) to the
// face that holds its side sticker.
var bottomEdgeSide = [4]Face{FaceF, FaceR, FaceB, FaceL}

// middleEject lifts a middle-layer edge into the top layer, restoring
// everything else. Indexed by slot offset from EdgeFR.
var middleEject = [4][]Move{
	{R, UPrime, RPrime}, // FR
	{LPrime, UPrime, L}, // FL
	{RPrime, U, R},      // BR
	{L, UPrime, LPrime}, // BL
}

// crossSideInsert drops a top-layer edge whose white sticker faces
// sideways into its bottom slot. The edge must first sit in the helper
// slot one past the target, counterclockwise as seen from above; the
// three-move insert rolls it down white-first. Indexed by target offset
// from EdgeDF.
var crossSideInsert = [4][]Move{
	{RPrime, F, R}, // DF, from UR
	{BPrime, R, B}, // DR, from UB
	{LPrime, B, L}, // DB, from UL
	{FPrime, L, F}, // DL, from UF
}

func (s *Solver) solveWhiteCross() PhaseResult {
	const perEdge = 6
	res := PhaseResult{
		Target:      PhaseWhiteCross,
		MaxAttempts: len(crossTargets) * perEdge,
	}
	before := len(s.moves)

	// Scrambles may contain slice moves. Home the centers first and
	// resync the tracker with the grid before reading any piece.
	s.restoreCenters()
	s.syncTracker()

	for _, tgt := range crossTargets {
		for attempt := 0; attempt < perEdge; attempt++ {
			if s.crossEdgeSolved(tgt.slot, tgt.side) {
				break
			}
			res.Attempts++
			s.stepCrossEdge(tgt.slot, tgt.side)
		}
	}

	res.Moves = len(s.moves) - before
	res.Converged = s.cube.IsWhiteCrossComplete()
	return res
}

func (s *Solver) crossEdgeSolved(slot int, side Color) bool {
	down, face := s.edgeColors(slot)
	return down == White && face == side
}

// stepCrossEdge advances one white edge toward its slot. Each call makes
// progress: bottom and middle occupants are lifted into the top layer,
// top occupants are aligned and inserted.
func (s *Solver) stepCrossEdge(target int, side Color) {
	slot := s.findEdge(White, side)
	t := target - EdgeDF

	switch {
	case slot >= EdgeDF && slot < EdgeFR:
		// Wrong bottom slot, or flipped in place. A half turn of the
		// side face sends it to the top layer.
		s.exec(Move{Face: bottomEdgeSide[slot-EdgeDF], Turn: Double})

	case slot >= EdgeFR:
		s.exec(middleEject[slot-EdgeFR]...)

	default:
		// Top layer. U turns shift edge contents one slot toward UF,
		// so k = from - to clockwise turns align the piece.
		up, _ := s.edgeColors(slot)
		if up == White {
			s.uAlign(slot - t)
			s.exec(Move{Face: bottomEdgeSide[t], Turn: Double})
		} else {
			helper := (t + 1) % 4
			s.uAlign(slot - helper)
			s.exec(crossSideInsert[t]...)
		}
	}
}
