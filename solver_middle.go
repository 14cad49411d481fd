package rubik

// Phase three: middle-layer edges. Each of the four side edges is
// brought to the top layer if stuck, aligned so its sideways sticker
// matches a center, then dropped in with the classic eight-move insert.

// middleTargets lists the middle edge slots with their front/back and
// right/left sticker colors in edgeCoords order.
var middleTargets = [4]struct {
	slot  int
	front Color
	side  Color
}{
	{EdgeFR, Green, Red},
	{EdgeFL, Green, Orange},
	{EdgeBR, Blue, Red},
	{EdgeBL, Blue, Orange},
}

// middleInserts holds both insert variants per target slot: one for each
// sticker that can face sideways in the top layer, keyed by the top slot
// the edge must occupy first. Running the front variant against an
// occupied target also ejects the occupant into the top layer.
var middleInserts = [4]struct {
	frontAt  int
	frontAlg []Move
	sideAt   int
	sideAlg  []Move
}{
	{EdgeUF, ParseMoves("U R U' R' U' F' U F"), EdgeUR, ParseMoves("U' F' U F U R U' R'")},   // FR
	{EdgeUF, ParseMoves("U' L' U L U F U' F'"), EdgeUL, ParseMoves("U F U' F' U' L' U L")},   // FL
	{EdgeUB, ParseMoves("U' R' U R U B U' B'"), EdgeUR, ParseMoves("U B U' B' U' R' U R")},   // BR
	{EdgeUB, ParseMoves("U L U' L' U' B' U B"), EdgeUL, ParseMoves("U' B' U B U L U' L'")},   // BL
}

func (s *Solver) solveMiddleEdges() PhaseResult {
	const perEdge = 4
	res := PhaseResult{
		Target:      PhaseMiddleLayer,
		MaxAttempts: len(middleTargets) * perEdge,
	}
	before := len(s.moves)

	for i, tgt := range middleTargets {
		for attempt := 0; attempt < perEdge; attempt++ {
			a, b := s.edgeColors(tgt.slot)
			if a == tgt.front && b == tgt.side {
				break
			}
			res.Attempts++
			s.stepMiddleEdge(i)
		}
	}

	res.Moves = len(s.moves) - before
	res.Converged = s.cube.IsMiddleLayerComplete()
	return res
}

func (s *Solver) stepMiddleEdge(i int) {
	tgt := middleTargets[i]
	ins := middleInserts[i]

	slot := s.findEdge(tgt.front, tgt.side)
	if slot >= EdgeFR {
		// Wrong middle slot, or flipped in place. The insert against
		// that slot swaps a top edge in and the occupant out.
		occ := slot - EdgeFR
		s.exec(middleInserts[occ].frontAlg...)
		return
	}
	if slot >= EdgeDF {
		// Bottom slots hold the white cross by now; nothing to do but
		// let the ceiling report the inconsistency.
		return
	}

	_, sideways := s.edgeColors(slot)
	if sideways == tgt.front {
		s.uAlign(slot - ins.frontAt)
		s.exec(ins.frontAlg...)
	} else {
		s.uAlign(slot - ins.sideAt)
		s.exec(ins.sideAlg...)
	}
}
