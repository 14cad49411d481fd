package rubik

// Phase two: first-layer corners. The four white corners drop into the
// bottom layer via repeated X U X' U' triggers from the staging slot
// directly above each target.

// firstLayerTargets lists the bottom corner slots with their sticker
// colors in the twist order of cornerCoords.
var firstLayerTargets = [4]struct {
	slot int
	want [3]Color
}{
	{CornerDFR, [3]Color{White, Green, Red}},
	{CornerDFL, [3]Color{White, Orange, Green}},
	{CornerDBL, [3]Color{White, Blue, Orange}},
	{CornerDBR, [3]Color{White, Red, Blue}},
}

// cornerTrigger is the X U X' U' insert for each staging slot, where X
// is the face the staging slot and its bottom target share on the
// right-hand side: R under UFR, F under UFL, L under UBL, B under UBR.
var cornerTrigger = [4][]Move{
	{R, U, RPrime, UPrime},
	{F, U, FPrime, UPrime},
	{L, U, LPrime, UPrime},
	{B, U, BPrime, UPrime},
}

// triggerReps maps the white sticker's facelet index at the staging slot
// to the number of triggers that seats the corner: one when white faces
// the trigger side, three when white faces up, five otherwise.
var triggerReps = [3]int{3, 1, 5}

func (s *Solver) solveFirstLayerCorners() PhaseResult {
	const perCorner = 6
	res := PhaseResult{
		Target:      PhaseFirstLayer,
		MaxAttempts: len(firstLayerTargets) * perCorner,
	}
	before := len(s.moves)

	for _, tgt := range firstLayerTargets {
		for attempt := 0; attempt < perCorner; attempt++ {
			if s.cornerColors(tgt.slot) == tgt.want {
				break
			}
			res.Attempts++
			s.stepFirstLayerCorner(tgt.slot, tgt.want)
		}
	}

	res.Moves = len(s.moves) - before
	res.Converged = s.cube.IsFirstLayerComplete()
	return res
}

func (s *Solver) stepFirstLayerCorner(target int, want [3]Color) {
	slot := s.findCorner(want[0], want[1], want[2])

	if slot >= CornerDFR {
		// Stuck in the bottom layer, wrong slot or twisted. One
		// trigger of that column lifts it out without disturbing the
		// rest of the layer.
		s.exec(cornerTrigger[slot-CornerDFR]...)
		return
	}

	// Top layer. U turns shift corner contents one slot away from UFR,
	// so k = staging - from clockwise turns park the piece over its
	// column, then the trigger count depends on where white faces.
	staging := target - CornerDFR
	s.uAlign(staging - slot)
	reps := triggerReps[s.cornerFacelet(staging, White)]
	for i := 0; i < reps; i++ {
		s.exec(cornerTrigger[staging]...)
	}
}
