package rubik

// Phases four through six: yellow cross, yellow corner orientation, and
// last-layer permutation. Each phase loops classify-align-apply under a
// fixed attempt ceiling; the algorithms all preserve the first two
// layers.

func (s *Solver) solveYellowCross() PhaseResult {
	const maxAttempts = 8
	res := PhaseResult{Target: PhaseYellowCross, MaxAttempts: maxAttempts}
	before := len(s.moves)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		up, count := s.yellowUpEdges()
		if count == 4 {
			break
		}
		res.Attempts++

		// F R U R' U' F' walks dot -> L -> line -> cross when the L
		// sits back-left and the line lies horizontal.
		if count == 2 {
			switch {
			case up[EdgeUF] && up[EdgeUB]:
				s.uAlign(1)
			case up[EdgeUR] && up[EdgeUL]:
				// horizontal already
			default:
				a := 0
				for p := 0; p < 4; p++ {
					if up[p] && up[(p+1)%4] {
						a = p
						break
					}
				}
				s.uAlign(a - 2)
			}
		}
		s.exec(YellowCrossAlg...)
	}

	res.Moves = len(s.moves) - before
	res.Converged = s.cube.IsYellowCrossComplete()
	return res
}

func (s *Solver) yellowUpEdges() (up [4]bool, count int) {
	for p := 0; p < 4; p++ {
		if c, _ := s.edgeColors(p); c == Yellow {
			up[p] = true
			count++
		}
	}
	return up, count
}

func (s *Solver) orientYellowCorners() PhaseResult {
	const maxAttempts = 8
	res := PhaseResult{Target: PhaseYellowFace, MaxAttempts: maxAttempts}
	before := len(s.moves)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		var twist [4]int
		oriented := 0
		for p := 0; p < 4; p++ {
			twist[p] = s.cornerFacelet(p, Yellow)
			if twist[p] == 0 {
				oriented++
			}
		}
		if oriented == 4 {
			break
		}
		res.Attempts++

		// Sune wants a particular corner front-left: with none
		// oriented, one whose yellow faces left; with one, the
		// oriented corner itself; with two, one whose yellow faces
		// front. Twist parity guarantees each exists.
		var wanted int
		switch oriented {
		case 0:
			wanted = 2
		case 1:
			wanted = 0
		default:
			wanted = 1
		}
		for p := 0; p < 4; p++ {
			if twist[p] == wanted {
				s.uAlign(1 - p)
				break
			}
		}
		s.exec(Sune...)
	}

	res.Moves = len(s.moves) - before
	res.Converged = s.cube.IsYellowFaceComplete()
	return res
}

// topCornerWant holds each top corner slot's solved stickers in
// cornerCoords twist order. Orientation is already solved entering phase
// six and every permutation algorithm preserves it, so exact comparison
// suffices.
var topCornerWant = [4][3]Color{
	CornerUFR: {Yellow, Red, Green},
	CornerUFL: {Yellow, Green, Orange},
	CornerUBL: {Yellow, Orange, Blue},
	CornerUBR: {Yellow, Blue, Red},
}

// topEdgeWant holds each top edge slot's solved side color.
var topEdgeWant = [4]Color{EdgeUF: Green, EdgeUR: Red, EdgeUB: Blue, EdgeUL: Orange}

func (s *Solver) permuteLastLayer() PhaseResult {
	const maxAttempts = 8
	res := PhaseResult{Target: PhaseSolved, MaxAttempts: 2 * maxAttempts}
	before := len(s.moves)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if s.permuteCornersStep() {
			break
		}
		res.Attempts++
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if s.permuteEdgesStep() {
			break
		}
		res.Attempts++
	}

	res.Moves = len(s.moves) - before
	res.Converged = s.cube.IsSolved()
	return res
}

// permuteCornersStep aligns the top layer for the best corner match and
// applies one permutation algorithm. It returns true once all four
// corners sit home.
func (s *Solver) permuteCornersStep() bool {
	// U turns shift corner contents forward one slot, so rotating by k
	// can absorb a whole-layer offset. After the best alignment the
	// match count is always 4, 2, or 1.
	home := s.topCornerHomes()
	bestK, bestCount := 0, -1
	for k := 0; k < 4; k++ {
		count := 0
		for p := 0; p < 4; p++ {
			if (p+k)%4 == home[p] {
				count++
			}
		}
		if count > bestCount {
			bestK, bestCount = k, count
		}
	}
	s.uAlign(bestK)
	if bestCount == 4 {
		return true
	}

	matched := s.matchedTopCorners()
	switch bestCount {
	case 1:
		// Three corners cycle. Park the solved one front-left where
		// the A perm leaves it fixed; a second pass covers the
		// opposite cycle direction.
		f := 0
		for p := 0; p < 4; p++ {
			if matched[p] {
				f = p
				break
			}
		}
		k := 1 - f
		s.uAlign(k)
		s.exec(APerm...)
		s.uAlign(-k)
	default:
		// Two corners swap. An adjacent pair conjugates onto the
		// UFR/UBR swap of the T perm; a diagonal pair takes one plain
		// T perm first, leaving a three-cycle.
		adjacent := -1
		for p := 0; p < 4; p++ {
			if !matched[p] && !matched[(p+1)%4] {
				adjacent = p
				break
			}
		}
		if adjacent >= 0 {
			k := 3 - adjacent
			s.uAlign(k)
			s.exec(TPerm...)
			s.uAlign(-k)
		} else {
			s.exec(TPerm...)
		}
	}
	return false
}

// permuteEdgesStep applies one U-perm pass. Corner parity was settled
// first, so the edge permutation is even: identity, a three-cycle, or a
// double swap that one plain U perm reduces to a three-cycle.
func (s *Solver) permuteEdgesStep() bool {
	matched, count := s.matchedTopEdges()
	if count == 4 {
		return true
	}

	if count == 1 {
		// Park the solved edge in back, which the U perm fixes.
		f := 0
		for p := 0; p < 4; p++ {
			if matched[p] {
				f = p
				break
			}
		}
		k := f - 2
		s.uAlign(k)
		s.exec(UPerm...)
		s.uAlign(-k)
	} else {
		s.exec(UPerm...)
	}
	return false
}

// topCornerHomes returns, for each top corner slot, the slot its current
// occupant belongs to.
func (s *Solver) topCornerHomes() [4]int {
	var home [4]int
	for p := 0; p < 4; p++ {
		got := s.cornerColors(p)
		for h, want := range topCornerWant {
			if colorSetEqual(got, want) {
				home[p] = h
				break
			}
		}
	}
	return home
}

func (s *Solver) matchedTopCorners() [4]bool {
	var matched [4]bool
	for p := 0; p < 4; p++ {
		matched[p] = s.cornerColors(p) == topCornerWant[p]
	}
	return matched
}

func (s *Solver) matchedTopEdges() ([4]bool, int) {
	var matched [4]bool
	count := 0
	for p := 0; p < 4; p++ {
		up, side := s.edgeColors(p)
		if up == Yellow && side == topEdgeWant[p] {
			matched[p] = true
			count++
		}
	}
	return matched, count
}

func colorSetEqual(a, b [3]Color) bool {
	for _, want := range b {
		found := false
		for _, have := range a {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
