package rubik

// Phase represents progress through the layer-by-layer method.
// Phases progress from PhaseScrambled (0) to PhaseSolved, allowing
// comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no layer milestone has been reached.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the white cross is complete: the four
	// white edges sit on the D face with side colors matching their
	// centers.
	PhaseWhiteCross

	// PhaseFirstLayer indicates the full first layer is complete: white
	// face plus the bottom row of every side face.
	PhaseFirstLayer

	// PhaseMiddleLayer indicates the four middle-layer edges are placed.
	PhaseMiddleLayer

	// PhaseYellowCross indicates the four U-face edges show yellow.
	PhaseYellowCross

	// PhaseYellowFace indicates the whole U face shows yellow (last-layer
	// corners oriented; permutation may remain).
	PhaseYellowFace

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseYellowCross:
		return "yellow_cross"
	case PhaseYellowFace:
		return "yellow_face"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseMiddleLayer:
		return "Middle Layer"
	case PhaseYellowCross:
		return "Yellow Cross"
	case PhaseYellowFace:
		return "Yellow Face"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// Progress reports which layer milestones the cube has reached.
type Progress struct {
	WhiteCross  bool
	FirstLayer  bool
	MiddleLayer bool
	YellowCross bool
	YellowFace  bool
	Solved      bool
}

// Percent returns completion as a rough percentage, one sixth per
// milestone.
func (p Progress) Percent() int {
	milestones := []bool{
		p.WhiteCross, p.FirstLayer, p.MiddleLayer,
		p.YellowCross, p.YellowFace, p.Solved,
	}
	done := 0
	for _, m := range milestones {
		if m {
			done++
		}
	}
	return done * 100 / len(milestones)
}
