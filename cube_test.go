package rubik

import (
	"errors"
	"strings"
	"testing"
)

func mustCube(t *testing.T, size int, opts ...Option) *Cube {
	t.Helper()
	c, err := New(size, opts...)
	if err != nil {
		t.Fatalf("New(%d): %v", size, err)
	}
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c := mustCube(t, size)
		if !c.IsSolved() {
			t.Errorf("New %dx%d cube should be solved", size, size)
		}
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d) = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := mustCube(t, 3)
	c.Apply(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R move")
	}
}

func TestFourTurnsReturnToSolved(t *testing.T) {
	moves := []Move{R, L, U, D, F, B}
	for _, size := range []int{2, 3, 4} {
		for _, m := range moves {
			c := mustCube(t, size)
			c.Apply(m, m, m, m)
			if !c.IsSolved() {
				t.Errorf("%s x 4 on %dx%d should return to solved", m.Notation(), size, size)
				t.Log(c.String())
			}
		}
	}
}

func TestDoubleTwiceReturnsToSolved(t *testing.T) {
	c := mustCube(t, 3)
	c.Apply(R2, R2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestApplyInverseRestoresSolved(t *testing.T) {
	c := mustCube(t, 3)
	seq := ParseMoves("R U2 F' D B2 L' E M S")
	c.Apply(seq...)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after sequence")
	}
	c.Apply(InverseMoves(seq)...)
	if !c.IsSolved() {
		t.Error("Applying the inverse sequence should restore solved")
		t.Log(c.String())
	}
}

func TestSexyMove6TimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := mustCube(t, 3)
	for i := 0; i < 6; i++ {
		c.Apply(SexyMove...)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestExecuteNotation(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.Execute("F B2 L' D"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := c.Execute("D' L B2 F'"); err != nil {
		t.Fatalf("Execute inverse: %v", err)
	}
	if !c.IsSolved() {
		t.Error("Sequence and its inverse should restore solved")
		t.Log(c.String())
	}
}

func TestExecuteSkipsAndReportsBadTokens(t *testing.T) {
	good := mustCube(t, 3)
	good.Apply(R, U)

	c := mustCube(t, 3)
	err := c.Execute("R X U Q'")
	if !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("Execute with bad tokens = %v, want ErrUnknownMove", err)
	}
	if c.StateString() != good.StateString() {
		t.Error("Valid tokens around bad ones should still apply")
		t.Log(c.String())
	}
	if len(c.History()) != 2 {
		t.Errorf("History should hold 2 moves, got %d", len(c.History()))
	}
}

func TestSliceMovesRequireSize3(t *testing.T) {
	c := mustCube(t, 2)
	if err := c.Apply(M); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("M on 2x2 = %v, want ErrUnknownMove", err)
	}
	if len(c.History()) != 0 {
		t.Error("Rejected slice move should not enter history")
	}
}

func TestSliceMovesOnEvenCubeAreNoOps(t *testing.T) {
	// A 4x4 has no middle layer; slice moves are recorded but leave
	// the grid alone.
	c := mustCube(t, 4)
	before := c.StateString()
	if err := c.Apply(M, E, S); err != nil {
		t.Fatalf("slice moves on 4x4: %v", err)
	}
	if c.StateString() != before {
		t.Error("Slice moves on an even cube should not change the grid")
		t.Log(c.String())
	}
	if len(c.History()) != 3 {
		t.Errorf("History should hold 3 moves, got %d", len(c.History()))
	}
}

func TestSliceFourTimesReturnsToSolved(t *testing.T) {
	for _, m := range []Move{M, E, S} {
		c := mustCube(t, 3)
		c.Apply(m, m, m, m)
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m.Notation())
			t.Log(c.String())
		}
	}
}

func TestScrambleIsDeterministicWithSeed(t *testing.T) {
	a := mustCube(t, 3, WithSeed(42))
	b := mustCube(t, 3, WithSeed(42))
	ma := a.Scramble(20)
	mb := b.Scramble(20)
	if len(ma) != 20 {
		t.Fatalf("Scramble returned %d moves, want 20", len(ma))
	}
	if FormatMoves(ma) != FormatMoves(mb) {
		t.Errorf("Same seed should scramble identically:\n%s\n%s",
			FormatMoves(ma), FormatMoves(mb))
	}
	if a.StateString() != b.StateString() {
		t.Error("Same seed should produce the same state")
	}
	if a.IsSolved() {
		t.Error("20-move scramble should not leave the cube solved")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	c := mustCube(t, 3, WithSeed(7))
	c.Scramble(10)
	clone := c.Clone()

	if clone.StateString() != c.StateString() {
		t.Fatal("Clone should copy the state")
	}

	clone.Apply(R)
	if clone.StateString() == c.StateString() {
		t.Error("Moving the clone should not move the original")
	}

	c.Apply(F)
	ch, oh := clone.History(), c.History()
	if ch[len(ch)-1] == oh[len(oh)-1] {
		t.Error("Histories should diverge after cloning")
	}
}

func TestResetRestoresSolvedAndClearsHistory(t *testing.T) {
	c := mustCube(t, 3)
	c.Execute("R U R' U'")
	c.Reset()
	if !c.IsSolved() {
		t.Error("Reset should restore solved")
	}
	if len(c.History()) != 0 {
		t.Error("Reset should clear history")
	}
	if tr := c.Tracker(); tr == nil || !tr.IsSolved() {
		t.Error("Reset should also reset the tracker")
	}
}

func TestMoveHistoryCanBeDisabled(t *testing.T) {
	c := mustCube(t, 3, WithMoveHistory(false))
	c.Apply(R, U, F)
	if len(c.History()) != 0 {
		t.Errorf("History disabled, got %d moves", len(c.History()))
	}
}

func TestStateString(t *testing.T) {
	c := mustCube(t, 3)
	s := c.StateString()
	if len(s) != 54 {
		t.Fatalf("3x3 state string length = %d, want 54", len(s))
	}
	// Face order U D F B R L, nine stickers each.
	if s != strings.Repeat("Y", 9)+strings.Repeat("W", 9)+
		strings.Repeat("G", 9)+strings.Repeat("B", 9)+
		strings.Repeat("R", 9)+strings.Repeat("O", 9) {
		t.Errorf("Solved state string = %q", s)
	}
}

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u", U},
		{"F`", FPrime},
		{"B2'", B2},
		{"M", M},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "X", "R3", "M'", "RR"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrUnknownMove) {
			t.Errorf("ParseMove(%q) = %v, want ErrUnknownMove", bad, err)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if U2.Inverse() != U2 {
		t.Error("U2 inverse should be U2")
	}
}

func TestPhaseDetection(t *testing.T) {
	c := mustCube(t, 3)
	if phase := c.DetectPhase(); phase != PhaseSolved {
		t.Errorf("Solved cube should detect as PhaseSolved, got %v", phase)
	}

	c.Apply(R)
	if phase := c.DetectPhase(); phase == PhaseSolved {
		t.Error("Scrambled cube should not detect as solved")
	}
}

func TestPhaseChecksOnSolvedCube(t *testing.T) {
	c := mustCube(t, 3)
	if !c.IsWhiteCrossComplete() {
		t.Error("Solved cube should have white cross")
	}
	if !c.IsFirstLayerComplete() {
		t.Error("Solved cube should have first layer")
	}
	if !c.IsMiddleLayerComplete() {
		t.Error("Solved cube should have middle layer")
	}
	if !c.IsYellowCrossComplete() {
		t.Error("Solved cube should have yellow cross")
	}
	if !c.IsYellowFaceComplete() {
		t.Error("Solved cube should have yellow face")
	}
	p := c.GetProgress()
	if p.Percent() != 100 {
		t.Errorf("Solved progress = %d%%, want 100", p.Percent())
	}
}

func TestPhaseOrderAfterBreakingLastLayer(t *testing.T) {
	// A single U turn leaves everything but the final permutation.
	c := mustCube(t, 3)
	c.Apply(U)
	if got := c.DetectPhase(); got != PhaseYellowFace {
		t.Errorf("After U: phase = %v, want PhaseYellowFace", got)
	}
}
