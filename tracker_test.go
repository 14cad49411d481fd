package rubik

import "testing"

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}
	d := tr.Diagnostics()
	if d.SolvedEdges != numEdges || d.SolvedCorners != numCorners {
		t.Errorf("Solved counts = %d/%d, want %d/%d",
			d.SolvedEdges, d.SolvedCorners, numEdges, numCorners)
	}
}

func TestTrackerMoveAndReset(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after R")
	}
	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
}

func TestTrackerFourTurnsIdentity(t *testing.T) {
	for _, m := range []Move{R, L, U, D, F, B} {
		tr := NewTracker()
		for i := 0; i < 4; i++ {
			tr.Apply(m)
		}
		if !tr.IsSolved() {
			t.Errorf("%s x 4 should return the tracker to solved", m.Notation())
		}
	}
}

func TestTrackerMoveThenInverse(t *testing.T) {
	for _, m := range []Move{R, LPrime, U2, DPrime, F, B2} {
		tr := NewTracker()
		tr.Apply(m)
		tr.Apply(m.Inverse())
		if !tr.IsSolved() {
			t.Errorf("%s then its inverse should return to solved", m.Notation())
		}
	}
}

func TestTrackerSexyMove6Times(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 6; i++ {
		for _, m := range SexyMove {
			tr.Apply(m)
		}
	}
	if !tr.IsSolved() {
		t.Error("Sexy move x 6 should return the tracker to solved")
	}
}

func TestTrackerSune6Times(t *testing.T) {
	// Sune has order 6 on the whole cube.
	tr := NewTracker()
	for i := 0; i < 6; i++ {
		for _, m := range Sune {
			tr.Apply(m)
		}
	}
	if !tr.IsSolved() {
		t.Error("Sune x 6 should return the tracker to solved")
	}
}

func TestTrackerEdgeFlipOnFront(t *testing.T) {
	tr := NewTracker()
	tr.Apply(F)
	d := tr.Diagnostics()
	for _, slot := range []int{EdgeUF, EdgeFR, EdgeDF, EdgeFL} {
		if d.EdgeOrientations[slot] != 1 {
			t.Errorf("Edge at %s should be flipped after F, ori = %d",
				EdgeSlotName(slot), d.EdgeOrientations[slot])
		}
	}
	if d.EdgeOrientations[EdgeUR] != 0 {
		t.Error("F should not flip edges off the front face")
	}
}

func TestTrackerCornerTwistOnRight(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R)
	d := tr.Diagnostics()
	sum := 0
	for _, slot := range []int{CornerUFR, CornerUBR, CornerDBR, CornerDFR} {
		sum += d.CornerOrientations[slot]
	}
	if sum%3 != 0 {
		t.Errorf("Corner twist sum after R = %d, want divisible by 3", sum)
	}
	if d.CornerOrientations[CornerUFL] != 0 {
		t.Error("R should not twist corners off the right face")
	}
}

func TestTrackerMatchesGrid(t *testing.T) {
	c, err := New(3, WithSeed(99))
	if err != nil {
		t.Fatal(err)
	}
	scramble := c.Scramble(30)

	if c.Tracker().IsSolved() {
		t.Error("Tracker should follow the scramble")
	}
	if err := c.Tracker().Validate(); err != nil {
		t.Errorf("Validate after scramble: %v", err)
	}

	c.Apply(InverseMoves(scramble)...)
	if !c.IsSolved() {
		t.Fatal("Grid should be solved after undoing the scramble")
	}
	if !c.Tracker().IsSolved() {
		t.Error("Tracker should be solved when the grid is")
		d := c.Tracker().Diagnostics()
		t.Logf("edges=%v corners=%v", d.EdgeIDs, d.CornerIDs)
	}
}

func TestTrackerValidateAfterManyMoves(t *testing.T) {
	c, err := New(3, WithSeed(5))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		c.Scramble(20)
		if err := c.Tracker().Validate(); err != nil {
			t.Fatalf("Validate after %d scrambles: %v", i+1, err)
		}
	}
}

func TestTrackerIgnoresSliceMoves(t *testing.T) {
	// Slice moves displace centers, which the piece model has no slot
	// for, so the tracker skips them.
	c, err := New(3)
	if err != nil {
		t.Fatal(err)
	}
	c.Apply(M)
	if c.IsSolved() {
		t.Error("M should change the grid")
	}
	if !c.Tracker().IsSolved() {
		t.Error("M should leave the tracker untouched")
	}
}

func TestTrackerClone(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R)
	clone := tr.Clone()
	clone.Apply(U)

	if tr.Diagnostics() == clone.Diagnostics() {
		t.Error("Moving the clone should not move the original")
	}
	tr.Apply(RPrime)
	if !tr.IsSolved() {
		t.Error("Original should undo independently of the clone")
	}
}
