package analysis

import (
	"testing"

	rubik "github.com/CaffeineLoop/rubiks-cube-solver"
)

func TestAlgorithmCounts(t *testing.T) {
	var moves []rubik.Move
	moves = append(moves, rubik.Sune...)
	moves = append(moves, rubik.F)
	moves = append(moves, rubik.SexyMove...)
	moves = append(moves, rubik.SexyMove...)

	counts := AlgorithmCounts(moves)
	if counts["sune"] != 1 {
		t.Errorf("sune count = %d, want 1", counts["sune"])
	}
	if counts["sexy move"] != 2 {
		t.Errorf("sexy move count = %d, want 2", counts["sexy move"])
	}
	if counts["T perm"] != 0 {
		t.Errorf("T perm count = %d, want 0", counts["T perm"])
	}
}

func TestAlgorithmCountsInsideSune(t *testing.T) {
	// Sune starts R U R', which is not a full sexy move.
	counts := AlgorithmCounts(rubik.Sune)
	if counts["sexy move"] != 0 {
		t.Errorf("sexy move inside sune = %d, want 0", counts["sexy move"])
	}
}

func TestMinePatterns(t *testing.T) {
	solutions := ParseSolutions([]string{
		"R U R' U' F2",
		"R U R' U' B2",
		"",
	})

	patterns := MinePatterns(solutions, 2, 4, 2)
	if len(patterns) == 0 {
		t.Fatal("Expected shared patterns across solutions")
	}

	best := patterns[0]
	if best.Notation != "R U R' U'" {
		t.Errorf("Top pattern = %q, want the shared four-move prefix", best.Notation)
	}
	if best.Count != 2 {
		t.Errorf("Top pattern count = %d, want 2", best.Count)
	}
}

func TestMinePatternsMinCount(t *testing.T) {
	solutions := ParseSolutions([]string{"R U F", "L D B"})
	if got := MinePatterns(solutions, 2, 3, 2); len(got) != 0 {
		t.Errorf("No pattern repeats, got %d", len(got))
	}
}
