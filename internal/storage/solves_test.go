package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion: %v", err)
	}
	if version != 1 {
		t.Errorf("schema version = %d, want 1", version)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopening database: %v", err)
	}
	defer db.Close()

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 1 {
		t.Errorf("schema version after reopen = %d, want 1", version)
	}
}

func TestSolveRoundTrip(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	want := Solve{
		Size:       3,
		Scramble:   "R U R' U'",
		Solution:   "U R U' R'",
		MoveCount:  4,
		Solved:     true,
		Converged:  true,
		Efficiency: 146,
		Duration:   1500 * time.Millisecond,
	}
	id, err := repo.Create(want)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned empty id")
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Scramble != want.Scramble || got.Solution != want.Solution {
		t.Errorf("Got %q / %q, want %q / %q",
			got.Scramble, got.Solution, want.Scramble, want.Solution)
	}
	if got.MoveCount != want.MoveCount || got.Efficiency != want.Efficiency {
		t.Errorf("Got moves=%d eff=%d, want moves=%d eff=%d",
			got.MoveCount, got.Efficiency, want.MoveCount, want.Efficiency)
	}
	if !got.Solved || !got.Converged {
		t.Error("Solved/Converged flags should round-trip")
	}
	if got.Duration != want.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, want.Duration)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestGetMissingSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))
	if _, err := repo.Get("no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get missing = %v, want ErrNotFound", err)
	}
}

func TestListAndLatest(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	var lastID string
	for i := 0; i < 5; i++ {
		id, err := repo.Create(Solve{
			Size:      3,
			Scramble:  "R",
			Solution:  "R'",
			MoveCount: i,
			Solved:    true,
		})
		if err != nil {
			t.Fatal(err)
		}
		lastID = id
	}

	solves, err := repo.List(3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(solves) != 3 {
		t.Fatalf("List(3) returned %d solves", len(solves))
	}

	latest, err := repo.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.SolveID != lastID {
		t.Errorf("Latest = %s, want %s", latest.SolveID, lastID)
	}
}

func TestDeleteSolve(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))
	id, err := repo.Create(Solve{Size: 3, Scramble: "R", Solution: "R'"})
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.Get(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Double delete = %v, want ErrNotFound", err)
	}
}

func TestStats(t *testing.T) {
	repo := NewSolveRepository(openTestDB(t))

	empty, err := repo.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if empty.Total != 0 {
		t.Errorf("Empty stats total = %d", empty.Total)
	}

	records := []Solve{
		{Size: 3, Scramble: "R", Solution: "R'", MoveCount: 40, Solved: true, Efficiency: 110},
		{Size: 3, Scramble: "U", Solution: "U'", MoveCount: 60, Solved: true, Efficiency: 90},
		{Size: 3, Scramble: "F", Solution: "", MoveCount: 120, Solved: false, Efficiency: 0},
	}
	for _, s := range records {
		if _, err := repo.Create(s); err != nil {
			t.Fatal(err)
		}
	}

	st, err := repo.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Total != 3 || st.SolvedCount != 2 {
		t.Errorf("Total/Solved = %d/%d, want 3/2", st.Total, st.SolvedCount)
	}
	if st.BestMoveCount != 40 {
		t.Errorf("BestMoveCount = %d, want 40", st.BestMoveCount)
	}
	if st.BestEfficiency != 110 {
		t.Errorf("BestEfficiency = %d, want 110", st.BestEfficiency)
	}
}
