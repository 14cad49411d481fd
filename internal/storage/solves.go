package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a solve record does not exist.
var ErrNotFound = errors.New("storage: solve not found")

// Solve is one recorded scramble-and-solve session.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Size       int
	Scramble   string
	Solution   string
	MoveCount  int
	Solved     bool
	Converged  bool
	Efficiency int
	Duration   time.Duration
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create inserts a solve record and returns its generated ID.
func (r *SolveRepository) Create(s Solve) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, size, scramble, solution,
		                    move_count, solved, converged, efficiency, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339Nano), s.Size, s.Scramble, s.Solution,
		s.MoveCount, boolInt(s.Solved), boolInt(s.Converged), s.Efficiency,
		s.Duration.Milliseconds())
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, size, scramble, solution,
		       move_count, solved, converged, efficiency, duration_ms
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, solveID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// Latest retrieves the most recent solve.
func (r *SolveRepository) Latest() (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, size, scramble, solution,
		       move_count, solved, converged, efficiency, duration_ms
		FROM solves
		ORDER BY created_at DESC, solve_id DESC
		LIMIT 1
	`)

	s, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest solve: %w", err)
	}
	return s, nil
}

// List returns the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, created_at, size, scramble, solution,
		       move_count, solved, converged, efficiency, duration_ms
		FROM solves
		ORDER BY created_at DESC, solve_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	return solves, rows.Err()
}

// Delete removes a solve record.
func (r *SolveRepository) Delete(solveID string) error {
	res, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, solveID)
	}
	return nil
}

// Stats aggregates the stored solves.
type Stats struct {
	Total          int
	SolvedCount    int
	AvgMoveCount   float64
	BestMoveCount  int
	BestEfficiency int
	AvgDurationMs  float64
}

// Stats computes aggregate statistics over all stored solves.
func (r *SolveRepository) Stats() (*Stats, error) {
	var st Stats
	err := r.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(solved), 0),
		       COALESCE(AVG(move_count), 0),
		       COALESCE(MIN(CASE WHEN solved = 1 THEN move_count END), 0),
		       COALESCE(MAX(efficiency), 0),
		       COALESCE(AVG(duration_ms), 0)
		FROM solves
	`).Scan(&st.Total, &st.SolvedCount, &st.AvgMoveCount,
		&st.BestMoveCount, &st.BestEfficiency, &st.AvgDurationMs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return &st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	var solved, converged int
	var durationMs int64

	err := row.Scan(&s.SolveID, &createdAt, &s.Size, &s.Scramble, &s.Solution,
		&s.MoveCount, &solved, &converged, &s.Efficiency, &durationMs)
	if err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = t
	s.Solved = solved != 0
	s.Converged = converged != 0
	s.Duration = time.Duration(durationMs) * time.Millisecond
	return &s, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
