package record

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
)

// Runs lists recorded runs ordered by id (creation order for xids).
func (r *Recorder) Runs() ([]Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrClosed
	}

	rows, err := r.db.Query(`SELECT id, label, points, steps, dt, length, courant FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("record: query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err = rows.Scan(&run.ID, &run.Label, &run.Points, &run.Steps, &run.Dt, &run.Length, &run.Courant); err != nil {
			return nil, fmt.Errorf("record: scan run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// Run returns the metadata of one run.
func (r *Recorder) Run(id string) (Run, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.runLocked(id)
}

func (r *Recorder) runLocked(id string) (Run, error) {
	if r.closed {
		return Run{}, ErrClosed
	}

	run := Run{ID: id}
	err := r.db.QueryRow(
		`SELECT label, points, steps, dt, length, courant FROM runs WHERE id = ?`, id,
	).Scan(&run.Label, &run.Points, &run.Steps, &run.Dt, &run.Length, &run.Courant)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrUnknownRun, id)
	}
	if err != nil {
		return Run{}, fmt.Errorf("record: query run: %w", err)
	}

	return run, nil
}

// Step reads ψ[:, step] of a run, ordered by point. Call Flush first when
// the run was recorded through this Recorder and may still be buffered.
func (r *Recorder) Step(id string, step int) ([]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, err := r.runLocked(id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(`SELECT psi FROM samples WHERE run_id = ? AND step = ? ORDER BY point`, id, step)
	if err != nil {
		return nil, fmt.Errorf("record: query step: %w", err)
	}
	defer rows.Close()

	out := make([]float64, 0, run.Points)
	for rows.Next() {
		var v sql.NullFloat64
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("record: scan sample: %w", err)
		}
		// SQLite stores NaN as NULL.
		if !v.Valid {
			v.Float64 = math.NaN()
		}
		out = append(out, v.Float64)
	}

	return out, rows.Err()
}
