// Package record persists solved displacement fields into a SQLite database
// so that animations can be replayed without re-running the solver.
//
// Schema:
//
//	runs(id, label, points, steps, dt, length, courant)
//	samples(run_id, step, point, x, t, psi)
//
// Each Record call creates one run identified by an xid. Samples are
// buffered and written in batched transactions; Close (or process exit via
// atexit) flushes the remainder.
package record

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/katalvlaran/wavestring/field"
	"github.com/katalvlaran/wavestring/render"
)

// DefaultBatchSize is the number of samples buffered before a flush.
const DefaultBatchSize = 100000

var (
	// ErrClosed indicates use of a Recorder after Close.
	ErrClosed = errors.New("record: recorder closed")

	// ErrUnknownRun indicates a run id absent from the database.
	ErrUnknownRun = errors.New("record: unknown run")
)

// Run describes one recorded simulation.
type Run struct {
	ID      string
	Label   string
	Points  int
	Steps   int
	Dt      float64
	Length  float64
	Courant float64
}

type sample struct {
	runID       string
	step, point int
	x, t, psi   float64
}

// Recorder writes runs and samples into a SQLite file. It is safe for
// concurrent use.
type Recorder struct {
	mu        sync.Mutex
	db        *sql.DB
	insert    *sql.Stmt
	pending   []sample
	batchSize int
	closed    bool
	logger    log.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithBatchSize sets the number of buffered samples per transaction.
func WithBatchSize(n int) Option {
	if n < 1 {
		panic("record: WithBatchSize: n must be >= 1")
	}
	return func(r *Recorder) { r.batchSize = n }
}

// WithLogger attaches a go-kit logger.
func WithLogger(l log.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.logger = l
		}
	}
}

// Open opens (or creates) the database at path and prepares the schema.
func Open(path string, opts ...Option) (*Recorder, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}

	r := &Recorder{
		db:        db,
		batchSize: DefaultBatchSize,
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err = r.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	r.insert, err = db.Prepare(`INSERT INTO samples (run_id, step, point, x, t, psi) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("record: prepare: %w", err)
	}

	atexit.Register(func() { _ = r.Flush() })
	level.Info(r.logger).Log("msg", "recording to database", "path", path)

	return r, nil
}

func (r *Recorder) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id      TEXT PRIMARY KEY,
			label   TEXT NOT NULL,
			points  INTEGER NOT NULL,
			steps   INTEGER NOT NULL,
			dt      REAL NOT NULL,
			length  REAL NOT NULL,
			courant REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS samples (
			run_id TEXT NOT NULL REFERENCES runs(id),
			step   INTEGER NOT NULL,
			point  INTEGER NOT NULL,
			x      REAL NOT NULL,
			t      REAL NOT NULL,
			psi    REAL,
			PRIMARY KEY (run_id, step, point)
		)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("record: create schema: %w", err)
		}
	}

	return nil
}

// Record stores the full field of src as a new run and returns its id.
// Samples may stay buffered until the next flush. On failure the run and
// any of its samples already written are removed again.
func (r *Recorder) Record(src render.Source) (string, error) {
	if src == nil {
		return "", render.ErrNilSource
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return "", ErrClosed
	}

	psi := src.Psi()
	x := src.X()
	run := Run{
		ID:     xid.New().String(),
		Label:  src.Label(),
		Points: psi.Points(),
		Steps:  psi.Steps(),
		Dt:     src.Dt(),
		Length: x[len(x)-1],
	}
	if c, ok := src.(interface{ Courant() float64 }); ok {
		run.Courant = c.Courant()
	}

	_, err := r.db.Exec(
		`INSERT INTO runs (id, label, points, steps, dt, length, courant) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Label, run.Points, run.Steps, run.Dt, run.Length, run.Courant,
	)
	if err != nil {
		return "", fmt.Errorf("record: insert run: %w", err)
	}

	if err = r.appendLocked(run, psi, x); err != nil {
		// Leave no run row behind without its samples.
		return "", errors.Join(err, r.discardLocked(run.ID))
	}
	level.Debug(r.logger).Log("msg", "run recorded", "run", run.ID, "label", run.Label, "samples", run.Points*run.Steps)

	return run.ID, nil
}

// appendLocked buffers every sample of psi under run, flushing whenever
// the batch fills up.
func (r *Recorder) appendLocked(run Run, psi field.Field, x []float64) error {
	for n := 0; n < run.Steps; n++ {
		row, err := psi.Step(n)
		if err != nil {
			return fmt.Errorf("record: read step %d: %w", n, err)
		}
		t := float64(n) * run.Dt
		for i, v := range row {
			r.pending = append(r.pending, sample{runID: run.ID, step: n, point: i, x: x[i], t: t, psi: v})
		}
		if len(r.pending) >= r.batchSize {
			if err = r.flushLocked(); err != nil {
				return err
			}
		}
	}

	return nil
}

// discardLocked drops the buffered samples of run id and deletes whatever
// part of it already reached the database.
func (r *Recorder) discardLocked(id string) error {
	kept := r.pending[:0]
	for _, s := range r.pending {
		if s.runID != id {
			kept = append(kept, s)
		}
	}
	r.pending = kept

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record: begin: %w", err)
	}
	for _, q := range []string{
		`DELETE FROM samples WHERE run_id = ?`,
		`DELETE FROM runs WHERE id = ?`,
	} {
		if _, err = tx.Exec(q, id); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record: discard run %s: %w", id, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("record: commit: %w", err)
	}
	level.Warn(r.logger).Log("msg", "run discarded", "run", id)

	return nil
}

// Flush writes all buffered samples in one transaction.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}

	return r.flushLocked()
}

func (r *Recorder) flushLocked() error {
	if len(r.pending) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("record: begin: %w", err)
	}
	stmt := tx.Stmt(r.insert)
	for _, s := range r.pending {
		if _, err = stmt.Exec(s.runID, s.step, s.point, s.x, s.t, s.psi); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record: insert sample (%s,%d,%d): %w", s.runID, s.step, s.point, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("record: commit: %w", err)
	}
	r.pending = r.pending[:0]

	return nil
}

// Close flushes pending samples and closes the database.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	flushErr := r.flushLocked()
	r.closed = true
	_ = r.insert.Close()

	return errors.Join(flushErr, r.db.Close())
}
