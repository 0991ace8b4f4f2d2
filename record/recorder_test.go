package record_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/atexit"

	"github.com/katalvlaran/wavestring/field"
	"github.com/katalvlaran/wavestring/record"
	"github.com/katalvlaran/wavestring/shape"
	"github.com/katalvlaran/wavestring/wave"
)

// openTemp opens a recorder backed by a fresh file in the test directory.
func openTemp(t *testing.T, opts ...record.Option) *record.Recorder {
	t.Helper()
	r, err := record.Open(filepath.Join(t.TempDir(), "wave.sqlite3"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	return r
}

func solve(t *testing.T, label string) *wave.Solver {
	t.Helper()
	s, err := wave.New(wave.Config{
		Shape: shape.Window(shape.Sine(5, 1), 0.2, 0.4),
		L:     1, C: 1, Dt: 0.001, N: 20, Nt: 10,
		Label: label,
	})
	require.NoError(t, err)

	return s
}

// TestRecord_RoundTrip stores a field and reads every step back.
func TestRecord_RoundTrip(t *testing.T) {
	r := openTemp(t, record.WithBatchSize(7))
	s := solve(t, "Biii")

	id, err := r.Record(s)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NoError(t, r.Flush())

	run, err := r.Run(id)
	require.NoError(t, err)
	assert.Equal(t, "Biii", run.Label)
	assert.Equal(t, 21, run.Points)
	assert.Equal(t, 11, run.Steps)
	assert.Equal(t, 0.001, run.Dt)
	assert.InDelta(t, 1.0, run.Length, 1e-12)
	assert.InDelta(t, s.Courant(), run.Courant, 0)

	for n := 0; n < run.Steps; n++ {
		want, err := s.Psi().Step(n)
		require.NoError(t, err)
		got, err := r.Step(id, n)
		require.NoError(t, err)
		require.Equal(t, want, got, "n=%d", n)
	}
}

// TestRecord_MultipleRuns lists runs in creation order.
func TestRecord_MultipleRuns(t *testing.T) {
	r := openTemp(t)

	a, err := r.Record(solve(t, "first"))
	require.NoError(t, err)
	b, err := r.Record(solve(t, "second"))
	require.NoError(t, err)

	runs, err := r.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	ids := []string{runs[0].ID, runs[1].ID}
	assert.ElementsMatch(t, []string{a, b}, ids)
}

// TestRecord_CloseFlushes ensures buffered samples survive Close.
func TestRecord_CloseFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.sqlite3")
	r, err := record.Open(path)
	require.NoError(t, err)

	id, err := r.Record(solve(t, "Bi"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "second Close is a no-op")

	_, err = r.Record(solve(t, "Bi"))
	require.ErrorIs(t, err, record.ErrClosed)

	reopened, err := record.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	row, err := reopened.Step(id, 10)
	require.NoError(t, err)
	assert.Len(t, row, 21)
}

// TestRun_Unknown reports missing runs.
func TestRun_Unknown(t *testing.T) {
	r := openTemp(t)

	_, err := r.Run("missing")
	require.ErrorIs(t, err, record.ErrUnknownRun)

	_, err = r.Step("missing", 0)
	require.ErrorIs(t, err, record.ErrUnknownRun)
}

// TestRecord_Logger checks the recorder reports recorded runs.
func TestRecord_Logger(t *testing.T) {
	var buf bytes.Buffer
	r := openTemp(t, record.WithLogger(log.NewLogfmtLogger(&buf)))

	_, err := r.Record(solve(t, "Bii"))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `msg="run recorded"`)
	assert.Contains(t, buf.String(), "samples=231")
}

// TestWithBatchSize_Panics rejects empty batches.
func TestWithBatchSize_Panics(t *testing.T) {
	require.Panics(t, func() { record.WithBatchSize(0) })
}

// failingField serves the steps of a real field until failAt.
type failingField struct {
	field.Field
	failAt int
}

var errStepUnavailable = errors.New("step unavailable")

func (f failingField) Step(n int) ([]float64, error) {
	if n >= f.failAt {
		return nil, errStepUnavailable
	}
	return f.Field.Step(n)
}

// failingSource is a solved field whose later steps cannot be read.
type failingSource struct {
	*wave.Solver
	failAt int
}

func (s failingSource) Psi() field.Field {
	return failingField{Field: s.Solver.Psi(), failAt: s.failAt}
}

// TestRecord_FailureLeavesNoRun ensures a run whose samples cannot all be
// stored is removed, including the batches already committed.
func TestRecord_FailureLeavesNoRun(t *testing.T) {
	r := openTemp(t, record.WithBatchSize(21))

	kept, err := r.Record(solve(t, "kept"))
	require.NoError(t, err)

	_, err = r.Record(failingSource{Solver: solve(t, "broken"), failAt: 5})
	require.ErrorIs(t, err, errStepUnavailable)
	require.NoError(t, r.Flush())

	runs, err := r.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, kept, runs[0].ID)

	row, err := r.Step(kept, 10)
	require.NoError(t, err)
	assert.Len(t, row, 21)
}

// TestStep_AfterClose reports ErrClosed rather than a database error.
func TestStep_AfterClose(t *testing.T) {
	r := openTemp(t)
	id, err := r.Record(solve(t, "Bi"))
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = r.Step(id, 0)
	require.ErrorIs(t, err, record.ErrClosed)

	_, err = r.Run(id)
	require.ErrorIs(t, err, record.ErrClosed)
}

// TestRecord_FlushOnExit checks that samples still buffered in a recorder
// that was never closed reach the database when the process exits through
// atexit. The recording happens in a child test process.
func TestRecord_FlushOnExit(t *testing.T) {
	if path := os.Getenv("WAVESTRING_RECORD_DB"); path != "" {
		r, err := record.Open(path)
		require.NoError(t, err)
		id, err := r.Record(solve(t, "unclosed"))
		require.NoError(t, err)
		fmt.Println(id)
		atexit.Exit(0)
	}

	path := filepath.Join(t.TempDir(), "wave.sqlite3")
	c := exec.Command(os.Args[0], "-test.run=^TestRecord_FlushOnExit$")
	c.Env = append(os.Environ(), "WAVESTRING_RECORD_DB="+path)
	out, err := c.Output()
	require.NoError(t, err, "%s", out)
	id := strings.TrimSpace(string(out))
	require.NotEmpty(t, id)

	reopened, err := record.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	run, err := reopened.Run(id)
	require.NoError(t, err)
	assert.Equal(t, "unclosed", run.Label)
	for n := 0; n < run.Steps; n++ {
		row, err := reopened.Step(id, n)
		require.NoError(t, err)
		assert.Len(t, row, 21, "n=%d", n)
	}
}
