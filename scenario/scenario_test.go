package scenario_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wavestring/scenario"
	"github.com/katalvlaran/wavestring/wave"
)

// TestDefaults pins the reference parameters.
func TestDefaults(t *testing.T) {
	p := scenario.Defaults()
	assert.Equal(t, scenario.Params{N: 100, Nt: 200, L: 1, C: 1, Dt: 0.001}, p)
	assert.InDelta(t, 0.01, p.Courant(), 1e-12)
	require.NoError(t, p.Validate())
}

// TestBuiltin checks the three reference shapes.
func TestBuiltin(t *testing.T) {
	all := scenario.Builtin()
	require.Len(t, all, 3)
	assert.Equal(t, "Bi", all[0].Name)
	assert.Equal(t, "Bii", all[1].Name)
	assert.Equal(t, "Biii", all[2].Name)

	x := 0.3
	assert.InDelta(t, math.Sin(2*math.Pi*x), all[0].Shape(x), 1e-15)
	assert.InDelta(t, math.Sin(5*math.Pi*x), all[1].Shape(x), 1e-15)
	assert.InDelta(t, math.Sin(5*math.Pi*x), all[2].Shape(x), 1e-15)
	assert.Equal(t, 0.0, all[2].Shape(0.5))
	assert.Equal(t, 0.0, all[2].Shape(0.1))
}

// TestSelect covers ordering, the empty selection and unknown names.
func TestSelect(t *testing.T) {
	got, err := scenario.Select("Biii", "Bi")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Biii", got[0].Name)
	assert.Equal(t, "Bi", got[1].Name)

	got, err = scenario.Select()
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = scenario.Select("Biv")
	require.ErrorIs(t, err, scenario.ErrUnknownScenario)

	assert.Equal(t, []string{"Bi", "Bii", "Biii"}, scenario.Names())
}

// TestSolve runs every built-in scenario with the reference parameters.
func TestSolve(t *testing.T) {
	for _, s := range scenario.Builtin() {
		t.Run(s.Name, func(t *testing.T) {
			solver, err := s.Solve(scenario.Defaults())
			require.NoError(t, err)
			assert.Equal(t, s.Label, solver.Label())
			assert.Equal(t, 101, solver.Psi().Points())
			assert.Equal(t, 201, solver.Psi().Steps())
		})
	}
}

// TestSolve_BadParams wraps the solver error with the scenario name.
func TestSolve_BadParams(t *testing.T) {
	p := scenario.Defaults()
	p.N = 0

	_, err := scenario.Builtin()[0].Solve(p)
	require.ErrorIs(t, err, wave.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "scenario Bi")

	require.ErrorIs(t, p.Validate(), scenario.ErrBadParams)
}

// TestFromViper_Defaults reads the reference parameters when nothing is set.
func TestFromViper_Defaults(t *testing.T) {
	v, err := scenario.NewViper("")
	require.NoError(t, err)

	p, err := scenario.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, scenario.Defaults(), p)
}

// TestFromViper_File overrides parameters from a YAML file.
func TestFromViper_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  n: 50\n  nt: 80\n  dt: 0.002\n"), 0o600))

	v, err := scenario.NewViper(path)
	require.NoError(t, err)
	p, err := scenario.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 50, p.N)
	assert.Equal(t, 80, p.Nt)
	assert.Equal(t, 0.002, p.Dt)
	assert.Equal(t, 1.0, p.L)
}

// TestFromViper_Env overrides parameters from the environment.
func TestFromViper_Env(t *testing.T) {
	t.Setenv("WAVE_GRID_NT", "40")

	v, err := scenario.NewViper("")
	require.NoError(t, err)
	p, err := scenario.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Nt)
}

// TestFromViper_Invalid rejects parameters the solver would refuse.
func TestFromViper_Invalid(t *testing.T) {
	t.Setenv("WAVE_GRID_L", "-2")

	v, err := scenario.NewViper("")
	require.NoError(t, err)
	_, err = scenario.FromViper(v)
	require.ErrorIs(t, err, scenario.ErrBadParams)
}

// TestNewViper_MissingFile surfaces read errors.
func TestNewViper_MissingFile(t *testing.T) {
	_, err := scenario.NewViper(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
