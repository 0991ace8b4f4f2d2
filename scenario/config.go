package scenario

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Viper keys for Params.
const (
	KeyN  = "grid.n"
	KeyNt = "grid.nt"
	KeyL  = "grid.l"
	KeyC  = "grid.c"
	KeyDt = "grid.dt"
)

// EnvPrefix is the environment prefix read by NewViper: WAVE_GRID_N, WAVE_GRID_DT, ...
const EnvPrefix = "WAVE"

var envReplacer = strings.NewReplacer(".", "_")

// SetDefaults registers the reference parameters on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyN, d.N)
	v.SetDefault(KeyNt, d.Nt)
	v.SetDefault(KeyL, d.L)
	v.SetDefault(KeyC, d.C)
	v.SetDefault(KeyDt, d.Dt)
}

// NewViper returns a viper instance with defaults and environment binding.
// When path is non-empty the file is read as well (format from its extension).
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
		}
	}

	return v, nil
}

// FromViper reads and validates Params from v.
func FromViper(v *viper.Viper) (Params, error) {
	p := Params{
		N:  v.GetInt(KeyN),
		Nt: v.GetInt(KeyNt),
		L:  v.GetFloat64(KeyL),
		C:  v.GetFloat64(KeyC),
		Dt: v.GetFloat64(KeyDt),
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}
