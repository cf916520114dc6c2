package solver

import (
	"github.com/neutronlab/simkit/pkg/config"
)

// envConfig is the raw environment form of the solver settings.
type envConfig struct {
	NumThreads    int     `env:"SIMKIT_NUM_THREADS" envDefault:"1"`
	Tolerance     float64 `env:"SIMKIT_CONV_TOLERANCE" envDefault:"1e-5"`
	MaxIterations int     `env:"SIMKIT_MAX_ITERATIONS" envDefault:"1000"`
	TrackSpacing  float64 `env:"SIMKIT_TRACK_SPACING" envDefault:"0.1"`
	NumAzim       int     `env:"SIMKIT_NUM_AZIM" envDefault:"32"`
	Quadrature    string  `env:"SIMKIT_QUADRATURE" envDefault:"tabuchi-yamamoto"`
}

// FromEnv loads solver settings from the environment, routing every value
// through the guarded setters so a misconfigured variable fails with the same
// diagnostics as a misused API call.
func FromEnv() (*Settings, error) {
	var raw envConfig
	if err := config.Load(&raw); err != nil {
		return nil, err
	}

	s := NewSettings()
	for _, set := range []func() error{
		func() error { return s.SetNumThreads(raw.NumThreads) },
		func() error { return s.SetConvergenceTolerance(raw.Tolerance) },
		func() error { return s.SetMaxIterations(raw.MaxIterations) },
		func() error { return s.SetTrackSpacing(raw.TrackSpacing) },
		func() error { return s.SetNumAzim(raw.NumAzim) },
		func() error { return s.SetQuadrature(raw.Quadrature) },
	} {
		if err := set(); err != nil {
			return nil, err
		}
	}
	return s, nil
}
