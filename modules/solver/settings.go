package solver

import (
	"github.com/neutronlab/simkit/pkg/checkval"
)

// Quadrature names the polar quadrature sets the solver understands.
const (
	QuadratureTabuchiYamamoto = "tabuchi-yamamoto"
	QuadratureGaussLegendre   = "gauss-legendre"
	QuadratureEqualWeight     = "equal-weight"
	QuadratureEqualAngle      = "equal-angle"
)

var quadratures = []string{
	QuadratureTabuchiYamamoto,
	QuadratureGaussLegendre,
	QuadratureEqualWeight,
	QuadratureEqualAngle,
}

// azimuthalCounts lists the accepted azimuthal angle counts: the ray tracer
// requires a multiple of four for quadrant symmetry.
var azimuthalCounts = []int{4, 8, 16, 32, 64, 128}

// Settings holds the solver runtime configuration. Every setter validates its
// argument before assignment; a failed check leaves the settings untouched.
type Settings struct {
	numThreads    int
	tolerance     float64
	maxIterations int
	trackSpacing  float64
	numAzim       int
	quadrature    string
}

// NewSettings returns settings preloaded with the toolkit defaults.
func NewSettings() *Settings {
	return &Settings{
		numThreads:    1,
		tolerance:     1e-5,
		maxIterations: 1000,
		trackSpacing:  0.1,
		numAzim:       32,
		quadrature:    QuadratureTabuchiYamamoto,
	}
}

func (s *Settings) SetNumThreads(n int) error {
	if err := checkval.CheckGreaterThan("number of threads", n, 0, false); err != nil {
		return err
	}
	s.numThreads = n
	return nil
}

// SetConvergenceTolerance bounds the eigenvalue convergence criterion to the
// half-open interval (0, 1].
func (s *Settings) SetConvergenceTolerance(tol float64) error {
	if err := checkval.CheckGreaterThan("convergence tolerance", tol, 0.0, false); err != nil {
		return err
	}
	if err := checkval.CheckLessThan("convergence tolerance", tol, 1.0, true); err != nil {
		return err
	}
	s.tolerance = tol
	return nil
}

func (s *Settings) SetMaxIterations(n int) error {
	if err := checkval.CheckGreaterThan("max iterations", n, 0, false); err != nil {
		return err
	}
	s.maxIterations = n
	return nil
}

func (s *Settings) SetTrackSpacing(spacing float64) error {
	if err := checkval.CheckGreaterThan("track spacing", spacing, 0.0, false); err != nil {
		return err
	}
	s.trackSpacing = spacing
	return nil
}

func (s *Settings) SetNumAzim(n int) error {
	if err := checkval.CheckValue("number of azimuthal angles", n, azimuthalCounts); err != nil {
		return err
	}
	s.numAzim = n
	return nil
}

func (s *Settings) SetQuadrature(q string) error {
	if err := checkval.CheckValue("polar quadrature", q, quadratures); err != nil {
		return err
	}
	s.quadrature = q
	return nil
}

func (s *Settings) NumThreads() int { return s.numThreads }

func (s *Settings) ConvergenceTolerance() float64 { return s.tolerance }

func (s *Settings) MaxIterations() int { return s.maxIterations }

func (s *Settings) TrackSpacing() float64 { return s.trackSpacing }

func (s *Settings) NumAzim() int { return s.numAzim }

func (s *Settings) Quadrature() string { return s.quadrature }
