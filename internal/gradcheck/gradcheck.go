// Package gradcheck verifies analytic gradients against finite differences.
//
// It is used to validate gradients produced by the dual and graph packages:
//
//	cfg := gradcheck.DefaultConfig()
//	report, err := gradcheck.Check(plain, analytic, x, cfg)
//	if err != nil {
//	    // report.Components lists every mismatch
//	}
package gradcheck

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

var (
	// ErrMismatch is returned when an analytic gradient component differs
	// from its numerical estimate by more than the tolerance.
	ErrMismatch = errors.New("gradient mismatch")

	// ErrLength is returned when gradient and point lengths disagree.
	ErrLength = errors.New("gradient length mismatch")
)

// Config controls a gradient check.
type Config struct {
	// Formula is the finite difference stencil. Zero means fd.Central.
	Formula fd.Formula

	// Step overrides the formula's default step size when non-zero.
	Step float64

	// Tolerance is both the absolute and the relative tolerance.
	Tolerance float64

	// Logger receives one debug entry per component. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns a central difference check with tolerance 1e-6.
func DefaultConfig() Config {
	return Config{
		Formula:   fd.Central,
		Tolerance: 1e-6,
		Logger:    zap.NewNop(),
	}
}

func (c Config) settings() *fd.Settings {
	s := &fd.Settings{Formula: c.Formula, Step: c.Step}
	if s.Formula.Stencil == nil {
		s.Formula = fd.Central
	}
	return s
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Component is the outcome of checking one partial derivative.
type Component struct {
	Index     int
	Analytic  float64
	Numerical float64
	OK        bool
}

// AbsError returns |Analytic - Numerical|.
func (c Component) AbsError() float64 {
	return math.Abs(c.Analytic - c.Numerical)
}

func (c Component) String() string {
	status := "ok"
	if !c.OK {
		status = "MISMATCH"
	}
	return fmt.Sprintf("[%d] analytic=%.10g numerical=%.10g err=%.3g %s",
		c.Index, c.Analytic, c.Numerical, c.AbsError(), status)
}

// Report collects the per-component results of Check.
type Report struct {
	Components []Component
}

// OK reports whether every component is within tolerance.
func (r Report) OK() bool {
	for _, c := range r.Components {
		if !c.OK {
			return false
		}
	}
	return true
}

// Failed returns the indices of components outside tolerance.
func (r Report) Failed() []int {
	var idx []int
	for _, c := range r.Components {
		if !c.OK {
			idx = append(idx, c.Index)
		}
	}
	return idx
}

// MaxAbsError returns the largest absolute error across components.
func (r Report) MaxAbsError() float64 {
	var m float64
	for _, c := range r.Components {
		m = math.Max(m, c.AbsError())
	}
	return m
}

// Numerical estimates the gradient of f at x with finite differences.
// f is called sequentially and must not retain its argument.
func Numerical(f func([]float64) float64, x []float64, cfg Config) []float64 {
	if len(x) == 0 {
		return []float64{}
	}
	return fd.Gradient(nil, f, x, cfg.settings())
}

// Compare checks got against want component-wise within tol, using
// an absolute-or-relative test. NaN never compares equal.
func Compare(want, got []float64, tol float64) error {
	if len(want) != len(got) {
		return errors.Wrapf(ErrLength, "want %d components, got %d", len(want), len(got))
	}
	for i := range want {
		if !scalar.EqualWithinAbsOrRel(want[i], got[i], tol, tol) {
			return errors.Wrapf(ErrMismatch, "component %d: want %g, got %g", i, want[i], got[i])
		}
	}
	return nil
}

// Check compares analytic, the gradient claimed for f at x, against a
// finite difference estimate. The returned error wraps ErrMismatch or
// ErrLength; the report is populated whenever lengths agree.
func Check(f func([]float64) float64, analytic, x []float64, cfg Config) (Report, error) {
	if len(analytic) != len(x) {
		return Report{}, errors.Wrapf(ErrLength, "analytic has %d components, point has %d", len(analytic), len(x))
	}

	log := cfg.logger()
	numerical := Numerical(f, x, cfg)

	report := Report{Components: make([]Component, len(x))}
	for i := range x {
		c := Component{
			Index:     i,
			Analytic:  analytic[i],
			Numerical: numerical[i],
			OK:        scalar.EqualWithinAbsOrRel(numerical[i], analytic[i], cfg.Tolerance, cfg.Tolerance),
		}
		report.Components[i] = c

		log.Debug("gradient component",
			zap.Int("index", i),
			zap.Float64("x", x[i]),
			zap.Float64("analytic", c.Analytic),
			zap.Float64("numerical", c.Numerical),
			zap.Bool("ok", c.OK))
	}

	if failed := report.Failed(); len(failed) > 0 {
		return report, errors.Wrapf(ErrMismatch, "components %v outside tolerance %g (max error %g)",
			failed, cfg.Tolerance, report.MaxAbsError())
	}
	return report, nil
}
