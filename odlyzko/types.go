package odlyzko

import (
	"errors"
	"math"
)

var (
	// ErrBadInterval indicates T start was not below T end.
	ErrBadInterval = errors.New("odlyzko: T start must be below T end")
	// ErrBadParts indicates a non-positive subinterval count.
	ErrBadParts = errors.New("odlyzko: parts must be positive")
)

// DefaultPrecision is the working precision, in decimal digits, applied
// when Options.Precision is unset.
const DefaultPrecision = 50

// Options holds the tunable inputs of a grid configuration.
//
// Fields:
//   - Precision      — working precision in decimal digits (> 0; unset → 50).
//   - GridFactor     — scales the grid spacing delta = GridFactor/√T_mid.
//   - MaxTaylorTerms — expansion-depth budget for adaptive refinement
//     (interp.Adaptive); carried on the config, not consumed by the engine's
//     linear-correction path.
//   - Fallback       — substitute the first known zero when a scan detects
//     no sign change, instead of reporting StatusNoSignChange.
type Options struct {
	Precision      int
	GridFactor     float64
	MaxTaylorTerms int
	Fallback       bool
}

// DefaultOptions returns Options with precision 50, grid factor 1.0,
// a Taylor budget of 10 terms, and the fallback enabled.
func DefaultOptions() Options {
	return Options{
		Precision:      DefaultPrecision,
		GridFactor:     1.0,
		MaxTaylorTerms: 10,
		Fallback:       true,
	}
}

// normalize fills defaults for zero values.
func (o Options) normalize() Options {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.GridFactor <= 0 {
		o.GridFactor = 1.0
	}
	if o.MaxTaylorTerms <= 0 {
		o.MaxTaylorTerms = 10
	}

	return o
}

// State is the engine life-cycle stage.
type State int

const (
	// StateUnconfigured — constructed, no grid materialized.
	StateUnconfigured State = iota
	// StatePrecomputed — grid materialized, no evaluation served yet.
	StatePrecomputed
	// StateServing — at least one evaluation has been served.
	StateServing
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "Unconfigured"
	case StatePrecomputed:
		return "Precomputed"
	case StateServing:
		return "Serving"
	default:
		return "Unknown"
	}
}

// Status classifies a zero-search outcome, so callers can decide whether a
// degenerate result is acceptable instead of receiving a masked fallback.
type Status int

const (
	// StatusFound — at least one sign change was detected and refined.
	StatusFound Status = iota
	// StatusNoSignChange — the scan detected no crossing and the fallback
	// is disabled; Zeros is empty.
	StatusNoSignChange
	// StatusFallbackZero — the scan detected no crossing; the first known
	// zero height from the reference evaluator was substituted.
	StatusFallbackZero
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "Found"
	case StatusNoSignChange:
		return "NoSignChange"
	case StatusFallbackZero:
		return "FallbackZero"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a zero search over one interval.
type Result struct {
	// Status classifies how Zeros was produced.
	Status Status
	// Zeros holds ascending zero locations; a single substituted height
	// when Status is StatusFallbackZero, empty for StatusNoSignChange.
	Zeros []float64
}

// RemainderFunc is a named heuristic correction added to the rotated main
// term of Z(t). It stands in for the true Riemann–Siegel correction series
// and can be swapped without touching interpolation or bisection logic.
type RemainderFunc func(t float64) float64

// DefaultRemainder is the empirical correction ∝ t^{−1/4} for t > 10 and a
// fixed small constant below. No formal error bound is derived for it.
func DefaultRemainder(t float64) float64 {
	if t > 10 {
		return 0.1 / math.Pow(t, 0.25)
	}

	return 0.01
}
