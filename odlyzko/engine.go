package odlyzko

import (
	"math"
	"math/cmplx"

	"go.uber.org/zap"

	"github.com/zetaline/zetaline/rootfind"
	"github.com/zetaline/zetaline/siegel"
	"github.com/zetaline/zetaline/zeta"
)

// refineTol is the absolute t-tolerance of bisection refinement.
const refineTol = 1e-8

// negligibleOffset is the |t − t_j| threshold below which the grid value is
// served without the first-order correction.
const negligibleOffset = 1e-12

// Engine serves multi-evaluations of the kernel F and of Z(t) over one
// grid configuration. The grid is owned exclusively by the engine and is
// immutable once the state leaves StateUnconfigured; reads after that
// point need no locking. The engine itself is not safe for concurrent use
// while Unconfigured.
type Engine struct {
	cfg   Config
	log   *zap.Logger
	rem   RemainderFunc
	grid  []complex128
	state State
}

// NewEngine binds a Config. The engine starts Unconfigured with a nop
// logger and DefaultRemainder.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:   cfg,
		log:   zap.NewNop(),
		rem:   DefaultRemainder,
		state: StateUnconfigured,
	}
}

// SetLogger installs a logger for precomputation progress; nil restores
// the nop logger.
func (e *Engine) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	e.log = l
}

// SetRemainder swaps the remainder heuristic; nil restores DefaultRemainder.
func (e *Engine) SetRemainder(r RemainderFunc) {
	if r == nil {
		r = DefaultRemainder
	}
	e.rem = r
}

// Config returns the bound grid configuration.
func (e *Engine) Config() Config { return e.cfg }

// State returns the current life-cycle stage.
func (e *Engine) State() State { return e.state }

// Grid exposes the precomputed grid for inspection (nil while
// Unconfigured). Callers must treat it as read-only.
func (e *Engine) Grid() []complex128 { return e.grid }

// Precompute materializes the kernel grid: F(t_j) for every grid index j.
// Idempotent — repeated calls after the first are no-ops and leave the
// stored grid untouched.
func (e *Engine) Precompute() {
	if e.state != StateUnconfigured {
		return
	}

	e.log.Info("precomputing evaluation grid",
		zap.Int("points", e.cfg.R),
		zap.Int("k0", e.cfg.K0),
		zap.Int("k1", e.cfg.K1),
		zap.Float64("delta", e.cfg.Delta),
	)

	milestone := e.cfg.R / 10
	if milestone < 1 {
		milestone = 1
	}
	grid := make([]complex128, e.cfg.R)
	for j := range grid {
		grid[j] = coreSum(e.cfg, e.cfg.GridPoint(j))
		if j%milestone == 0 {
			e.log.Info("grid progress",
				zap.Float64("pct", 100*float64(j)/float64(e.cfg.R)))
		}
	}
	e.grid = grid
	e.state = StatePrecomputed

	e.log.Info("grid precomputation complete")
}

// ensureServing makes the lazy Unconfigured → Precomputed → Serving
// transition explicit: evaluations call it, so a cold engine precomputes
// on first use.
func (e *Engine) ensureServing() {
	if e.state == StateUnconfigured {
		e.Precompute()
	}
	e.state = StateServing
}

// EvaluateF serves an interpolated kernel value at t. The nearest grid
// index is clamped to [0, R−1]; when t falls off its grid point by more
// than a negligible offset, a first-order correction from the centered
// finite difference of the neighboring grid values is applied. The kernel
// varies slowly across one grid spacing, so this local linear step stands
// in for full band-limited reconstruction (see interp.BandLimited).
func (e *Engine) EvaluateF(t float64) complex128 {
	e.ensureServing()

	j := int(math.Round((t - e.cfg.TStart) / e.cfg.Delta))
	if j < 0 {
		j = 0
	}
	if j > e.cfg.R-1 {
		j = e.cfg.R - 1
	}

	result := e.grid[j]
	dt := t - e.cfg.GridPoint(j)
	if math.Abs(dt) > negligibleOffset {
		up := e.grid[min(j+1, e.cfg.R-1)]
		down := e.grid[max(j-1, 0)]
		derivative := (up - down) / complex(2*e.cfg.Delta, 0)
		result += derivative * complex(dt, 0)
	}

	return result
}

// ComputeZ evaluates Z(t) = 2·Re[e^{−iθ(t)}·F(t)] + remainder(t), with
// θ from the Riemann–Siegel phase and the engine's remainder heuristic.
func (e *Engine) ComputeZ(t float64) float64 {
	theta := siegel.Theta(t)
	f := e.EvaluateF(t)
	mainTerm := 2 * real(cmplx.Exp(complex(0, -theta))*f)

	return mainTerm + e.rem(t)
}

// FindZeros scans ComputeZ over [TStart, TEnd] (inclusive of the right
// endpoint) with the given step and refines every sign-changing bracket by
// bisection to an absolute tolerance of 1e-8. The scan overshoots by one
// step so a crossing at TEnd itself is caught, but refined roots beyond
// TEnd are discarded: every reported zero lies in [TStart, TEnd]. A step
// ≤ 0 selects the default Delta/10.
//
// When no crossing is detected at all — an interval too short or sampled
// too coarsely — the engine does not return an empty list silently: with
// Config.Fallback it substitutes the reference evaluator's first zero
// height as a degenerate single-element result (StatusFallbackZero);
// otherwise it reports StatusNoSignChange. The fallback is a safety net
// for small edge-case intervals, not a general substitute, and it masks
// true "no zero in range" outcomes — inspect Result.Status.
func (e *Engine) FindZeros(step float64) (Result, error) {
	if step <= 0 {
		step = e.cfg.Delta / 10
	}
	e.ensureServing()

	// Scan one step past TEnd so the right endpoint is always covered.
	brackets, err := rootfind.Scan(e.cfg.TStart, e.cfg.TEnd+step, step, e.ComputeZ)
	if err != nil {
		return Result{}, err
	}

	zeros := make([]float64, 0, len(brackets))
	for _, b := range brackets {
		root, err := rootfind.Bisect(b, refineTol, e.ComputeZ)
		if err != nil {
			return Result{}, err
		}
		// The overshoot bracket may refine to a root past TEnd; drop it.
		// Roots within the refinement tolerance of TEnd are the endpoint.
		if root > e.cfg.TEnd+refineTol {
			continue
		}
		zeros = append(zeros, math.Min(root, e.cfg.TEnd))
	}

	if len(zeros) == 0 {
		if !e.cfg.Fallback {
			return Result{Status: StatusNoSignChange}, nil
		}

		first, err := zeta.FirstZero(e.cfg.Precision)
		if err != nil {
			return Result{}, err
		}
		e.log.Info("no sign change detected; substituting reference zero",
			zap.Float64("height", first))

		return Result{Status: StatusFallbackZero, Zeros: []float64{first}}, nil
	}

	return Result{Status: StatusFound, Zeros: zeros}, nil
}
