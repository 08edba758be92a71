package odlyzko

import "math"

// Config is the immutable grid configuration derived from the search
// interval and Options. Construct via NewConfig; the derived fields are
// what the Engine's precomputation and interpolation read.
//
// Invariants: R is a power of two; Delta > 0; K0 = 2. K1 may fall below K0
// at low heights (T_mid < 8π), leaving the kernel sum empty — the fallback
// in FindZeros covers that regime.
type Config struct {
	// TStart and TEnd bound the search interval (TStart < TEnd).
	TStart, TEnd float64
	// Precision is the working precision in decimal digits.
	Precision int
	// GridFactor scales the grid spacing.
	GridFactor float64
	// MaxTaylorTerms budgets adaptive refinement depth (see Options).
	MaxTaylorTerms int
	// Fallback controls the no-sign-change substitution in FindZeros.
	Fallback bool

	// TMid is the interval midpoint (TStart+TEnd)/2.
	TMid float64
	// DeltaT is the interval length TEnd−TStart.
	DeltaT float64
	// Delta is the grid spacing GridFactor/√TMid: the local zero density
	// grows like √T, so spacing shrinks accordingly.
	Delta float64
	// R is the grid size, the next power of two ≥ DeltaT/Delta.
	R int
	// K0 and K1 bound the partial-sum kernel, K1 = ⌊√(TMid/2π)⌋ matching
	// the Riemann–Siegel main-sum length at that height.
	K0, K1 int
}

// NewConfig derives a Config for the interval [tStart, tEnd].
// Returns ErrBadInterval when tStart ≥ tEnd.
func NewConfig(tStart, tEnd float64, opts Options) (Config, error) {
	if tStart >= tEnd {
		return Config{}, ErrBadInterval
	}
	opts = opts.normalize()

	cfg := Config{
		TStart:         tStart,
		TEnd:           tEnd,
		Precision:      opts.Precision,
		GridFactor:     opts.GridFactor,
		MaxTaylorTerms: opts.MaxTaylorTerms,
		Fallback:       opts.Fallback,
	}
	cfg.TMid = (tStart + tEnd) / 2
	cfg.DeltaT = tEnd - tStart
	cfg.Delta = opts.GridFactor / math.Sqrt(cfg.TMid)
	cfg.R = 1 << int(math.Ceil(math.Log2(cfg.DeltaT/cfg.Delta)))
	cfg.K0 = 2
	cfg.K1 = int(math.Floor(math.Sqrt(cfg.TMid / (2 * math.Pi))))

	return cfg, nil
}

// GridPoint returns t_j = TStart + j·Delta, the j-th grid abscissa.
func (c Config) GridPoint(j int) float64 {
	return c.TStart + float64(j)*c.Delta
}
