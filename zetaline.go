package zetaline

import (
	"github.com/zetaline/zetaline/odlyzko"
	"github.com/zetaline/zetaline/siegel"
)

// DefaultStep is the scan step applied when callers pass step ≤ 0 to the
// Riemann–Siegel entry point.
const DefaultStep = 0.1

// ZeroRecord is the externally persisted form of one located zero: the
// real part is always exactly 0.5 by construction, since the search is
// restricted to the critical line.
type ZeroRecord struct {
	Index int
	Re    float64
	Im    float64
}

// Records numbers the given ascending zero heights into persistable
// records, indexed from 1.
func Records(zeros []float64) []ZeroRecord {
	records := make([]ZeroRecord, len(zeros))
	for i, t := range zeros {
		records[i] = ZeroRecord{Index: i + 1, Re: 0.5, Im: t}
	}

	return records
}

// FindZerosRiemannSiegel locates critical-line zeros on [tStart, tEnd] by
// the direct Riemann–Siegel sign-change scan, returning ascending refined
// heights. A step ≤ 0 selects DefaultStep; precision is in decimal
// digits (≤ 0 → the siegel default).
func FindZerosRiemannSiegel(tStart, tEnd, step float64, precision int) ([]float64, error) {
	if step <= 0 {
		step = DefaultStep
	}
	opts := siegel.DefaultOptions()
	opts.Precision = precision

	return siegel.FindZeros(tStart, tEnd, step, opts)
}

// FindZerosOdlyzko locates critical-line zeros on [tStart, tEnd] by the
// fast multi-evaluation path, returning ascending refined heights. A step
// ≤ 0 selects the engine default (grid spacing / 10). When the scan finds
// no crossing, the engine's fallback substitutes the first known zero; use
// package odlyzko directly to inspect the outcome's Status.
func FindZerosOdlyzko(tStart, tEnd, step float64, precision int) ([]float64, error) {
	opts := odlyzko.DefaultOptions()
	opts.Precision = precision
	cfg, err := odlyzko.NewConfig(tStart, tEnd, opts)
	if err != nil {
		return nil, err
	}

	res, err := odlyzko.NewEngine(cfg).FindZeros(step)
	if err != nil {
		return nil, err
	}

	return res.Zeros, nil
}
