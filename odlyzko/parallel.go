package odlyzko

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/zetaline/zetaline/zeta"
)

// FindZerosParallel splits [tStart, tEnd] into parts disjoint subintervals
// and searches each with its own Engine on its own goroutine, merging the
// refined zeros in ascending order. A single grid's precomputation stays
// sequential; the parallelism here is across independent interval searches,
// each owning its grid exclusively.
//
// Per-part fallbacks are suppressed so empty subintervals do not each
// substitute the same reference zero; when the merged result is empty and
// opts.Fallback is set, one substitution is made for the whole range.
func FindZerosParallel(tStart, tEnd float64, parts int, step float64, opts Options) ([]float64, error) {
	if parts <= 0 {
		return nil, ErrBadParts
	}
	if tStart >= tEnd {
		return nil, ErrBadInterval
	}
	opts = opts.normalize()

	partOpts := opts
	partOpts.Fallback = false

	width := (tEnd - tStart) / float64(parts)
	results := make([][]float64, parts)

	var g errgroup.Group
	for i := 0; i < parts; i++ {
		i := i
		lo := tStart + float64(i)*width
		hi := lo + width
		if i == parts-1 {
			hi = tEnd
		}
		g.Go(func() error {
			cfg, err := NewConfig(lo, hi, partOpts)
			if err != nil {
				return err
			}
			res, err := NewEngine(cfg).FindZeros(step)
			if err != nil {
				return err
			}
			if res.Status == StatusFound {
				results[i] = res.Zeros
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var zeros []float64
	for _, part := range results {
		zeros = append(zeros, part...)
	}
	sort.Float64s(zeros)

	if len(zeros) == 0 && opts.Fallback {
		first, err := zeta.FirstZero(opts.Precision)
		if err != nil {
			return nil, err
		}
		zeros = append(zeros, first)
	}

	return zeros, nil
}
