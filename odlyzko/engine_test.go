package odlyzko_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zetaline/zetaline/odlyzko"
	"github.com/zetaline/zetaline/zeta"
)

// newTestEngine builds an engine over [100, 110] at reduced precision,
// high enough that the kernel carries terms (K1 ≥ K0) and cheap enough
// for unit tests.
func newTestEngine(t *testing.T) *odlyzko.Engine {
	t.Helper()
	opts := odlyzko.DefaultOptions()
	opts.Precision = 25

	cfg, err := odlyzko.NewConfig(100, 110, opts)
	require.NoError(t, err)

	return odlyzko.NewEngine(cfg)
}

// TestEngine_StateMachine walks Unconfigured → Precomputed → Serving.
func TestEngine_StateMachine(t *testing.T) {
	eng := newTestEngine(t)
	assert.Equal(t, odlyzko.StateUnconfigured, eng.State())
	assert.Nil(t, eng.Grid())

	eng.Precompute()
	assert.Equal(t, odlyzko.StatePrecomputed, eng.State())
	assert.Len(t, eng.Grid(), eng.Config().R)

	eng.EvaluateF(100.5)
	assert.Equal(t, odlyzko.StateServing, eng.State())
}

// TestEngine_LazyPrecompute verifies a cold engine precomputes on first
// evaluation rather than failing.
func TestEngine_LazyPrecompute(t *testing.T) {
	eng := newTestEngine(t)
	_ = eng.EvaluateF(105.0)
	assert.Equal(t, odlyzko.StateServing, eng.State())
	assert.Len(t, eng.Grid(), eng.Config().R)
}

// TestEngine_PrecomputeIdempotent verifies repeated precomputation keeps
// the very same grid storage and values.
func TestEngine_PrecomputeIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	eng.Precompute()
	first := eng.Grid()

	eng.Precompute()
	second := eng.Grid()

	require.NotEmpty(t, first)
	assert.Same(t, &first[0], &second[0], "second call must not reallocate the grid")
	for i := range first {
		assert.Equal(t, first[i], second[i], "grid value %d changed", i)
	}
}

// TestEngine_EvaluateFOnGridPoints verifies grid-point queries return the
// stored kernel values untouched.
func TestEngine_EvaluateFOnGridPoints(t *testing.T) {
	eng := newTestEngine(t)
	eng.Precompute()
	grid := eng.Grid()
	cfg := eng.Config()

	for _, j := range []int{0, 1, cfg.R / 2, cfg.R - 1} {
		assert.Equal(t, grid[j], eng.EvaluateF(cfg.GridPoint(j)), "grid index %d", j)
	}
}

// TestEngine_EvaluateFBetweenGridPoints verifies the first-order correction
// tracks direct kernel evaluation between grid points.
func TestEngine_EvaluateFBetweenGridPoints(t *testing.T) {
	eng := newTestEngine(t)
	cfg := eng.Config()

	for _, frac := range []float64{0.25, 0.5} {
		tt := cfg.GridPoint(cfg.R/2) + frac*cfg.Delta
		direct := odlyzko.CoreSum(cfg, tt)
		interp := eng.EvaluateF(tt)
		assert.Less(t, cmplx.Abs(interp-direct), 0.01, "frac=%v", frac)
	}
}

// TestEngine_EvaluateFClampsOutside verifies out-of-span queries clamp to
// the boundary grid index.
func TestEngine_EvaluateFClampsOutside(t *testing.T) {
	eng := newTestEngine(t)
	eng.Precompute()

	assert.False(t, cmplx.IsNaN(eng.EvaluateF(eng.Config().TStart-5)))
	assert.False(t, cmplx.IsNaN(eng.EvaluateF(eng.Config().TEnd+50)))
}

// TestEngine_ComputeZRemainder verifies the remainder heuristic is applied
// and swappable without touching interpolation.
func TestEngine_ComputeZRemainder(t *testing.T) {
	eng := newTestEngine(t)
	withDefault := eng.ComputeZ(105.0)

	eng.SetRemainder(func(float64) float64 { return 0 })
	bare := eng.ComputeZ(105.0)
	assert.InDelta(t, odlyzko.DefaultRemainder(105.0), withDefault-bare, 1e-12)

	eng.SetRemainder(nil)
	assert.InDelta(t, withDefault, eng.ComputeZ(105.0), 1e-12)
}

// TestDefaultRemainder covers both branches of the heuristic.
func TestDefaultRemainder(t *testing.T) {
	assert.Equal(t, 0.01, odlyzko.DefaultRemainder(5))
	assert.InDelta(t, 0.1/math.Pow(105.0, 0.25), odlyzko.DefaultRemainder(105), 1e-15)
}

// TestEngine_FindZerosFound verifies the refined crossings of a grid whose
// kernel carries terms: ascending, inside the scanned span, and on actual
// sign changes of the engine's Z.
func TestEngine_FindZerosFound(t *testing.T) {
	eng := newTestEngine(t)

	res, err := eng.FindZeros(0.05)
	require.NoError(t, err)
	require.Equal(t, odlyzko.StatusFound, res.Status)
	require.NotEmpty(t, res.Zeros)

	cfg := eng.Config()
	for i, z := range res.Zeros {
		if i > 0 {
			assert.Less(t, res.Zeros[i-1], z)
		}
		assert.GreaterOrEqual(t, z, cfg.TStart)
		assert.LessOrEqual(t, z, cfg.TEnd, "zeros must stay inside the requested interval")
		assert.Less(t, math.Abs(eng.ComputeZ(z)), 1e-4, "zero %d not on a crossing", i)
	}
}

// TestEngine_FindZerosDefaultStep verifies step ≤ 0 selects delta/10.
func TestEngine_FindZerosDefaultStep(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.FindZeros(0)
	require.NoError(t, err)
	assert.Equal(t, odlyzko.StatusFound, res.Status)
}

// TestEngine_FallbackZero verifies the degenerate-interval safety net: at
// low heights the kernel sum is empty, Z stays positive, and the first
// reference zero is substituted.
func TestEngine_FallbackZero(t *testing.T) {
	opts := odlyzko.DefaultOptions()
	opts.Precision = 30

	cfg, err := odlyzko.NewConfig(10, 20, opts)
	require.NoError(t, err)
	require.Less(t, cfg.K1, cfg.K0, "low interval must have an empty kernel")

	res, err := odlyzko.NewEngine(cfg).FindZeros(0.01)
	require.NoError(t, err)
	assert.Equal(t, odlyzko.StatusFallbackZero, res.Status)
	require.Len(t, res.Zeros, 1)
	assert.InDelta(t, 14.134725, res.Zeros[0], 0.1)

	reference, err := zeta.FirstZero(30)
	require.NoError(t, err)
	assert.InDelta(t, reference, res.Zeros[0], 0.01)
}

// TestEngine_NoSignChange verifies the explicit outcome when the fallback
// is disabled.
func TestEngine_NoSignChange(t *testing.T) {
	opts := odlyzko.DefaultOptions()
	opts.Precision = 30
	opts.Fallback = false

	cfg, err := odlyzko.NewConfig(10, 20, opts)
	require.NoError(t, err)

	res, err := odlyzko.NewEngine(cfg).FindZeros(0.01)
	require.NoError(t, err)
	assert.Equal(t, odlyzko.StatusNoSignChange, res.Status)
	assert.Empty(t, res.Zeros)
}

// TestFindZerosParallel verifies the multi-interval driver merges ordered
// results and validates its inputs.
func TestFindZerosParallel(t *testing.T) {
	opts := odlyzko.DefaultOptions()
	opts.Precision = 25

	zeros, err := odlyzko.FindZerosParallel(100, 110, 4, 0.05, opts)
	require.NoError(t, err)
	require.NotEmpty(t, zeros)
	for i := 1; i < len(zeros); i++ {
		assert.LessOrEqual(t, zeros[i-1], zeros[i])
	}
	assert.GreaterOrEqual(t, zeros[0], 100.0)
	assert.LessOrEqual(t, zeros[len(zeros)-1], 110.0)

	_, err = odlyzko.FindZerosParallel(100, 110, 0, 0.05, opts)
	assert.ErrorIs(t, err, odlyzko.ErrBadParts)

	_, err = odlyzko.FindZerosParallel(110, 100, 2, 0.05, opts)
	assert.ErrorIs(t, err, odlyzko.ErrBadInterval)
}
