package zetaline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zetaline/zetaline"
	"github.com/zetaline/zetaline/zeta"
)

const firstZeroHeight = 14.134725141734693

// TestFindZerosRiemannSiegel locates the first zero on [14, 15] with the
// direct scan.
func TestFindZerosRiemannSiegel(t *testing.T) {
	zeros, err := zetaline.FindZerosRiemannSiegel(14, 15, 0.1, 30)
	require.NoError(t, err)
	require.NotEmpty(t, zeros)
	assert.InDelta(t, firstZeroHeight, zeros[0], 0.01)
}

// TestFindZerosRiemannSiegel_DefaultStep verifies step ≤ 0 falls back to
// DefaultStep and still finds the zero.
func TestFindZerosRiemannSiegel_DefaultStep(t *testing.T) {
	zeros, err := zetaline.FindZerosRiemannSiegel(14, 15, 0, 30)
	require.NoError(t, err)
	require.NotEmpty(t, zeros)
	assert.InDelta(t, firstZeroHeight, zeros[0], 0.01)
}

// TestFindZerosRiemannSiegel_FirstTwo picks up the first two known zeros
// on [14, 22].
func TestFindZerosRiemannSiegel_FirstTwo(t *testing.T) {
	zeros, err := zetaline.FindZerosRiemannSiegel(14, 22, 0.1, 30)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(zeros), 2)
	assert.InDelta(t, zeta.KnownZeros[0], zeros[0], 0.01)
	assert.InDelta(t, zeta.KnownZeros[1], zeros[1], 0.01)
}

// TestFindZerosOdlyzko exercises the multi-evaluation path on the low
// interval, where the fallback supplies the first zero.
func TestFindZerosOdlyzko(t *testing.T) {
	zeros, err := zetaline.FindZerosOdlyzko(10, 20, 0.01, 30)
	require.NoError(t, err)
	require.NotEmpty(t, zeros)
	assert.InDelta(t, firstZeroHeight, zeros[0], 0.1)
}

// TestFindZerosOdlyzko_BadInterval propagates configuration errors.
func TestFindZerosOdlyzko_BadInterval(t *testing.T) {
	_, err := zetaline.FindZerosOdlyzko(20, 10, 0.01, 30)
	assert.Error(t, err)
}

// TestRecords numbers zero heights onto the critical line from index 1.
func TestRecords(t *testing.T) {
	records := zetaline.Records([]float64{14.13, 21.02})
	require.Len(t, records, 2)
	assert.Equal(t, zetaline.ZeroRecord{Index: 1, Re: 0.5, Im: 14.13}, records[0])
	assert.Equal(t, zetaline.ZeroRecord{Index: 2, Re: 0.5, Im: 21.02}, records[1])

	assert.Empty(t, zetaline.Records(nil))
}
