package zeta_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zetaline/zetaline/zeta"
)

// TestEvaluate_KnownValues checks the Euler–Maclaurin evaluator against
// closed-form and tabulated values.
func TestEvaluate_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		s    complex128
		want complex128
	}{
		{"zeta(2)=pi^2/6", complex(2, 0), complex(math.Pi*math.Pi/6, 0)},
		{"zeta(4)=pi^4/90", complex(4, 0), complex(math.Pow(math.Pi, 4)/90, 0)},
		{"zeta(3)=Apery", complex(3, 0), complex(1.2020569031595943, 0)},
		{"zeta(0)=-1/2", complex(0, 0), complex(-0.5, 0)},
		{"zeta(-1)=-1/12", complex(-1, 0), complex(-1.0/12, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := zeta.Evaluate(tc.s, 30)
			require.NoError(t, err)
			assert.InDelta(t, real(tc.want), real(got), 1e-12)
			assert.InDelta(t, imag(tc.want), imag(got), 1e-12)
		})
	}
}

// TestEvaluate_FirstZeroHeight verifies that ζ nearly vanishes at the first
// nontrivial zero.
func TestEvaluate_FirstZeroHeight(t *testing.T) {
	v, err := zeta.Evaluate(complex(0.5, zeta.KnownZeros[0]), 30)
	require.NoError(t, err)
	assert.Less(t, cmplx.Abs(v), 1e-9, "ζ(1/2 + i·t₁) should vanish")
}

// TestEvaluate_Pole verifies the distinguished pole error at s = 1 and just
// inside the equality tolerance around it.
func TestEvaluate_Pole(t *testing.T) {
	_, err := zeta.Evaluate(complex(1, 0), 30)
	assert.ErrorIs(t, err, zeta.ErrPole)

	_, err = zeta.Evaluate(complex(1+1e-13, 0), 30)
	assert.ErrorIs(t, err, zeta.ErrPole, "within PoleTolerance must also error")

	_, err = zeta.Evaluate(complex(1.001, 0), 30)
	assert.NoError(t, err, "outside the tolerance the evaluator is total")
}

// TestZ_SignChangeAcrossFirstZero verifies the exact rotated evaluator
// changes sign across the first zero.
func TestZ_SignChangeAcrossFirstZero(t *testing.T) {
	before, err := zeta.Z(14.0, 30)
	require.NoError(t, err)
	after, err := zeta.Z(14.3, 30)
	require.NoError(t, err)
	assert.Negative(t, before*after, "Z must change sign across t₁ ≈ 14.1347")
}

// TestZ_RotationLandsOnRealAxis verifies the rotation convention: |Z(t)|
// must recover the full modulus |ζ(1/2+it)| away from zeros. The opposite
// rotation leaves a cos(2θ) factor, which near t = 16.27 pushes almost all
// of the modulus into the imaginary part and fakes a zero there.
func TestZ_RotationLandsOnRealAxis(t *testing.T) {
	for _, tt := range []float64{15.0, 16.27, 17.5, 19.0, 20.0} {
		v, err := zeta.Evaluate(complex(0.5, tt), 30)
		require.NoError(t, err)
		z, err := zeta.Z(tt, 30)
		require.NoError(t, err)

		assert.InDelta(t, cmplx.Abs(v), math.Abs(z), 0.02, "t=%v", tt)
	}
}

// TestZ_NoZeroBetweenFirstPair verifies Z stays bounded away from zero at
// t = 16.27, between the first and second true zeros.
func TestZ_NoZeroBetweenFirstPair(t *testing.T) {
	z, err := zeta.Z(16.27, 30)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(z), 1.0, "|ζ(1/2+16.27i)| ≈ 1.73; Z must not vanish here")
}

// TestFirstZero matches the refined height against the tabulated value.
func TestFirstZero(t *testing.T) {
	first, err := zeta.FirstZero(30)
	require.NoError(t, err)
	assert.InDelta(t, zeta.KnownZeros[0], first, 1e-6)
}
