package zeta

import (
	"github.com/zetaline/zetaline/rootfind"
)

// KnownZeros lists the heights of the first nontrivial zeros on the
// critical line, used to seed tests and the explicit-formula consumers.
var KnownZeros = []float64{
	14.134725141734693,
	21.022039638771554,
	25.010857580145688,
	30.424876125859513,
	32.935061587739190,
}

// firstZeroBracket is a sign-changing bracket of Z around the first zero.
var firstZeroBracket = rootfind.Bracket{Left: 14.0, Right: 14.2}

// FirstZero returns the height of the first nontrivial zero, refined by
// bisecting the reference Z over its known bracket at the given precision.
// It serves as the multi-evaluation engine's degenerate fallback result.
func FirstZero(precision int) (float64, error) {
	var evalErr error
	f := func(t float64) float64 {
		v, err := Z(t, precision)
		if err != nil && evalErr == nil {
			evalErr = err
		}

		return v
	}

	root, err := rootfind.Bisect(firstZeroBracket, 1e-9, f)
	if err != nil {
		return 0, err
	}
	if evalErr != nil {
		return 0, evalErr
	}

	return root, nil
}
