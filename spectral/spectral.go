package spectral

import (
	"math"

	"github.com/zetaline/zetaline/interp"
)

// Spacings returns the successive differences Δtᵢ = tᵢ₊₁ − tᵢ of the given
// ascending heights. Fewer than two heights yield an empty slice.
func Spacings(heights []float64) []float64 {
	if len(heights) < 2 {
		return nil
	}

	spacings := make([]float64, len(heights)-1)
	for i := range spacings {
		spacings[i] = heights[i+1] - heights[i]
	}

	return spacings
}

// Periodogram computes the one-sided power spectrum of a spacing sequence:
// the mean is removed, the sequence is transformed with interp.FFT, and
// |X_k|²/n is reported for k = 0..n/2 at normalized frequencies k/n.
// An empty input returns nil slices.
func Periodogram(spacings []float64) (freqs, power []float64) {
	n := len(spacings)
	if n == 0 {
		return nil, nil
	}

	mean := 0.0
	for _, s := range spacings {
		mean += s
	}
	mean /= float64(n)

	signal := make([]complex128, n)
	for i, s := range spacings {
		signal[i] = complex(s-mean, 0)
	}

	spec := interp.FFT(signal)
	half := n/2 + 1
	freqs = make([]float64, half)
	power = make([]float64, half)
	for k := 0; k < half; k++ {
		freqs[k] = float64(k) / float64(n)
		mag := math.Hypot(real(spec[k]), imag(spec[k]))
		power[k] = mag * mag / float64(n)
	}

	return freqs, power
}
