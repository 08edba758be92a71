package interp

import (
	"errors"
	"math"
)

// ErrBadSpacing indicates a non-positive sample spacing.
var ErrBadSpacing = errors.New("interp: sample spacing must be positive")

// BandLimited interpolates a uniformly sampled complex signal by
// band-limited (Whittaker–Shannon style) reconstruction. The sample
// spectrum is computed once at construction; each At call zero-pads it to
// double length, transforms back and indexes the 2×-oversampled signal at
// the position nearest t.
//
// Immutable after construction; safe for concurrent readers.
type BandLimited struct {
	data  []complex128
	spec  []complex128
	delta float64
	t0    float64
}

// NewBandLimited builds an interpolator over data sampled at
// t0, t0+delta, …, t0+(len(data)−1)·delta. The data slice is copied.
func NewBandLimited(data []complex128, delta, t0 float64) (*BandLimited, error) {
	if delta <= 0 {
		return nil, ErrBadSpacing
	}

	b := &BandLimited{
		data:  append([]complex128(nil), data...),
		delta: delta,
		t0:    t0,
	}
	if len(b.data) > 1 {
		b.spec = FFT(b.data)
	}

	return b, nil
}

// Len returns the number of samples.
func (b *BandLimited) Len() int { return len(b.data) }

// At returns the reconstructed value at t.
//
// Edge policy: for t outside [t0, t0+(n−1)·delta] the two nearest boundary
// samples' finite-difference slope extrapolates linearly rather than
// failing. A signal of size 0 returns 0; size 1 returns the lone sample.
func (b *BandLimited) At(t float64) complex128 {
	n := len(b.data)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return b.data[0]
	}

	x := (t - b.t0) / b.delta
	if x < 0 {
		slope := (b.data[1] - b.data[0]) / complex(b.delta, 0)

		return b.data[0] + slope*complex(t-b.t0, 0)
	}
	if x >= float64(n) {
		end := b.t0 + float64(n-1)*b.delta
		slope := (b.data[n-1] - b.data[n-2]) / complex(b.delta, 0)

		return b.data[n-1] + slope*complex(t-end, 0)
	}

	// Zero-centered spectrum padding: low frequencies keep their slots at
	// both ends of the doubled array, the middle is zero.
	pad := 2 * n
	half := n / 2
	freq := make([]complex128, pad)
	copy(freq[:half], b.spec[:half])
	copy(freq[pad-(n-half):], b.spec[half:])

	vals := IFFT(freq)
	idx := int(math.Round(x * 2))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(vals) {
		return b.data[n-1]
	}

	// IFFT normalizes by 2n while the spectrum came from n samples.
	return vals[idx] * 2
}
