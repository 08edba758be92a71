package interp

import (
	"math"
	"math/bits"
	"math/cmplx"
)

// NextPow2 returns the smallest power of two ≥ n (and 1 for n ≤ 1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// isPow2 reports whether n is a positive power of two.
func isPow2(n int) bool { return n > 0 && n&(n-1) == 0 }

// FFT returns the discrete Fourier transform of x (unnormalized,
// X[k] = Σ x[j]·e^{−2πi·jk/n}). Power-of-two lengths use the iterative
// radix-2 algorithm; other lengths use a direct O(n²) transform.
func FFT(x []complex128) []complex128 {
	return transform(x, -1)
}

// IFFT returns the inverse transform, normalized by 1/n.
func IFFT(x []complex128) []complex128 {
	out := transform(x, +1)
	n := complex(float64(len(x)), 0)
	for i := range out {
		out[i] /= n
	}

	return out
}

func transform(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	copy(out, x)
	if n <= 1 {
		return out
	}
	if !isPow2(n) {
		return direct(x, sign)
	}

	// Bit-reversal permutation.
	shift := 64 - uint(bits.Len(uint(n-1)))
	for i := 0; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if j > i {
			out[i], out[j] = out[j], out[i]
		}
	}

	// Iterative butterflies.
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		w := cmplx.Exp(complex(0, sign*2*math.Pi/float64(size)))
		for start := 0; start < n; start += size {
			wk := complex(1, 0)
			for k := 0; k < half; k++ {
				a := out[start+k]
				b := out[start+k+half] * wk
				out[start+k] = a + b
				out[start+k+half] = a - b
				wk *= w
			}
		}
	}

	return out
}

// direct is the O(n²) reference transform for non-power-of-two lengths.
func direct(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := sign * 2 * math.Pi * float64(j) * float64(k) / float64(n)
			sum += x[j] * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}

	return out
}
