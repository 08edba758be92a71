package explicit

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrBadArgument indicates an evaluation point x ≤ 1.
var ErrBadArgument = errors.New("explicit: x must be greater than 1")

// ZerosOnLine lifts zero heights onto the critical line: h → 1/2 + i·h.
func ZerosOnLine(heights []float64) []complex128 {
	zeros := make([]complex128, len(heights))
	for i, h := range heights {
		zeros[i] = complex(0.5, h)
	}

	return zeros
}

// Psi evaluates the Chebyshev function via the Riemann explicit formula
//
//	ψ(x) = x − Σ_{ρ: |Im ρ| ≤ height} x^ρ/ρ − ln 2π
//
// over the supplied zeros with positive imaginary part. A height ≤ 0 uses
// every supplied zero. Returns ErrBadArgument for x ≤ 1.
func Psi(x float64, zeros []complex128, height float64) (float64, error) {
	if x <= 1 {
		return 0, ErrBadArgument
	}

	psi := complex(x, 0)
	for _, rho := range zeros {
		if height > 0 && math.Abs(imag(rho)) > height {
			continue
		}
		psi -= cmplx.Pow(complex(x, 0), rho) / rho
	}
	psi -= complex(math.Log(2*math.Pi), 0)

	return real(psi), nil
}

// PiExplicit approximates the prime-counting function π(x) ≈ ψ(x)/ln x.
func PiExplicit(x float64, zeros []complex128, height float64) (float64, error) {
	psi, err := Psi(x, zeros, height)
	if err != nil {
		return 0, err
	}

	return psi / math.Log(x), nil
}

// Primes returns all primes ≤ n by the sieve of Eratosthenes.
func Primes(n int) []int {
	if n < 2 {
		return nil
	}

	composite := make([]bool, n+1)
	var primes []int
	for p := 2; p <= n; p++ {
		if composite[p] {
			continue
		}
		primes = append(primes, p)
		for q := p * p; q <= n; q += p {
			composite[q] = true
		}
	}

	return primes
}

// PiExact counts primes ≤ x exactly via the sieve.
func PiExact(x float64) int {
	if x < 2 {
		return 0
	}

	return len(Primes(int(x)))
}
