// Package explicit connects critical-line zeros to prime counting through
// the Riemann explicit formula.
//
// 🚀 What is explicit?
//
//	A consumer of the zero-list value interface produced by the search
//	strategies:
//	  • Psi — the Chebyshev function ψ(x) ≈ x − Σ_ρ x^ρ/ρ − ln 2π,
//	    summed over the supplied critical-line zeros
//	  • PiExplicit — the prime-counting approximation π(x) ≈ ψ(x)/ln x
//	  • Primes / PiExact — an Eratosthenes sieve for exact comparison
//
// ⚙️ Usage:
//
//	rho := explicit.ZerosOnLine(zeta.KnownZeros)
//	approx, err := explicit.PiExplicit(1000, rho, 0)
//	exact := explicit.PiExact(1000)
//
// Accuracy grows with the number (and height) of supplied zeros; with only
// a handful of zeros the oscillating terms are barely damped, so treat the
// result as illustrative rather than tight.
package explicit
