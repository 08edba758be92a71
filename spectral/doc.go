// Package spectral analyzes the spacing statistics of critical-line zeros.
//
// 🚀 What is spectral?
//
//	Another consumer of the zero-list value interface:
//	  • Spacings — successive differences Δtᵢ = tᵢ₊₁ − tᵢ of ascending
//	    zero heights
//	  • Periodogram — the power spectrum of a spacing sequence, computed
//	    with the FFT from package interp after removing the mean
//
// ⚙️ Usage:
//
//	sp := spectral.Spacings(zeros)
//	freqs, power := spectral.Periodogram(sp)
//
// The spectrum is a plain mean-removed periodogram, not a Welch estimate:
// zero-spacing sequences of interest here are short, so segment averaging
// would cost more resolution than it buys in variance.
package spectral
