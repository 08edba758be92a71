package siegel_test

import (
	"testing"

	"github.com/zetaline/zetaline/siegel"
)

// BenchmarkZ_Asymptotic measures one Z evaluation on the asymptotic path
// (main sum carries terms).
func BenchmarkZ_Asymptotic(b *testing.B) {
	opts := siegel.DefaultOptions()
	opts.Precision = 30

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = siegel.Z(250.0, opts)
	}
}

// BenchmarkZ_Delegated measures one Z evaluation at a low height, where
// the main sum degenerates and the reference evaluator is used.
func BenchmarkZ_Delegated(b *testing.B) {
	opts := siegel.DefaultOptions()
	opts.Precision = 30

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = siegel.Z(14.5, opts)
	}
}

// BenchmarkFindZeros measures a full scan-and-refine pass over one unit
// interval.
func BenchmarkFindZeros(b *testing.B) {
	opts := siegel.DefaultOptions()
	opts.Precision = 25

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = siegel.FindZeros(14, 15, 0.1, opts)
	}
}
