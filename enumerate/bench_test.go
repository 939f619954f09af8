package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/occupancy/enumerate"
	"github.com/katalvlaran/occupancy/ladder"
)

// benchmarkEnumerate runs Enumerate on (n, ground+excess) with opts.
func benchmarkEnumerate(b *testing.B, n, excess int, opts ...enumerate.Option) {
	r := mustReduce(b, n, ladder.GroundEnergy(n).Float()+float64(excess))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enumerate.Enumerate(r, opts...); err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
	}
}

// BenchmarkEnumerate_Pruned_N20X6 is the reference instance with branch-and-bound.
func BenchmarkEnumerate_Pruned_N20X6(b *testing.B) {
	benchmarkEnumerate(b, 20, 6)
}

// BenchmarkEnumerate_Unpruned_N20X6 is the plain 3^12 brute force.
func BenchmarkEnumerate_Unpruned_N20X6(b *testing.B) {
	benchmarkEnumerate(b, 20, 6, enumerate.WithPruning(false))
}

// BenchmarkEnumerate_Pruned_N40X12 is a larger pruned search (24 residual levels).
func BenchmarkEnumerate_Pruned_N40X12(b *testing.B) {
	benchmarkEnumerate(b, 40, 12)
}

// BenchmarkEnumerate_Parallel_N40X12 splits the same search across three workers.
func BenchmarkEnumerate_Parallel_N40X12(b *testing.B) {
	benchmarkEnumerate(b, 40, 12, enumerate.WithWorkers(3))
}

// BenchmarkEnumerate_CountOnly_N40X12 counts without materialising configurations.
func BenchmarkEnumerate_CountOnly_N40X12(b *testing.B) {
	benchmarkEnumerate(b, 40, 12, enumerate.WithCountOnly())
}
