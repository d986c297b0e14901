// Package vector_test provides benchmarks for vector arithmetic,
// using deterministic random fill.
package vector_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dynmat/vector"
)

var benchSizes = []int{1 << 10, 1 << 14, 1 << 18}

// sinks to defeat dead-code elimination
var (
	sinkV *vector.Vector[float64]
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			y := mustNew[float64](b, n)
			fillRand(b, x, 1337)
			fillRand(b, y, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, err := x.Add(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = v
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			y := mustNew[float64](b, n)
			fillRand(b, x, 11)
			fillRand(b, y, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := x.Dot(y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := mustNew[float64](b, n)
			fillRand(b, x, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkV = x.Clone()
			}
		})
	}
}
