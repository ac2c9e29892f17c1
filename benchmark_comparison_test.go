package binsort_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/lanrat/binsort"
)

// Benchmark configurations
var benchmarkSizes = []int{100, 500, 1000, 5000}

func generateRandomInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(1000) + 1
	}
	return data
}

func benchmarkSort(b *testing.B, sortFunc func([]int)) {
	for _, size := range benchmarkSizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			// Pre-generate data to avoid timing issues
			data := generateRandomInts(size)
			work := make([]int, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(work, data)
				sortFunc(work)
			}
		})
	}
}

// BenchmarkBinaryInsertion benchmarks the binary insertion sort with the shift loop
func BenchmarkBinaryInsertion(b *testing.B) {
	benchmarkSort(b, binsort.Sort[[]int])
}

// BenchmarkBinaryInsertionBulk benchmarks the copy based variant
func BenchmarkBinaryInsertionBulk(b *testing.B) {
	benchmarkSort(b, func(x []int) {
		binsort.SortBulkFunc(x, compareInts)
	})
}

// BenchmarkLinearInsertion benchmarks the linear insertion sort baseline
func BenchmarkLinearInsertion(b *testing.B) {
	benchmarkSort(b, binsort.InsertionSort[[]int])
}

// BenchmarkStdlib benchmarks slices.Sort for reference
func BenchmarkStdlib(b *testing.B) {
	benchmarkSort(b, slices.Sort[[]int])
}

// BenchmarkSortedInput measures the best case where every search lands at the end
func BenchmarkSortedInput(b *testing.B) {
	data := make([]int, 10000)
	for i := range data {
		data[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		binsort.Sort(data)
	}
}
