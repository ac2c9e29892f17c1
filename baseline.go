package binsort

import "cmp"

// InsertionSort is the classic insertion sort: the key is walked left one
// position at a time until it meets an element that is not greater.
// It is stable and kept as the baseline binary insertion is measured against.
func InsertionSort[S ~[]E, E cmp.Ordered](x S) {
	for i := 1; i < len(x); i++ {
		key := x[i]
		j := i
		for ; j > 0 && cmp.Less(key, x[j-1]); j-- {
			x[j] = x[j-1]
		}
		x[j] = key
	}
}

// InsertionSortFunc is InsertionSort ordered by compare.
func InsertionSortFunc[S ~[]E, E any](x S, compare CompareGeneric[E]) {
	for i := 1; i < len(x); i++ {
		key := x[i]
		j := i
		for ; j > 0 && compare(x[j-1], key) > 0; j-- {
			x[j] = x[j-1]
		}
		x[j] = key
	}
}
