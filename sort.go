// Package binsort implements a stable, in-place binary insertion sort.
//
// For every position i the insertion point of x[i] is located inside the
// already sorted prefix x[:i] with a binary search that stops at the first
// element strictly greater than the key. The elements in between are shifted
// one slot to the right and the key is written into the gap. Because the key
// always lands after any run of equal elements, the sort is stable.
//
// Binary search reduces the number of comparisons to O(n log n), element moves
// remain O(n²) in the worst case. The package is meant for small inputs, for
// nearly sorted inputs, and for callers that need stability with expensive
// comparisons.
//
// Besides the slice functions the package offers a channel based sorter
// (Generic, Ordered, Strings) that inserts records as they arrive.
package binsort

import (
	"cmp"
	"slices"
)

// Sort sorts x in ascending order. Equal elements keep their input order.
// For floating point values NaNs are ordered before all other values,
// the same as slices.Sort.
func Sort[S ~[]E, E cmp.Ordered](x S) {
	for i := 1; i < len(x); i++ {
		key := x[i]
		left, right := 0, i
		for left < right {
			mid := int(uint(left+right) >> 1)
			if cmp.Less(key, x[mid]) {
				right = mid
			} else {
				left = mid + 1
			}
		}
		for j := i; j > left; j-- {
			x[j] = x[j-1]
		}
		x[left] = key
	}
}

// SortFunc sorts x in ascending order as determined by compare.
// Elements for which compare returns 0 keep their input order.
func SortFunc[S ~[]E, E any](x S, compare CompareGeneric[E]) {
	for i := 1; i < len(x); i++ {
		key := x[i]
		left := SearchInsertion(x, key, i, compare)
		for j := i; j > left; j-- {
			x[j] = x[j-1]
		}
		x[left] = key
	}
}

// SortLessers sorts x using the Less method of its elements.
func SortLessers[S ~[]E, E Lesser[E]](x S) {
	SortFunc(x, compareLessers[E])
}

// SortBulkFunc is SortFunc with the gap opened by a single copy instead of an
// element by element shift. It produces the same result as SortFunc.
func SortBulkFunc[S ~[]E, E any](x S, compare CompareGeneric[E]) {
	for i := 1; i < len(x); i++ {
		key := x[i]
		pos := SearchInsertion(x, key, i, compare)
		copy(x[pos+1:i+1], x[pos:i])
		x[pos] = key
	}
}

// SearchInsertion returns the index in the sorted prefix x[:end] at which
// target has to be inserted to keep the prefix sorted. The returned index is
// the first one whose element is strictly greater than target, so target is
// placed after all elements equal to it.
// It panics if end is out of range for x.
func SearchInsertion[S ~[]E, E any](x S, target E, end int, compare CompareGeneric[E]) int {
	prefix := x[:end]
	left, right := 0, len(prefix)
	for left < right {
		mid := int(uint(left+right) >> 1)
		if compare(prefix[mid], target) > 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// Sorted returns a sorted copy of x and leaves x untouched.
func Sorted[S ~[]E, E cmp.Ordered](x S) S {
	if x == nil {
		return nil
	}
	out := slices.Clone(x)
	Sort(out)
	return out
}

// SortedFunc returns a copy of x sorted by compare and leaves x untouched.
// The copy is built by inserting every element of x in turn into a growing
// sorted slice.
func SortedFunc[S ~[]E, E any](x S, compare CompareGeneric[E]) S {
	if x == nil {
		return nil
	}
	out := make(S, 0, len(x))
	for _, v := range x {
		out = Insert(out, v, compare)
	}
	return out
}

// Insert inserts v into the sorted slice s after any elements equal to it and
// returns the modified slice, like slices.Insert.
func Insert[S ~[]E, E any](s S, v E, compare CompareGeneric[E]) S {
	pos := SearchInsertion(s, v, len(s), compare)
	return slices.Insert(s, pos, v)
}

// IsSorted reports whether x is sorted in ascending order.
func IsSorted[S ~[]E, E cmp.Ordered](x S) bool {
	for i := len(x) - 1; i > 0; i-- {
		if cmp.Less(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedFunc reports whether x is sorted in ascending order as determined by compare.
func IsSortedFunc[S ~[]E, E any](x S, compare CompareGeneric[E]) bool {
	for i := len(x) - 1; i > 0; i-- {
		if compare(x[i], x[i-1]) < 0 {
			return false
		}
	}
	return true
}

// compareLessers adapts a Lesser into a CompareGeneric
func compareLessers[E Lesser[E]](a, b E) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
