// Package diff compares two sorted slices and reports the items that exist in
// only one of them, along with counts of the items they share. It also locates
// the first position where two slices stop agreeing element by element.
package diff

import (
	"errors"
	"fmt"
)

// differ holds the state for a diff between two sorted slices
type differ[T any] struct {
	a, b       []T
	resultFunc ResultFunc[T]
	compare    CompareFunc[T]
}

// Generic performs a diff operation on two sorted slices of any type T.
// It walks both slices in step using the provided comparison function and calls
// resultFunc for each item that exists in only one slice.
//
// Parameters:
//   - a, b: Sorted slices to compare (MUST be pre-sorted by compareFunc)
//   - compareFunc: Function that returns <0, 0, or >0 for ordering comparison
//   - resultFunc: Callback function called for each difference found
//
// Returns statistical information about the comparison and any errors returned
// by resultFunc. Duplicates are matched one to one, so the result describes the
// difference between the two multisets. The sort order of the inputs is not
// validated.
func Generic[T any](a, b []T, compareFunc CompareFunc[T], resultFunc ResultFunc[T]) (r Result, err error) {
	if compareFunc == nil || resultFunc == nil {
		return Result{}, errors.New("arguments must not be nil")
	}

	d := differ[T]{
		a:          a,
		b:          b,
		resultFunc: resultFunc,
		compare:    compareFunc,
	}
	return d.diff()
}

func (d *differ[T]) diff() (r Result, err error) {
	i, j := 0, 0
	for i < len(d.a) && j < len(d.b) {
		c := d.compare(d.a[i], d.b[j])
		switch {
		case c > 0:
			r.TotalB++
			r.ExtraB++
			if err = d.resultFunc(NEW, d.b[j]); err != nil {
				return
			}
			j++
		case c < 0:
			r.TotalA++
			r.ExtraA++
			if err = d.resultFunc(OLD, d.a[i]); err != nil {
				return
			}
			i++
		default:
			// common
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	// if only A has data left
	for ; i < len(d.a); i++ {
		r.TotalA++
		r.ExtraA++
		if err = d.resultFunc(OLD, d.a[i]); err != nil {
			return
		}
	}
	// if only B has data left
	for ; j < len(d.b); j++ {
		r.TotalB++
		r.ExtraB++
		if err = d.resultFunc(NEW, d.b[j]); err != nil {
			return
		}
	}
	return
}

// Mismatch returns the first index at which a and b differ element by element,
// or -1 if they hold equal elements in the same order. When one slice is a prefix
// of the other the length of the shorter one is returned.
func Mismatch[T any](a, b []T, compareFunc CompareFunc[T]) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if compareFunc(a[i], b[i]) != 0 {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// Discard is a ResultFunc that ignores every difference, for callers that only
// need the counts.
func Discard[T any](Delta, T) error {
	return nil
}

// PrintDiff is a utility function that can be used as a ResultFunc to print
// differences to stdout. It formats each difference with the Delta symbol
// (< for OLD, > for NEW) followed by the item value.
func PrintDiff[T any](d Delta, s T) error {
	_, err := fmt.Printf("%s %v\n", d, s)
	return err
}
