package diff

import (
	"cmp"
	"strings"
)

// Ordered performs a diff operation on two sorted slices of cmp.Ordered types.
// It uses cmp.Compare for ordering, making it convenient for built-in types like
// numbers and strings. This is a wrapper around Generic that provides the
// comparison function automatically.
func Ordered[T cmp.Ordered](a, b []T, resultFunc ResultFunc[T]) (r Result, err error) {
	return Generic(a, b, cmp.Compare[T], resultFunc)
}

// Strings performs a diff operation on two sorted string slices using
// lexicographic comparison.
func Strings(a, b []string, resultFunc StringResultFunc) (r Result, err error) {
	if resultFunc == nil {
		return Generic(a, b, strings.Compare, nil)
	}
	return Generic(a, b, strings.Compare, ResultFunc[string](resultFunc))
}
