package binsort

import (
	"cmp"
)

// OrderedSorter provides channel sorting for types that implement cmp.Ordered.
// It embeds GenericSorter and compares with cmp.Compare.
type OrderedSorter[T cmp.Ordered] struct {
	GenericSorter[T]
}

// Ordered performs channel sorting on a channel of cmp.Ordered types.
// It returns the sorter instance, output channel with sorted results, and error channel.
func Ordered[T cmp.Ordered](input <-chan T, config *Config) (*OrderedSorter[T], <-chan T, <-chan error) {
	s, output, errChan := Generic(input, cmp.Compare[T], config)
	return &OrderedSorter[T]{GenericSorter: *s}, output, errChan
}
