package binsort

import "context"

// Sorter is the interface implemented by the channel based sorters in this package.
// It provides a single Sort method that consumes the input, orders it, and delivers
// the results, allowing for cancellation through the provided context.
type Sorter interface {
	// Sort drains the input channel, orders the records, and starts delivering
	// them on the output channel. The operation can be cancelled or timed out
	// using the provided context.
	Sort(context.Context)
}

// CompareGeneric is a function type for comparing two items of type E.
// It must implement a strict weak ordering: reflexivity, antisymmetry, and transitivity.
// Returns a negative integer if a should be ordered before b, zero if they are equal,
// and a positive integer if a should be ordered after b in the final sorted output.
// This follows the same semantics as cmp.Compare and can be implemented using cmp.Compare[T] for ordered types.
//
// Items that compare equal keep their input order in every sort in this package.
type CompareGeneric[E any] func(a, b E) int

// Lesser is implemented by element types that carry their own ordering.
// Less must report whether the receiver orders strictly before other.
// Two values where neither is Less than the other are treated as equal keys
// and keep their relative input order.
type Lesser[E any] interface {
	Less(other E) bool
}
