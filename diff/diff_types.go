package diff

import "fmt"

// Delta represents the type of difference found when comparing two sorted slices.
// It indicates whether an item is unique to the first slice (OLD) or second slice (NEW).
type Delta int

const (
	// NEW indicates an item that exists only in the second slice (B).
	// This represents a "new" or "added" item when comparing A to B.
	NEW Delta = iota // +

	// OLD indicates an item that exists only in the first slice (A).
	// This represents an "old" or "removed" item when comparing A to B.
	OLD // -
)

// CompareFunc orders two items the way cmp.Compare does.
type CompareFunc[T any] func(a, b T) int

// ResultFunc is a callback function type for processing diff results.
// It is called once for each item that appears in only one of the two slices.
// The Delta parameter indicates which slice the item belongs to (NEW or OLD).
// If the function returns an error, the diff operation will be terminated.
type ResultFunc[T any] func(Delta, T) error

// StringResultFunc is the ResultFunc used by Strings.
type StringResultFunc func(Delta, string) error

func (d Delta) String() string {
	switch d {
	case NEW:
		return ">"
	case OLD:
		return "<"
	default:
		return "?"
	}
}

// Result contains statistical information about the differences between two sorted slices.
// It provides counts of items that are unique to each slice as well as common items.
type Result struct {
	// ExtraA is the count of items that exist only in slice A (OLD items)
	ExtraA uint64 `json:"extra_a"`

	// ExtraB is the count of items that exist only in slice B (NEW items)
	ExtraB uint64 `json:"extra_b"`

	// TotalA is the total count of items processed from slice A
	TotalA uint64 `json:"total_a"`

	// TotalB is the total count of items processed from slice B
	TotalB uint64 `json:"total_b"`

	// Common is the count of items that exist in both slices
	Common uint64 `json:"common"`
}

// SameElements reports whether both slices held the same multiset of items.
func (r *Result) SameElements() bool {
	return r.ExtraA == 0 && r.ExtraB == 0
}

func (r *Result) String() string {
	out := fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.ExtraA, r.TotalA, r.ExtraB, r.TotalB, r.Common)
	return out
}

// Item is a single difference recorded by a Collector.
type Item[T any] struct {
	// D indicates whether the value is NEW (only in B) or OLD (only in A)
	D Delta
	// V contains the value that differs between the slices
	V T
}

func (i Item[T]) String() string {
	return fmt.Sprintf("%s %v", i.D, i.V)
}

// Collector accumulates the differences reported by a diff operation.
type Collector[T any] struct {
	Items []Item[T]
}

// Func returns a ResultFunc appending every difference to c.Items.
func (c *Collector[T]) Func() ResultFunc[T] {
	return func(d Delta, v T) error {
		c.Items = append(c.Items, Item[T]{D: d, V: v})
		return nil
	}
}
