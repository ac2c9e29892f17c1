package binsort

import "slices"

// Uniq removes consecutive duplicate elements from the sorted slice x in place
// and returns the shortened slice. The first element of every run is kept.
func Uniq[S ~[]E, E comparable](x S) S {
	return slices.Compact(x)
}

// UniqChan returns a channel that filters out consecutive duplicates from the input.
// This function assumes the input channel provides values in sorted order so that
// duplicates appear consecutively. It preserves the first occurrence of each unique
// value while filtering out subsequent duplicates.
//
// The returned channel will be closed when the input channel is closed.
// This function spawns a goroutine that will terminate when the input channel is closed.
func UniqChan[E comparable](in <-chan E) <-chan E {
	out := make(chan E)
	go func() {
		var prior E
		priorSet := false
		for d := range in {
			if priorSet {
				if d == prior {
					continue
				}
			} else {
				priorSet = true
			}
			out <- d
			prior = d
		}
		close(out)
	}()
	return out
}
