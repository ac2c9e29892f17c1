package binsort

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// GenericSorter sorts the records of a channel with binary insertion.
// Every record read from the input is inserted into an in-memory sorted buffer
// right after the records equal to it, so records with equal keys are delivered
// in the order they arrived. Once the input is closed the buffer is streamed to
// the output channel.
type GenericSorter[E any] struct {
	config      Config
	input       <-chan E
	outChan     chan E
	errChan     chan error
	compareFunc CompareGeneric[E]
	sorted      []E
}

// newSorter creates a new GenericSorter instance with the given configuration.
func newSorter[E any](input <-chan E, compareFunc CompareGeneric[E], config *Config) *GenericSorter[E] {
	config = mergeConfig(config)
	return &GenericSorter[E]{
		input:       input,
		compareFunc: compareFunc,
		config:      *config,
		outChan:     make(chan E, config.SortedChanBuffSize),
		errChan:     make(chan error, 1),
	}
}

// Generic creates a new channel sorter for any type E and returns the sorter instance,
// output channel with sorted results, and error channel.
//
// Parameters:
//   - input: Channel providing the data to be sorted
//   - compareFunc: Comparison function that returns negative/zero/positive for less/equal/greater
//   - config: Configuration options (nil uses defaults)
//
// Call Sort() on the returned sorter to begin the sorting process.
// Results are delivered via the output channel, errors via the error channel.
// Both channels are closed once the sorter is done.
func Generic[E any](input <-chan E, compareFunc CompareGeneric[E], config *Config) (*GenericSorter[E], <-chan E, <-chan error) {
	s := newSorter(input, compareFunc, config)
	return s, s.outChan, s.errChan
}

// Sort consumes the Sorter's input chan and starts delivering the sorted records.
// Sort blocks while the input is being read and unblocks when the output starts.
// Reading and inserting run as separate stages, a failure in either stops both.
// NOTE: the context passed to Sort must outlive Sort() returning, the output
// goroutine uses the same context.
func (s *GenericSorter[E]) Sort(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	records := make(chan E, s.config.ChanBuffSize)
	g.Go(func() error {
		return s.read(gctx, records)
	})
	g.Go(func() error {
		return s.collect(gctx, records)
	})
	if err := g.Wait(); err != nil {
		s.sorted = nil
		s.errChan <- err
		close(s.errChan)
		close(s.outChan)
		return
	}

	go s.output(ctx)
}

// read forwards records from the input chan to records and closes it when done
func (s *GenericSorter[E]) read(ctx context.Context, records chan<- E) error {
	defer close(records)
	for {
		select {
		case rec, ok := <-s.input:
			if !ok {
				return nil
			}
			select {
			case records <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// collect inserts each record into the sorted buffer
func (s *GenericSorter[E]) collect(ctx context.Context, records <-chan E) (err error) {
	defer func() {
		// Recover from panics in comparison function
		if r := recover(); r != nil {
			err = NewComparisonError(r, "collect")
		}
	}()

	s.sorted = make([]E, 0, s.config.InitialCapacity)
	for {
		select {
		case rec, ok := <-records:
			if !ok {
				return nil
			}
			s.sorted = Insert(s.sorted, rec, s.compareFunc)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// output delivers the sorted buffer to the output chan
func (s *GenericSorter[E]) output(ctx context.Context) {
	defer close(s.outChan)
	defer close(s.errChan)

	for _, rec := range s.sorted {
		select {
		case s.outChan <- rec:
		case <-ctx.Done():
			s.errChan <- ctx.Err()
			return
		}
	}
	s.sorted = nil
}
