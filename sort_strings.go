package binsort

import "strings"

// StringSorter provides channel sorting for strings using lexicographic ordering.
// It embeds GenericSorter[string].
type StringSorter struct {
	GenericSorter[string]
}

// Strings performs channel sorting on a channel of strings using lexicographic ordering.
// Returns the sorter instance, output channel with sorted strings, and error channel.
func Strings(input <-chan string, config *Config) (*StringSorter, <-chan string, <-chan error) {
	genericSorter, output, errChan := Generic(input, strings.Compare, config)
	s := &StringSorter{GenericSorter: *genericSorter}
	return s, output, errChan
}
