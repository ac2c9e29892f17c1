package cli

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/lanrat/binsort"
)

// ParseError reports a token that is not a number.
type ParseError struct {
	Token string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError
func NewParseError(token string, cause error) *ParseError {
	return &ParseError{Token: token, Cause: cause}
}

// Numbers is a list of numbers read from user input.
// Ints is used when every token is integral, Floats otherwise.
type Numbers struct {
	Ints   []int
	Floats []float64
}

// ParseNumbers parses whitespace separated numbers.
// Tokens such as "2.0" that hold an integral value count as integers.
func ParseNumbers(line string) (Numbers, error) {
	return parseTokens(strings.Fields(line))
}

func parseTokens(tokens []string) (Numbers, error) {
	ints := make([]int, 0, len(tokens))
	floats := make([]float64, 0, len(tokens))
	integral := true
	for _, tok := range tokens {
		if i, err := strconv.Atoi(tok); err == nil {
			ints = append(ints, i)
			floats = append(floats, float64(i))
			continue
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Numbers{}, NewParseError(tok, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Numbers{}, NewParseError(tok, nil)
		}
		floats = append(floats, f)
		integral = false
	}
	if integral {
		return Numbers{Ints: ints}, nil
	}
	if lo.EveryBy(floats, isIntegral) {
		return Numbers{Ints: lo.Map(floats, func(f float64, _ int) int { return int(f) })}, nil
	}
	return Numbers{Floats: floats}, nil
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) < 1<<53
}

// Len returns the number of values.
func (n Numbers) Len() int {
	if n.Floats != nil {
		return len(n.Floats)
	}
	return len(n.Ints)
}

// Sorted returns a sorted copy.
func (n Numbers) Sorted() Numbers {
	if n.Floats != nil {
		return Numbers{Floats: binsort.Sorted(n.Floats)}
	}
	return Numbers{Ints: binsort.Sorted(n.Ints)}
}

// Uniq drops adjacent duplicates. Call it on sorted numbers to drop all of them.
func (n Numbers) Uniq() Numbers {
	if n.Floats != nil {
		return Numbers{Floats: binsort.Uniq(slices.Clone(n.Floats))}
	}
	return Numbers{Ints: binsort.Uniq(slices.Clone(n.Ints))}
}

// Values returns the numbers as a slice for JSON output.
func (n Numbers) Values() any {
	if n.Floats != nil {
		return n.Floats
	}
	if n.Ints == nil {
		return []int{}
	}
	return n.Ints
}

func (n Numbers) String() string {
	return fmt.Sprint(n.Values())
}
