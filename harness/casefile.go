package harness

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// caseFile is the YAML layout of a case file.
type caseFile struct {
	// Cases lists the extra correctness cases.
	Cases []caseSpec `yaml:"cases"`
}

// caseSpec is one case of a case file.
type caseSpec struct {
	// Name identifies the case in the report.
	Name string `yaml:"name"`

	// Input is the sequence to sort.
	Input []float64 `yaml:"input"`

	// Expected is the optional expected output.
	// When omitted the oracle defines it.
	Expected []float64 `yaml:"expected,omitempty"`
}

// LoadCases reads extra correctness cases from a YAML file.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	cases, err := ParseCases(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// ParseCases parses extra correctness cases from YAML data.
// Unknown fields are rejected so that typos do not silently drop expectations.
func ParseCases(data []byte) ([]Case, error) {
	var f caseFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []Case{}, nil
		}
		return nil, fmt.Errorf("failed to parse case file: %w", err)
	}

	cases := make([]Case, 0, len(f.Cases))
	seen := make(map[string]bool, len(f.Cases))
	for i, spec := range f.Cases {
		if spec.Name == "" {
			return nil, fmt.Errorf("case %d: name is required", i)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("case %q: duplicate name", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Expected != nil && len(spec.Expected) != len(spec.Input) {
			return nil, fmt.Errorf("case %q: expected has %d elements, input has %d", spec.Name, len(spec.Expected), len(spec.Input))
		}
		input := spec.Input
		if input == nil {
			input = []float64{}
		}
		cases = append(cases, TestCase[float64]{
			Name:     spec.Name,
			Input:    input,
			Expected: spec.Expected,
		})
	}
	return cases, nil
}
