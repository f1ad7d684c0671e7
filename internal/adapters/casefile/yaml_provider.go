package casefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the CaseProvider interface
// by reading parse expectations from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the cases.
func NewYAMLProvider(filePath string) (ports.CaseProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("case file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

/*
GetCases reads and validates the cases in the configured file.

An empty file, or one holding only comments, yields no cases. Unknown fields
and unknown statuses are errors.
*/
func (p *YAMLProvider) GetCases() ([]inspection.Case, error) {
	cases := []inspection.Case{}

	data, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file %s: %w", p.filePath, err)
	}
	if len(data) == 0 {
		return cases, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&cases); err != nil {
		if errors.Is(err, io.EOF) {
			return cases, nil
		}
		return nil, fmt.Errorf("failed to unmarshal cases from %s: %w", p.filePath, err)
	}
	if cases == nil {
		// A null document resets the slice.
		cases = []inspection.Case{}
	}

	for i, c := range cases {
		if !c.Want.Valid() {
			return nil, fmt.Errorf("case %d in %s: unknown status %q", i+1, p.filePath, c.Want)
		}
	}
	return cases, nil
}
