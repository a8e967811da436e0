package manifest

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Parse unmarshals manifest bytes. source names where the bytes came from and
// is only used in error messages.
func Parse(data []byte, source string) (*TemplateManifest, error) {
	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	return &m, nil
}

// Load validates and parses manifest bytes in one step. Schema violations are
// returned as an *InvalidError.
func Load(data []byte, source string) (*TemplateManifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidError{Source: source, Issues: result.Issues}
	}
	return Parse(data, source)
}
