// Package yamlutil converts between YAML documents and generic maps and
// validates the shape of the result. Lesson content is stored as YAML
// mappings, so every helper here works in terms of map[string]any.
package yamlutil

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping reports that a YAML document parsed to something other than
// a mapping at the top level.
var ErrNotMapping = errors.New("yaml document is not a mapping")

// FromMap returns the YAML encoding of m as a block-style document.
func FromMap(m map[string]any) (string, error) {
	out, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return string(out), nil
}

// ToMap parses s as a YAML document and returns the top-level mapping.
// Documents whose root is a scalar, sequence, or empty return ErrNotMapping.
func ToMap(s string) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %T)", ErrNotMapping, doc)
	}
	return m, nil
}

// RemoveKey deletes key from every mapping reachable from v through maps and
// sequences, mutating v in place. Values of types other than map[string]any
// and []any are left untouched.
func RemoveKey(v any, key string) {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			RemoveKey(item, key)
		}
	case map[string]any:
		delete(t, key)
		for _, val := range t {
			RemoveKey(val, key)
		}
	}
}
