package yamlutil

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind is the set of value shapes a schema can require. These mirror the
// types yaml.v3 produces when decoding into any.
type Kind int

const (
	// Any accepts a value of any type.
	Any Kind = iota
	Bool
	Int
	Float
	String
	List
	Map
)

func (k Kind) String() string {
	switch k {
	case Any:
		return "any"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KeySpec names one required key and the kind of value it must hold.
type KeySpec struct {
	Key  string
	Kind Kind
}

// ErrInvalidSchema reports a malformed schema (as opposed to a map that
// fails validation against a well-formed one).
var ErrInvalidSchema = errors.New("invalid schema")

// VerifyMap checks that m has exactly the keys named by schema and that each
// value matches its declared kind. It returns an error describing the first
// violation found.
func VerifyMap(m map[string]any, schema []KeySpec) error {
	seen := make(map[string]bool, len(schema))
	for _, spec := range schema {
		if spec.Key == "" {
			return fmt.Errorf("%w: empty key", ErrInvalidSchema)
		}
		if spec.Kind < Any || spec.Kind > Map {
			return fmt.Errorf("%w: key %q has unknown kind %d", ErrInvalidSchema, spec.Key, int(spec.Kind))
		}
		if seen[spec.Key] {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidSchema, spec.Key)
		}
		seen[spec.Key] = true
	}

	if len(m) != len(schema) {
		return fmt.Errorf("map has keys [%s], schema requires [%s]",
			joinKeys(mapKeys(m)), joinKeys(schemaKeys(schema)))
	}
	for _, spec := range schema {
		v, ok := m[spec.Key]
		if !ok {
			return fmt.Errorf("map has keys [%s], schema requires [%s]",
				joinKeys(mapKeys(m)), joinKeys(schemaKeys(schema)))
		}
		if !kindMatches(v, spec.Kind) {
			return fmt.Errorf("value %v for key %q is not of kind %s", v, spec.Key, spec.Kind)
		}
	}
	return nil
}

func kindMatches(v any, k Kind) bool {
	switch k {
	case Any:
		return true
	case Bool:
		_, ok := v.(bool)
		return ok
	case Int:
		_, ok := v.(int)
		return ok
	case Float:
		_, ok := v.(float64)
		return ok
	case String:
		_, ok := v.(string)
		return ok
	case List:
		_, ok := v.([]any)
		return ok
	case Map:
		_, ok := v.(map[string]any)
		return ok
	default:
		return false
	}
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func schemaKeys(schema []KeySpec) []string {
	keys := make([]string, 0, len(schema))
	for _, spec := range schema {
		keys = append(keys, spec.Key)
	}
	return keys
}

func joinKeys(keys []string) string {
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
