package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Rule is one matching criterion of a program. It is a closed sum type:
// the only implementations are ValuesRule and BoolRule, so the matcher can
// switch over them exhaustively.
type Rule interface {
	isRule()
}

// ValuesRule accepts an answer when it hits at least one of Values.
type ValuesRule struct {
	Values []string
}

// BoolRule compares the answer, read as the literal "true", against Want.
// The default catalog keeps one for forward compatibility; no question
// produces the key it checks.
type BoolRule struct {
	Want bool
}

func (ValuesRule) isRule() {}
func (BoolRule) isRule()   {}

// Contains reports whether v is one of the accepted values.
func (r ValuesRule) Contains(v string) bool {
	return slices.Contains(r.Values, v)
}

// Values builds a ValuesRule.
func Values(vs ...string) ValuesRule { return ValuesRule{Values: vs} }

// Bool builds a BoolRule.
func Bool(want bool) BoolRule { return BoolRule{Want: want} }

// Criteria maps a question id to the rule its answer must satisfy.
type Criteria map[string]Rule

// SortedKeys returns the criteria keys in lexical order, for stable output.
func (c Criteria) SortedKeys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ruleValue converts a rule to its plain wire shape: a string list or a bool.
func ruleValue(r Rule) (any, error) {
	switch r := r.(type) {
	case ValuesRule:
		if r.Values == nil {
			return []string{}, nil
		}
		return r.Values, nil
	case BoolRule:
		return r.Want, nil
	default:
		return nil, fmt.Errorf("unsupported rule type %T", r)
	}
}

// MarshalJSON renders each rule as an array of strings or a boolean.
func (c Criteria) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c))
	for k, r := range c {
		v, err := ruleValue(r)
		if err != nil {
			return nil, fmt.Errorf("criteria %q: %w", k, err)
		}
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the shape produced by MarshalJSON.
func (c *Criteria) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Criteria, len(raw))
	for k, msg := range raw {
		if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			return fmt.Errorf("criteria %q: null is not a rule", k)
		}
		var b bool
		if err := json.Unmarshal(msg, &b); err == nil {
			out[k] = Bool(b)
			continue
		}
		var vs []string
		if err := json.Unmarshal(msg, &vs); err != nil {
			return fmt.Errorf("criteria %q: want a boolean or a list of strings", k)
		}
		out[k] = Values(vs...)
	}
	*c = out
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (c Criteria) MarshalYAML() (any, error) {
	out := make(map[string]any, len(c))
	for k, r := range c {
		v, err := ruleValue(r)
		if err != nil {
			return nil, fmt.Errorf("criteria %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// UnmarshalYAML decodes a mapping whose values are either a sequence of
// strings or a boolean scalar.
func (c *Criteria) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: criteria must be a mapping", node.Line)
	}
	out := make(Criteria, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch val.Kind {
		case yaml.SequenceNode:
			var vs []string
			if err := val.Decode(&vs); err != nil {
				return fmt.Errorf("criteria %q: %w", key.Value, err)
			}
			out[key.Value] = Values(vs...)
		case yaml.ScalarNode:
			var b bool
			if err := val.Decode(&b); err != nil {
				return fmt.Errorf("criteria %q: line %d: want a boolean or a list", key.Value, val.Line)
			}
			out[key.Value] = Bool(b)
		default:
			return fmt.Errorf("criteria %q: line %d: want a boolean or a list", key.Value, val.Line)
		}
	}
	*c = out
	return nil
}
