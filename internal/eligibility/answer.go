// Package eligibility is the decision engine of the eligibility checker.
//
// It has three parts:
//   - resolver.go: which question is reachable for the current answers
//   - matcher.go: which program best fits a finished answer set
//   - wizard.go: the per-session state machine that drives both
//
// Everything here is synchronous and in-memory. A Wizard is owned by one
// caller at a time; the session package serializes access across goroutines.
package eligibility

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Answer is the recorded value for one question: either a single option id
// or an ordered list of option ids for multi-choice questions.
type Answer struct {
	values []string
	multi  bool
}

// Single builds a single-choice answer.
func Single(optionID string) Answer {
	return Answer{values: []string{optionID}}
}

// Multi builds a multi-choice answer. Multi() with no ids is a valid but
// empty selection.
func Multi(optionIDs ...string) Answer {
	return Answer{values: slices.Clone(optionIDs), multi: true}
}

// IsMulti reports whether the answer came from a multi-choice selection.
func (a Answer) IsMulti() bool { return a.multi }

// Value returns the single selected id, or the first id of a multi answer.
func (a Answer) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// Values returns a copy of every selected id.
func (a Answer) Values() []string { return slices.Clone(a.values) }

// IsEmpty reports whether nothing usable was selected.
func (a Answer) IsEmpty() bool {
	for _, v := range a.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Has reports whether id is among the selected values.
func (a Answer) Has(id string) bool { return slices.Contains(a.values, id) }

// String renders the answer for logs and text output.
func (a Answer) String() string {
	if a.multi {
		return fmt.Sprintf("%v", a.values)
	}
	return a.Value()
}

// MarshalJSON encodes single answers as a string and multi answers as an
// array of strings.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		if a.values == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(a.values)
	}
	return json.Marshal(a.Value())
}

// UnmarshalJSON accepts a string or an array of strings.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Single(s)
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings")
	}
	*a = Multi(vs...)
	return nil
}

// Answers maps a question id to its recorded answer.
type Answers map[string]Answer

// Clone returns a shallow copy; Answer values are immutable.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// matches reports whether the recorded answer for a parent question
// satisfies a dependency's required answer id.
func (a Answer) matches(required string) bool {
	if a.multi {
		return a.Has(required)
	}
	return a.Value() == required
}
