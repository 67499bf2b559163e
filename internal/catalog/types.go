// Package catalog holds the static data behind the eligibility checker:
// the ordered question catalog with its dependency links, and the program
// catalog the matcher scores answers against.
//
// A Catalog is built once at startup and never mutated afterwards. The core
// packages receive it explicitly instead of reading package globals, so
// tests can run the resolver and matcher against small fixture catalogs.
package catalog

import "fmt"

// --- Question kind enum ---

// QuestionKind controls how many options a question accepts.
type QuestionKind string

const (
	KindSingle QuestionKind = "single-choice"
	KindMulti  QuestionKind = "multi-choice"
	// KindText is reserved. No default question uses it and the wizard
	// only checks that some value was recorded.
	KindText QuestionKind = "text"
)

// validKinds is the set of allowed question kinds.
var validKinds = map[QuestionKind]bool{
	KindSingle: true,
	KindMulti:  true,
	KindText:   true,
}

// ValidateKind returns an error if the kind is not recognized.
func ValidateKind(k QuestionKind) error {
	if !validKinds[k] {
		return fmt.Errorf("invalid question kind %q: must be one of: single-choice, multi-choice, text", k)
	}
	return nil
}

// --- Core data structures ---

// Option is one selectable answer of a question.
type Option struct {
	ID         string `json:"id" yaml:"id"`
	Label      string `json:"label" yaml:"label"`
	PersonaTag string `json:"persona_tag,omitempty" yaml:"persona_tag,omitempty"`
}

// Dependency makes a question reachable only when QuestionID was answered
// with RequiredAnswerID.
type Dependency struct {
	QuestionID       string `json:"question_id" yaml:"question_id"`
	RequiredAnswerID string `json:"required_answer_id" yaml:"required_answer_id"`
}

// Question is a single prompt of the wizard.
type Question struct {
	ID        string       `json:"id" yaml:"id"`
	Text      string       `json:"text" yaml:"text"`
	Kind      QuestionKind `json:"kind" yaml:"kind"`
	Options   []Option     `json:"options" yaml:"options"`
	DependsOn *Dependency  `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// IsEntry reports whether q is the persona question (no dependency).
func (q Question) IsEntry() bool { return q.DependsOn == nil }

// Option returns the option with the given id.
func (q Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Program is a recommendable outcome of the wizard.
type Program struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Link        string   `json:"link" yaml:"link"`
	Criteria    Criteria `json:"criteria" yaml:"criteria"`
	Benefits    []string `json:"benefits,omitempty" yaml:"benefits,omitempty"`
}

// DefaultProgramID is returned by the matcher's last tier when a persona is
// known but nothing more specific matched.
const DefaultProgramID = "community-membership"
