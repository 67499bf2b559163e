package catalog

import "fmt"

// CheckReport is the outcome of RunProtocolChecks.
//
// Issues are integrity violations: OK is false whenever there is at least
// one. Warnings point at data that is legal but probably unintended, such
// as a criteria key no question can ever answer; they never flip OK.
type CheckReport struct {
	OK       bool     `json:"ok"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings,omitempty"`
}

// RunProtocolChecks verifies the declared-but-not-enforced catalog
// invariants. It is meant for startup assertions, the check command and
// tests; the resolver never calls it per request.
func RunProtocolChecks(c *Catalog) CheckReport {
	issues := []string{}
	var warnings []string

	seen := make(map[string]bool, len(c.questions))
	entries := 0
	for i, q := range c.questions {
		if q.ID == "" {
			issues = append(issues, fmt.Sprintf("question #%d has an empty id", i+1))
			continue
		}
		if seen[q.ID] {
			issues = append(issues, fmt.Sprintf("question %q is declared more than once", q.ID))
		}
		seen[q.ID] = true

		if err := ValidateKind(q.Kind); err != nil {
			issues = append(issues, fmt.Sprintf("question %q: %v", q.ID, err))
		}
		if q.Kind != KindText && len(q.Options) == 0 {
			issues = append(issues, fmt.Sprintf("question %q has no options", q.ID))
		}

		optSeen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.ID == "" {
				issues = append(issues, fmt.Sprintf("question %q has an option with an empty id", q.ID))
				continue
			}
			if optSeen[o.ID] {
				issues = append(issues, fmt.Sprintf("question %q repeats option %q", q.ID, o.ID))
			}
			optSeen[o.ID] = true
		}

		if q.DependsOn == nil {
			entries++
			for _, o := range q.Options {
				if o.PersonaTag == "" {
					warnings = append(warnings, fmt.Sprintf("entry question %q option %q has no persona tag; its id will be used", q.ID, o.ID))
				}
			}
		}
	}

	for _, q := range c.questions {
		if q.DependsOn == nil || q.ID == "" {
			continue
		}
		parent, ok := c.Question(q.DependsOn.QuestionID)
		if !ok {
			issues = append(issues, fmt.Sprintf("question %q depends on unknown question %q", q.ID, q.DependsOn.QuestionID))
			continue
		}
		if _, ok := parent.Option(q.DependsOn.RequiredAnswerID); !ok && parent.Kind != KindText {
			warnings = append(warnings, fmt.Sprintf("question %q requires answer %q, which question %q does not offer",
				q.ID, q.DependsOn.RequiredAnswerID, parent.ID))
		}
	}

	switch {
	case entries == 0 && len(c.questions) > 0:
		issues = append(issues, "no entry question: every question has a dependency")
	case entries > 1:
		issues = append(issues, fmt.Sprintf("%d entry questions found: exactly one question may omit its dependency", entries))
	}

	progSeen := make(map[string]bool, len(c.programs))
	for i, p := range c.programs {
		if p.ID == "" {
			issues = append(issues, fmt.Sprintf("program #%d has an empty id", i+1))
			continue
		}
		if progSeen[p.ID] {
			issues = append(issues, fmt.Sprintf("program %q is declared more than once", p.ID))
		}
		progSeen[p.ID] = true

		for _, key := range p.Criteria.SortedKeys() {
			if _, ok := c.Question(key); !ok {
				warnings = append(warnings, fmt.Sprintf("program %q criterion %q names no question and is always skipped", p.ID, key))
			}
		}
	}

	return CheckReport{
		OK:       len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
	}
}
