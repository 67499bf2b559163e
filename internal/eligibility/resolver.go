package eligibility

import (
	"slices"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
)

// --- Navigation resolver ---
//
// The functions below are pure: same catalog, answers and persona in, same
// questions out. They never look at the wizard's cursor history.

// FilteredQuestions returns every question reachable right now, in catalog
// order.
//
// Without a persona only the entry question is reachable. With a persona,
// a question is reachable when the recorded answer of its parent equals its
// RequiredAnswerID (for a multi-choice parent: contains it).
func FilteredQuestions(cat *catalog.Catalog, answers Answers, persona string) []catalog.Question {
	if persona == "" {
		entry, ok := cat.Entry()
		if !ok {
			return nil
		}
		return []catalog.Question{entry}
	}

	var idx []int
	for parentID, answer := range answers {
		for _, i := range cat.Children(parentID) {
			if answer.matches(cat.At(i).DependsOn.RequiredAnswerID) {
				idx = append(idx, i)
			}
		}
	}
	// Map iteration is unordered; arena indices restore catalog order.
	slices.Sort(idx)

	out := make([]catalog.Question, len(idx))
	for n, i := range idx {
		out[n] = cat.At(i)
	}
	return out
}

// CurrentQuestion returns the question at step within the filtered list.
// ok is false when step is past the end, which callers treat as "the branch
// is exhausted, show the result".
func CurrentQuestion(cat *catalog.Catalog, answers Answers, step int, persona string) (catalog.Question, bool) {
	qs := FilteredQuestions(cat, answers, persona)
	if step < 0 || step >= len(qs) {
		return catalog.Question{}, false
	}
	return qs[step], true
}

// BranchLength is the progress-bar denominator for a persona: 1 before the
// persona is chosen, otherwise the number of questions whose dependency
// requires that persona.
//
// It counts by RequiredAnswerID only, so a question nested two levels deep
// is not counted unless it also requires the persona value. Navigation must
// use FilteredQuestions instead.
func BranchLength(cat *catalog.Catalog, persona string) int {
	if persona == "" {
		return 1
	}
	return cat.BranchSize(persona)
}
