package eligibility

import (
	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
)

// MatchTier names the pass of the matcher that produced a recommendation.
type MatchTier string

const (
	TierExact           MatchTier = "exact"
	TierPersonaFallback MatchTier = "persona-fallback"
	TierDefault         MatchTier = "default"
	TierNone            MatchTier = "none"
)

// MatchResult is a recommendation together with the tier that found it.
type MatchResult struct {
	Program catalog.Program `json:"program"`
	Tier    MatchTier       `json:"tier"`
	Found   bool            `json:"found"`
}

// MatchProgram returns the best-fit program for answers, or false when no
// recommendation can be made. See Match for the tiers.
func MatchProgram(answers Answers, cat *catalog.Catalog) (catalog.Program, bool) {
	r := Match(answers, cat)
	return r.Program, r.Found
}

// Match scores the program catalog against answers in strict priority:
//
//  1. No answers: nothing.
//  2. Exact: the first program, in catalog order, whose criteria all pass.
//     Criteria keys that were never answered are skipped.
//  3. Persona fallback: the first program whose persona criterion lists the
//     recorded persona answer.
//  4. Default: the community-membership program, when a persona is known.
func Match(answers Answers, cat *catalog.Catalog) MatchResult {
	if len(answers) == 0 {
		return MatchResult{Tier: TierNone}
	}

	for i := 0; i < cat.NumPrograms(); i++ {
		p := cat.ProgramAt(i)
		if criteriaPass(p.Criteria, answers) {
			return MatchResult{Program: p, Tier: TierExact, Found: true}
		}
	}

	personaKey := cat.EntryID()
	persona, hasPersona := answers[personaKey]
	if !hasPersona || persona.IsEmpty() {
		return MatchResult{Tier: TierNone}
	}

	for i := 0; i < cat.NumPrograms(); i++ {
		p := cat.ProgramAt(i)
		if vr, ok := p.Criteria[personaKey].(catalog.ValuesRule); ok && vr.Contains(persona.Value()) {
			return MatchResult{Program: p, Tier: TierPersonaFallback, Found: true}
		}
	}

	if p, ok := cat.Program(catalog.DefaultProgramID); ok {
		return MatchResult{Program: p, Tier: TierDefault, Found: true}
	}

	return MatchResult{Tier: TierNone}
}

// criteriaPass reports whether every answered criteria key is satisfied.
func criteriaPass(criteria catalog.Criteria, answers Answers) bool {
	for key, rule := range criteria {
		answer, ok := answers[key]
		if !ok {
			continue
		}
		if !rulePasses(rule, answer) {
			return false
		}
	}
	return true
}

// rulePasses checks one criterion against one recorded answer.
func rulePasses(rule catalog.Rule, answer Answer) bool {
	switch r := rule.(type) {
	case catalog.ValuesRule:
		if answer.IsMulti() {
			// Any overlap qualifies; a user ticking several boxes needs
			// only one of them to be accepted.
			for _, v := range answer.values {
				if r.Contains(v) {
					return true
				}
			}
			return false
		}
		return r.Contains(answer.Value())
	case catalog.BoolRule:
		return (answer.Value() == "true") == r.Want
	default:
		return false
	}
}
