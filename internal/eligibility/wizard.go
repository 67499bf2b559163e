package eligibility

import (
	"fmt"
	"slices"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"go.uber.org/zap"
)

// Variant is the surface a wizard was opened from. Both variants share the
// same state machine; the variant only travels along for the host.
type Variant string

const (
	VariantDialog Variant = "dialog"
	VariantPage   Variant = "page"
)

// ValidateVariant returns an error if the variant is not recognized.
func ValidateVariant(v Variant) error {
	switch v {
	case VariantDialog, VariantPage:
		return nil
	default:
		return fmt.Errorf("invalid variant %q: must be one of: dialog, page", v)
	}
}

// Wizard is the stateful controller of one eligibility session.
//
// It holds the answer map, the step cursor within the active branch, the
// persona and the result flag. It is not safe for concurrent use.
type Wizard struct {
	cat      *catalog.Catalog
	variant  Variant
	log      *zap.Logger
	observer Observer

	answers    Answers
	step       int
	persona    string
	showResult bool
}

// NewWizard starts a wizard at the entry question. A nil logger is replaced
// with a no-op logger.
func NewWizard(cat *catalog.Catalog, variant Variant, logger *zap.Logger) *Wizard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wizard{
		cat:     cat,
		variant: variant,
		log:     logger.With(zap.String("variant", string(variant))),
		answers: Answers{},
	}
}

// SetObserver injects an optional Observer.
func (w *Wizard) SetObserver(obs Observer) { w.observer = obs }

// --- Events ---

// SelectAnswer records value for questionID, replacing any earlier answer.
// Nothing is validated here; Advance does that.
func (w *Wizard) SelectAnswer(questionID string, value Answer) {
	w.answers[questionID] = value
}

// ToggleOption flips one option of a multi-choice question on or off, the
// way a checkbox does. On any other known question it behaves like a radio
// button: the option replaces the answer, or clears it if already selected.
func (w *Wizard) ToggleOption(questionID, optionID string) {
	if q, ok := w.cat.Question(questionID); ok && q.Kind != catalog.KindMulti {
		if w.answers[questionID].Value() == optionID {
			w.answers[questionID] = Single("")
		} else {
			w.answers[questionID] = Single(optionID)
		}
		return
	}
	current := w.answers[questionID].Values()
	if i := slices.Index(current, optionID); i >= 0 {
		current = slices.Delete(current, i, i+1)
	} else {
		current = append(current, optionID)
	}
	w.answers[questionID] = Multi(current...)
}

// Advance handles the Next / See Results action.
//
// The current question must have a non-empty answer, otherwise a
// *ValidationError is returned, the observer is told and nothing changes.
// Past the entry question the persona is fixed and the cursor moves to the
// first branch question; past the last branch question the result is shown.
func (w *Wizard) Advance() error {
	if w.showResult {
		return nil
	}

	q, ok := w.currentQuestion()
	if !ok {
		// Only reachable with a broken catalog (dangling dependency or a
		// persona without questions). Degrade to the result screen.
		w.log.Warn("no reachable question, showing result",
			zap.String("persona", w.persona),
			zap.Int("step", w.step),
		)
		w.showResult = true
		return nil
	}

	answer, answered := w.answers[q.ID]
	if !answered || answer.IsEmpty() {
		notifySelectionRequired(w.observer, q.ID)
		return &ValidationError{QuestionID: q.ID}
	}

	if q.IsEntry() {
		w.persona = w.personaFor(q, answer)
		w.step = 0
		w.log.Debug("persona selected", zap.String("persona", w.persona))
		return nil
	}

	if w.step < len(w.filtered())-1 {
		w.step++
		return nil
	}

	w.showResult = true
	w.log.Debug("branch exhausted, showing result",
		zap.String("persona", w.persona),
		zap.Int("answers", len(w.answers)),
	)
	return nil
}

// Retreat handles the Back action.
//
// From the result screen it returns to the last question. Inside a branch
// it steps back one question. At the first branch question it clears the
// persona and drops every answer except the persona answer. At the entry
// question it does nothing.
func (w *Wizard) Retreat() {
	switch {
	case w.showResult:
		w.showResult = false
	case w.step > 0:
		w.step--
	case w.persona != "":
		entryID := w.cat.EntryID()
		kept, ok := w.answers[entryID]
		w.answers = Answers{}
		if ok {
			w.answers[entryID] = kept
		}
		w.persona = ""
		w.step = 0
	}
}

// Reset returns the wizard to its initial empty state.
func (w *Wizard) Reset() {
	w.answers = Answers{}
	w.persona = ""
	w.step = 0
	w.showResult = false
}

// OpenRecommendation asks the observer to navigate to the recommended
// program and returns its link.
func (w *Wizard) OpenRecommendation() (string, error) {
	if !w.showResult {
		return "", ErrNoRecommendation
	}
	p, ok := MatchProgram(w.answers, w.cat)
	if !ok {
		return "", ErrNoRecommendation
	}
	notifyNavigate(w.observer, p.ID, p.Link)
	return p.Link, nil
}

// --- Derived values ---

// Step returns the cursor within the active branch.
func (w *Wizard) Step() int { return w.step }

// Persona returns the active persona, "" before one is chosen.
func (w *Wizard) Persona() string { return w.persona }

// ShowResult reports whether the recommendation screen is active.
func (w *Wizard) ShowResult() bool { return w.showResult }

// Variant returns the surface the wizard was opened from.
func (w *Wizard) Variant() Variant { return w.variant }

// Answers returns a copy of the answer map.
func (w *Wizard) Answers() Answers { return w.answers.Clone() }

// CurrentQuestion returns the question to display, false when the branch
// is exhausted.
func (w *Wizard) CurrentQuestion() (catalog.Question, bool) { return w.currentQuestion() }

// TotalSteps is the progress denominator.
func (w *Wizard) TotalSteps() int { return BranchLength(w.cat, w.persona) }

// HasValidAnswer reports whether the current question has a non-empty answer.
func (w *Wizard) HasValidAnswer() bool {
	q, ok := w.currentQuestion()
	if !ok {
		return false
	}
	a, ok := w.answers[q.ID]
	return ok && !a.IsEmpty()
}

// IsLastQuestion reports whether Next on the current question shows results.
func (w *Wizard) IsLastQuestion() bool {
	return w.persona != "" && w.step == len(w.filtered())-1
}

// Recommendation runs the matcher. It reports Found=false until the result
// screen is shown.
func (w *Wizard) Recommendation() MatchResult {
	if !w.showResult {
		return MatchResult{Tier: TierNone}
	}
	return Match(w.answers, w.cat)
}

// View bundles the derived values the rendering layer needs.
type View struct {
	Variant         Variant           `json:"variant"`
	Step            int               `json:"step"`
	TotalSteps      int               `json:"total_steps"`
	Persona         string            `json:"persona,omitempty"`
	CurrentQuestion *catalog.Question `json:"current_question,omitempty"`
	HasValidAnswer  bool              `json:"has_valid_answer"`
	IsLastQuestion  bool              `json:"is_last_question"`
	ShowResult      bool              `json:"show_result"`
	Recommendation  *MatchResult      `json:"recommendation,omitempty"`
	Answers         Answers           `json:"answers"`
}

// View computes a snapshot of the derived state.
func (w *Wizard) View() View {
	v := View{
		Variant:        w.variant,
		Step:           w.step,
		TotalSteps:     w.TotalSteps(),
		Persona:        w.persona,
		HasValidAnswer: w.HasValidAnswer(),
		IsLastQuestion: w.IsLastQuestion(),
		ShowResult:     w.showResult,
		Answers:        w.Answers(),
	}
	if q, ok := w.currentQuestion(); ok && !w.showResult {
		v.CurrentQuestion = &q
	}
	if w.showResult {
		r := Match(w.answers, w.cat)
		v.Recommendation = &r
	}
	return v
}

// --- Internals ---

func (w *Wizard) filtered() []catalog.Question {
	return FilteredQuestions(w.cat, w.answers, w.persona)
}

func (w *Wizard) currentQuestion() (catalog.Question, bool) {
	return CurrentQuestion(w.cat, w.answers, w.step, w.persona)
}

// personaFor derives the persona from the selected entry option. Options
// without a persona tag fall back to their id so the branch still opens.
func (w *Wizard) personaFor(q catalog.Question, answer Answer) string {
	id := answer.Value()
	opt, ok := q.Option(id)
	if !ok {
		w.log.Warn("persona answer is not an option of the entry question",
			zap.String("question", q.ID),
			zap.String("answer", id),
		)
		return id
	}
	if opt.PersonaTag == "" {
		w.log.Warn("entry option has no persona tag, using option id",
			zap.String("option", opt.ID),
		)
		return opt.ID
	}
	return opt.PersonaTag
}
