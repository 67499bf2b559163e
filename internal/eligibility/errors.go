package eligibility

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionRequired is returned by Advance when the current question
	// has no answer. It is a user-facing validation failure, not a fault.
	ErrSelectionRequired = errors.New("selection required")

	// ErrNoRecommendation is returned by OpenRecommendation when the result
	// is not shown or no program matched.
	ErrNoRecommendation = errors.New("no recommendation to open")
)

// ValidationError carries the question that blocked Advance.
// errors.Is(err, ErrSelectionRequired) holds for every ValidationError.
type ValidationError struct {
	QuestionID string
}

func (e *ValidationError) Error() string {
	if e.QuestionID == "" {
		return ErrSelectionRequired.Error()
	}
	return fmt.Sprintf("%s: question %q has no answer", ErrSelectionRequired, e.QuestionID)
}

func (e *ValidationError) Unwrap() error { return ErrSelectionRequired }
