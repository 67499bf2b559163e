package eligibility

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
)

var (
	// ErrUnknownOption is returned by AnswerFor when an id is not one of
	// the question's options.
	ErrUnknownOption = errors.New("unknown option")

	// ErrTooManyOptions is returned by AnswerFor when a single-choice
	// question receives more than one id.
	ErrTooManyOptions = errors.New("question accepts a single option")
)

// AnswerFor builds the answer an adapter should record for q from raw
// option ids. Blank ids are dropped; no ids yields an empty answer, which
// clears the selection. Text questions take the values verbatim.
func AnswerFor(q catalog.Question, optionIDs []string) (Answer, error) {
	var ids []string
	for _, id := range optionIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	if q.Kind == catalog.KindText {
		return Single(strings.Join(ids, ", ")), nil
	}

	for _, id := range ids {
		if _, ok := q.Option(id); !ok {
			return Answer{}, fmt.Errorf("%w %q for question %q", ErrUnknownOption, id, q.ID)
		}
	}

	if q.Kind == catalog.KindMulti {
		return Multi(ids...), nil
	}
	switch len(ids) {
	case 0:
		return Single(""), nil
	case 1:
		return Single(ids[0]), nil
	default:
		return Answer{}, fmt.Errorf("%w: %q", ErrTooManyOptions, q.ID)
	}
}
