package eligibility

import (
	"errors"
	"testing"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
)

func TestAnswerFor(t *testing.T) {
	single := catalog.Question{ID: "stage", Kind: catalog.KindSingle, Options: []catalog.Option{{ID: "idea"}, {ID: "mvp"}}}
	multi := catalog.Question{ID: "sector", Kind: catalog.KindMulti, Options: []catalog.Option{{ID: "tech"}, {ID: "health"}}}
	text := catalog.Question{ID: "name", Kind: catalog.KindText}

	tests := []struct {
		name    string
		q       catalog.Question
		ids     []string
		wantErr error
		check   func(a Answer) bool
	}{
		{"single", single, []string{" mvp "}, nil, func(a Answer) bool { return !a.IsMulti() && a.Value() == "mvp" }},
		{"single clear", single, nil, nil, func(a Answer) bool { return a.IsEmpty() && !a.IsMulti() }},
		{"single two", single, []string{"idea", "mvp"}, ErrTooManyOptions, nil},
		{"single unknown", single, []string{"scale"}, ErrUnknownOption, nil},
		{"multi", multi, []string{"tech", "", "health"}, nil, func(a Answer) bool { return a.IsMulti() && a.Has("tech") && a.Has("health") }},
		{"multi clear", multi, []string{}, nil, func(a Answer) bool { return a.IsMulti() && a.IsEmpty() }},
		{"multi unknown", multi, []string{"tech", "space"}, ErrUnknownOption, nil},
		{"text", text, []string{"Acme"}, nil, func(a Answer) bool { return a.Value() == "Acme" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := AnswerFor(tt.q, tt.ids)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(a) {
				t.Errorf("answer = %v", a)
			}
		})
	}
}
