package catalog

import (
	"strings"
	"testing"
)

func containsIssue(list []string, substr string) bool {
	for _, s := range list {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestRunProtocolChecks_DefaultCatalog(t *testing.T) {
	report := RunProtocolChecks(Default())
	if !report.OK {
		t.Fatalf("default catalog should pass, issues: %v", report.Issues)
	}
	if len(report.Issues) != 0 {
		t.Errorf("Issues = %v, want none", report.Issues)
	}
	// The boolean criterion on sme-support has no backing question.
	if !containsIssue(report.Warnings, "smeLicensed") {
		t.Errorf("Warnings should mention smeLicensed, got %v", report.Warnings)
	}
}

func TestRunProtocolChecks_EveryDependencyResolves(t *testing.T) {
	c := Default()
	for _, q := range c.Questions() {
		if q.DependsOn == nil {
			continue
		}
		if _, ok := c.Question(q.DependsOn.QuestionID); !ok {
			t.Errorf("question %q depends on missing %q", q.ID, q.DependsOn.QuestionID)
		}
	}
}

func TestRunProtocolChecks_Failures(t *testing.T) {
	entry := Question{ID: "persona", Kind: KindSingle, Options: []Option{{ID: "a", PersonaTag: "a"}}}

	tests := []struct {
		name      string
		questions []Question
		programs  []Program
		want      string
	}{
		{
			name: "dangling dependency",
			questions: []Question{entry,
				{ID: "q1", Kind: KindSingle, Options: []Option{{ID: "x"}},
					DependsOn: &Dependency{QuestionID: "ghost", RequiredAnswerID: "a"}},
			},
			want: `depends on unknown question "ghost"`,
		},
		{
			name:      "empty id",
			questions: []Question{entry, {ID: "", Kind: KindSingle, Options: []Option{{ID: "x"}}}},
			want:      "empty id",
		},
		{
			name: "duplicate question id",
			questions: []Question{entry,
				{ID: "q1", Kind: KindSingle, Options: []Option{{ID: "x"}}, DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "a"}},
				{ID: "q1", Kind: KindSingle, Options: []Option{{ID: "x"}}, DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "a"}},
			},
			want: `"q1" is declared more than once`,
		},
		{
			name:      "duplicate option id",
			questions: []Question{{ID: "persona", Kind: KindSingle, Options: []Option{{ID: "a", PersonaTag: "a"}, {ID: "a", PersonaTag: "a"}}}},
			want:      `repeats option "a"`,
		},
		{
			name:      "two entry questions",
			questions: []Question{entry, {ID: "other", Kind: KindSingle, Options: []Option{{ID: "b"}}}},
			want:      "2 entry questions",
		},
		{
			name:      "unknown kind",
			questions: []Question{{ID: "persona", Kind: "slider", Options: []Option{{ID: "a", PersonaTag: "a"}}}},
			want:      "invalid question kind",
		},
		{
			name:      "duplicate program",
			questions: []Question{entry},
			programs:  []Program{{ID: "p"}, {ID: "p"}},
			want:      `program "p" is declared more than once`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := RunProtocolChecks(New(tt.questions, tt.programs))
			if report.OK {
				t.Fatal("report should not be OK")
			}
			if !containsIssue(report.Issues, tt.want) {
				t.Errorf("Issues = %v, want one containing %q", report.Issues, tt.want)
			}
		})
	}
}

func TestRunProtocolChecks_WarningsDoNotFail(t *testing.T) {
	c := New([]Question{
		{ID: "persona", Kind: KindSingle, Options: []Option{{ID: "a"}}},
		{ID: "q1", Kind: KindSingle, Options: []Option{{ID: "x"}}, DependsOn: &Dependency{QuestionID: "persona", RequiredAnswerID: "zzz"}},
	}, nil)

	report := RunProtocolChecks(c)
	if !report.OK {
		t.Fatalf("warnings alone must not fail the check, issues: %v", report.Issues)
	}
	if !containsIssue(report.Warnings, "no persona tag") {
		t.Errorf("want a missing persona tag warning, got %v", report.Warnings)
	}
	if !containsIssue(report.Warnings, `requires answer "zzz"`) {
		t.Errorf("want an unreachable answer warning, got %v", report.Warnings)
	}
}
