package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleYAML = `
questions:
  - id: persona
    text: Who are you?
    options:
      - id: student
        label: Student
        persona_tag: student
  - id: studentUniversity
    text: Sharjah university?
    kind: single-choice
    options:
      - {id: "yes", label: "Yes"}
      - {id: "no", label: "No"}
    depends_on:
      question_id: persona
      required_answer_id: student
programs:
  - id: student-membership
    title: Student Membership
    link: /programs/student-membership
    criteria:
      persona: [student]
      flagged: true
    benefits: [Workshops]
`

func TestDecode_Sample(t *testing.T) {
	c, err := Decode(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	entry, _ := c.Entry()
	if entry.Kind != KindSingle {
		t.Errorf("missing kind should default to single-choice, got %q", entry.Kind)
	}

	q, ok := c.Question("studentUniversity")
	if !ok {
		t.Fatal("studentUniversity missing")
	}
	if q.DependsOn == nil || q.DependsOn.RequiredAnswerID != "student" {
		t.Errorf("DependsOn = %+v, want persona=student", q.DependsOn)
	}

	p, ok := c.Program("student-membership")
	if !ok {
		t.Fatal("program missing")
	}
	want := Criteria{"persona": Values("student"), "flagged": Bool(true)}
	if diff := cmp.Diff(want, p.Criteria); diff != "" {
		t.Errorf("criteria mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_RejectsUnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader("questions:\n  - id: persona\n    dependson: {}\n"))
	if err == nil {
		t.Fatal("Decode should reject unknown fields")
	}
}

func TestDecode_RejectsBadCriterion(t *testing.T) {
	doc := "programs:\n  - id: p\n    criteria:\n      persona: {nested: map}\n"
	_, err := Decode(strings.NewReader(doc))
	if err == nil {
		t.Fatal("Decode should reject a mapping-valued criterion")
	}
	if !strings.Contains(err.Error(), "persona") {
		t.Errorf("error should name the criterion, got: %v", err)
	}
}

func TestDecode_Empty(t *testing.T) {
	if _, err := Decode(strings.NewReader("")); err == nil {
		t.Fatal("Decode of empty input should fail")
	}
}

func TestEncode_DefaultRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default()); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Default().Questions(), back.Questions()); diff != "" {
		t.Errorf("questions changed through YAML (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Default().Programs(), back.Programs()); diff != "" {
		t.Errorf("programs changed through YAML (-want +got):\n%s", diff)
	}
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("want not found error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.EntryID() != "persona" {
		t.Errorf("EntryID = %q, want persona", c.EntryID())
	}
}

func TestCriteria_JSON(t *testing.T) {
	in := Criteria{"persona": Values("sme"), "licensed": Bool(false)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"licensed":false`) || !strings.Contains(string(data), `"persona":["sme"]`) {
		t.Errorf("unexpected JSON: %s", data)
	}

	var out Criteria
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("criteria mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"persona": 3}`), &out); err == nil {
		t.Error("Unmarshal should reject a numeric criterion")
	}
}

func TestCriteria_JSONRejectsNull(t *testing.T) {
	var out Criteria
	err := json.Unmarshal([]byte(`{"smeLicensed": null}`), &out)
	if err == nil {
		t.Fatalf("Unmarshal(null) = %#v, want error", out)
	}
	if !strings.Contains(err.Error(), "smeLicensed") {
		t.Errorf("error = %v, want it to name the criterion", err)
	}
}
