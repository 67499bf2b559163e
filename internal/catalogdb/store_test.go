package catalogdb

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_WALMode(t *testing.T) {
	s := newTestStore(t)
	var mode string
	if err := s.db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestOpen_DriverError(t *testing.T) {
	orig := openDB
	openDB = func(string, string) (*sql.DB, error) { return nil, errors.New("boom") }
	t.Cleanup(func() { openDB = orig })

	if _, err := Open(filepath.Join(t.TempDir(), "x.db")); err == nil {
		t.Fatal("Open should surface driver errors")
	}
}

func TestLoad_Empty(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Load on empty db = %v, want ErrEmpty", err)
	}
}

func TestSaveLoad_DefaultRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := catalog.Default()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want.Questions(), got.Questions(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("questions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Programs(), got.Programs(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("programs mismatch (-want +got):\n%s", diff)
	}

	if rule, ok := got.ProgramAt(7).Criteria["smeLicensed"].(catalog.BoolRule); !ok || !rule.Want {
		t.Errorf("sme-support smeLicensed = %#v, want Bool(true)", got.ProgramAt(7).Criteria["smeLicensed"])
	}
}

func TestSave_Replaces(t *testing.T) {
	s := newTestStore(t)
	if err := s.Save(catalog.Default()); err != nil {
		t.Fatalf("Save default: %v", err)
	}

	small := catalog.New(
		[]catalog.Question{{ID: "persona", Kind: catalog.KindSingle, Options: []catalog.Option{{ID: "student", Label: "Student", PersonaTag: "student"}}}},
		[]catalog.Program{{ID: "only", Title: "Only", Criteria: catalog.Criteria{"persona": catalog.Values("student")}}},
	)
	if err := s.Save(small); err != nil {
		t.Fatalf("Save small: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Len() != 1 || got.NumPrograms() != 1 {
		t.Errorf("loaded %d questions / %d programs, want 1/1", got.Len(), got.NumPrograms())
	}
	if got.ProgramAt(0).ID != "only" {
		t.Errorf("program = %q, want only", got.ProgramAt(0).ID)
	}
}

func TestDecodeRule_Errors(t *testing.T) {
	tests := []struct {
		name, kind, value string
	}{
		{"unknown kind", "range", "[]"},
		{"bad json", ruleValues, "{"},
		{"bad bool", ruleBool, "yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeRule(tt.kind, tt.value); err == nil {
				t.Errorf("decodeRule(%q, %q) should fail", tt.kind, tt.value)
			}
		})
	}
}
