// Package catalogdb persists the question and program catalogs in SQLite so
// operators can edit them without a rebuild.
//
// Only catalog data lives here. Wizard answers are never written; sessions
// stay in memory.
package catalogdb

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// ErrEmpty is returned by Load when the database holds no questions.
var ErrEmpty = errors.New("catalogdb: no catalog stored")

const (
	ruleValues = "values"
	ruleBool   = "bool"
)

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("catalogdb: create data dir: %w", err)
		}
	}

	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalogdb: open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("catalogdb: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("catalogdb: migration: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS questions (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			text        TEXT    NOT NULL,
			kind        TEXT    NOT NULL,
			parent_id   TEXT,
			required_id TEXT
		);

		CREATE TABLE IF NOT EXISTS options (
			question_id TEXT    NOT NULL,
			position    INTEGER NOT NULL,
			id          TEXT    NOT NULL,
			label       TEXT    NOT NULL,
			persona_tag TEXT    NOT NULL DEFAULT '',
			PRIMARY KEY (question_id, position),
			FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS programs (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			title       TEXT    NOT NULL,
			description TEXT    NOT NULL,
			link        TEXT    NOT NULL
		);

		CREATE TABLE IF NOT EXISTS criteria (
			program_id  TEXT NOT NULL,
			question_id TEXT NOT NULL,
			kind        TEXT NOT NULL CHECK (kind IN ('values', 'bool')),
			value       TEXT NOT NULL,
			PRIMARY KEY (program_id, question_id),
			FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS benefits (
			program_id TEXT    NOT NULL,
			position   INTEGER NOT NULL,
			text       TEXT    NOT NULL,
			PRIMARY KEY (program_id, position),
			FOREIGN KEY (program_id) REFERENCES programs(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_questions_position ON questions(position);
		CREATE INDEX IF NOT EXISTS idx_programs_position  ON programs(position);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the stored catalog with c in a single transaction.
func (s *Store) Save(c *catalog.Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("catalogdb: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Cascades clear options, criteria and benefits.
	for _, q := range []string{"DELETE FROM questions", "DELETE FROM programs"} {
		if _, err := tx.Exec(q); err != nil {
			return fmt.Errorf("catalogdb: clear: %w", err)
		}
	}

	for i, q := range c.Questions() {
		var parent, required sql.NullString
		if q.DependsOn != nil {
			parent = sql.NullString{String: q.DependsOn.QuestionID, Valid: true}
			required = sql.NullString{String: q.DependsOn.RequiredAnswerID, Valid: true}
		}
		if _, err := tx.Exec(
			`INSERT INTO questions (id, position, text, kind, parent_id, required_id) VALUES (?, ?, ?, ?, ?, ?)`,
			q.ID, i, q.Text, string(q.Kind), parent, required,
		); err != nil {
			return fmt.Errorf("catalogdb: insert question %q: %w", q.ID, err)
		}
		for j, o := range q.Options {
			if _, err := tx.Exec(
				`INSERT INTO options (question_id, position, id, label, persona_tag) VALUES (?, ?, ?, ?, ?)`,
				q.ID, j, o.ID, o.Label, o.PersonaTag,
			); err != nil {
				return fmt.Errorf("catalogdb: insert option %q/%q: %w", q.ID, o.ID, err)
			}
		}
	}

	for i, p := range c.Programs() {
		if _, err := tx.Exec(
			`INSERT INTO programs (id, position, title, description, link) VALUES (?, ?, ?, ?, ?)`,
			p.ID, i, p.Title, p.Description, p.Link,
		); err != nil {
			return fmt.Errorf("catalogdb: insert program %q: %w", p.ID, err)
		}
		for _, key := range p.Criteria.SortedKeys() {
			kind, value, err := encodeRule(p.Criteria[key])
			if err != nil {
				return fmt.Errorf("catalogdb: program %q criterion %q: %w", p.ID, key, err)
			}
			if _, err := tx.Exec(
				`INSERT INTO criteria (program_id, question_id, kind, value) VALUES (?, ?, ?, ?)`,
				p.ID, key, kind, value,
			); err != nil {
				return fmt.Errorf("catalogdb: insert criterion %q/%q: %w", p.ID, key, err)
			}
		}
		for j, b := range p.Benefits {
			if _, err := tx.Exec(
				`INSERT INTO benefits (program_id, position, text) VALUES (?, ?, ?)`,
				p.ID, j, b,
			); err != nil {
				return fmt.Errorf("catalogdb: insert benefit %q/%d: %w", p.ID, j, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalogdb: commit: %w", err)
	}
	return nil
}

// Load reads the stored catalog. It returns ErrEmpty when nothing was saved.
func (s *Store) Load() (*catalog.Catalog, error) {
	questions, err := s.loadQuestions()
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrEmpty
	}
	programs, err := s.loadPrograms()
	if err != nil {
		return nil, err
	}
	return catalog.New(questions, programs), nil
}

func (s *Store) loadQuestions() ([]catalog.Question, error) {
	rows, err := s.db.Query(`SELECT id, text, kind, parent_id, required_id FROM questions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("catalogdb: query questions: %w", err)
	}
	var questions []catalog.Question
	index := make(map[string]int)
	for rows.Next() {
		var (
			q                catalog.Question
			kind             string
			parent, required sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.Text, &kind, &parent, &required); err != nil {
			rows.Close()
			return nil, fmt.Errorf("catalogdb: scan question: %w", err)
		}
		q.Kind = catalog.QuestionKind(kind)
		if parent.Valid {
			q.DependsOn = &catalog.Dependency{QuestionID: parent.String, RequiredAnswerID: required.String}
		}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("catalogdb: iterate questions: %w", err)
	}
	rows.Close()

	orows, err := s.db.Query(`SELECT question_id, id, label, persona_tag FROM options ORDER BY question_id, position`)
	if err != nil {
		return nil, fmt.Errorf("catalogdb: query options: %w", err)
	}
	defer orows.Close()
	for orows.Next() {
		var qid string
		var o catalog.Option
		if err := orows.Scan(&qid, &o.ID, &o.Label, &o.PersonaTag); err != nil {
			return nil, fmt.Errorf("catalogdb: scan option: %w", err)
		}
		if i, ok := index[qid]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	if err := orows.Err(); err != nil {
		return nil, fmt.Errorf("catalogdb: iterate options: %w", err)
	}
	return questions, nil
}

func (s *Store) loadPrograms() ([]catalog.Program, error) {
	rows, err := s.db.Query(`SELECT id, title, description, link FROM programs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("catalogdb: query programs: %w", err)
	}
	var programs []catalog.Program
	index := make(map[string]int)
	for rows.Next() {
		var p catalog.Program
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Link); err != nil {
			rows.Close()
			return nil, fmt.Errorf("catalogdb: scan program: %w", err)
		}
		p.Criteria = catalog.Criteria{}
		index[p.ID] = len(programs)
		programs = append(programs, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("catalogdb: iterate programs: %w", err)
	}
	rows.Close()

	crows, err := s.db.Query(`SELECT program_id, question_id, kind, value FROM criteria`)
	if err != nil {
		return nil, fmt.Errorf("catalogdb: query criteria: %w", err)
	}
	for crows.Next() {
		var pid, key, kind, value string
		if err := crows.Scan(&pid, &key, &kind, &value); err != nil {
			crows.Close()
			return nil, fmt.Errorf("catalogdb: scan criterion: %w", err)
		}
		rule, err := decodeRule(kind, value)
		if err != nil {
			crows.Close()
			return nil, fmt.Errorf("catalogdb: program %q criterion %q: %w", pid, key, err)
		}
		if i, ok := index[pid]; ok {
			programs[i].Criteria[key] = rule
		}
	}
	if err := crows.Err(); err != nil {
		crows.Close()
		return nil, fmt.Errorf("catalogdb: iterate criteria: %w", err)
	}
	crows.Close()

	brows, err := s.db.Query(`SELECT program_id, text FROM benefits ORDER BY program_id, position`)
	if err != nil {
		return nil, fmt.Errorf("catalogdb: query benefits: %w", err)
	}
	defer brows.Close()
	for brows.Next() {
		var pid, text string
		if err := brows.Scan(&pid, &text); err != nil {
			return nil, fmt.Errorf("catalogdb: scan benefit: %w", err)
		}
		if i, ok := index[pid]; ok {
			programs[i].Benefits = append(programs[i].Benefits, text)
		}
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("catalogdb: iterate benefits: %w", err)
	}
	return programs, nil
}

func encodeRule(r catalog.Rule) (kind, value string, err error) {
	switch r := r.(type) {
	case catalog.ValuesRule:
		vs := r.Values
		if vs == nil {
			vs = []string{}
		}
		data, err := json.Marshal(vs)
		if err != nil {
			return "", "", err
		}
		return ruleValues, string(data), nil
	case catalog.BoolRule:
		if r.Want {
			return ruleBool, "true", nil
		}
		return ruleBool, "false", nil
	default:
		return "", "", fmt.Errorf("unsupported rule type %T", r)
	}
}

func decodeRule(kind, value string) (catalog.Rule, error) {
	switch kind {
	case ruleValues:
		var vs []string
		if err := json.Unmarshal([]byte(value), &vs); err != nil {
			return nil, fmt.Errorf("decode values: %w", err)
		}
		return catalog.Values(vs...), nil
	case ruleBool:
		switch value {
		case "true":
			return catalog.Bool(true), nil
		case "false":
			return catalog.Bool(false), nil
		}
		return nil, fmt.Errorf("invalid bool value %q", value)
	default:
		return nil, fmt.Errorf("unknown rule kind %q", kind)
	}
}
