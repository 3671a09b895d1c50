// Package storage persists working state, named resume copies, fetched
// pages, and encrypted credentials in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jonathan/resume-studio/internal/types"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("storage: not found")

// Store wraps the SQLite database
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema exists
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS working_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			document TEXT NOT NULL,
			sections TEXT NOT NULL,
			resume_name TEXT NOT NULL DEFAULT '',
			template_id TEXT NOT NULL DEFAULT '',
			current_copy_id TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS copies (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			document TEXT NOT NULL,
			sections TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_copies_name ON copies(name)`,
		`CREATE TABLE IF NOT EXISTS pages (
			url TEXT PRIMARY KEY,
			html TEXT NOT NULL,
			text TEXT NOT NULL,
			status INTEGER NOT NULL,
			fetched_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS api_keys (
			provider TEXT PRIMARY KEY,
			blob BLOB NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// State is the single working snapshot: the document being edited, its
// section layout, and which saved copy (if any) it tracks
type State struct {
	Document      *types.Document `json:"document"`
	Sections      []types.Section `json:"sections"`
	ResumeName    string          `json:"resumeName,omitempty"`
	TemplateID    string          `json:"templateId,omitempty"`
	CurrentCopyID string          `json:"currentResumeId,omitempty"`
}

// SaveWorkingState replaces the single working snapshot
func (s *Store) SaveWorkingState(ctx context.Context, state *State) error {
	docJSON, sectJSON, err := encodeState(state.Document, state.Sections)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO working_state (id, document, sections, resume_name, template_id, current_copy_id, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET document = excluded.document,
			sections = excluded.sections, resume_name = excluded.resume_name,
			template_id = excluded.template_id, current_copy_id = excluded.current_copy_id,
			updated_at = excluded.updated_at`,
		docJSON, sectJSON, state.ResumeName, state.TemplateID, state.CurrentCopyID, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save working state: %w", err)
	}
	return nil
}

// WorkingState loads the working snapshot, or ErrNotFound when none has been
// saved yet
func (s *Store) WorkingState(ctx context.Context) (*State, error) {
	var docJSON, sectJSON string
	state := &State{}
	err := s.db.QueryRowContext(ctx,
		`SELECT document, sections, resume_name, template_id, current_copy_id FROM working_state WHERE id = 1`,
	).Scan(&docJSON, &sectJSON, &state.ResumeName, &state.TemplateID, &state.CurrentCopyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load working state: %w", err)
	}

	state.Document, state.Sections, err = decodeState(docJSON, sectJSON)
	if err != nil {
		return nil, err
	}
	return state, nil
}

func encodeState(doc *types.Document, sections []types.Section) (string, string, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode document: %w", err)
	}
	sectJSON, err := json.Marshal(sections)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode sections: %w", err)
	}
	return string(docJSON), string(sectJSON), nil
}

func decodeState(docJSON, sectJSON string) (*types.Document, []types.Section, error) {
	var doc types.Document
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to decode document: %w", err)
	}
	var sections []types.Section
	if err := json.Unmarshal([]byte(sectJSON), &sections); err != nil {
		return nil, nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return &doc, sections, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
