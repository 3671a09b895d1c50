package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/types"
)

// Copy is a named saved resume variant
type Copy struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Document  *types.Document `json:"document"`
	Sections  []types.Section `json:"sections"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CopyMeta is the listing view of a copy, without document content
type CopyMeta struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveCopy stores a new named copy of the document and returns it
func (s *Store) SaveCopy(ctx context.Context, name string, doc *types.Document, sections []types.Section) (*Copy, error) {
	docJSON, sectJSON, err := encodeState(doc, sections)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	ts := now()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO copies (id, name, document, sections, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), name, docJSON, sectJSON, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save copy: %w", err)
	}

	created, _ := time.Parse(time.RFC3339Nano, ts)
	return &Copy{
		ID:        id,
		Name:      name,
		Document:  doc,
		Sections:  sections,
		CreatedAt: created,
		UpdatedAt: created,
	}, nil
}

// Copies lists all saved copies, newest first
func (s *Store) Copies(ctx context.Context) ([]CopyMeta, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM copies ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list copies: %w", err)
	}
	defer rows.Close()

	var metas []CopyMeta
	for rows.Next() {
		var idStr, createdStr, updatedStr string
		var meta CopyMeta
		if err := rows.Scan(&idStr, &meta.Name, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("failed to scan copy row: %w", err)
		}
		meta.ID, err = uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse copy id: %w", err)
		}
		meta.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		meta.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		metas = append(metas, meta)
	}
	return metas, rows.Err()
}

// GetCopy loads one copy by ID
func (s *Store) GetCopy(ctx context.Context, id uuid.UUID) (*Copy, error) {
	var name, docJSON, sectJSON, createdStr, updatedStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, document, sections, created_at, updated_at FROM copies WHERE id = ?`,
		id.String(),
	).Scan(&name, &docJSON, &sectJSON, &createdStr, &updatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load copy: %w", err)
	}

	doc, sections, err := decodeState(docJSON, sectJSON)
	if err != nil {
		return nil, err
	}

	c := &Copy{ID: id, Name: name, Document: doc, Sections: sections}
	c.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	c.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return c, nil
}

// UpdateCopy replaces the content of an existing copy
func (s *Store) UpdateCopy(ctx context.Context, id uuid.UUID, doc *types.Document, sections []types.Section) error {
	docJSON, sectJSON, err := encodeState(doc, sections)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE copies SET document = ?, sections = ?, updated_at = ? WHERE id = ?`,
		docJSON, sectJSON, now(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update copy: %w", err)
	}
	return requireRow(result)
}

// RenameCopy changes a copy's display name
func (s *Store) RenameCopy(ctx context.Context, id uuid.UUID, name string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE copies SET name = ?, updated_at = ? WHERE id = ?`,
		name, now(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to rename copy: %w", err)
	}
	return requireRow(result)
}

// DeleteCopy removes a copy
func (s *Store) DeleteCopy(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM copies WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete copy: %w", err)
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
