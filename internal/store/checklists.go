package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/models"
)

// CreateChecklist inserts a new checklist owned by ownerID. The owner is
// set once here and never reassigned.
func (db *DB) CreateChecklist(ctx context.Context, ownerID, title, description string) (*models.Checklist, error) {
	cl := &models.Checklist{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		Items:       []models.ChecklistItem{},
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO checklists (id, title, description, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, cl.ID, cl.Title, nullable(cl.Description), cl.OwnerID, cl.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("store: insert checklist: %w", err)
	}
	return cl, nil
}

// GetChecklist returns the checklist row without its items.
func (db *DB) GetChecklist(ctx context.Context, id string) (*models.Checklist, error) {
	cl := &models.Checklist{}
	var desc sql.NullString
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, title, description, owner_id, created_at FROM checklists WHERE id = ?
	`, id).Scan(&cl.ID, &cl.Title, &desc, &cl.OwnerID, &cl.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: scan checklist: %w", err)
	}
	cl.Description = desc.String
	return cl, nil
}

// ListChecklists returns all checklists owned by ownerID, newest first,
// each populated with its items sorted by position.
func (db *DB) ListChecklists(ctx context.Context, ownerID string) ([]models.Checklist, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, title, description, owner_id, created_at
		FROM checklists WHERE owner_id = ?
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("store: list checklists: %w", err)
	}
	defer rows.Close()

	out := []models.Checklist{}
	for rows.Next() {
		var cl models.Checklist
		var desc sql.NullString
		if err := rows.Scan(&cl.ID, &cl.Title, &desc, &cl.OwnerID, &cl.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan checklist: %w", err)
		}
		cl.Description = desc.String
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		items, err := db.ListItems(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Items = items
	}
	return out, nil
}

// DeleteChecklist removes the checklist row. Item rows go with it via
// the ON DELETE CASCADE constraint.
func (db *DB) DeleteChecklist(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM checklists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete checklist: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// nullable maps the empty string to NULL so optional text columns stay
// NULL rather than storing "".
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
