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

// CreateItem inserts a new item with position = current sibling count.
// The count and insert run in one transaction. Two concurrent sessions
// of the same owner can still read the same count and mint equal
// positions; that collision is accepted, positions are never renumbered.
func (db *DB) CreateItem(ctx context.Context, checklistID, title, notes string) (*models.ChecklistItem, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("store: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	var count int
	if err := tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM checklist_items WHERE checklist_id = ?
	`, checklistID).Scan(&count); err != nil {
		return nil, fmt.Errorf("store: count items: %w", err)
	}

	item := &models.ChecklistItem{
		ID:          uuid.NewString(),
		ChecklistID: checklistID,
		Title:       title,
		Notes:       notes,
		Done:        false,
		Order:       count,
		UpdatedAt:   time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO checklist_items (id, checklist_id, title, notes, done, position, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, ?)
	`, item.ID, item.ChecklistID, item.Title, nullable(item.Notes), item.Order, item.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("store: insert item: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("store: commit: %w", err)
	}
	return item, nil
}

// GetItem returns a single item by id.
func (db *DB) GetItem(ctx context.Context, id string) (*models.ChecklistItem, error) {
	item := &models.ChecklistItem{}
	var notes sql.NullString
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, checklist_id, title, notes, done, position, updated_at
		FROM checklist_items WHERE id = ?
	`, id).Scan(&item.ID, &item.ChecklistID, &item.Title, &notes, &item.Done, &item.Order, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: scan item: %w", err)
	}
	item.Notes = notes.String
	return item, nil
}

// ListItems returns a checklist's items sorted ascending by position.
func (db *DB) ListItems(ctx context.Context, checklistID string) ([]models.ChecklistItem, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, checklist_id, title, notes, done, position, updated_at
		FROM checklist_items WHERE checklist_id = ?
		ORDER BY position ASC
	`, checklistID)
	if err != nil {
		return nil, fmt.Errorf("store: list items: %w", err)
	}
	defer rows.Close()

	out := []models.ChecklistItem{}
	for rows.Next() {
		var item models.ChecklistItem
		var notes sql.NullString
		if err := rows.Scan(&item.ID, &item.ChecklistID, &item.Title, &notes, &item.Done, &item.Order, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan item: %w", err)
		}
		item.Notes = notes.String
		out = append(out, item)
	}
	return out, rows.Err()
}

// SetItemDone updates only the done flag; title, notes, and the update
// timestamp are left untouched.
func (db *DB) SetItemDone(ctx context.Context, id string, done bool) error {
	res, err := db.conn.ExecContext(ctx, `
		UPDATE checklist_items SET done = ? WHERE id = ?
	`, done, id)
	if err != nil {
		return fmt.Errorf("store: set item done: %w", err)
	}
	return requireRow(res)
}

// UpdateItem replaces title and notes and refreshes the update timestamp.
func (db *DB) UpdateItem(ctx context.Context, id, title, notes string) error {
	res, err := db.conn.ExecContext(ctx, `
		UPDATE checklist_items SET title = ?, notes = ?, updated_at = ? WHERE id = ?
	`, title, nullable(notes), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("store: update item: %w", err)
	}
	return requireRow(res)
}

// DeleteItem removes the item row.
func (db *DB) DeleteItem(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete item: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
