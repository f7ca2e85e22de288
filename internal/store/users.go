package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/models"
)

// CreateUser inserts a new user. A duplicate email yields
// apperr.ErrAlreadyExists.
func (db *DB) CreateUser(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	u := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, apperr.ErrAlreadyExists
		}
		return nil, fmt.Errorf("store: insert user: %w", err)
	}
	return u, nil
}

// GetUser returns the user with the given id.
func (db *DB) GetUser(ctx context.Context, id string) (*models.User, error) {
	return db.scanUser(db.conn.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?
	`, id))
}

// GetUserByEmail returns the user with the given email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return db.scanUser(db.conn.QueryRowContext(ctx, `
		SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?
	`, email))
}

func (db *DB) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("store: scan user: %w", err)
	}
	return u, nil
}
