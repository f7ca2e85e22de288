// Package models defines the domain types for Checkpad.
package models

import "time"

// User is an account holder. Users are created at signup or seed time
// and own zero or more checklists.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Checklist is an ordered collection of items with exactly one owner,
// set at creation and never reassigned. Deleting a checklist cascades
// to its items.
type Checklist struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	OwnerID     string          `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []ChecklistItem `json:"items"`
}

// ChecklistItem is a single entry within a checklist. Order is assigned
// at creation as the current sibling count and never renumbered on
// delete; gaps are permitted. Reads always sort by Order ascending.
type ChecklistItem struct {
	ID          string    `json:"id"`
	ChecklistID string    `json:"checklist_id"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes,omitempty"`
	Done        bool      `json:"done"`
	Order       int       `json:"order"`
	UpdatedAt   time.Time `json:"updated_at"`
}
