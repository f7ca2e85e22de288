package store

import (
	"context"

	"github.com/nwestra/checkpad/internal/models"
)

// Store defines the persistence operations used by the service layers.
// Consumers should depend on this interface rather than the concrete
// *DB type to facilitate testing with mocks.
type Store interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	CreateChecklist(ctx context.Context, ownerID, title, description string) (*models.Checklist, error)
	GetChecklist(ctx context.Context, id string) (*models.Checklist, error)
	ListChecklists(ctx context.Context, ownerID string) ([]models.Checklist, error)
	DeleteChecklist(ctx context.Context, id string) error

	CreateItem(ctx context.Context, checklistID, title, notes string) (*models.ChecklistItem, error)
	GetItem(ctx context.Context, id string) (*models.ChecklistItem, error)
	ListItems(ctx context.Context, checklistID string) ([]models.ChecklistItem, error)
	SetItemDone(ctx context.Context, id string, done bool) error
	UpdateItem(ctx context.Context, id, title, notes string) error
	DeleteItem(ctx context.Context, id string) error

	Close() error
}

// Verify *DB satisfies Store at compile time.
var _ Store = (*DB)(nil)
