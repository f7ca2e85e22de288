// Package checklistservice implements the ownership-scoped operations on
// checklists and their items. Every operation requires a resolved
// identity, and every mutation of an existing row verifies that the
// caller owns the enclosing checklist before touching anything.
package checklistservice

import (
	"context"
	"errors"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/models"
	"github.com/nwestra/checkpad/internal/store"
)

// Invalidator receives change notifications after successful writes so
// cached views can be marked stale. The SSE broker implements it.
type Invalidator interface {
	PublishChecklistEvent(kind, checklistID string)
}

// Service coordinates store access, authorization, and invalidation.
type Service struct {
	db  *store.DB
	inv Invalidator
}

// NewService creates a new checklist service. inv may be nil when no
// consumer listens for invalidation events.
func NewService(db *store.DB, inv Invalidator) *Service {
	return &Service{db: db, inv: inv}
}

// authorize fetches a resource and verifies the caller owns it. A
// missing row and a foreign-owned row are both reported as
// ErrUnauthorized so mutation callers cannot probe for ids they do not
// own. Read paths that must distinguish NotFound do their own fetch.
func authorize[T any](ctx context.Context, userID string, fetch func(context.Context) (T, error), ownerOf func(T) string) (T, error) {
	var zero T
	res, err := fetch(ctx)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return zero, apperr.ErrUnauthorized
		}
		return zero, err
	}
	if ownerOf(res) != userID {
		return zero, apperr.ErrUnauthorized
	}
	return res, nil
}

func (s *Service) authorizeChecklist(ctx context.Context, userID, checklistID string) (*models.Checklist, error) {
	return authorize(ctx, userID,
		func(ctx context.Context) (*models.Checklist, error) {
			return s.db.GetChecklist(ctx, checklistID)
		},
		func(cl *models.Checklist) string { return cl.OwnerID },
	)
}

type ownedItem struct {
	item    *models.ChecklistItem
	ownerID string
}

func (s *Service) authorizeItem(ctx context.Context, userID, itemID string) (*models.ChecklistItem, error) {
	owned, err := authorize(ctx, userID,
		func(ctx context.Context) (ownedItem, error) {
			item, err := s.db.GetItem(ctx, itemID)
			if err != nil {
				return ownedItem{}, err
			}
			cl, err := s.db.GetChecklist(ctx, item.ChecklistID)
			if err != nil {
				return ownedItem{}, err
			}
			return ownedItem{item: item, ownerID: cl.OwnerID}, nil
		},
		func(o ownedItem) string { return o.ownerID },
	)
	if err != nil {
		return nil, err
	}
	return owned.item, nil
}

func (s *Service) invalidate(kind, checklistID string) {
	if s.inv != nil {
		s.inv.PublishChecklistEvent(kind, checklistID)
	}
}

// ListChecklists returns the caller's checklists, newest first, each
// with its items.
func (s *Service) ListChecklists(ctx context.Context, userID string) ([]models.Checklist, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthorized
	}
	return s.db.ListChecklists(ctx, userID)
}

// GetChecklist returns one checklist with items sorted by order.
// Unlike the mutation paths, a missing id is reported as ErrNotFound;
// only a foreign owner yields ErrUnauthorized, which the route layer
// turns into a redirect rather than a hard error.
func (s *Service) GetChecklist(ctx context.Context, userID, checklistID string) (*models.Checklist, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthorized
	}
	cl, err := s.db.GetChecklist(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	if cl.OwnerID != userID {
		return nil, apperr.ErrUnauthorized
	}
	items, err := s.db.ListItems(ctx, checklistID)
	if err != nil {
		return nil, err
	}
	cl.Items = items
	return cl, nil
}

// CreateChecklist inserts a new checklist owned by the caller.
func (s *Service) CreateChecklist(ctx context.Context, userID, title, description string) (*models.Checklist, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthorized
	}
	if title == "" {
		return nil, apperr.ErrValidation
	}
	cl, err := s.db.CreateChecklist(ctx, userID, title, description)
	if err != nil {
		return nil, err
	}
	s.invalidate("created", cl.ID)
	return cl, nil
}

// DeleteChecklist removes a checklist the caller owns, cascading to its
// items.
func (s *Service) DeleteChecklist(ctx context.Context, userID, checklistID string) error {
	if userID == "" {
		return apperr.ErrUnauthorized
	}
	if _, err := s.authorizeChecklist(ctx, userID, checklistID); err != nil {
		return err
	}
	if err := s.db.DeleteChecklist(ctx, checklistID); err != nil {
		return err
	}
	s.invalidate("deleted", checklistID)
	return nil
}

// CreateItem appends a new item to a checklist the caller owns. The
// item's order is the current sibling count at insert time.
func (s *Service) CreateItem(ctx context.Context, userID, checklistID, title, notes string) (*models.ChecklistItem, error) {
	if userID == "" {
		return nil, apperr.ErrUnauthorized
	}
	if _, err := s.authorizeChecklist(ctx, userID, checklistID); err != nil {
		return nil, err
	}
	if title == "" {
		return nil, apperr.ErrValidation
	}
	item, err := s.db.CreateItem(ctx, checklistID, title, notes)
	if err != nil {
		return nil, err
	}
	s.invalidate("updated", checklistID)
	return item, nil
}

// ToggleItem sets an item's done flag.
func (s *Service) ToggleItem(ctx context.Context, userID, itemID string, done bool) error {
	if userID == "" {
		return apperr.ErrUnauthorized
	}
	item, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.db.SetItemDone(ctx, itemID, done); err != nil {
		return err
	}
	s.invalidate("updated", item.ChecklistID)
	return nil
}

// UpdateItem replaces an item's title and notes.
func (s *Service) UpdateItem(ctx context.Context, userID, itemID, title, notes string) error {
	if userID == "" {
		return apperr.ErrUnauthorized
	}
	item, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if title == "" {
		return apperr.ErrValidation
	}
	if err := s.db.UpdateItem(ctx, itemID, title, notes); err != nil {
		return err
	}
	s.invalidate("updated", item.ChecklistID)
	return nil
}

// DeleteItem removes an item from a checklist the caller owns. The
// remaining items keep their order values; gaps are not compacted.
func (s *Service) DeleteItem(ctx context.Context, userID, itemID string) error {
	if userID == "" {
		return apperr.ErrUnauthorized
	}
	item, err := s.authorizeItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.db.DeleteItem(ctx, itemID); err != nil {
		return err
	}
	s.invalidate("updated", item.ChecklistID)
	return nil
}
