// Package seed creates the demo fixture: one user and one checklist
// with four items. Useful for local development and test environments;
// not part of the runtime contract.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nwestra/checkpad/internal/apperr"
	"github.com/nwestra/checkpad/internal/auth"
	"github.com/nwestra/checkpad/internal/models"
	"github.com/nwestra/checkpad/internal/store"
)

// DemoEmail is the email of the seeded demo account.
const DemoEmail = "test@example.com"

// DemoPassword is the plaintext password of the seeded demo account.
const DemoPassword = "password123"

type seedItem struct {
	title string
	notes string
	done  bool
}

// Run inserts the demo user (reused if already present) and a sample
// checklist with four items in order.
func Run(ctx context.Context, db *store.DB, logger *slog.Logger) error {
	user, err := db.GetUserByEmail(ctx, DemoEmail)
	if errors.Is(err, apperr.ErrNotFound) {
		user, err = createDemoUser(ctx, db)
	}
	if err != nil {
		return err
	}
	logger.Info("seed user ready", slog.String("email", user.Email))

	cl, err := db.CreateChecklist(ctx, user.ID, "Angular Fundamentals", "Master the basics of Angular framework")
	if err != nil {
		return fmt.Errorf("seed checklist: %w", err)
	}

	items := []seedItem{
		{title: "Install Angular CLI", notes: "npm install -g @angular/cli", done: true},
		{title: "Learn about Components", notes: "Components are the building blocks"},
		{title: "Understand Data Binding"},
		{title: "Master Dependency Injection"},
	}
	for _, it := range items {
		created, err := db.CreateItem(ctx, cl.ID, it.title, it.notes)
		if err != nil {
			return fmt.Errorf("seed item %q: %w", it.title, err)
		}
		if it.done {
			if err := db.SetItemDone(ctx, created.ID, true); err != nil {
				return fmt.Errorf("seed item %q: %w", it.title, err)
			}
		}
	}

	logger.Info("seed completed", slog.String("checklist", cl.Title), slog.Int("items", len(items)))
	return nil
}

func createDemoUser(ctx context.Context, db *store.DB) (*models.User, error) {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	user, err := db.CreateUser(ctx, DemoEmail, "Test User", hash)
	if err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	return user, nil
}
