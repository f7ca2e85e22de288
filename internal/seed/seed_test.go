package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/nwestra/checkpad/internal/auth"
	"github.com/nwestra/checkpad/internal/testutil"
)

func TestRunCreatesFixture(t *testing.T) {
	db := testutil.TestDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := Run(ctx, db, logger); err != nil {
		t.Fatalf("Run: %v", err)
	}

	user, err := db.GetUserByEmail(ctx, DemoEmail)
	if err != nil {
		t.Fatalf("demo user missing: %v", err)
	}
	if !auth.CheckPassword(user.PasswordHash, DemoPassword) {
		t.Error("demo password does not verify against stored hash")
	}

	checklists, err := db.ListChecklists(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(checklists) != 1 {
		t.Fatalf("checklists = %d, want 1", len(checklists))
	}
	items := checklists[0].Items
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	for i, item := range items {
		if item.Order != i {
			t.Errorf("item %d order = %d", i, item.Order)
		}
	}
	if !items[0].Done {
		t.Error("first item should start done")
	}
	if items[1].Done || items[2].Done || items[3].Done {
		t.Error("remaining items should start pending")
	}
}

func TestRunReusesExistingUser(t *testing.T) {
	db := testutil.TestDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := Run(ctx, db, logger); err != nil {
		t.Fatal(err)
	}
	if err := Run(ctx, db, logger); err != nil {
		t.Fatalf("second Run should reuse the demo user: %v", err)
	}

	user, err := db.GetUserByEmail(ctx, DemoEmail)
	if err != nil {
		t.Fatal(err)
	}
	checklists, err := db.ListChecklists(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(checklists) != 2 {
		t.Errorf("checklists after two runs = %d, want 2", len(checklists))
	}
}
