// Package testutil provides shared test helpers for setting up
// databases and fixture users.
package testutil

import (
	"context"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/nwestra/checkpad/internal/models"
	"github.com/nwestra/checkpad/internal/store"
)

// Password is the plaintext credential of every fixture user.
const Password = "password123"

// TestDB creates a temporary SQLite database that is automatically cleaned up.
func TestDB(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "checkpad-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestUser inserts a user with the fixture password and returns it.
// MinCost keeps the hash cheap for tests.
func TestUser(t *testing.T, db *store.DB, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	user, err := db.CreateUser(context.Background(), email, "Test User", string(hash))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}
