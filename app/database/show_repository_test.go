package database

import (
	"path/filepath"
	"testing"

	"github.com/showsplit/showsplit/app/feed"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "shows.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestShowRepository_SaveAndLoad(t *testing.T) {
	db := openTestDB(t)
	repo := NewShowRepository(db)

	registered := []feed.RegisteredShow{
		{Name: "Crowd Control", Slug: "crowd-control", Aliases: []string{"crowd control", "crowd ctrl"}},
		{Name: "Nobody Asked", Slug: "nobody-asked", Aliases: []string{"nobody asked"}},
	}

	if err := repo.SaveShows(registered); err != nil {
		t.Fatalf("Expected no error saving shows, got: %v", err)
	}

	records, err := repo.LoadShows()
	if err != nil {
		t.Fatalf("Expected no error loading shows, got: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 persisted shows, got %d", len(records))
	}
	if records[0].Slug != "crowd-control" || records[1].Slug != "nobody-asked" {
		t.Errorf("Expected insertion order preserved, got %q, %q", records[0].Slug, records[1].Slug)
	}
	if len(records[0].Aliases) != 2 {
		t.Errorf("Expected 2 aliases for first show, got %d", len(records[0].Aliases))
	}
}

func TestShowRepository_SaveShowsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewShowRepository(db)

	registered := []feed.RegisteredShow{
		{Name: "Crowd Control", Slug: "crowd-control", Aliases: []string{"crowd control"}},
	}

	if err := repo.SaveShows(registered); err != nil {
		t.Fatalf("First save failed: %v", err)
	}
	if err := repo.SaveShows(registered); err != nil {
		t.Fatalf("Second save should be a no-op, got: %v", err)
	}

	records, err := repo.LoadShows()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 persisted show after duplicate save, got %d", len(records))
	}
	if len(records[0].Aliases) != 1 {
		t.Errorf("Expected 1 alias after duplicate save, got %d", len(records[0].Aliases))
	}
}

func TestShowRepository_LoadShows_Empty(t *testing.T) {
	db := openTestDB(t)
	repo := NewShowRepository(db)

	records, err := repo.LoadShows()
	if err != nil {
		t.Fatalf("Expected no error on empty database, got: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}
