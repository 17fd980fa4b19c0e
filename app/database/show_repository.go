package database

import (
	"fmt"

	"github.com/showsplit/showsplit/app/feed"
)

// ShowRecord is one persisted show with its alias forms.
type ShowRecord struct {
	Name    string
	Slug    string
	Aliases []string
}

// ShowRepository reads and appends persisted shows. Append-only per
// run, single writer; runs are serialized by the caller.
type ShowRepository struct {
	db *DB
}

func NewShowRepository(db *DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// LoadShows returns all persisted shows in insertion order.
func (r *ShowRepository) LoadShows() ([]ShowRecord, error) {
	rows, err := r.db.Query(`SELECT id, name, slug FROM shows ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()

	var records []ShowRecord
	var ids []int64
	for rows.Next() {
		var id int64
		var rec ShowRecord
		if err := rows.Scan(&id, &rec.Name, &rec.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		records = append(records, rec)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shows: %w", err)
	}

	for i, id := range ids {
		aliases, err := r.loadAliases(id)
		if err != nil {
			return nil, err
		}
		records[i].Aliases = aliases
	}

	return records, nil
}

// SaveShows appends newly registered shows, skipping slugs already
// present. Satisfies feed.ShowStore.
func (r *ShowRepository) SaveShows(registered []feed.RegisteredShow) error {
	for _, show := range registered {
		if err := r.saveShow(show); err != nil {
			return err
		}
	}
	return nil
}

func (r *ShowRepository) saveShow(show feed.RegisteredShow) error {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO shows (name, slug) VALUES (?, ?)
		ON CONFLICT(slug) DO UPDATE SET name = name
		RETURNING id
	`, show.Name, show.Slug).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to upsert show %q: %w", show.Slug, err)
	}

	for _, alias := range show.Aliases {
		_, err := r.db.Exec(`
			INSERT INTO aliases (show_id, alias) VALUES (?, ?)
			ON CONFLICT(alias) DO NOTHING
		`, id, alias)
		if err != nil {
			return fmt.Errorf("failed to insert alias %q: %w", alias, err)
		}
	}

	return nil
}

func (r *ShowRepository) loadAliases(showID int64) ([]string, error) {
	rows, err := r.db.Query(`SELECT alias FROM aliases WHERE show_id = ? ORDER BY id`, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to query aliases: %w", err)
	}
	defer rows.Close()

	var aliases []string
	for rows.Next() {
		var alias string
		if err := rows.Scan(&alias); err != nil {
			return nil, fmt.Errorf("failed to scan alias: %w", err)
		}
		aliases = append(aliases, alias)
	}
	return aliases, rows.Err()
}
