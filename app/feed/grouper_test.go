package feed

import (
	"testing"
	"time"

	"github.com/showsplit/showsplit/app/shows"
)

func TestGrouper_Run_OrdersNewestFirst(t *testing.T) {
	registry := shows.NewRegistry()
	show := registry.Resolve("Game Changer")
	grouper := NewGrouper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	episodes := []Episode{
		{Show: show, Title: "oldest", PublishedAt: base},
		{Show: show, Title: "newest", PublishedAt: base.Add(48 * time.Hour)},
		{Show: show, Title: "middle", PublishedAt: base.Add(24 * time.Hour)},
	}

	grouped := grouper.Run(episodes)

	list := grouped.ByShow[show]
	if len(list) != 3 {
		t.Fatalf("Expected 3 episodes, got %d", len(list))
	}
	if list[0].Title != "newest" || list[1].Title != "middle" || list[2].Title != "oldest" {
		t.Errorf("Expected newest-first order, got %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestGrouper_Run_StableOnEqualTimestamps(t *testing.T) {
	registry := shows.NewRegistry()
	show := registry.Resolve("Dimension 20")
	grouper := NewGrouper()

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	episodes := []Episode{
		{Show: show, Title: "first", PublishedAt: ts},
		{Show: show, Title: "second", PublishedAt: ts},
		{Show: show, Title: "third", PublishedAt: ts},
	}

	grouped := grouper.Run(episodes)

	list := grouped.ByShow[show]
	if list[0].Title != "first" || list[1].Title != "second" || list[2].Title != "third" {
		t.Errorf("Equal timestamps must preserve feed order, got %q, %q, %q", list[0].Title, list[1].Title, list[2].Title)
	}

	combined := grouped.Combined
	if combined[0].Title != "first" || combined[1].Title != "second" || combined[2].Title != "third" {
		t.Errorf("Combined sequence must preserve feed order on ties, got %q, %q, %q",
			combined[0].Title, combined[1].Title, combined[2].Title)
	}
}

func TestGrouper_Run_KeepsUnsortedBucket(t *testing.T) {
	registry := shows.NewRegistry()
	grouper := NewGrouper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	d20 := registry.Resolve("Dimension 20")
	gc := registry.Resolve("Game Changer")

	episodes := []Episode{
		{Show: d20, Title: "d20-1", PublishedAt: base.Add(5 * time.Hour)},
		{Show: gc, Title: "gc-1", PublishedAt: base.Add(4 * time.Hour)},
		{Show: d20, Title: "d20-2", PublishedAt: base.Add(3 * time.Hour)},
		{Show: registry.Unsorted(), Title: "mystery", PublishedAt: base.Add(2 * time.Hour)},
		{Show: gc, Title: "gc-2", PublishedAt: base.Add(1 * time.Hour)},
		{Show: d20, Title: "d20-3", PublishedAt: base},
	}

	grouped := grouper.Run(episodes)

	if len(grouped.Shows) != 3 {
		t.Fatalf("Expected 3 buckets (2 shows + unsorted), got %d", len(grouped.Shows))
	}
	if len(grouped.ByShow[d20]) != 3 {
		t.Errorf("Expected 3 episodes for dimension-20, got %d", len(grouped.ByShow[d20]))
	}
	if len(grouped.ByShow[gc]) != 2 {
		t.Errorf("Expected 2 episodes for game-changer, got %d", len(grouped.ByShow[gc]))
	}
	if len(grouped.ByShow[registry.Unsorted()]) != 1 {
		t.Errorf("Expected 1 unsorted episode, got %d", len(grouped.ByShow[registry.Unsorted()]))
	}
	if len(grouped.Combined) != 6 {
		t.Errorf("Expected combined length 6, got %d", len(grouped.Combined))
	}

	for i := 1; i < len(grouped.Combined); i++ {
		if grouped.Combined[i].PublishedAt.After(grouped.Combined[i-1].PublishedAt) {
			t.Errorf("Combined sequence out of order at index %d", i)
		}
	}
}
