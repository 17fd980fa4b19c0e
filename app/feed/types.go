package feed

import (
	"time"

	"github.com/showsplit/showsplit/app/shows"
)

// Feed processing types

// Item is one raw entry from the source newsletter feed.
type Item struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Content     string
	PublishedAt time.Time
}

// Body returns the richest text available for an item; the bridge puts
// the newsletter HTML in the content element, with description as a
// fallback.
func (i Item) Body() string {
	if i.Content != "" {
		return i.Content
	}
	return i.Description
}

// Episode is one classified, show-scoped unit of content.
type Episode struct {
	Show        *shows.Show
	Title       string
	Description string
	Link        string
	GUID        string
	PublishedAt time.Time
	AirDay      string // weekday name from newsletter schedule headers, if known
	SourceGUID  string
}

// Stats carries the diagnostics counters surfaced to the caller.
type Stats struct {
	ItemsTotal     int
	Skipped        int
	Episodes       int
	Unsorted       int
	AutoRegistered int
	Shows          int
}
