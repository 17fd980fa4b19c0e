package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/showsplit/showsplit/app/cfg"
	"github.com/showsplit/showsplit/app/shows"
)

// Result is the outcome of one pipeline run: the generated documents
// keyed by slug (including the combined feed), the grouping they were
// rendered from, and the diagnostics counters.
type Result struct {
	Feeds   map[string]string
	Grouped *Grouped
	Stats   Stats
	RanAt   time.Time
}

// Processor orchestrates one batch run: fetch, parse, classify, group,
// generate. It performs no file or network I/O beyond the single fetch.
type Processor struct {
	registry   *shows.Registry
	fetcher    *Fetcher
	parser     *Parser
	classifier *Classifier
	grouper    *Grouper
	generator  *Generator
	feedURL    string
}

func NewProcessor(registry *shows.Registry) *Processor {
	c := cfg.Get()
	return &Processor{
		registry:   registry,
		fetcher:    NewFetcher(c.UserAgent),
		parser:     NewParser(),
		classifier: NewClassifier(registry, c.TimezoneOffset, c.ShiftPubDate),
		grouper:    NewGrouper(),
		generator:  NewGenerator(),
		feedURL:    c.FeedURL,
	}
}

// Run executes the pipeline once. Producing zero episodes is reported
// in the stats, not raised; only fetch and parse failures are errors.
func (p *Processor) Run(ctx context.Context) (*Result, error) {
	started := time.Now()

	data, err := p.fetcher.Run(ctx, p.feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	items, err := p.parser.Run(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	episodes, stats := p.classifier.Run(items)
	grouped := p.grouper.Run(episodes)
	stats.Shows = len(grouped.Shows)

	feeds := make(map[string]string, len(grouped.Shows)+1)
	for _, show := range grouped.Shows {
		feeds[show.Slug] = p.generator.Run(show, grouped.ByShow[show])
	}
	feeds[CombinedSlug] = p.generator.RunCombined(grouped.Combined)

	slog.Info("Feed processed",
		"duration", time.Since(started).Round(time.Millisecond),
		"items", stats.ItemsTotal,
		"episodes", stats.Episodes,
		"shows", stats.Shows,
		"skipped", stats.Skipped,
		"unsorted", stats.Unsorted,
		"auto_registered", stats.AutoRegistered)

	if stats.Episodes == 0 {
		slog.Warn("No episodes produced from feed", "items", stats.ItemsTotal)
	}

	return &Result{
		Feeds:   feeds,
		Grouped: grouped,
		Stats:   stats,
		RanAt:   started,
	}, nil
}
