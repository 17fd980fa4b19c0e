package feed

import (
	"context"
	"fmt"
	"sync"
)

// ShowStore persists auto-registered shows between runs. Satisfied by
// the database package; nil disables persistence.
type ShowStore interface {
	SaveShows(registered []RegisteredShow) error
}

// RegisteredShow is the persistence view of a newly registered show.
type RegisteredShow struct {
	Name    string
	Slug    string
	Aliases []string
}

// Runner serializes pipeline runs and keeps the latest result for the
// serve mode handlers. Runs never overlap, which keeps the registry
// single-writer.
type Runner struct {
	processor *Processor
	writer    *Writer
	store     ShowStore

	mu   sync.RWMutex
	last *Result
}

func NewRunner(processor *Processor, writer *Writer, store ShowStore) *Runner {
	return &Runner{
		processor: processor,
		writer:    writer,
		store:     store,
	}
}

// Refresh runs the pipeline once, writes the output files, persists
// any newly registered shows, and publishes the result.
func (r *Runner) Refresh(ctx context.Context) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.processor.Run(ctx)
	if err != nil {
		return nil, err
	}

	if r.writer != nil {
		if _, err := r.writer.Run(result.Feeds); err != nil {
			return nil, fmt.Errorf("failed to write feeds: %w", err)
		}
	}

	if r.store != nil {
		registered := r.processor.registry.Registered()
		records := make([]RegisteredShow, 0, len(registered))
		for _, show := range registered {
			records = append(records, RegisteredShow{Name: show.Name, Slug: show.Slug, Aliases: show.Aliases})
		}
		if err := r.store.SaveShows(records); err != nil {
			return nil, fmt.Errorf("failed to persist registered shows: %w", err)
		}
	}

	r.last = result
	return result, nil
}

// Last returns the most recent result, or nil before the first run.
func (r *Runner) Last() *Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}
