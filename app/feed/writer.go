package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer persists generated feed documents as static XML files, one
// per show plus the combined feed.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// Run writes every document in feeds (keyed by slug) into the output
// directory as <slug>.xml, creating the directory when missing.
// Returns the written paths keyed by slug.
func (w *Writer) Run(feeds map[string]string) (map[string]string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make(map[string]string, len(feeds))
	for slug, document := range feeds {
		path := filepath.Join(w.outputDir, slug+".xml")
		if err := os.WriteFile(path, []byte(document), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths[slug] = path
		slog.Debug("Feed written", "slug", slug, "path", path)
	}

	return paths, nil
}
