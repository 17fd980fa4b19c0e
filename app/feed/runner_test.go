package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/showsplit/showsplit/app/shows"
)

type fakeShowStore struct {
	saved []RegisteredShow
}

func (s *fakeShowStore) SaveShows(registered []RegisteredShow) error {
	s.saved = registered
	return nil
}

func TestRunner_Refresh(t *testing.T) {
	feedXML := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Dropout Newsletters</title>
    <item>
      <guid>issue-10</guid>
      <title>Smartypants: A Lecture You Did Not Ask For</title>
      <description>New show alert</description>
      <pubDate>Mon, 07 Jul 2025 10:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML))
	}))
	defer server.Close()

	os.Setenv("FEED_URL", server.URL)
	defer os.Unsetenv("FEED_URL")
	setupTestConfig()

	outputDir := t.TempDir()
	store := &fakeShowStore{}
	runner := NewRunner(NewProcessor(shows.NewRegistry()), NewWriter(outputDir), store)

	if runner.Last() != nil {
		t.Error("Expected no result before the first refresh")
	}

	result, err := runner.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if runner.Last() != result {
		t.Error("Expected Last to return the refreshed result")
	}

	// "Smartypants" is not a known show, auto-registration kicks in
	if len(store.saved) != 1 {
		t.Fatalf("Expected 1 persisted show, got %d", len(store.saved))
	}
	if store.saved[0].Slug != "smartypants" {
		t.Errorf("Expected slug 'smartypants', got %q", store.saved[0].Slug)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "smartypants.xml")); err != nil {
		t.Errorf("Expected show feed on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outputDir, CombinedSlug+".xml")); err != nil {
		t.Errorf("Expected combined feed on disk: %v", err)
	}
}
