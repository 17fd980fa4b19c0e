package feed

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/showsplit/showsplit/app/shows"
	"github.com/showsplit/showsplit/app/timetext"
)

// Setup/confirmation emails from the bridge carry no episodes.
var confirmationPhrases = []string{
	"please confirm",
	"confirm your mailbox",
	"kill-the-newsletter.com",
}

// Title delimiter conventions in priority order. The colon form
// outranks dash, bracket, and pipe when a title could match several.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([^:]+):\s*(.+)$`),
	regexp.MustCompile(`^([^-]+)-\s*(.+)$`),
	regexp.MustCompile(`^\[([^\]]+)\]\s*(.+)$`),
	regexp.MustCompile(`^([^|]+)\|\s*(.+)$`),
}

// Classifier turns raw feed items into show-scoped episodes.
type Classifier struct {
	registry     *shows.Registry
	sanitizer    *Sanitizer
	offsetHours  int
	shiftPubDate bool
}

func NewClassifier(registry *shows.Registry, offsetHours int, shiftPubDate bool) *Classifier {
	return &Classifier{
		registry:     registry,
		sanitizer:    NewSanitizer(),
		offsetHours:  offsetHours,
		shiftPubDate: shiftPubDate,
	}
}

// Run classifies all items in feed order. Malformed items are skipped
// and counted; they never abort the run.
func (c *Classifier) Run(items []Item) ([]Episode, Stats) {
	stats := Stats{ItemsTotal: len(items)}
	registeredBefore := c.registry.AutoRegistered()

	var episodes []Episode
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" || c.isConfirmation(title) {
			stats.Skipped++
			slog.Debug("Item skipped", "guid", item.GUID, "title", item.Title)
			continue
		}

		body := item.Body()
		if IsWeeklyNewsletter(body) {
			episodes = append(episodes, c.classifyNewsletter(item)...)
		} else {
			episodes = append(episodes, c.classifySingle(item, title))
		}
	}

	for _, ep := range episodes {
		if ep.Show == c.registry.Unsorted() {
			stats.Unsorted++
		}
	}
	stats.Episodes = len(episodes)
	stats.AutoRegistered = c.registry.AutoRegistered() - registeredBefore

	return episodes, stats
}

// classifyNewsletter splits a weekly digest issue into one episode per
// show block.
func (c *Classifier) classifyNewsletter(item Item) []Episode {
	blocks := ExtractShowBlocks(item.Body())
	episodes := make([]Episode, 0, len(blocks))

	for idx, block := range blocks {
		show, title := c.resolveHeading(block.Title)
		description := timetext.Annotate(c.sanitizer.Run(block.Body), block.Day, c.offsetHours)

		episodes = append(episodes, Episode{
			Show:        show,
			Title:       title,
			Description: description,
			Link:        item.Link,
			GUID:        fmt.Sprintf("%s-%d-%s", item.GUID, idx, show.Slug),
			PublishedAt: c.publishedAt(item),
			AirDay:      block.Day,
			SourceGUID:  item.GUID,
		})
	}

	return episodes
}

// resolveHeading maps a newsletter block heading to its show, using
// the same precedence as single-item titles. Headings are show names
// by construction, so an unknown plain heading still auto-registers
// instead of landing in unsorted. A decorated heading like
// "Dimension 20: Never Stop Blowing Up" files under the known show
// with the remainder as the episode title.
func (c *Classifier) resolveHeading(heading string) (*shows.Show, string) {
	showPart, rest, split := splitTitle(heading)
	if split {
		if show := c.registry.Find(showPart); show != nil {
			return show, rest
		}
	}
	if show := c.registry.Lookup(heading); show != nil {
		return show, heading
	}
	if split {
		if show := c.registry.Resolve(showPart); show != c.registry.Unsorted() {
			return show, rest
		}
	}
	return c.registry.Resolve(heading), heading
}

// classifySingle handles the common case of one announcement per item.
// Show resolution precedence: a delimiter capture naming a known show,
// then a known alias anywhere in the title, then auto-registration of
// a plausible delimiter capture, then the unsorted sentinel.
func (c *Classifier) classifySingle(item Item, title string) Episode {
	show := c.registry.Unsorted()
	episodeTitle := title

	showPart, rest, split := splitTitle(title)
	switch {
	case split && c.registry.Find(showPart) != nil:
		show = c.registry.Find(showPart)
		episodeTitle = rest
	case c.registry.Lookup(title) != nil:
		// Alert-style title; the show name is buried mid-sentence, so
		// the full title is kept.
		show = c.registry.Lookup(title)
	case split:
		if resolved := c.registry.Resolve(showPart); resolved != c.registry.Unsorted() {
			show = resolved
			episodeTitle = rest
		}
	}

	description := timetext.Annotate(c.sanitizer.Run(item.Body()), "", c.offsetHours)

	return Episode{
		Show:        show,
		Title:       episodeTitle,
		Description: description,
		Link:        item.Link,
		GUID:        item.GUID,
		PublishedAt: c.publishedAt(item),
		SourceGUID:  item.GUID,
	}
}

func (c *Classifier) publishedAt(item Item) time.Time {
	if c.shiftPubDate && c.offsetHours != 0 {
		return item.PublishedAt.Add(time.Duration(c.offsetHours) * time.Hour)
	}
	return item.PublishedAt
}

func (c *Classifier) isConfirmation(title string) bool {
	lower := strings.ToLower(title)
	for _, phrase := range confirmationPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// splitTitle applies the delimiter conventions in priority order and
// returns the show-name capture and the remaining episode title. Both
// must be non-empty for a convention to win.
func splitTitle(title string) (string, string, bool) {
	for _, pattern := range titlePatterns {
		m := pattern.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		showPart := strings.TrimSpace(m[1])
		rest := strings.TrimSpace(m[2])
		if showPart != "" && rest != "" {
			return showPart, rest, true
		}
	}
	return "", "", false
}
