// Package shows maintains the canonical show registry: display names,
// slugs, and the alias forms seen in newsletter titles.
package shows

import (
	"fmt"
	"log/slog"
	"strings"
)

// UnsortedSlug identifies the sentinel bucket for episodes whose show
// could not be determined.
const UnsortedSlug = "unsorted"

// CombinedSlug names the generated feed interleaving every show.
// Reserved so an auto-registered show can never claim it.
const CombinedSlug = "all-shows"

var reservedSlugs = map[string]bool{CombinedSlug: true}

const maxPlausibleNameLength = 80

// Show is a canonical show identity. Aliases hold the normalized raw
// forms that resolve to it.
type Show struct {
	Name    string
	Slug    string
	Aliases []string
}

// Builtin show table, seeded into every registry. Alias keys are the
// raw forms observed in newsletter titles.
var builtinShows = []struct {
	name    string
	aliases []string
}{
	{"Dimension 20", nil},
	{"Game Changer", nil},
	{"Um, Actually", []string{"um actually"}},
	{"Breaking News", nil},
	{"Rats Rent a Shop", nil},
	{"Very Important People", nil},
	{"Make Some Noise", nil},
	{"Total Forgiveness", nil},
	{"Adventuring Party", nil},
	{"Dirty Laundry", nil},
}

// Generic newsletter phrases that must never become shows.
var boilerplatePhrases = []string{
	"this week on dropout",
	"new episode",
	"now streaming",
	"premiere alert",
	"please confirm",
	"confirm your mailbox",
	"kill-the-newsletter.com",
	"unsubscribe",
}

// Registry resolves raw show names to canonical shows, auto-registering
// previously unseen but plausible names. Not safe for concurrent
// mutation; one run owns the registry at a time.
type Registry struct {
	shows      []*Show
	byAlias    map[string]*Show
	byTolerant map[string]*Show
	bySlug     map[string]*Show
	unsorted   *Show
	registered []*Show
}

// NewRegistry returns a registry seeded with the builtin show table.
func NewRegistry() *Registry {
	r := &Registry{
		byAlias:    make(map[string]*Show),
		byTolerant: make(map[string]*Show),
		bySlug:     make(map[string]*Show),
	}

	r.unsorted = &Show{Name: "Unsorted", Slug: UnsortedSlug}
	r.bySlug[UnsortedSlug] = r.unsorted

	for _, b := range builtinShows {
		r.Register(b.name, b.aliases...)
	}
	r.registered = nil

	return r
}

// Unsorted returns the sentinel show for unclassifiable episodes.
func (r *Registry) Unsorted() *Show {
	return r.unsorted
}

// Shows returns all canonical shows in registration order, excluding
// the unsorted sentinel.
func (r *Registry) Shows() []*Show {
	return r.shows
}

// Registered returns the shows added since the registry was seeded,
// in registration order. Used to persist auto-registrations.
func (r *Registry) Registered() []*Show {
	return r.registered
}

// AutoRegistered returns the number of shows added since seeding.
func (r *Registry) AutoRegistered() int {
	return len(r.registered)
}

// Register adds a canonical show with the given display name and any
// extra alias forms. The display name itself is always an alias.
// Registering a name whose alias already resolves returns the existing
// show unchanged.
func (r *Registry) Register(name string, aliases ...string) *Show {
	name = strings.TrimSpace(name)
	if existing := r.Find(name); existing != nil {
		for _, alias := range aliases {
			r.addAlias(existing, alias)
		}
		return existing
	}

	show := &Show{
		Name: name,
		Slug: r.uniqueSlug(Slugify(name)),
	}

	r.shows = append(r.shows, show)
	r.registered = append(r.registered, show)
	r.bySlug[show.Slug] = show
	r.addAlias(show, name)
	for _, alias := range aliases {
		r.addAlias(show, alias)
	}

	return show
}

// Find resolves a raw name through exact then tolerant alias matching.
// Returns nil when the name is unknown; never registers anything.
func (r *Registry) Find(rawName string) *Show {
	n := normalizeName(rawName)
	if n == "" {
		return nil
	}
	if show, ok := r.byAlias[n]; ok {
		return show
	}
	if show, ok := r.byTolerant[tolerantKey(n)]; ok {
		return show
	}
	return nil
}

// Resolve maps a raw name to a canonical show. Unknown but plausible
// names are registered on first sight; implausible names resolve to
// the unsorted sentinel.
func (r *Registry) Resolve(rawName string) *Show {
	if show := r.Find(rawName); show != nil {
		return show
	}

	if !plausibleName(rawName) {
		return r.unsorted
	}

	show := r.Register(strings.TrimSpace(rawName))
	slog.Debug("Auto-registered show", "name", show.Name, "slug", show.Slug)
	return show
}

// Lookup scans a full title for any known alias and returns the first
// show whose alias occurs as a substring. Handles alert-style titles
// where the show name is buried mid-sentence. Returns nil when no
// alias matches.
func (r *Registry) Lookup(title string) *Show {
	lower := strings.ToLower(title)
	for _, show := range r.shows {
		for _, alias := range show.Aliases {
			if strings.Contains(lower, alias) {
				return show
			}
		}
	}
	return nil
}

// BySlug returns the show registered under slug, or nil.
func (r *Registry) BySlug(slug string) *Show {
	return r.bySlug[slug]
}

func (r *Registry) addAlias(show *Show, raw string) {
	n := normalizeName(raw)
	if n == "" {
		return
	}
	if _, ok := r.byAlias[n]; !ok {
		r.byAlias[n] = show
		show.Aliases = append(show.Aliases, n)
	}
	if t := tolerantKey(n); t != "" {
		if _, ok := r.byTolerant[t]; !ok {
			r.byTolerant[t] = show
		}
	}
}

// uniqueSlug disambiguates slug collisions with a numeric suffix:
// the second "Foo Bar" variant becomes "foo-bar-2".
func (r *Registry) uniqueSlug(slug string) string {
	if slug == "" {
		slug = "show"
	}
	if _, taken := r.bySlug[slug]; !taken && !reservedSlugs[slug] {
		return slug
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if _, taken := r.bySlug[candidate]; !taken && !reservedSlugs[candidate] {
			return candidate
		}
	}
}

// normalizeName case-folds and collapses internal whitespace.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// tolerantKey reduces a normalized name further: leading article and
// punctuation dropped, "&" spelled out.
func tolerantKey(n string) string {
	n = strings.TrimPrefix(n, "the ")
	n = strings.ReplaceAll(n, "&", " and ")

	var b strings.Builder
	for _, r := range n {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// plausibleName reports whether a raw name looks like a show title
// rather than newsletter boilerplate.
func plausibleName(rawName string) bool {
	n := normalizeName(rawName)
	if n == "" || len(n) > maxPlausibleNameLength {
		return false
	}
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(n, phrase) {
			return false
		}
	}
	return true
}
