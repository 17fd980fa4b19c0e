package feed

import (
	"sort"

	"github.com/showsplit/showsplit/app/shows"
)

// Grouped holds classified episodes ordered newest-first, per show and
// combined. Shows preserves first-appearance order for deterministic
// output; the unsorted bucket is kept so classification gaps stay
// visible.
type Grouped struct {
	Shows    []*shows.Show
	ByShow   map[*shows.Show][]Episode
	Combined []Episode
}

type Grouper struct{}

func NewGrouper() *Grouper {
	return &Grouper{}
}

// Run groups episodes by canonical show and orders every sequence by
// publish time descending. The sort is stable: episodes with equal
// timestamps keep their original feed order.
func (g *Grouper) Run(episodes []Episode) *Grouped {
	grouped := &Grouped{
		ByShow:   make(map[*shows.Show][]Episode),
		Combined: make([]Episode, len(episodes)),
	}

	for _, ep := range episodes {
		if _, seen := grouped.ByShow[ep.Show]; !seen {
			grouped.Shows = append(grouped.Shows, ep.Show)
		}
		grouped.ByShow[ep.Show] = append(grouped.ByShow[ep.Show], ep)
	}

	copy(grouped.Combined, episodes)
	sortNewestFirst(grouped.Combined)
	for _, list := range grouped.ByShow {
		sortNewestFirst(list)
	}

	return grouped
}

func sortNewestFirst(episodes []Episode) {
	sort.SliceStable(episodes, func(i, j int) bool {
		return episodes[i].PublishedAt.After(episodes[j].PublishedAt)
	})
}
