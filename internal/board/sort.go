package board

import (
	"sort"
	"strings"
	"time"

	"prioboard/internal/item"
)

// Owner display priority per view. Unranked owners sort last. Views absent
// from this table have no owner preference at all.
var ownerRanks = map[string][]string{
	"gpxpress": {"Isabella", "Angela", "Olga"},
	"training": {"Cindy", "Nick", "Jamie"},
}

const unranked = 99

func ownerRank(tab, owner string) int {
	if owner == "" {
		return unranked
	}
	lower := strings.ToLower(owner)
	for i, name := range ownerRanks[tab] {
		if strings.Contains(lower, strings.ToLower(name)) {
			return i + 1
		}
	}
	return unranked
}

func statusRank(status string) int {
	switch item.StatusClass(status) {
	case item.StatusInProgress:
		return 1
	case item.StatusOnHold, item.StatusOngoing:
		return 2
	default:
		return 3
	}
}

func startOrWindow(it item.Item) time.Time {
	if it.StartDate != nil {
		return *it.StartDate
	}
	return WindowStart
}

// SortForView orders a priority bucket in place: view-specific owner rank,
// then status rank, then start date ascending. The sort is stable, so ties
// preserve input order.
func SortForView(tab string, items []item.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if a, b := ownerRank(tab, items[i].Owner), ownerRank(tab, items[j].Owner); a != b {
			return a < b
		}
		if a, b := statusRank(items[i].Status), statusRank(items[j].Status); a != b {
			return a < b
		}
		return startOrWindow(items[i]).Before(startOrWindow(items[j]))
	})
}

// SortByStart orders a person bucket by start date alone; each bucket is
// already a single person.
func SortByStart(items []item.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return startOrWindow(items[i]).Before(startOrWindow(items[j]))
	})
}
