package item

import (
	"strings"
	"time"
)

// Status classes drive bar coloring, legend rows and sort order.
const (
	StatusInProgress = "in-progress"
	StatusOnHold     = "on-hold"
	StatusOngoing    = "ongoing"
	StatusNotStarted = "not-started"
)

// Priority bucket keys, in display order.
const (
	BucketPrimary     = "primary"
	BucketSecondary   = "secondary"
	BucketConsidering = "considering"
	BucketOngoing     = "ongoing"
)

// Item is one normalized priority row. Items are immutable once built;
// display overrides are applied at render time and never written back.
type Item struct {
	ID         string
	Project    string
	Status     string
	Priority   string
	StartDate  *time.Time
	EndDate    *time.Time
	Notes      string
	Owner      string
	Function   string
	Capability []string
	Audience   string
	BC         bool
	IsStatic   bool
}

// StatusClass maps free-text status to one of the four status classes.
// Total over arbitrary input: anything unrecognized is not-started.
func StatusClass(status string) string {
	s := strings.ToLower(status)
	switch {
	case strings.Contains(s, "progress"):
		return StatusInProgress
	case strings.Contains(s, "hold"):
		return StatusOnHold
	case strings.Contains(s, "ongoing"):
		return StatusOngoing
	default:
		return StatusNotStarted
	}
}

// PriorityInfo describes one recognized priority digit.
type PriorityInfo struct {
	Key   string
	Label string
	Order int
}

var priorityTable = map[byte]PriorityInfo{
	'1': {BucketPrimary, "Primary", 1},
	'2': {BucketSecondary, "Secondary", 2},
	'3': {BucketConsidering, "Considering", 3},
	'4': {BucketOngoing, "Ongoing", 4},
	'5': {BucketOngoing, "As Needed", 5},
}

// PriorityBucket maps a free-text priority ("1. Primary", "4. Ongoing", ...)
// to its bucket key by leading digit. Unrecognized values land in ongoing.
func PriorityBucket(priority string) string {
	if priority != "" {
		if info, ok := priorityTable[priority[0]]; ok {
			return info.Key
		}
	}
	return BucketOngoing
}
