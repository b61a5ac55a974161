package board

import (
	"strings"

	"prioboard/internal/item"
	"prioboard/internal/rules"
)

// FilterForView keeps the items that belong on a standard per-function view:
// function substring match, an end date on or after the window open, an owner
// matching any of the requested names, not BC, not out of scope.
func FilterForView(items []item.Item, functionName string, owners []string) []item.Item {
	var out []item.Item
	for _, it := range items {
		if !containsFold(it.Function, functionName) {
			continue
		}
		if it.EndDate == nil || it.EndDate.Before(WindowStart) {
			continue
		}
		if !matchesOwner(it.Owner, owners) {
			continue
		}
		if it.BC {
			continue
		}
		if rules.IsOutOfScope(it.Project) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// OutOfScopeForView surfaces deprioritized items for a view: only items the
// exclusion rule matched, still requiring function and owner, still dropping
// BC items, but ignoring the date cutoff entirely.
func OutOfScopeForView(items []item.Item, functionName string, owners []string) []item.Item {
	var out []item.Item
	for _, it := range items {
		if !rules.IsOutOfScope(it.Project) {
			continue
		}
		if !containsFold(it.Function, functionName) {
			continue
		}
		if !matchesOwner(it.Owner, owners) {
			continue
		}
		if it.BC {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesOwner(owner string, names []string) bool {
	if owner == "" {
		return false
	}
	lower := strings.ToLower(owner)
	for _, name := range names {
		if strings.Contains(lower, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	if haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
