// Package board is the pure transform pipeline behind the dashboard: view
// definitions, filtering, grouping, ordering and timeline layout. Nothing in
// here touches the network or mutates items.
package board

import "time"

// The fixed half-year planning window every timeline maps onto. Items ending
// before the window open never qualify for standard filtering.
var (
	WindowStart = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	WindowEnd   = time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
)

// Kind selects a view's grouping and rendering rules. Views are a closed set;
// the renderer dispatches on Kind, never on tab names.
type Kind int

const (
	// KindSummary views show informational content and no timeline.
	KindSummary Kind = iota
	// KindPriority views group filtered (or static) items into priority buckets.
	KindPriority
	// KindCategory groups the training items by audience category.
	KindCategory
	// KindPerson groups a static list by literal owner name.
	KindPerson
)

// View is one named destination in the tab bar.
type View struct {
	Tab      string // URL tab identifier
	Title    string
	Kind     Kind
	Function string   // function-name filter for fetched rows
	Owners   []string // acceptable owner names, match-any
	Static   bool     // sourced from the static catalog, not the fetch
}

// Views lists every tab in display order.
var Views = []View{
	{Tab: "summary", Title: "Summary", Kind: KindSummary},
	{Tab: "technology", Title: "Technology", Kind: KindPriority, Function: "Technology", Owners: []string{"Lisa"}},
	{Tab: "strategy", Title: "Strategy", Kind: KindPriority, Function: "Strategy", Owners: []string{"Kate"}},
	{Tab: "content", Title: "Content", Kind: KindPriority, Function: "Content", Owners: []string{"Olivia"}},
	{Tab: "training", Title: "Training", Kind: KindCategory, Function: "Training", Owners: []string{"Jamie", "Cindy", "Nick"}},
	{Tab: "gpxpress", Title: "GPXpress", Kind: KindPriority, Function: "GPXpress", Owners: []string{"Olga", "Isabella", "Angela"}, Static: true},
	{Tab: "gpxpress-summary", Title: "GPXpress Summary", Kind: KindSummary},
	{Tab: "ld", Title: "L&D", Kind: KindPerson, Static: true},
}

// Lookup resolves a tab identifier.
func Lookup(tab string) (View, bool) {
	for _, v := range Views {
		if v.Tab == tab {
			return v, true
		}
	}
	return View{}, false
}

// ExportTabs lists the views captured by the snapshot exporter: every
// filter-bearing tab, excluding the summary pages and the L&D board.
func ExportTabs() []string {
	return []string{"technology", "strategy", "content", "training", "gpxpress"}
}
