// Package render builds view models from the item pipeline and renders them
// through html/template. All display overrides are applied here, at render
// time; the stored snapshot is never modified.
package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"prioboard/internal/board"
	"prioboard/internal/catalog"
	"prioboard/internal/item"
	"prioboard/internal/rules"
)

// Tab is one entry in the tab bar.
type Tab struct {
	Tab    string
	Title  string
	Active bool
}

// LegendEntry is one swatch in the legend strip.
type LegendEntry struct {
	Class string
	Label string
}

// ItemView is a fully resolved project row: overrides applied, bar placed,
// notes decided.
type ItemView struct {
	Name          string
	Owner         string
	Capabilities  []string
	Dot           string
	StatusClass   string
	Bar           board.BarLayout
	DateRange     string
	Notes         string
	HasDependency bool
}

// GroupView is a rendered bucket. Only the first group on a page carries the
// month and notes headers.
type GroupView struct {
	Label string
	Dot   string
	First bool
	Items []ItemView
}

// ScopeEntry is one deprioritized project listed in a view's info box.
type ScopeEntry struct {
	Project string
	Notes   string
}

// SummarySection is one accordion block on a summary page.
type SummarySection struct {
	Title string
	Body  string
}

// Page is the full template model for a single dashboard request.
type Page struct {
	Title          string
	Subtitle       string
	Tabs           []Tab
	View           board.View
	ExportMode     bool
	FetchErr       string
	Groups         []GroupView
	PriorityLegend []LegendEntry
	StatusLegend   []LegendEntry
	EmptyMessage   string
	Summary        []SummarySection
	HasInfoBox     bool
	OutOfScope     []ScopeEntry
	GeneratedAt    time.Time
}

var (
	parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
	ownerBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	euCapability  = regexp.MustCompile(`(?i)^End User\s*-\s*`)
)

var dependencySignals = []string{"depend", "pending", "waiting", "blocked"}

// Views that never show capability tags on project rows.
var hideCapabilityTabs = map[string]bool{
	"content": true, "technology": true, "training": true, "strategy": true,
}

// BuildPage assembles the view model for one tab from the current snapshot.
// fetchErr carries the last refresh failure, shown on every view until a
// refresh succeeds.
func BuildPage(view board.View, fetched []item.Item, fetchErr string, exportMode bool) Page {
	page := Page{
		Title:       "SS&E 2026 Priorities",
		Subtitle:    "January - June 2026",
		View:        view,
		ExportMode:  exportMode,
		FetchErr:    fetchErr,
		GeneratedAt: time.Now(),
	}
	for _, v := range board.Views {
		page.Tabs = append(page.Tabs, Tab{Tab: v.Tab, Title: v.Title, Active: v.Tab == view.Tab})
	}

	switch view.Kind {
	case board.KindSummary:
		page.Summary = summaryFor(view.Tab)
		return page

	case board.KindPriority:
		var groups []board.Group
		if view.Static {
			items := append([]item.Item(nil), catalog.GPXpressItems...)
			board.SortForView(view.Tab, items)
			groups = board.GroupByPriority(items)
		} else {
			filtered := board.FilterForView(fetched, view.Function, view.Owners)
			board.SortForView(view.Tab, filtered)
			groups = board.GroupByPriority(filtered)
			injectStatic(view.Tab, groups)
		}
		page.Groups = buildGroups(view.Tab, groups)

	case board.KindCategory:
		filtered := board.FilterForView(fetched, view.Function, view.Owners)
		board.SortForView(view.Tab, filtered)
		// Static items trail their buckets, so they go in after the sort.
		filtered = append(filtered, catalog.TrainingEmpowerGuides, catalog.TrainingStrategicSelling)
		page.Groups = buildGroups(view.Tab, board.GroupByTrainingCategory(filtered))

	case board.KindPerson:
		groups := board.GroupByPerson(catalog.LDItems)
		for i := range groups {
			board.SortByStart(groups[i].Items)
		}
		page.Groups = buildGroups(view.Tab, groups)
	}

	buildLegend(&page)

	if len(page.Groups) == 0 {
		page.EmptyMessage = fmt.Sprintf("No %s priorities found for 2026.", view.Title)
	}

	// Function-filtered views surface their deprioritized projects in an
	// info box under the timeline.
	if view.Function != "" && !view.Static {
		page.HasInfoBox = true
		for _, it := range board.OutOfScopeForView(fetched, view.Function, view.Owners) {
			page.OutOfScope = append(page.OutOfScope, ScopeEntry{Project: it.Project, Notes: it.Notes})
		}
	}
	return page
}

// injectStatic prepends the pinned Salesforce AI item on the technology and
// strategy views. The pinned item leads the primary bucket regardless of sort.
func injectStatic(tab string, groups []board.Group) {
	switch tab {
	case "technology":
		groups[0].Items = append([]item.Item{catalog.TechnologySalesforceAI}, groups[0].Items...)
	case "strategy":
		groups[0].Items = append([]item.Item{catalog.StrategySalesforceAI}, groups[0].Items...)
	}
}

func buildGroups(tab string, groups []board.Group) []GroupView {
	var out []GroupView
	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		gv := GroupView{Label: g.Label, Dot: g.Dot, First: len(out) == 0}
		for _, it := range g.Items {
			gv.Items = append(gv.Items, buildItem(tab, it, g.Dot))
		}
		out = append(out, gv)
	}
	return out
}

// buildItem resolves a single project row: display-name and end-date
// overrides, the owner separator heuristic, capability tags, the notes
// decision chain and the timeline bar.
func buildItem(tab string, it item.Item, dot string) ItemView {
	name := it.Project
	if override := rules.DisplayName(it.Project); override != "" {
		name = override
	}
	name = strings.TrimSpace(parenthetical.ReplaceAllString(name, ""))

	// Run-together multi-owner values get a slash at each case boundary,
	// e.g. "CindyNick" reads as "Cindy/Nick".
	owner := ownerBoundary.ReplaceAllString(it.Owner, "$1/$2")

	endDate := it.EndDate
	if override := rules.EndDate(it.Project, it.EndDate); override != nil {
		endDate = override
	}

	notes := it.Notes
	if override := rules.Notes(it.Project, it.Notes); override != "" {
		notes = override
	}
	if rules.HideNotes(it.Project) || (tab == "training" && !rules.ShowNotesInTraining(it.Project)) {
		notes = ""
	}

	hasDependency := false
	lowerNotes := strings.ToLower(it.Notes)
	for _, signal := range dependencySignals {
		if strings.Contains(lowerNotes, signal) {
			hasDependency = true
			break
		}
	}

	var caps []string
	if !hideCapabilityTabs[tab] {
		for _, c := range it.Capability {
			lower := strings.ToLower(c)
			if tab == "training" && (strings.Contains(lower, "all pro sales") || strings.Contains(lower, "allprosales")) {
				continue
			}
			caps = append(caps, euCapability.ReplaceAllString(c, "EU - "))
		}
	}

	return ItemView{
		Name:          name,
		Owner:         owner,
		Capabilities:  caps,
		Dot:           dot,
		StatusClass:   item.StatusClass(it.Status),
		Bar:           board.Layout(it.StartDate, endDate),
		DateRange:     formatDateRange(it.StartDate, endDate),
		Notes:         notes,
		HasDependency: hasDependency,
	}
}

func formatDateRange(start, end *time.Time) string {
	format := func(t *time.Time) string {
		if t == nil {
			return "?"
		}
		return t.Format("Jan 2")
	}
	return format(start) + " to " + format(end)
}

var priorityLegendOrder = []LegendEntry{
	{"primary", "Primary"},
	{"secondary", "Secondary"},
	{"considering", "Considering"},
	{"ongoing", "Ongoing / As Needed"},
}

var statusLegendOrder = []LegendEntry{
	{item.StatusInProgress, "In Progress"},
	{item.StatusOnHold, "On Hold"},
	{item.StatusOngoing, "Ongoing"},
	{item.StatusNotStarted, "Not Started"},
}

// buildLegend keeps only the legend entries actually present on the page.
// Priority swatches appear only on priority-grouped views.
func buildLegend(page *Page) {
	dots := map[string]bool{}
	statuses := map[string]bool{}
	for _, g := range page.Groups {
		dots[g.Dot] = true
		for _, it := range g.Items {
			statuses[it.StatusClass] = true
		}
	}

	if page.View.Kind == board.KindPriority {
		for _, e := range priorityLegendOrder {
			if dots[e.Class] {
				page.PriorityLegend = append(page.PriorityLegend, e)
			}
		}
	}
	for _, e := range statusLegendOrder {
		if statuses[e.Class] {
			page.StatusLegend = append(page.StatusLegend, e)
		}
	}
}

// Render writes the dashboard page.
func Render(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}
