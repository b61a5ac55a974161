package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"prioboard/internal/board"
	"prioboard/internal/item"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func view(tab string) board.View {
	v, ok := board.Lookup(tab)
	if !ok {
		panic("unknown tab " + tab)
	}
	return v
}

func renderPage(t *testing.T, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestEmptyViewShowsPlaceholder(t *testing.T) {
	page := BuildPage(view("content"), nil, "", false)
	if page.EmptyMessage == "" {
		t.Fatal("expected empty-state message")
	}
	html := renderPage(t, page)
	if !strings.Contains(html, "No Content priorities found for 2026.") {
		t.Errorf("placeholder missing from output")
	}
}

func TestItemTextIsEscaped(t *testing.T) {
	items := []item.Item{{
		Project:  "Dashboard <script>alert(1)</script> Refresh 2",
		Status:   "In Progress",
		Priority: "1. Primary",
		EndDate:  date("2026-05-01"),
		Owner:    "Olivia",
		Function: "Content",
		Notes:    "<b>bold</b> move",
	}}

	html := renderPage(t, BuildPage(view("content"), items, "", false))
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("project name not escaped")
	}
	if strings.Contains(html, "<b>bold</b>") {
		t.Error("notes not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("escaped name missing entirely")
	}
}

func TestDisplayOverridesApplied(t *testing.T) {
	items := []item.Item{{
		Project:  "Market Dashboard Refresh (WIP)",
		Status:   "In Progress",
		Priority: "1. Primary",
		EndDate:  date("2026-05-01"),
		Owner:    "Lisa",
		Function: "Technology",
		Notes:    "dependent on BE timing",
	}}

	page := BuildPage(view("technology"), items, "", false)
	var row *ItemView
	for gi := range page.Groups {
		for ii := range page.Groups[gi].Items {
			if strings.Contains(page.Groups[gi].Items[ii].Name, "Market Dashboard") {
				row = &page.Groups[gi].Items[ii]
			}
		}
	}
	if row == nil {
		t.Fatal("row not found")
	}
	if strings.Contains(row.Name, "(") {
		t.Errorf("parenthetical not stripped: %q", row.Name)
	}
	if !strings.Contains(row.Notes, "SC & Market Leadership Dashboards") {
		t.Errorf("notes override not applied: %q", row.Notes)
	}
	if !row.HasDependency {
		t.Error("original notes name a dependency, flag should be set")
	}
}

func TestOwnerSlashHeuristic(t *testing.T) {
	row := buildItem("training", item.Item{Project: "x", Owner: "CindyNick"}, "primary")
	if row.Owner != "Cindy/Nick" {
		t.Errorf("owner = %q, want Cindy/Nick", row.Owner)
	}
}

func TestTrainingHidesNotesByDefault(t *testing.T) {
	hidden := buildItem("training", item.Item{Project: "Some Program", Notes: "internal detail"}, "primary")
	if hidden.Notes != "" {
		t.Errorf("training notes should be hidden, got %q", hidden.Notes)
	}

	shown := buildItem("training", item.Item{Project: "Strategic Selling", Notes: "kept"}, "primary")
	if shown.Notes == "" {
		t.Error("allow-listed training project should keep notes")
	}
}

func TestCapabilityTags(t *testing.T) {
	it := item.Item{Project: "x", Capability: []string{"End User - National", "CDL"}}

	hidden := buildItem("technology", it, "primary")
	if len(hidden.Capabilities) != 0 {
		t.Error("technology view shows no capability tags")
	}

	shown := buildItem("gpxpress", it, "primary")
	if len(shown.Capabilities) != 2 || shown.Capabilities[0] != "EU - National" {
		t.Errorf("capabilities = %v", shown.Capabilities)
	}
}

func TestStaticInjectionLeadsPrimary(t *testing.T) {
	items := []item.Item{{
		Project:  "Another Primary Thing",
		Status:   "In Progress",
		Priority: "1. Primary",
		StartDate: date("2026-01-01"),
		EndDate:  date("2026-05-01"),
		Owner:    "Lisa",
		Function: "Technology",
	}}

	page := BuildPage(view("technology"), items, "", false)
	if len(page.Groups) == 0 || len(page.Groups[0].Items) < 2 {
		t.Fatal("expected injected static item plus fetched item")
	}
	if !strings.Contains(page.Groups[0].Items[0].Name, "Salesforce AI") {
		t.Errorf("first primary item = %q, want the pinned Salesforce AI entry", page.Groups[0].Items[0].Name)
	}
}

func TestLegendFiltersToPresent(t *testing.T) {
	items := []item.Item{{
		Project:  "Only Secondary",
		Status:   "On Hold",
		Priority: "2. Secondary",
		EndDate:  date("2026-05-01"),
		Owner:    "Olivia",
		Function: "Content",
	}}

	page := BuildPage(view("content"), items, "", false)
	if len(page.PriorityLegend) != 1 || page.PriorityLegend[0].Class != "secondary" {
		t.Errorf("priority legend = %v", page.PriorityLegend)
	}
	if len(page.StatusLegend) != 1 || page.StatusLegend[0].Class != item.StatusOnHold {
		t.Errorf("status legend = %v", page.StatusLegend)
	}
}

func TestExportModeHidesControls(t *testing.T) {
	html := renderPage(t, BuildPage(view("gpxpress"), nil, "", true))
	if strings.Contains(html, "Download PDF") || strings.Contains(html, `class="tabs"`) {
		t.Error("export mode must hide header controls and tab bar")
	}
}

func TestSummaryTabRendersAccordion(t *testing.T) {
	page := BuildPage(view("summary"), nil, "", false)
	if len(page.Summary) == 0 {
		t.Fatal("summary view has no sections")
	}
	html := renderPage(t, page)
	if !strings.Contains(html, "<details class=\"accordion\"") {
		t.Error("accordion markup missing")
	}
	if strings.Contains(html, "<span>JAN</span>") {
		t.Error("summary views render no timeline")
	}
}

func TestFetchErrorSurfaces(t *testing.T) {
	html := renderPage(t, BuildPage(view("technology"), nil, "failed to fetch data: 502", false))
	if !strings.Contains(html, "failed to fetch data: 502") {
		t.Error("fetch error not surfaced")
	}
}

func TestOutOfScopeBoxOnFunctionViews(t *testing.T) {
	items := []item.Item{{
		Project:  "Empower Negotiation Guides",
		Status:   "On Hold",
		Priority: "3. Considering",
		EndDate:  date("2025-03-01"),
		Owner:    "Jamie",
		Function: "Training",
	}}

	page := BuildPage(view("training"), items, "", false)
	if !page.HasInfoBox {
		t.Fatal("function views carry the info box")
	}
	if len(page.OutOfScope) != 1 {
		t.Fatalf("out of scope = %v", page.OutOfScope)
	}

	static := BuildPage(view("gpxpress"), items, "", false)
	if static.HasInfoBox {
		t.Error("static views have no info box")
	}
}
