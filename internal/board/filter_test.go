package board

import (
	"testing"
	"time"

	"prioboard/internal/item"
)

func date(value string) *time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return &t
}

func baseItem() item.Item {
	return item.Item{
		Project:  "Market Dashboard Refresh",
		Status:   "In Progress",
		Priority: "1. Primary",
		EndDate:  date("2026-05-01"),
		Owner:    "Lisa",
		Function: "Technology",
	}
}

func TestFilterForView(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*item.Item)
		kept   bool
	}{
		{"qualifying item", func(it *item.Item) {}, true},
		{"function mismatch", func(it *item.Item) { it.Function = "Strategy" }, false},
		{"function substring matches", func(it *item.Item) { it.Function = "Technology & Tools" }, true},
		{"missing end date", func(it *item.Item) { it.EndDate = nil }, false},
		{"end date before cutoff", func(it *item.Item) { it.EndDate = date("2025-12-31") }, false},
		{"end date on cutoff", func(it *item.Item) { it.EndDate = date("2026-01-01") }, true},
		{"missing owner", func(it *item.Item) { it.Owner = "" }, false},
		{"owner mismatch", func(it *item.Item) { it.Owner = "Kate" }, false},
		{"bc excluded regardless", func(it *item.Item) { it.BC = true }, false},
		{"out of scope excluded", func(it *item.Item) { it.Project = "PBM-HR Supervisor Training" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := baseItem()
			tt.mutate(&it)
			got := FilterForView([]item.Item{it}, "Technology", []string{"Lisa"})
			if kept := len(got) == 1; kept != tt.kept {
				t.Errorf("kept = %v, want %v", kept, tt.kept)
			}
		})
	}
}

func TestFilterForViewOwnerMatchAny(t *testing.T) {
	it := baseItem()
	it.Function = "Training"
	it.Owner = "Cindy/Nick"

	got := FilterForView([]item.Item{it}, "Training", []string{"Jamie", "Cindy", "Nick"})
	if len(got) != 1 {
		t.Fatal("slash-joined owner should match any requested name")
	}

	got = FilterForView([]item.Item{it}, "Training", []string{"Olivia"})
	if len(got) != 0 {
		t.Fatal("no requested owner matches")
	}
}

func TestOutOfScopeForView(t *testing.T) {
	inScope := baseItem()

	excluded := baseItem()
	excluded.Project = "Empower Negotiation Guides"
	excluded.EndDate = date("2025-06-01") // before the cutoff, still surfaced

	excludedBC := excluded
	excludedBC.BC = true

	got := OutOfScopeForView([]item.Item{inScope, excluded, excludedBC}, "Technology", []string{"Lisa"})
	if len(got) != 1 {
		t.Fatalf("expected exactly the out-of-scope non-BC item, got %d", len(got))
	}
	if got[0].Project != "Empower Negotiation Guides" {
		t.Errorf("got %q", got[0].Project)
	}
}
