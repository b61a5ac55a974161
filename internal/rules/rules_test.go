package rules

import (
	"testing"
	"time"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		expected string
	}{
		{"exact key", "Negotiation Simulations", "Negotiation Training & Simulations"},
		{"substring match", "Q2 Negotiation Simulations (pilot)", "Negotiation Training & Simulations"},
		{"case-insensitive", "nsm design support", "Retail NSM Design Support"},
		{"no match", "Opportunity Page Refresh", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.project); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.project, got, tt.expected)
			}
		})
	}
}

func TestNotesOverridePrecedence(t *testing.T) {
	// A project whose name matches a name-keyed rule uses that rule even when
	// the original notes would match a content rule too.
	original := "Copilot, AskFred, KochGPT plus AgentForce Reinforcement and Support of New AI Launches"
	got := Notes("Market Dashboard Refresh", original)
	if got != "Includes SC & Market Leadership Dashboards, dependent on BE" {
		t.Errorf("name-keyed rule should win, got %q", got)
	}
}

func TestNotesContentRules(t *testing.T) {
	t.Run("content rule applies without name match", func(t *testing.T) {
		original := "Copilot, AskFred, KochGPT / AgentForce Reinforcement / Support of New AI Launches"
		got := Notes("Some Unrelated Project", original)
		if got != aiToolsNotes {
			t.Errorf("got %q", got)
		}
	})

	t.Run("all fragments required", func(t *testing.T) {
		got := Notes("Some Unrelated Project", "Support of New AI Launches only")
		if got != "" {
			t.Errorf("partial content match should not fire, got %q", got)
		}
	})

	t.Run("empty name-keyed value still short-circuits", func(t *testing.T) {
		// Genesys maps to the empty string, which means "original stands"
		// downstream, and content rules must not fire either.
		original := "Copilot, AskFred, KochGPT / AgentForce Reinforcement / Support of New AI Launches"
		got := Notes("GPXpress Genesys Enhancements", original)
		if got != "" {
			t.Errorf("got %q", got)
		}
	})
}

func TestEndDate(t *testing.T) {
	t.Run("literal replacement", func(t *testing.T) {
		orig := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		got := EndDate("Empower Negotiation Guides", &orig)
		if got == nil {
			t.Fatal("expected override")
		}
		want := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("extend by one month", func(t *testing.T) {
		orig := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		got := EndDate("DSR GP Academy Onboarding Cadence", &orig)
		if got == nil {
			t.Fatal("expected override")
		}
		want := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("extension requires an original date", func(t *testing.T) {
		if got := EndDate("DSR GP Academy Onboarding Cadence", nil); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("no rule", func(t *testing.T) {
		orig := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
		if got := EndDate("Opportunity Page Refresh", &orig); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestNotesVisibility(t *testing.T) {
	if !HideNotes("CPG SharePoint Management") {
		t.Error("expected notes hidden")
	}
	if HideNotes("Opportunity Page Refresh") {
		t.Error("expected notes visible")
	}
	if !ShowNotesInTraining("Strategic Selling") {
		t.Error("expected training re-enable")
	}
	if ShowNotesInTraining("Market Dashboard Refresh") {
		t.Error("unexpected training re-enable")
	}
}

func TestIsOutOfScope(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		expected bool
	}{
		{"slash form", "PBM/HR Supervisor Training", true},
		{"dash form", "PBM-HR Supervisor Training", true},
		{"space form", "PBM HR Supervisor Training", true},
		{"spaced slash form", "PBM / HR Supervisor Training", true},
		{"prefix of a listed entry matches bidirectionally", "PBM HR Supervisor", true},
		{"negotiation guides", "Empower Negotiation Guides", true},
		{"in scope", "Market Dashboard Refresh", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOutOfScope(tt.project); got != tt.expected {
				t.Errorf("IsOutOfScope(%q) = %v, want %v", tt.project, got, tt.expected)
			}
		})
	}
}
