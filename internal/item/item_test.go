package item

import "testing"

func TestStatusClass(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected string
	}{
		{"in progress", "In Progress", StatusInProgress},
		{"progress substring", "making good PROGRESS here", StatusInProgress},
		{"on hold", "On Hold", StatusOnHold},
		{"hold mixed case", "temporarily on HOLD", StatusOnHold},
		{"ongoing", "Ongoing", StatusOngoing},
		{"not started", "Not Started", StatusNotStarted},
		{"empty", "", StatusNotStarted},
		{"arbitrary text", "???", StatusNotStarted},
		{"progress wins over nothing", "in-progress", StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusClass(tt.status); got != tt.expected {
				t.Errorf("StatusClass(%q) = %q, want %q", tt.status, got, tt.expected)
			}
		})
	}
}

func TestPriorityBucket(t *testing.T) {
	tests := []struct {
		name     string
		priority string
		expected string
	}{
		{"primary", "1. Primary", BucketPrimary},
		{"secondary", "2. Secondary", BucketSecondary},
		{"considering", "3. Considering", BucketConsidering},
		{"ongoing", "4. Ongoing", BucketOngoing},
		{"as needed maps to ongoing", "5. As Needed", BucketOngoing},
		{"unknown digit", "9. Unknown", BucketOngoing},
		{"no digit", "Primary", BucketOngoing},
		{"empty", "", BucketOngoing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriorityBucket(tt.priority); got != tt.expected {
				t.Errorf("PriorityBucket(%q) = %q, want %q", tt.priority, got, tt.expected)
			}
		})
	}
}

// Every item lands in exactly one of the four buckets, whatever the input.
func TestPriorityBucketTotal(t *testing.T) {
	known := map[string]bool{
		BucketPrimary:     true,
		BucketSecondary:   true,
		BucketConsidering: true,
		BucketOngoing:     true,
	}
	inputs := []string{"", "1", "2x", "3. Considering", "42", "abc", "5. As Needed", "\x00"}
	for _, in := range inputs {
		if !known[PriorityBucket(in)] {
			t.Errorf("PriorityBucket(%q) = %q, not a known bucket", in, PriorityBucket(in))
		}
	}
}
