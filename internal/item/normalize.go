package item

import (
	"fmt"
	"strings"
	"time"
)

// Raw Coda values arrive as plain scalars, rich-text objects ({"text": ...})
// or sequences of either. Every normalizer here is pure.

// CleanText flattens a raw value to plain text: sequences concatenate with no
// separator, code-fence backticks are stripped, and the result is trimmed.
// Absent input yields the empty string, never an error.
func CleanText(value any) string {
	text := flatten(value)
	text = strings.ReplaceAll(text, "```", "")
	text = strings.ReplaceAll(text, "`", "")
	return strings.TrimSpace(text)
}

func flatten(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		var b strings.Builder
		for _, elem := range v {
			b.WriteString(flatten(elem))
		}
		return b.String()
	case map[string]any:
		if text, ok := v["text"].(string); ok && text != "" {
			return text
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"1/2/2006",
}

// ParseDate applies the text rule, then parses a calendar date. Empty text
// means the field is absent; so does unparseable text. A bad date never
// propagates downstream as an invalid value.
func ParseDate(value any) *time.Time {
	text := CleanText(value)
	if text == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ParseBool passes literal booleans through; otherwise "true" and "yes"
// (case-insensitive) are true and everything else is false.
func ParseBool(value any) bool {
	if b, ok := value.(bool); ok {
		return b
	}
	text := strings.ToLower(CleanText(value))
	return text == "true" || text == "yes"
}

// ParseCapability maps a sequence element-wise through the text rule and
// drops empties; a scalar becomes a single-element list when non-empty.
func ParseCapability(value any) []string {
	if value == nil {
		return nil
	}
	if seq, ok := value.([]any); ok {
		var out []string
		for _, elem := range seq {
			if text := CleanText(elem); text != "" {
				out = append(out, text)
			}
		}
		return out
	}
	if text := CleanText(value); text != "" {
		return []string{text}
	}
	return nil
}

// FromRow builds exactly one Item from a raw row's column values.
func FromRow(id string, values map[string]any) Item {
	return Item{
		ID:         id,
		Project:    CleanText(values["Project"]),
		Status:     CleanText(values["Status"]),
		Priority:   CleanText(values["Priority"]),
		StartDate:  ParseDate(values["Start date"]),
		EndDate:    ParseDate(values["End date"]),
		Notes:      CleanText(values["Notes"]),
		Owner:      CleanText(values["SS&E Owner"]),
		BC:         ParseBool(values["BC"]),
		Function:   CleanText(values["SS&E Function"]),
		Capability: ParseCapability(values["Capability"]),
		Audience:   CleanText(values["Audience"]),
	}
}
