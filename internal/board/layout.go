package board

import "time"

// BarLayout is a timeline bar's horizontal placement, as percentages of the
// planning window.
type BarLayout struct {
	OffsetPct float64
	WidthPct  float64
}

// Layout maps a [start, end] interval onto the window. Absent dates clamp to
// the window bounds; an original start before the window open pins the bar to
// the left edge. Width never drops below 2% so zero-duration items stay
// visible.
func Layout(start, end *time.Time) BarLayout {
	effStart := WindowStart
	if start != nil && start.After(WindowStart) {
		effStart = *start
	}
	effEnd := WindowEnd
	if end != nil && end.Before(WindowEnd) {
		effEnd = *end
	}

	window := float64(WindowEnd.Sub(WindowStart))
	startPct := float64(effStart.Sub(WindowStart)) / window * 100
	endPct := float64(effEnd.Sub(WindowStart)) / window * 100

	if start != nil && start.Before(WindowStart) {
		startPct = 0
	}

	width := endPct - startPct
	if width < 2 {
		width = 2
	}
	return BarLayout{OffsetPct: startPct, WidthPct: width}
}
