package tui

import (
	"time"

	"newspulse/pipeline"
)

// TrendingMsg is sent when a trending fetch completes
type TrendingMsg struct {
	Result *pipeline.TrendingResult
	Err    error
}

// RefreshMsg is sent when a forced refresh was triggered
type RefreshMsg struct {
	Err error
}

// TickMsg is sent periodically to trigger a re-fetch
type TickMsg struct {
	Time time.Time
}
