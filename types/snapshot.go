package types

// DailySnapshot is one persisted row of the historical record: a keyword that
// trended on a given day for a given source. Rows are append-only; a day's
// rows are never mutated after the day closes.
type DailySnapshot struct {
	Keyword    string `json:"keyword"`
	Source     string `json:"source"`
	TrendDate  string `json:"trend_date"` // YYYY-MM-DD
	Traffic    string `json:"traffic,omitempty"`
	VideoCount int    `json:"video_count,omitempty"`
	Direction  string `json:"direction,omitempty"` // "up", "down", "flat"
}

// PeriodSummary aggregates DailySnapshot rows over a date range. Recurrence
// across days (Appearances), not the live trend score, is the ranking key for
// historical views. Derived on read, never persisted.
type PeriodSummary struct {
	Keyword     string   `json:"keyword"`
	Source      string   `json:"source"`
	Appearances int      `json:"appearances"`
	Dates       []string `json:"dates"`
}
