package tui

import (
	"time"

	"newspulse/pipeline"

	tea "github.com/charmbracelet/bubbletea"
)

// Model represents the TUI client state (thin client over the API)
type Model struct {
	Client *APIClient

	Result      *pipeline.TrendingResult
	Err         error
	Loading     bool
	ShowGems    bool
	LastUpdated time.Time
}

// NewModel creates the initial model
func NewModel(apiURL string) Model {
	return Model{
		Client:  NewAPIClient(apiURL),
		Loading: true,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchTrending(m.Client, ""), tickCmd())
}
