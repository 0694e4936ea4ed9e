package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.Loading = true
			return m, fetchTrending(m.Client, "")
		case "f":
			m.Loading = true
			return m, triggerRefresh(m.Client)
		case "g":
			m.ShowGems = !m.ShowGems
			return m, nil
		}

	case TrendingMsg:
		m.Loading = false
		m.Err = msg.Err
		if msg.Err == nil {
			m.Result = msg.Result
			m.LastUpdated = time.Now()
		}
		return m, nil

	case RefreshMsg:
		if msg.Err != nil {
			m.Loading = false
			m.Err = msg.Err
			return m, nil
		}
		// Give the forced refresh a moment before re-fetching.
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return TickMsg{}
		})

	case TickMsg:
		return m, tea.Batch(fetchTrending(m.Client, ""), tickCmd())
	}

	return m, nil
}
