package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fetchTrending creates a command to load the trending list
func fetchTrending(client *APIClient, category string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.GetTrending(category)
		return TrendingMsg{Result: result, Err: err}
	}
}

// triggerRefresh creates a command to force-refresh the server cache
func triggerRefresh(client *APIClient) tea.Cmd {
	return func() tea.Msg {
		return RefreshMsg{Err: client.TriggerRefresh()}
	}
}

// tickCmd re-fetches the list every 60s to pick up cache refreshes
func tickCmd() tea.Cmd {
	return tea.Tick(60*time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
