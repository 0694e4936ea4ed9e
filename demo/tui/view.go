package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("📰 NewsPulse Trending"))
	b.WriteString("\n\n")

	if m.Loading {
		b.WriteString(InfoStyle.Render("Loading..."))
		b.WriteString("\n\n")
	}

	if m.Err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.Err.Error()))
		b.WriteString("\n\n")
	}

	if m.Result != nil {
		counts := fmt.Sprintf("📊 Fetched: %d | Trending: %d | Hidden gems: %d",
			m.Result.Counts.Fetched, m.Result.Counts.Selected, m.Result.Counts.HiddenGems)
		b.WriteString(InfoStyle.Render(counts))
		b.WriteString("\n\n")

		for i, a := range m.Result.Trending {
			line := fmt.Sprintf("%2d. [%s %.2f] %s", i+1, heatBadge(a.Heat), a.Score, a.Title)
			b.WriteString(line)
			b.WriteString("\n")
			meta := a.Source
			if a.Category != "" {
				meta += " · " + a.Category
			}
			b.WriteString(InfoStyle.Render("      " + meta))
			b.WriteString("\n")
		}

		if m.ShowGems && len(m.Result.HiddenGems) > 0 {
			b.WriteString("\n")
			b.WriteString(GemStyle.Render("💎 Hidden gems"))
			b.WriteString("\n")
			for _, a := range m.Result.HiddenGems {
				b.WriteString(GemStyle.Render(fmt.Sprintf("   [%.2f] %s", a.Score, a.Title)))
				b.WriteString("\n")
			}
		}

		if !m.LastUpdated.IsZero() {
			b.WriteString("\n")
			b.WriteString(InfoStyle.Render("Last updated: " + m.LastUpdated.Format("15:04:05")))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(HighlightStyle.Render("r: reload | f: force refresh | g: toggle gems | q: quit"))
	b.WriteString("\n")

	return b.String()
}
