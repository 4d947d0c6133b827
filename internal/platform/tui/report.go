package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termplay/internal/registry"
	"github.com/vovakirdan/termplay/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// staticTable renders a non-interactive table: no row is highlighted and
// every row is visible.
func staticTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return frameStyle.Render(t.View())
}

// ScoreReport renders one game's leaderboard.
func ScoreReport(title string, entries []storage.ScoreEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORES - " + title))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(emptyStyle.Render("No scores recorded yet."))
		b.WriteString("\n")
		return b.String()
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 9},
		{Title: "Level", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 12},
	}
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Player,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			e.Duration.Round(time.Second).String(),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	b.WriteString(staticTable(columns, rows))
	b.WriteString("\n")
	return b.String()
}

// GameReport renders the catalog with each game's play statistics. Games
// missing from stats have never been scored.
func GameReport(descs []registry.Descriptor, stats map[string]*storage.GameStats) string {
	columns := []table.Column{
		{Title: "ID", Width: 12},
		{Title: "Title", Width: 12},
		{Title: "Games", Width: 6},
		{Title: "Best", Width: 8},
		{Title: "Description", Width: 44},
	}
	rows := make([]table.Row, len(descs))
	for i, d := range descs {
		played, best := "-", "-"
		if st, ok := stats[d.ID]; ok {
			played = fmt.Sprintf("%d", st.GamesCount)
			best = fmt.Sprintf("%d", st.HighScore)
		}
		rows[i] = table.Row{d.ID, d.Title, played, best, d.Description}
	}
	return titleStyle.Render("GAMES") + "\n" + staticTable(columns, rows) + "\n"
}
