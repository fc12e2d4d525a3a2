// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package browse is an interactive, scrollable view of the ranked
// report for captures too large to eyeball in a terminal scrollback.
package browse

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/staranto/cachefxgo/internal/analyzer"
	"github.com/staranto/cachefxgo/internal/report"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type model struct {
	table table.Model
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return baseStyle.Render(m.table.View()) + "\n  ↑/↓ scroll · q quit\n"
}

// Run starts the interactive table over the ranked results and blocks
// until the user quits.
func Run(results []analyzer.Result) error {
	columns := []table.Column{
		{Title: "Savings", Width: 12},
		{Title: "Hit Rate", Width: 8},
		{Title: "Exec Time", Width: 10},
		{Title: "Operations", Width: 10},
		{Title: "Task Name", Width: 48},
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{
			report.FormatTime(r.TimeSavingsNanos),
			report.FormatHitRate(r.Task.CacheHitRate()),
			report.FormatTime(r.Task.AvgExecutionTimeNanos()),
			humanize.Comma(r.Task.TotalOperations()),
			r.Task.Name,
		})
	}

	height := len(rows)
	if height > 20 {
		height = 20
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	_, err := tea.NewProgram(model{table: t}).Run()
	return err
}
