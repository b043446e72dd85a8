package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// frameWidth mirrors the 128px instrument display: narrow, fixed, monospace.
const frameWidth = 30

//nolint:gochecknoglobals // lipgloss styles are conventionally package-level.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("1")).
			Bold(true).
			Width(frameWidth).
			Padding(0, 1)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Width(frameWidth).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(frameWidth).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(frameWidth).
			Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	now := time.Now()
	var b strings.Builder
	screen := m.controller.ActiveScreen()
	b.WriteString(titleStyle.Render(screen.Title()))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(screen.View(now)))
	b.WriteString("\n")

	if msg, ok := m.controller.Status().Current(now); ok {
		b.WriteString(statusStyle.Render(msg))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.footerHints()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) footerHints() string {
	if m.controller.ActiveID() == ScreenCatalog {
		return "0-9 type · ↑↓ scan · c catalog\nenter target · q quit"
	}
	return "↑↓ scroll · b list · s save\nl load · enter search · q quit"
}
