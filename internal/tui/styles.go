package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

type styles struct {
	title, accent, muted, errorText lipgloss.Style
	important, index, selected      lipgloss.Style
	help, frame, inputBar           lipgloss.Style
	symImportant                    string
}

func fgStyle(c lipgloss.TerminalColor) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c != nil {
		st = st.Foreground(c)
	}
	return st
}

func newStyles(th ui.Theme) styles {
	frame := lipgloss.NewStyle().Border(th.Border).Padding(0, 1)
	if th.Plain {
		return styles{
			title: lipgloss.NewStyle(), accent: lipgloss.NewStyle(),
			muted: lipgloss.NewStyle(), errorText: lipgloss.NewStyle(),
			important: lipgloss.NewStyle(), index: lipgloss.NewStyle(),
			selected: lipgloss.NewStyle(), help: lipgloss.NewStyle(),
			frame: frame, inputBar: frame,
			symImportant: th.SymImportant,
		}
	}
	return styles{
		title:        lipgloss.NewStyle().Bold(true),
		accent:       fgStyle(th.Accent),
		muted:        lipgloss.NewStyle().Faint(true),
		errorText:    fgStyle(th.Error).Bold(true),
		important:    fgStyle(th.Important).Bold(true),
		index:        fgStyle(th.Index),
		selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		help:         lipgloss.NewStyle().Faint(true),
		frame:        frame.BorderForeground(th.BorderColor),
		inputBar:     frame.BorderForeground(th.BorderColor),
		symImportant: th.SymImportant,
	}
}

// importanceBar shows how many of total items are important.
func importanceBar(important, total, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if total > 0 {
		filled = min(width, important*width/total)
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", important, total)
}
