package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// Panel draws a framed box using the current theme.
func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.Out, p.PanelString(strings.Join(lines, "\n")))
}

// PanelString frames inner with the theme border.
func (p *Printer) PanelString(inner string) string {
	st := p.r.NewStyle().Border(p.theme.Border).Padding(0, 1)
	if !p.plain && p.theme.BorderColor != nil {
		st = st.BorderForeground(p.theme.BorderColor)
	}
	return st.Render(inner)
}

// KeyTable renders one line per key: padded name and item count.
func (p *Printer) KeyTable(keys []*model.Key) []string {
	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k.DisplayLabel(p.plain)))
	}
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		label := p.KeyLabel(k)
		pad := width - lipgloss.Width(k.DisplayLabel(p.plain))
		count := p.paint(p.fg(p.theme.Accent), fmt.Sprintf("%d items", k.Len()))
		lines = append(lines, fmt.Sprintf("%s%s [%s]", label, strings.Repeat(" ", pad), count))
	}
	return lines
}
