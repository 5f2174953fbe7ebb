package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string
	// Plain themes render without any styling.
	Plain bool

	Muted, Status, Error           lipgloss.TerminalColor
	Key, ImportantKey              lipgloss.TerminalColor
	Index, Item, Important, Accent lipgloss.TerminalColor
	Border                         lipgloss.Border
	BorderColor                    lipgloss.TerminalColor
	SymOK, SymFail, SymImportant   string
}

// ThemeNames lists the themes ThemeByName knows.
var ThemeNames = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme; unknown names get classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:   "neon",
			Muted:  lipgloss.Color("245"),
			Status: lipgloss.Color("51"), Error: lipgloss.Color("197"),
			Key: lipgloss.Color("87"), ImportantKey: lipgloss.Color("226"),
			Index: lipgloss.Color("213"), Item: lipgloss.Color("120"),
			Important: lipgloss.Color("207"), Accent: lipgloss.Color("51"),
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("201"),
			SymOK: "✔", SymFail: "✖", SymImportant: "◆",
		}
	case "mono":
		return Theme{
			Name:   "mono",
			Plain:  true,
			Border: lipgloss.NormalBorder(),
			SymOK:  "+", SymFail: "x", SymImportant: "*",
		}
	default:
		return Theme{
			Name:   "classic",
			Muted:  lipgloss.Color("8"),
			Status: lipgloss.Color("6"), Error: lipgloss.Color("9"),
			Key: lipgloss.Color("12"), ImportantKey: lipgloss.Color("11"),
			Index: lipgloss.Color("13"), Item: lipgloss.Color("2"),
			Important: lipgloss.Color("13"), Accent: lipgloss.Color("12"),
			Border: lipgloss.RoundedBorder(), BorderColor: lipgloss.Color("8"),
			SymOK: "✔", SymFail: "✖", SymImportant: "*",
		}
	}
}
