// Package ui renders lists, keys and status lines for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

// Printer writes themed output. Styling follows the output writer: a
// non-terminal writer gets plain text.
type Printer struct {
	Out io.Writer
	Err io.Writer

	theme Theme
	plain bool
	r     *lipgloss.Renderer
}

// NewPrinter builds a printer for the named theme. noColor forces plain
// output.
func NewPrinter(out, errw io.Writer, theme string, noColor bool) *Printer {
	t := ThemeByName(theme)
	return &Printer{
		Out:   out,
		Err:   errw,
		theme: t,
		plain: noColor || t.Plain,
		r:     lipgloss.NewRenderer(out),
	}
}

// Theme returns the active theme.
func (p *Printer) Theme() Theme { return p.theme }

func (p *Printer) fg(c lipgloss.TerminalColor) lipgloss.Style {
	st := p.r.NewStyle()
	if c != nil {
		st = st.Foreground(c)
	}
	return st
}

func (p *Printer) paint(st lipgloss.Style, s string) string {
	if p.plain {
		return s
	}
	return st.Render(s)
}

// KeyLabel renders a key name, highlighting important keys. Plain output
// marks them with the text marker instead.
func (p *Printer) KeyLabel(k *model.Key) string {
	if p.plain {
		return k.DisplayLabel(true)
	}
	if k.Important {
		return p.paint(p.fg(p.theme.ImportantKey).Bold(true), k.Label)
	}
	return p.paint(p.fg(p.theme.Key).Bold(true), k.Label)
}

func (p *Printer) keyName(name string) string {
	return p.paint(p.fg(p.theme.Key).Bold(true), name)
}

func (p *Printer) index(i any) string {
	return p.paint(p.fg(p.theme.Index).Bold(true), fmt.Sprint(i))
}

// ItemText renders an item, highlighting important ones. Plain output
// marks them with the text marker instead.
func (p *Printer) ItemText(it *model.Item, preview bool) string {
	text := it.Render(p.plain)
	if preview {
		text = it.Preview()
		if p.plain && it.Important {
			text = model.ImportantMarker + text
		}
	}
	if it.Important {
		return p.paint(p.fg(p.theme.Important).Bold(true), text)
	}
	return text
}

// RenderKey renders a key listing. maxItems <= 0 shows every item; preview
// also shortens long item texts.
func (p *Printer) RenderKey(k *model.Key, maxItems int, importantOnly, preview bool) string {
	var b strings.Builder
	b.WriteString(p.KeyLabel(k) + ":")
	shown, more := k.Window(maxItems, importantOnly)
	for _, m := range shown {
		fmt.Fprintf(&b, "\n    %s: %s", p.index(m.Index), p.ItemText(m.Item, preview))
	}
	if more > 0 {
		b.WriteString(p.paint(p.fg(p.theme.Muted), fmt.Sprintf("\n       (plus %d more...)", more)))
	}
	return b.String()
}

// PrintKey writes a key listing indented under the header.
func (p *Printer) PrintKey(k *model.Key, maxItems int, importantOnly, preview bool) {
	s := p.RenderKey(k, maxItems, importantOnly, preview)
	fmt.Fprintln(p.Out, "    "+strings.ReplaceAll(s, "\n", "\n    "))
}

// Status describes the outcome of one operation. Zero fields are left out.
type Status struct {
	Msg   string
	Key   string
	Index string
	Item  string
	// Failed routes the line to the error writer.
	Failed bool
	Err    error
}

// Status prints a status line: message, then [key] [index] item.
func (p *Printer) Status(s Status) {
	failed := s.Failed || s.Err != nil
	color := p.theme.Status
	w := p.Out
	if failed {
		color, w = p.theme.Error, p.Err
	}
	parts := []string{p.paint(p.fg(color), s.Msg)}
	if s.Key != "" {
		parts = append(parts, "["+p.keyName(s.Key)+"]")
	}
	if s.Index != "" {
		parts = append(parts, "["+p.index(s.Index)+"]")
	}
	if s.Item != "" {
		parts = append(parts, p.paint(p.fg(p.theme.Item), s.Item))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	if s.Err != nil {
		fmt.Fprintln(p.Err, p.paint(p.fg(p.theme.Error).Bold(true), s.Err.Error()))
	}
}

// OK prints a success line.
func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.Out, p.paint(p.fg(p.theme.Status), p.theme.SymOK+" "+msg))
}

// Fail prints a failure line to the error writer.
func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.Err, p.paint(p.fg(p.theme.Error).Bold(true), p.theme.SymFail+" "+msg))
}

// Warn renders a highlighted warning, used before confirmation prompts.
func (p *Printer) Warn(msg string) string {
	return p.paint(p.fg(p.theme.Error).Bold(true), msg)
}

// Muted renders secondary text.
func (p *Printer) Muted(msg string) string {
	return p.paint(p.fg(p.theme.Muted), msg)
}

// Header prints the line shown before most commands.
func (p *Printer) Header(l *model.List, fileExists bool, version string, candidates []string) {
	title := p.paint(p.r.NewStyle().Bold(true), "Todo")
	file := p.paint(p.fg(p.theme.Accent), l.Filename)
	switch {
	case l.Count() > 0:
		n := l.Count()
		unit := "items"
		if n == 1 {
			unit = "item"
		}
		fmt.Fprintf(p.Out, "%s list loaded from: %s (%s %s)\n", title, file, p.paint(p.fg(p.theme.Accent).Bold(true), fmt.Sprint(n)), unit)
	case fileExists:
		fmt.Fprintf(p.Out, "%s list loaded from: %s (%s)\n", title, file, p.paint(p.fg(p.theme.Accent).Bold(true), "Empty"))
	default:
		fmt.Fprintf(p.Out, "%s v. %s loaded. (%s)\n", title, version, p.paint(p.fg(p.theme.Accent).Bold(true), "No todo.lst found"))
		which := "this file"
		if len(candidates) > 1 {
			which = "one of these files"
		}
		fmt.Fprintf(p.Out, "Add an item, or create %s:\n", which)
		for _, c := range candidates {
			fmt.Fprintf(p.Out, "    %s\n", p.paint(p.fg(p.theme.Accent), c))
		}
	}
}
