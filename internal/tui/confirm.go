package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Confirmer asks a yes/no question. Anything but an explicit yes is no.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Yes answers every question with yes. It stands in for the user when a
// command runs with --yes.
type Yes struct{}

func (Yes) Confirm(string) (bool, error) { return true, nil }

// LineConfirmer reads one answer per line, for pipes and dumb terminals.
type LineConfirmer struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewLineConfirmer wraps in for line-based answers.
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{In: bufio.NewReader(in), Out: out}
}

func (c *LineConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.Out, "%s (y/N): ", prompt)
	line, err := c.In.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(c.Out)
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	return isYes(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

type confirmModel struct {
	prompt string
	answer bool
	done   bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "Y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n", "N", "enter", "esc", "q", "ctrl+c":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return fmt.Sprintf("%s (y/N): %s\n", m.prompt, answer)
	}
	return fmt.Sprintf("%s (y/N): ", m.prompt)
}

// KeyConfirmer answers on a single keypress in a terminal.
type KeyConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c KeyConfirmer) Confirm(prompt string) (bool, error) {
	var opts []tea.ProgramOption
	if c.In != nil {
		opts = append(opts, tea.WithInput(c.In))
	}
	if c.Out != nil {
		opts = append(opts, tea.WithOutput(c.Out))
	}
	final, err := tea.NewProgram(confirmModel{prompt: prompt}, opts...).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	return ok && m.answer, nil
}
