// Package tui holds the interactive views: a browser for the items of one
// key and yes/no confirmation prompts.
package tui

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listItem adapts a key's item to bubbles/list.Item.
type listItem struct {
	index int
	item  *model.Item
}

func (i listItem) Title() string       { return i.item.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Text }

// itemDelegate renders one item per line: cursor, index, marker, preview.
type itemDelegate struct{ st styles }

func (d itemDelegate) Height() int                         { return 1 }
func (d itemDelegate) Spacing() int                        { return 0 }
func (d itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	mark := " "
	text := it.item.Preview()
	if it.item.Important {
		mark = d.st.important.Render(d.st.symImportant)
		text = d.st.important.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, d.st.index.Render(fmt.Sprintf("%3d", it.index)), mark, text)
}

type removed struct {
	index int
	item  *model.Item
}

// Browser edits the items of one key in place.
type Browser struct {
	key     *model.Key
	st      styles
	list    list.Model
	changed bool

	// shared input for add and edit
	ti        textinput.Model
	adding    bool
	editing   bool
	editIndex int
	inputErr  string

	// single-level undo of the last delete
	undo *removed

	width, height int
}

var (
	addBind       = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind      = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	deleteBind    = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	undoBind      = key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo"))
	importantBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "important"))
	moveUpBind    = key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move up"))
	moveDownBind  = key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move down"))
	moveTopBind   = key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "to top"))
	moveEndBind   = key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "to bottom"))
)

// NewBrowser builds a browser over k. Edits change k directly.
func NewBrowser(k *model.Key, th ui.Theme) Browser {
	st := newStyles(th)
	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.Styles.NoItems = st.muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	short := []key.Binding{addBind, editBind, deleteBind, importantBind}
	full := []key.Binding{addBind, editBind, deleteBind, undoBind, importantBind, moveUpBind, moveDownBind, moveTopBind, moveEndBind}
	l.AdditionalShortHelpKeys = func() []key.Binding { return short }
	l.AdditionalFullHelpKeys = func() []key.Binding { return full }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 500
	ti.PlaceholderStyle = st.muted

	b := Browser{key: k, st: st, list: l, ti: ti, width: 80, height: 24}
	b.refresh(0)
	b.resize()
	return b
}

// Changed reports whether any edit was made.
func (b Browser) Changed() bool { return b.changed }

// Key returns the key being browsed.
func (b Browser) Key() *model.Key { return b.key }

func (b *Browser) refresh(selected int) tea.Cmd {
	items := make([]list.Item, len(b.key.Items))
	for i, it := range b.key.Items {
		items[i] = listItem{index: i, item: it}
	}
	cmd := b.list.SetItems(items)
	b.list.Title = b.title()
	if n := len(items); n > 0 {
		b.list.Select(max(0, min(selected, n-1)))
	}
	return cmd
}

func (b *Browser) title() string {
	important := len(b.key.ImportantItems())
	return fmt.Sprintf("%s   %s %s",
		b.st.title.Render(b.key.Label),
		b.st.important.Render(b.st.symImportant),
		b.st.accent.Render(importanceBar(important, b.key.Len(), 10)),
	)
}

func (b *Browser) resize() {
	h := b.height - 4
	if b.adding || b.editing {
		h -= 4
	}
	b.list.SetSize(max(0, b.width-4), max(1, h))
}

func (b Browser) selected() (listItem, bool) {
	it, ok := b.list.SelectedItem().(listItem)
	return it, ok && it.index < b.key.Len()
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		b.width, b.height = ws.Width, ws.Height
		b.resize()
		return b, nil
	}
	if b.adding || b.editing {
		return b.updateInput(msg)
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok || b.list.FilterState() == list.Filtering {
		return b.forward(msg)
	}

	switch {
	case km.String() == "q" || km.String() == "esc" || km.String() == "ctrl+c":
		if b.list.FilterState() == list.FilterApplied && km.String() == "esc" {
			return b.forward(msg)
		}
		return b, tea.Quit
	case key.Matches(km, importantBind):
		if li, ok := b.selected(); ok {
			li.item.Important = !li.item.Important
			b.changed = true
			return b, b.refresh(b.list.Index())
		}
		return b, nil
	case key.Matches(km, deleteBind):
		if li, ok := b.selected(); ok {
			b.key.Items = slices.Delete(b.key.Items, li.index, li.index+1)
			b.undo = &removed{index: li.index, item: li.item}
			b.changed = true
			return b, b.refresh(li.index)
		}
		return b, nil
	case key.Matches(km, undoBind):
		if b.undo != nil {
			idx := min(b.undo.index, b.key.Len())
			b.key.Items = slices.Insert(b.key.Items, idx, b.undo.item)
			b.undo = nil
			b.changed = true
			return b, b.refresh(idx)
		}
		return b, nil
	case key.Matches(km, addBind):
		b.startInput(false, -1, "")
		return b, textinput.Blink
	case key.Matches(km, editBind):
		if li, ok := b.selected(); ok {
			b.startInput(true, li.index, li.item.Render(true))
			return b, textinput.Blink
		}
		return b, nil
	case key.Matches(km, moveUpBind):
		return b.move("up")
	case key.Matches(km, moveDownBind):
		return b.move("down")
	case key.Matches(km, moveTopBind):
		return b.move("top")
	case key.Matches(km, moveEndBind):
		return b.move("bottom")
	}
	return b.forward(msg)
}

func (b Browser) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// move reorders the selected item with the same rules as the mv command.
// Moves that would not change anything are ignored.
func (b Browser) move(target string) (tea.Model, tea.Cmd) {
	li, ok := b.selected()
	if !ok {
		return b, nil
	}
	q, err := model.ParseQuery(strconv.Itoa(li.index))
	if err != nil {
		return b, nil
	}
	mv, ok, err := b.key.Move(q, target)
	if !ok || err != nil {
		return b, nil
	}
	b.changed = true
	return b, b.refresh(mv.To)
}

func (b *Browser) startInput(edit bool, index int, value string) {
	b.adding, b.editing = !edit, edit
	b.editIndex = index
	b.inputErr = ""
	b.ti.SetValue(value)
	b.ti.CursorEnd()
	if edit {
		b.ti.Placeholder = "Edit item..."
	} else {
		b.ti.Placeholder = "New item..."
	}
	b.ti.Focus()
	b.resize()
}

func (b *Browser) stopInput() {
	b.adding, b.editing = false, false
	b.ti.SetValue("")
	b.ti.Blur()
	b.resize()
}

func (b Browser) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			b.stopInput()
			return b, nil
		case "enter":
			text := strings.TrimSpace(b.ti.Value())
			if text == "" {
				b.inputErr = "item text cannot be empty"
				return b, nil
			}
			sel := b.key.Len()
			it := model.NewItem(text, false)
			if b.editing && b.editIndex >= 0 && b.editIndex < b.key.Len() {
				sel = b.editIndex
				b.key.Items[sel].Text = it.Text
				b.key.Items[sel].Important = it.Important
			} else {
				b.key.AddItem(it)
			}
			b.changed = true
			b.stopInput()
			return b, b.refresh(sel)
		}
	}
	var cmd tea.Cmd
	b.ti, cmd = b.ti.Update(msg)
	return b, cmd
}

func (b Browser) View() string {
	content := b.list.View()
	if b.adding || b.editing {
		title := "Add item to " + b.key.Label
		if b.editing {
			title = fmt.Sprintf("Edit item %d", b.editIndex)
		}
		if b.inputErr != "" {
			title += ": " + b.st.errorText.Render(b.inputErr)
		}
		content += "\n" + b.st.inputBar.Render(title+"\n"+b.ti.View())
	}
	return b.st.frame.Render(content)
}

// Options configures Browse. Nil readers and writers mean the terminal.
type Options struct {
	Theme  ui.Theme
	Input  io.Reader
	Output io.Writer
}

// Browse runs the browser on k until the user quits and reports whether
// k was changed.
func Browse(k *model.Key, opt Options) (bool, error) {
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opt.Input != nil {
		popts = append(popts, tea.WithInput(opt.Input))
	}
	if opt.Output != nil {
		popts = append(popts, tea.WithOutput(opt.Output))
	}
	final, err := tea.NewProgram(NewBrowser(k, opt.Theme), popts...).Run()
	if err != nil {
		return false, err
	}
	b, ok := final.(Browser)
	return ok && b.changed, nil
}
