package model

import "strings"

// ImportantMarker prefixes the text of an important item in its string form.
const ImportantMarker = "** "

// previewLength caps the number of characters Preview keeps.
const previewLength = 75

// Item is a single todo entry.
type Item struct {
	Text      string
	Important bool
}

// NewItem builds an item. A text carrying ImportantMarker is stripped of it
// and the item is marked important regardless of the important argument.
func NewItem(text string, important bool) *Item {
	if strings.HasPrefix(text, ImportantMarker) {
		return &Item{Text: text[len(ImportantMarker):], Important: true}
	}
	return &Item{Text: text, Important: important}
}

// IsEmpty reports whether the item has no text.
func (i *Item) IsEmpty() bool { return i == nil || i.Text == "" }

// Render returns the item text, with ImportantMarker re-embedded for
// important items when marker is set.
func (i *Item) Render(marker bool) string {
	if i.IsEmpty() {
		return ""
	}
	if marker && i.Important {
		return ImportantMarker + i.Text
	}
	return i.Text
}

// Preview returns the first line of the text, cut to 75 characters, with
// "..." appended when anything was dropped.
func (i *Item) Preview() string {
	if i.IsEmpty() {
		return ""
	}
	s := i.Text
	if n := strings.IndexByte(s, '\n'); n >= 0 {
		s = s[:n]
	}
	if r := []rune(s); len(r) > previewLength {
		s = string(r[:previewLength])
	}
	if s != i.Text {
		s += "..."
	}
	return s
}

func (i *Item) String() string { return i.Render(false) }
