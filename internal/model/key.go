package model

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyMarker prefixes the label of an important key in its string form.
const KeyMarker = "*"

// Key is a labelled, ordered group of items.
type Key struct {
	Label     string
	Important bool
	Items     []*Item
}

// Match is an item found in a key, with its position.
type Match struct {
	Index int
	Item  *Item
}

// Move describes a successful reorder inside a key.
type Move struct {
	From int
	To   int
	Item *Item
}

// NewKey builds an empty key. A label carrying KeyMarker is stripped of it
// and the key is marked important.
func NewKey(label string, important bool) *Key {
	if strings.HasPrefix(label, KeyMarker) {
		return &Key{Label: label[len(KeyMarker):], Important: true}
	}
	return &Key{Label: label, Important: important}
}

// Len returns the number of items in the key.
func (k *Key) Len() int { return len(k.Items) }

// DisplayLabel returns the label, with KeyMarker for important keys when
// marker is set.
func (k *Key) DisplayLabel(marker bool) string {
	if marker && k.Important {
		return KeyMarker + k.Label
	}
	return k.Label
}

// Add appends a new item built from text.
func (k *Key) Add(text string, important bool) *Item {
	return k.AddItem(NewItem(text, important))
}

// AddItem appends it as-is and returns it.
func (k *Key) AddItem(it *Item) *Item {
	k.Items = append(k.Items, it)
	return it
}

// Find returns the first item matching q.
func (k *Key) Find(q Query) (Match, bool) {
	for i, it := range k.Items {
		if q.Matches(i, it) {
			return Match{Index: i, Item: it}, true
		}
	}
	return Match{}, false
}

// Search returns every item matching q, in order. With firstOnly it
// behaves like Find.
func (k *Key) Search(q Query, firstOnly bool) []Match {
	if firstOnly {
		if m, ok := k.Find(q); ok {
			return []Match{m}
		}
		return nil
	}
	var found []Match
	for i, it := range k.Items {
		if q.Matches(i, it) {
			found = append(found, Match{Index: i, Item: it})
		}
	}
	return found
}

// Remove deletes the first item matching q.
func (k *Key) Remove(q Query) (*Item, bool) {
	m, ok := k.Find(q)
	if !ok {
		return nil, false
	}
	k.removeAt(m.Index)
	return m.Item, true
}

// RemoveAll deletes every item matching q and returns them in order.
func (k *Key) RemoveAll(q Query) []*Item {
	var removed []*Item
	kept := k.Items[:0]
	for i, it := range k.Items {
		if q.Matches(i, it) {
			removed = append(removed, it)
			continue
		}
		kept = append(kept, it)
	}
	clear(k.Items[len(kept):])
	k.Items = kept
	return removed
}

// Move relocates the first item matching q to target, which is either an
// index or one of the shortcuts top, bottom, up and down (matched by their
// first letter). The bool is false when nothing matches q.
func (k *Key) Move(q Query, target string) (Move, bool, error) {
	m, ok := k.Find(q)
	if !ok {
		return Move{}, false, nil
	}
	to, err := resolvePosition(target, m.Index, k.Len())
	if err != nil {
		return Move{}, true, err
	}
	if to == m.Index {
		return Move{}, true, Errorf(ErrSameIndex, "item is already at index %d", to)
	}
	if to < 0 || to > k.Len()-1 {
		return Move{}, true, Errorf(ErrBadIndex, "index %d is out of bounds (0-%d)", to, k.Len()-1)
	}
	k.removeAt(m.Index)
	k.insertAt(to, m.Item)
	return Move{From: m.Index, To: to, Item: m.Item}, true, nil
}

// resolvePosition turns a move target into an index, relative to the
// current position and item count.
func resolvePosition(target string, current, count int) (int, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return 0, Errorf(ErrBadIndex, "no position given")
	}
	last := count - 1
	switch strings.ToLower(t)[0] {
	case 't':
		return 0, nil
	case 'b':
		return last, nil
	case 'u':
		return max(0, current-1), nil
	case 'd':
		return min(last, current+1), nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, Wrap(ErrBadIndex, err, "invalid position %q", target)
	}
	return n, nil
}

func (k *Key) removeAt(i int) {
	k.Items = append(k.Items[:i], k.Items[i+1:]...)
}

func (k *Key) insertAt(i int, it *Item) {
	k.Items = append(k.Items, nil)
	copy(k.Items[i+1:], k.Items[i:])
	k.Items[i] = it
}

// ImportantItems returns only the important items.
func (k *Key) ImportantItems() []*Item {
	var out []*Item
	for _, it := range k.Items {
		if it.Important {
			out = append(out, it)
		}
	}
	return out
}

// Window selects what a listing shows. Every item counts toward maxItems,
// shown or not; once the count passes maxItems the walk stops and more is
// the number of items left out. maxItems <= 0 means no limit.
func (k *Key) Window(maxItems int, importantOnly bool) (shown []Match, more int) {
	for i, it := range k.Items {
		if maxItems > 0 && i >= maxItems {
			return shown, k.Len() - maxItems
		}
		if importantOnly && !it.Important {
			continue
		}
		shown = append(shown, Match{Index: i, Item: it})
	}
	return shown, 0
}

// Format renders the key as plain text, capped at maxItems.
func (k *Key) Format(maxItems int, importantOnly bool) string {
	var b strings.Builder
	b.WriteString(k.Label + ":")
	shown, more := k.Window(maxItems, importantOnly)
	for _, m := range shown {
		fmt.Fprintf(&b, "\n    %d: %s", m.Index, m.Item.Render(false))
	}
	if more > 0 {
		fmt.Fprintf(&b, "\n       (plus %d more...)", more)
	}
	return b.String()
}

func (k *Key) String() string { return k.Format(0, false) }

// Entries maps each position to the item text with markers.
func (k *Key) Entries() map[string]string {
	out := make(map[string]string, len(k.Items))
	for i, it := range k.Items {
		out[strconv.Itoa(i)] = it.Render(true)
	}
	return out
}

// Export returns the key in the index-map document form, labelled.
func (k *Key) Export() map[string]map[string]string {
	return map[string]map[string]string{k.DisplayLabel(true): k.Entries()}
}
