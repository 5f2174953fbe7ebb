// Package model holds the todo list: items grouped under labelled keys.
package model

import (
	"sort"
	"strings"
)

// DefaultLabel names the key used when none is given and nothing has been
// loaded yet.
const DefaultLabel = "No Label"

// List maps labels to keys. Labels are unique regardless of case.
type List struct {
	// DefaultKey is used by every operation called without a key name.
	// Loading a non-empty document resets it to the first key name.
	DefaultKey string
	// Filename is where the list was loaded from and is saved to.
	Filename string

	keys map[string]*Key
}

// ListMatch is an item found somewhere in a list.
type ListMatch struct {
	Key   *Key
	Index int
	Item  *Item
}

// KeyMatches groups search results by key name.
type KeyMatches struct {
	Key     string
	Matches []Match
}

// ListMove describes a successful reorder inside one key.
type ListMove struct {
	Key *Key
	Move
}

// ListMoveToKey describes an item moved between keys.
type ListMoveToKey struct {
	From *Key
	To   *Key
	Item *Item
}

// NewList returns an empty list.
func NewList() *List {
	return &List{DefaultKey: DefaultLabel, keys: make(map[string]*Key)}
}

func (l *List) init() {
	if l.keys == nil {
		l.keys = make(map[string]*Key)
	}
	if l.DefaultKey == "" {
		l.DefaultKey = DefaultLabel
	}
}

func fold(name string) string { return strings.ToLower(name) }

// ResolveKeyName applies the default key to an empty name.
func (l *List) ResolveKeyName(name string) string {
	if name == "" {
		l.init()
		return l.DefaultKey
	}
	return name
}

// GetKey looks a key up by name, ignoring case. An empty name means the
// default key.
func (l *List) GetKey(name string) (*Key, bool) {
	k, ok := l.keys[fold(l.ResolveKeyName(name))]
	return k, ok
}

// put stores k under its own label.
func (l *List) put(k *Key) {
	l.init()
	l.keys[fold(k.Label)] = k
}

// keyFor returns the key named name, creating it when unseen.
func (l *List) keyFor(name string) *Key {
	name = l.ResolveKeyName(name)
	if k, ok := l.GetKey(strings.TrimPrefix(name, KeyMarker)); ok {
		if strings.HasPrefix(name, KeyMarker) {
			k.Important = true
		}
		return k
	}
	k := NewKey(name, false)
	if k.Label == "" {
		k.Label = l.DefaultKey
	}
	l.put(k)
	return k
}

// AddItem appends text to the named key, creating the key if needed.
func (l *List) AddItem(text, key string, important bool) (*Key, *Item, error) {
	if text == "" {
		return nil, nil, Errorf(ErrAdd, "no item to add")
	}
	k := l.keyFor(key)
	return k, k.Add(text, important), nil
}

// FindItem finds the first match of query in the named key, or when key is
// empty, the first match in every key.
func (l *List) FindItem(query, key string) ([]ListMatch, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}
	keys := l.Keys()
	if key != "" {
		k, ok := l.GetKey(key)
		if !ok {
			return nil, nil
		}
		keys = []*Key{k}
	}
	var found []ListMatch
	for _, k := range keys {
		if m, ok := k.Find(q); ok {
			found = append(found, ListMatch{Key: k, Index: m.Index, Item: m.Item})
		}
	}
	return found, nil
}

// SearchItems collects every match of query, key by key in name order.
// With firstOnly only the first key holding a match is reported.
func (l *List) SearchItems(query string, firstOnly bool) ([]KeyMatches, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}
	var results []KeyMatches
	for _, k := range l.Keys() {
		found := k.Search(q, false)
		if len(found) == 0 {
			continue
		}
		results = append(results, KeyMatches{Key: k.Label, Matches: found})
		if firstOnly {
			break
		}
	}
	return results, nil
}

// MoveItem reorders an item inside the named key. See Key.Move.
func (l *List) MoveItem(query, target, key string) (ListMove, bool, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return ListMove{}, false, err
	}
	k, ok := l.GetKey(key)
	if !ok {
		return ListMove{}, false, nil
	}
	mv, ok, err := k.Move(q, target)
	if !ok || err != nil {
		return ListMove{}, ok, err
	}
	return ListMove{Key: k, Move: mv}, true, nil
}

// MoveItemToKey moves the first match of query from key to newKey,
// creating newKey when it does not exist.
func (l *List) MoveItemToKey(query, newKey, key string) (ListMoveToKey, bool, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return ListMoveToKey{}, false, err
	}
	src, ok := l.GetKey(key)
	if !ok {
		return ListMoveToKey{}, false, nil
	}
	dst := l.ResolveKeyName(newKey)
	if fold(strings.TrimPrefix(dst, KeyMarker)) == fold(src.Label) {
		return ListMoveToKey{}, false, Errorf(ErrBadKey, "source key and destination key are the same")
	}
	removed, ok := src.Remove(q)
	if !ok {
		return ListMoveToKey{}, false, nil
	}
	to := l.keyFor(dst)
	it := to.Add(removed.Text, removed.Important)
	return ListMoveToKey{From: src, To: to, Item: it}, true, nil
}

// RemoveItem deletes the first match of query from the named key.
func (l *List) RemoveItem(query, key string) (*Item, bool, error) {
	q, err := ParseQuery(query)
	if err != nil {
		return nil, false, err
	}
	k, ok := l.GetKey(key)
	if !ok {
		return nil, false, nil
	}
	it, ok := k.Remove(q)
	return it, ok, nil
}

// RenameKey gives the named key a new label. The bool is false when the
// key does not exist.
func (l *List) RenameKey(newName, key string) (*Key, bool, error) {
	k, ok := l.GetKey(key)
	if !ok {
		return nil, false, nil
	}
	renamed := NewKey(newName, k.Important)
	switch {
	case renamed.Label == "":
		return nil, true, Errorf(ErrBadKey, "new key name is empty")
	case renamed.Label == k.Label:
		return nil, true, Errorf(ErrBadKey, "key already has that name: %s", k.Label)
	}
	if other, taken := l.GetKey(renamed.Label); taken && other != k {
		return nil, true, Errorf(ErrBadKey, "new key name already taken: %s", renamed.Label)
	}
	wasDefault := fold(l.DefaultKey) == fold(k.Label)
	delete(l.keys, fold(k.Label))
	k.Label = renamed.Label
	k.Important = renamed.Important
	l.put(k)
	if wasDefault {
		l.DefaultKey = k.Label
	}
	return k, true, nil
}

// DeleteKey removes a key and all of its items.
func (l *List) DeleteKey(key string) error {
	k, ok := l.GetKey(key)
	if !ok {
		return Errorf(ErrBadKey, "unable to remove key: %s", l.ResolveKeyName(key))
	}
	delete(l.keys, fold(k.Label))
	return nil
}

// SetImportant marks the named key, or with a query the first matching
// item in it, as important or not. The bool is false when nothing matched.
func (l *List) SetImportant(query, key string, important bool) (ListMatch, bool, error) {
	k, ok := l.GetKey(key)
	if !ok {
		return ListMatch{}, false, nil
	}
	if query == "" {
		k.Important = important
		return ListMatch{Key: k, Index: -1}, true, nil
	}
	q, err := ParseQuery(query)
	if err != nil {
		return ListMatch{}, false, err
	}
	m, ok := k.Find(q)
	if !ok {
		return ListMatch{}, false, nil
	}
	m.Item.Important = important
	return ListMatch{Key: k, Index: m.Index, Item: m.Item}, true, nil
}

// Clear removes every key.
func (l *List) Clear() {
	l.keys = make(map[string]*Key)
}

// Count returns the number of items across all keys.
func (l *List) Count() int {
	n := 0
	for _, k := range l.keys {
		n += k.Len()
	}
	return n
}

// Len returns the number of keys.
func (l *List) Len() int { return len(l.keys) }

// KeyNames returns every key label, sorted.
func (l *List) KeyNames() []string {
	names := make([]string, 0, len(l.keys))
	for _, k := range l.keys {
		names = append(names, k.Label)
	}
	sort.Strings(names)
	return names
}

// Keys returns every key, sorted by label.
func (l *List) Keys() []*Key {
	keys := make([]*Key, 0, len(l.keys))
	for _, k := range l.keys {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Label < keys[j].Label })
	return keys
}
