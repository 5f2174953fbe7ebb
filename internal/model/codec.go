package model

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// Document returns the list in its persisted form: marked label to the
// ordered, marked item texts.
func (l *List) Document() map[string][]string {
	doc := make(map[string][]string, len(l.keys))
	for _, k := range l.keys {
		texts := make([]string, 0, k.Len())
		for _, it := range k.Items {
			texts = append(texts, it.Render(true))
		}
		doc[k.DisplayLabel(true)] = texts
	}
	return doc
}

// MarshalJSON encodes the list as an object of label to item array.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Document())
}

// UnmarshalJSON replaces the list content with a decoded document. Besides
// the current object-of-arrays form it accepts the legacy forms: a bare
// array (items of the default key) and per-key index maps.
func (l *List) UnmarshalJSON(data []byte) error {
	l.init()
	l.keys = make(map[string]*Key)

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '[' {
		var texts []string
		if err := json.Unmarshal(data, &texts); err != nil {
			return Wrap(ErrParse, err, "unable to parse legacy list")
		}
		k := l.keyFor(l.DefaultKey)
		for _, t := range texts {
			k.Add(t, false)
		}
	} else {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return Wrap(ErrParse, err, "unable to parse document")
		}
		labels := make([]string, 0, len(raw))
		for label := range raw {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			texts, err := decodeItems(raw[label])
			if err != nil {
				return Wrap(ErrParse, err, "unable to parse key %q", label)
			}
			k := l.keyFor(label)
			for _, t := range texts {
				k.Add(t, false)
			}
		}
	}

	if names := l.KeyNames(); len(names) > 0 {
		l.DefaultKey = names[0]
	}
	return nil
}

// decodeItems reads either an ordered array of texts or a legacy
// index-to-text object.
func decodeItems(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var byIndex map[string]string
		if err := json.Unmarshal(raw, &byIndex); err != nil {
			return nil, err
		}
		idx := make([]string, 0, len(byIndex))
		for i := range byIndex {
			idx = append(idx, i)
		}
		sort.Slice(idx, func(a, b int) bool { return lessIndex(idx[a], idx[b]) })
		texts := make([]string, 0, len(idx))
		for _, i := range idx {
			texts = append(texts, byIndex[i])
		}
		return texts, nil
	}
	var texts []string
	if err := json.Unmarshal(raw, &texts); err != nil {
		return nil, err
	}
	return texts, nil
}

// lessIndex orders integer index-map keys numerically, so "10" sorts after
// "9", ahead of any other keys, which sort lexicographically.
func lessIndex(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
