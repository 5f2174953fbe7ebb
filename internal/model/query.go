package model

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Query selects items either by exact position or by a case-insensitive
// pattern matched against the item text.
type Query struct {
	raw     string
	index   int
	byIndex bool
	pattern *regexp.Regexp
}

// ParseQuery interprets s. Anything that parses as an integer is an index
// query, even when it would also be a valid pattern. Integers too large for
// an int are clamped, so they select nothing.
func ParseQuery(s string) (Query, error) {
	if s == "" {
		return Query{}, Errorf(ErrBadQuery, "empty query")
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil || errors.Is(err, strconv.ErrRange) {
		return Query{raw: s, index: n, byIndex: true}, nil
	}
	re, err := regexp.Compile("(?i)" + s)
	if err != nil {
		return Query{}, Wrap(ErrBadQuery, err, "invalid query: %s", s)
	}
	return Query{raw: s, pattern: re}, nil
}

// Index returns the position and true for an index query.
func (q Query) Index() (int, bool) { return q.index, q.byIndex }

// Matches reports whether the item at position i satisfies the query.
func (q Query) Matches(i int, it *Item) bool {
	if q.byIndex {
		return q.index == i
	}
	return q.pattern != nil && q.pattern.MatchString(it.Render(false))
}

func (q Query) String() string { return q.raw }
