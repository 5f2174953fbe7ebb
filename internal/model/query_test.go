package model

import (
	"errors"
	"math"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantIndex bool
		index     int
		wantErr   error
	}{
		{"integer", "3", true, 3, nil},
		{"padded integer", " 2 ", true, 2, nil},
		{"negative", "-1", true, -1, nil},
		{"pattern", "milk", false, 0, nil},
		{"integer wins over pattern", "10", true, 10, nil},
		{"huge integer", "99999999999999999999", true, math.MaxInt, nil},
		{"huge negative integer", "-99999999999999999999", true, math.MinInt, nil},
		{"empty", "", false, 0, ErrBadQuery},
		{"bad pattern", "(unclosed", false, 0, ErrBadQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := ParseQuery(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseQuery(%q) error: got %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuery(%q) failed: %v", tt.in, err)
			}
			idx, ok := q.Index()
			if ok != tt.wantIndex || idx != tt.index {
				t.Errorf("Index(): got (%d, %v), want (%d, %v)", idx, ok, tt.index, tt.wantIndex)
			}
		})
	}
}

func TestQueryMatchesIgnoresCase(t *testing.T) {
	q, err := ParseQuery("MILK")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	if !q.Matches(0, NewItem("buy milk", false)) {
		t.Error("expected case-insensitive match")
	}
	if q.Matches(0, NewItem("buy bread", false)) {
		t.Error("unexpected match")
	}
}

func TestHugeIndexMatchesNothing(t *testing.T) {
	k := NewKey("Work", false)
	k.Add("99999999999999999999 bottles", false)
	q, err := ParseQuery("99999999999999999999")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	if m, ok := k.Find(q); ok {
		t.Errorf("Find: got %+v, want no match", m)
	}
}
