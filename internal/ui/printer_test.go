package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/Makepad-fr/tada/internal/model"
)

func plainPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errw bytes.Buffer
	return NewPrinter(&out, &errw, "classic", true), &out, &errw
}

func testKey() *model.Key {
	k := model.NewKey("*Work", false)
	k.Add("write report", false)
	k.Add("** call bob", false)
	k.Add("water plants", false)
	return k
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		in, want string
		plain    bool
	}{
		{"classic", "classic", false},
		{"NEON", "neon", false},
		{"mono", "mono", true},
		{"unknown", "classic", false},
		{"", "classic", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			th := ThemeByName(tt.in)
			if th.Name != tt.want {
				t.Errorf("Name: got %q, want %q", th.Name, tt.want)
			}
			if th.Plain != tt.plain {
				t.Errorf("Plain: got %v, want %v", th.Plain, tt.plain)
			}
		})
	}
}

func TestRenderKeyPlain(t *testing.T) {
	p, _, _ := plainPrinter()
	got := p.RenderKey(testKey(), 0, false, false)
	want := "*Work:\n    0: write report\n    1: ** call bob\n    2: water plants"
	if got != want {
		t.Errorf("RenderKey:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderKeyWindow(t *testing.T) {
	p, _, _ := plainPrinter()
	got := p.RenderKey(testKey(), 2, false, true)
	want := "*Work:\n    0: write report\n    1: ** call bob\n       (plus 1 more...)"
	if got != want {
		t.Errorf("RenderKey:\ngot  %q\nwant %q", got, want)
	}

	got = p.RenderKey(testKey(), 0, true, false)
	want = "*Work:\n    1: ** call bob"
	if got != want {
		t.Errorf("RenderKey important only:\ngot  %q\nwant %q", got, want)
	}
}

func TestRenderKeyPreviewShortens(t *testing.T) {
	p, _, _ := plainPrinter()
	k := model.NewKey("Notes", false)
	k.Add("first line\nsecond line", false)
	got := p.RenderKey(k, 0, false, true)
	if want := "Notes:\n    0: first line..."; got != want {
		t.Errorf("RenderKey preview: got %q, want %q", got, want)
	}
}

func TestPrintKeyIndents(t *testing.T) {
	p, out, _ := plainPrinter()
	p.PrintKey(testKey(), 1, false, false)
	want := "    *Work:\n        0: write report\n           (plus 2 more...)\n"
	if out.String() != want {
		t.Errorf("PrintKey:\ngot  %q\nwant %q", out.String(), want)
	}
}

func TestStatus(t *testing.T) {
	p, out, errw := plainPrinter()
	p.Status(Status{Msg: "Added item:", Key: "Work", Index: "3", Item: "buy milk"})
	if got, want := out.String(), "Added item: [Work] [3] buy milk\n"; got != want {
		t.Errorf("Status: got %q, want %q", got, want)
	}
	if errw.Len() != 0 {
		t.Errorf("unexpected stderr: %q", errw.String())
	}

	out.Reset()
	p.Status(Status{Msg: "No key found:", Key: "Home", Failed: true})
	if out.Len() != 0 {
		t.Errorf("failed status went to stdout: %q", out.String())
	}
	if got, want := errw.String(), "No key found: [Home]\n"; got != want {
		t.Errorf("failed Status: got %q, want %q", got, want)
	}

	errw.Reset()
	p.Status(Status{Msg: "Unable to move item:", Err: errors.New("boom")})
	if got, want := errw.String(), "Unable to move item:\nboom\n"; got != want {
		t.Errorf("error Status: got %q, want %q", got, want)
	}
}

func TestOKFail(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinter(&out, &errw, "mono", false)
	p.OK("saved")
	p.Fail("broken")
	if out.String() != "+ saved\n" {
		t.Errorf("OK: got %q", out.String())
	}
	if errw.String() != "x broken\n" {
		t.Errorf("Fail: got %q", errw.String())
	}
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name   string
		items  []string
		exists bool
		cands  []string
		want   string
	}{
		{
			name:   "items",
			items:  []string{"a", "b"},
			exists: true,
			want:   "Todo list loaded from: todo.lst (2 items)\n",
		},
		{
			name:   "one item",
			items:  []string{"a"},
			exists: true,
			want:   "Todo list loaded from: todo.lst (1 item)\n",
		},
		{
			name:   "empty file",
			exists: true,
			want:   "Todo list loaded from: todo.lst (Empty)\n",
		},
		{
			name:  "no file",
			cands: []string{"./todo.lst", "~/.tada/todo.lst"},
			want:  "Todo v. 1.0 loaded. (No todo.lst found)\nAdd an item, or create one of these files:\n    ./todo.lst\n    ~/.tada/todo.lst\n",
		},
		{
			name:  "no file single candidate",
			cands: []string{"only.lst"},
			want:  "Todo v. 1.0 loaded. (No todo.lst found)\nAdd an item, or create this file:\n    only.lst\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out, _ := plainPrinter()
			l := model.NewList()
			l.Filename = "todo.lst"
			for _, it := range tt.items {
				if _, _, err := l.AddItem(it, "", false); err != nil {
					t.Fatal(err)
				}
			}
			p.Header(l, tt.exists, "1.0", tt.cands)
			if out.String() != tt.want {
				t.Errorf("Header:\ngot  %q\nwant %q", out.String(), tt.want)
			}
		})
	}
}

func TestKeyTable(t *testing.T) {
	p, _, _ := plainPrinter()
	short := model.NewKey("a", false)
	short.Add("x", false)
	lines := p.KeyTable([]*model.Key{short, testKey()})
	want := []string{"a     [1 items]", "*Work [3 items]"}
	if len(lines) != len(want) {
		t.Fatalf("KeyTable: got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPanelFramesContent(t *testing.T) {
	p, _, _ := plainPrinter()
	got := p.PanelString("hello")
	if !strings.Contains(got, "hello") {
		t.Errorf("panel lost its content: %q", got)
	}
	if !strings.HasPrefix(got, "╭") {
		t.Errorf("classic panel should use a rounded border: %q", got)
	}
	if lines := strings.Split(got, "\n"); len(lines) != 3 {
		t.Errorf("panel: got %d lines, want 3", len(lines))
	}
}
