package model

import (
	"errors"
	"sort"
	"testing"
)

func newTestList(t *testing.T, doc map[string][]string) *List {
	t.Helper()
	l := NewList()
	for _, name := range sortedNames(doc) {
		for _, text := range doc[name] {
			if _, _, err := l.AddItem(text, name, false); err != nil {
				t.Fatalf("AddItem(%q, %q) failed: %v", text, name, err)
			}
		}
	}
	return l
}

func sortedNames(doc map[string][]string) []string {
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func TestAddItemToDefaultKey(t *testing.T) {
	l := NewList()
	k, it, err := l.AddItem("buy milk", "", false)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if k.Label != DefaultLabel {
		t.Errorf("key label: got %q, want %q", k.Label, DefaultLabel)
	}
	if it.Text != "buy milk" {
		t.Errorf("item text: got %q", it.Text)
	}
	if l.Count() != 1 {
		t.Errorf("Count(): got %d, want 1", l.Count())
	}
	if l.Len() != 1 {
		t.Errorf("Len(): got %d, want 1", l.Len())
	}
}

func TestAddItemEmpty(t *testing.T) {
	l := NewList()
	if _, _, err := l.AddItem("", "work", false); !errors.Is(err, ErrAdd) {
		t.Errorf("AddItem(empty): got %v, want ErrAdd", err)
	}
	if l.Len() != 0 {
		t.Errorf("empty add created a key")
	}
}

func TestAddItemCaseInsensitiveKey(t *testing.T) {
	l := NewList()
	l.AddItem("a", "Work", false)
	k, _, _ := l.AddItem("b", "WORK", true)
	if l.Len() != 1 {
		t.Fatalf("Len(): got %d, want 1", l.Len())
	}
	if k.Label != "Work" {
		t.Errorf("label: got %q, want Work", k.Label)
	}
	if !k.Items[1].Important {
		t.Error("second item should be important")
	}
}

func TestGetKey(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a"}})
	if _, ok := l.GetKey("WORK"); !ok {
		t.Error("GetKey(WORK): expected found")
	}
	if _, ok := l.GetKey("home"); ok {
		t.Error("GetKey(home): expected not found")
	}
}

func TestFindItemAcrossKeys(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a"}, "home": {"b"}})
	found, err := l.FindItem("b", "")
	if err != nil {
		t.Fatalf("FindItem failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("FindItem(b): got %d matches, want 1", len(found))
	}
	if found[0].Key.Label != "home" || found[0].Index != 0 || found[0].Item.Text != "b" {
		t.Errorf("FindItem(b): got %+v", found[0])
	}
}

func TestFindItemOneMatchPerKey(t *testing.T) {
	l := newTestList(t, map[string][]string{
		"work": {"milk run", "more milk"},
		"home": {"milk"},
		"gym":  {"squats"},
	})
	found, err := l.FindItem("milk", "")
	if err != nil {
		t.Fatalf("FindItem failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("FindItem(milk): got %d, want 2", len(found))
	}
	if found[0].Key.Label != "home" || found[1].Key.Label != "work" || found[1].Index != 0 {
		t.Errorf("FindItem(milk): got %+v", found)
	}

	scoped, _ := l.FindItem("milk", "work")
	if len(scoped) != 1 || scoped[0].Key.Label != "work" {
		t.Errorf("scoped FindItem: got %+v", scoped)
	}
	if missing, _ := l.FindItem("milk", "nope"); len(missing) != 0 {
		t.Errorf("FindItem in missing key: got %+v", missing)
	}
	if _, err := l.FindItem("", ""); !errors.Is(err, ErrBadQuery) {
		t.Errorf("FindItem(empty): got %v, want ErrBadQuery", err)
	}
}

func TestSearchItems(t *testing.T) {
	l := newTestList(t, map[string][]string{
		"work": {"milk run", "more milk"},
		"home": {"milk"},
	})
	results, err := l.SearchItems("milk", false)
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(results) != 2 || results[0].Key != "home" || len(results[1].Matches) != 2 {
		t.Errorf("SearchItems: got %+v", results)
	}
	first, _ := l.SearchItems("milk", true)
	if len(first) != 1 || first[0].Key != "home" {
		t.Errorf("SearchItems(firstOnly): got %+v", first)
	}
}

func TestMoveItem(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a", "b", "c"}})
	mv, ok, err := l.MoveItem("b", "top", "work")
	if err != nil || !ok {
		t.Fatalf("MoveItem: got (%v, %v)", ok, err)
	}
	if mv.Key.Label != "work" || mv.From != 1 || mv.To != 0 {
		t.Errorf("MoveItem result: got %+v", mv)
	}
	if _, _, err := l.MoveItem("b", "0", "work"); !errors.Is(err, ErrSameIndex) {
		t.Errorf("MoveItem same index: got %v", err)
	}
	if _, ok, _ := l.MoveItem("b", "0", "nope"); ok {
		t.Error("MoveItem in missing key: expected not found")
	}
}

func TestMoveItemToKey(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a", "** b"}})
	mv, ok, err := l.MoveItemToKey("b", "home", "work")
	if err != nil || !ok {
		t.Fatalf("MoveItemToKey: got (%v, %v)", ok, err)
	}
	if mv.From.Label != "work" || mv.To.Label != "home" || !mv.Item.Important {
		t.Errorf("MoveItemToKey result: got %+v", mv)
	}
	work, _ := l.GetKey("work")
	home, _ := l.GetKey("home")
	if work.Len() != 1 || home.Len() != 1 {
		t.Errorf("lengths: work=%d home=%d", work.Len(), home.Len())
	}

	if _, _, err := l.MoveItemToKey("a", "WORK", "work"); !errors.Is(err, ErrBadKey) {
		t.Errorf("MoveItemToKey same key: got %v, want ErrBadKey", err)
	}
	if _, ok, err := l.MoveItemToKey("zzz", "home", "work"); ok || err != nil {
		t.Errorf("MoveItemToKey missing item: got (%v, %v)", ok, err)
	}
}

func TestRemoveItem(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a", "b"}})
	it, ok, err := l.RemoveItem("0", "work")
	if err != nil || !ok || it.Text != "a" {
		t.Fatalf("RemoveItem: got (%v, %v, %v)", it, ok, err)
	}
	if l.Count() != 1 {
		t.Errorf("Count(): got %d, want 1", l.Count())
	}
}

func TestRenameKey(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a", "b"}, "home": {"c"}})
	k, ok, err := l.RenameKey("job", "work")
	if err != nil || !ok {
		t.Fatalf("RenameKey: got (%v, %v)", ok, err)
	}
	if k.Label != "job" {
		t.Errorf("label: got %q", k.Label)
	}
	if _, ok := l.GetKey("work"); ok {
		t.Error("old name still resolves")
	}
	job, ok := l.GetKey("job")
	if !ok || !equalStrings(texts(job), []string{"a", "b"}) {
		t.Errorf("GetKey(job): got %v", job)
	}

	if _, ok, _ := l.RenameKey("x", "missing"); ok {
		t.Error("RenameKey missing: expected not found")
	}
	if _, _, err := l.RenameKey("home", "job"); !errors.Is(err, ErrBadKey) {
		t.Errorf("RenameKey onto existing: got %v", err)
	}
	if _, _, err := l.RenameKey("job", "job"); !errors.Is(err, ErrBadKey) {
		t.Errorf("RenameKey to same name: got %v", err)
	}
	if k, _, err := l.RenameKey("Job", "job"); err != nil || k.Label != "Job" {
		t.Errorf("RenameKey case change: got (%v, %v)", k, err)
	}
}

func TestRenameKeyFollowsDefault(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a"}})
	l.DefaultKey = "work"
	if _, _, err := l.RenameKey("job", ""); err != nil {
		t.Fatalf("RenameKey failed: %v", err)
	}
	if l.DefaultKey != "job" {
		t.Errorf("DefaultKey: got %q, want job", l.DefaultKey)
	}
}

func TestDeleteKeyAndClear(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a"}, "home": {"b", "c"}})
	if err := l.DeleteKey("Work"); err != nil {
		t.Fatalf("DeleteKey failed: %v", err)
	}
	if err := l.DeleteKey("work"); !errors.Is(err, ErrBadKey) {
		t.Errorf("DeleteKey twice: got %v, want ErrBadKey", err)
	}
	if l.Count() != 2 {
		t.Errorf("Count(): got %d, want 2", l.Count())
	}
	l.Clear()
	if l.Len() != 0 || l.Count() != 0 {
		t.Errorf("after Clear: %d keys, %d items", l.Len(), l.Count())
	}
}

func TestSetImportant(t *testing.T) {
	l := newTestList(t, map[string][]string{"work": {"a", "b"}})
	if _, ok, _ := l.SetImportant("", "work", true); !ok {
		t.Fatal("SetImportant on key: not found")
	}
	k, _ := l.GetKey("work")
	if !k.Important {
		t.Error("key not marked important")
	}
	m, ok, err := l.SetImportant("b", "work", true)
	if err != nil || !ok || !m.Item.Important || m.Index != 1 {
		t.Errorf("SetImportant item: got (%+v, %v, %v)", m, ok, err)
	}
	if _, ok, _ := l.SetImportant("zzz", "work", true); ok {
		t.Error("SetImportant missing item: expected not found")
	}
}

func TestKeyNamesSorted(t *testing.T) {
	l := newTestList(t, map[string][]string{"b": {"1"}, "a": {"2"}, "C": {"3"}})
	if got, want := l.KeyNames(), []string{"C", "a", "b"}; !equalStrings(got, want) {
		t.Errorf("KeyNames(): got %v, want %v", got, want)
	}
}
