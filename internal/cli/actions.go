package cli

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

func (a *app) add(text, key string, important bool) error {
	a.log.Debug("add", "key", key, "important", important, "text", text)
	k, it, err := a.list.AddItem(text, key, important)
	if err != nil {
		a.out.Status(ui.Status{Msg: "No item to add!", Failed: true})
		return errReported
	}
	a.out.Status(itemStatus("Added item:", k, k.Len()-1, it))
	return a.save()
}

func (a *app) listAll(preview, importantOnly bool) error {
	keys := a.list.Keys()
	if len(keys) == 0 {
		fmt.Fprintf(a.opt.Stdout, "\n%s\n\n", a.out.Warn("No items saved yet."))
		return nil
	}
	var failed bool
	for _, k := range keys {
		if err := a.showKey(k, preview, importantOnly); err != nil {
			failed = true
			a.out.Status(ui.Status{Msg: "Error listing key:", Key: k.Label, Failed: true})
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func (a *app) listKey(name string, preview, importantOnly bool) error {
	k, err := a.key(name)
	if err != nil {
		return err
	}
	return a.showKey(k, preview, importantOnly)
}

func (a *app) showKey(k *model.Key, preview, importantOnly bool) error {
	if k.Len() == 0 {
		fmt.Fprintf(a.opt.Stdout, "    %s:\n", a.out.KeyLabel(k))
		a.out.Status(ui.Status{Msg: "        (no items in this key)", Failed: true})
		return errReported
	}
	if importantOnly && len(k.ImportantItems()) == 0 {
		return nil
	}
	maxItems := 0
	if preview {
		maxItems = a.cfg.PreviewItems
	}
	a.out.PrintKey(k, maxItems, importantOnly, preview)
	return nil
}

func (a *app) listKeys(importantOnly bool) error {
	keys := a.list.Keys()
	if len(keys) == 0 {
		a.out.Status(ui.Status{Msg: "No keys to list.", Failed: true})
		return errReported
	}
	var shown []*model.Key
	for _, k := range keys {
		if importantOnly && !k.Important {
			continue
		}
		shown = append(shown, k)
	}
	if len(shown) == 0 {
		fmt.Fprintln(a.opt.Stdout, a.out.Muted("(no important keys)"))
		return nil
	}
	a.out.Panel(a.out.KeyTable(shown))
	return nil
}

func (a *app) remove(query, key string, c tui.Confirmer) error {
	found, err := a.list.FindItem(query, key)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		where := key
		if where == "" {
			where = "(any key)"
		}
		a.out.Status(ui.Status{Msg: "Could not find:", Key: where, Item: query, Failed: true})
		if _, ok := a.list.GetKey(query); ok {
			a.out.Status(ui.Status{Msg: "Did you mean to use rmkey?"})
		}
		return errReported
	}

	lines := make([]string, len(found))
	for i, m := range found {
		lines[i] = fmt.Sprintf("    %s: %s", m.Key.Label, m.Item.Preview())
	}
	warn := fmt.Sprintf("This will remove %d %s:\n%s", len(found), plural(len(found), "item", "items"), strings.Join(lines, "\n"))
	question := "Are you sure you want to remove " + plural(len(found), "this item", "these items")
	if !a.confirm(c, question, warn) {
		a.out.Fail("User cancelled.")
		return errReported
	}

	for _, m := range found {
		q, err := model.ParseQuery(strconv.Itoa(m.Index))
		if err != nil {
			return err
		}
		if _, ok := m.Key.Remove(q); !ok {
			a.out.Status(ui.Status{Msg: "Could not find:", Key: m.Key.Label, Item: query, Failed: true})
			return errReported
		}
		a.out.Status(itemStatus("Removed:", m.Key, m.Index, m.Item))
		a.offerRemoveEmpty(m.Key)
	}
	return a.save()
}

func (a *app) removeKey(key string, c tui.Confirmer) error {
	k, err := a.key(key)
	if err != nil {
		return err
	}
	if n := k.Len(); n > 1 {
		warn := fmt.Sprintf("This will delete %d items!", n)
		if !a.confirm(c, "Are you sure you want to delete "+k.Label, warn) {
			a.out.Fail("User cancelled.")
			return errReported
		}
	}
	if err := a.list.DeleteKey(k.Label); err != nil {
		a.out.Status(statusErr("Unable to remove key:", err))
		return errReported
	}
	a.out.Status(ui.Status{Msg: "Removed:", Key: k.Label})
	return a.save()
}

func (a *app) moveToKey(query, newKey, key string) error {
	found, err := a.list.FindItem(query, key)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		a.out.Status(ui.Status{Msg: "Unable to find that item:", Item: query, Failed: true})
		return errReported
	}
	for _, m := range found {
		from := m.Key.Label
		mv, ok, err := a.list.MoveItemToKey(strconv.Itoa(m.Index), newKey, from)
		if err != nil {
			a.out.Status(statusErr(fmt.Sprintf("Unable to move item from %s to %s.", from, newKey), err))
			return errReported
		}
		keys := from + " -> " + newKey
		if !ok {
			a.out.Status(ui.Status{Msg: "Unable to do move:", Key: keys, Item: query, Failed: true})
			continue
		}
		a.out.Status(ui.Status{Msg: "Move item:", Key: from + " -> " + mv.To.Label, Item: mv.Item.Render(true)})
		a.offerRemoveEmpty(m.Key)
	}
	return a.save()
}

func (a *app) move(query, target, key string) error {
	if strings.TrimSpace(target) == "" {
		a.out.Status(ui.Status{Msg: "Invalid new position given:", Index: target, Failed: true})
		return errReported
	}
	k, err := a.key(key)
	if err != nil {
		return err
	}
	found, err := a.list.FindItem(query, k.Label)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		a.out.Status(ui.Status{Msg: "Unable to find that item:", Item: query, Failed: true})
		return errReported
	}
	from := found[0]

	mv, ok, err := a.list.MoveItem(query, target, k.Label)
	if err != nil {
		a.out.Status(ui.Status{
			Msg:   "Unable to move item:",
			Key:   k.Label,
			Index: fmt.Sprintf("%d -> %s", from.Index, target),
			Item:  from.Item.Render(true),
			Err:   err,
		})
		return errReported
	}
	if !ok {
		a.out.Status(ui.Status{Msg: "Unable to find that item:", Item: query, Failed: true})
		return errReported
	}
	a.out.Status(ui.Status{
		Msg:   "Moved:",
		Key:   mv.Key.Label,
		Index: fmt.Sprintf("%d -> %d", mv.From, mv.To),
		Item:  mv.Item.Render(true),
	})
	return a.save()
}

func (a *app) renameKey(newName, key string) error {
	old := a.list.ResolveKeyName(key)
	k, ok, err := a.list.RenameKey(newName, key)
	switch {
	case !ok:
		a.out.Status(ui.Status{Msg: "No key named:", Key: old, Failed: true})
		return errReported
	case err != nil:
		a.out.Status(ui.Status{Msg: "Unable to rename key:", Key: old, Err: err})
		return errReported
	}
	a.out.Status(ui.Status{Msg: "Renamed key:", Key: old + " -> " + k.Label})
	return a.save()
}

func (a *app) search(query, key string) error {
	var results []model.KeyMatches
	if key == "" {
		var err error
		if results, err = a.list.SearchItems(query, false); err != nil {
			return err
		}
	} else {
		k, err := a.key(key)
		if err != nil {
			return err
		}
		q, err := model.ParseQuery(query)
		if err != nil {
			return err
		}
		results = []model.KeyMatches{{Key: k.Label, Matches: k.Search(q, false)}}
	}

	total := 0
	for _, r := range results {
		k, _ := a.list.GetKey(r.Key)
		fmt.Fprintf(a.opt.Stdout, "%s:\n", a.out.KeyLabel(k))
		for _, m := range r.Matches {
			fmt.Fprintf(a.opt.Stdout, "    %d: %s\n", m.Index, a.out.ItemText(m.Item, false))
			total++
		}
	}
	a.out.Status(ui.Status{Msg: fmt.Sprintf("%d %s", total, plural(total, "result found.", "results found."))})
	if total == 0 {
		return errReported
	}
	return nil
}

// mark sets importance. Arguments are [KEY] [ITEM]; a lone argument that
// does not name a key is looked up as an item in every key.
func (a *app) mark(args []string, important bool) error {
	msg := "Marked as important:"
	if !important {
		msg = "Marked as unimportant:"
	}
	var key, query string
	switch len(args) {
	case 1:
		if _, ok := a.list.GetKey(args[0]); ok {
			key = args[0]
			break
		}
		found, err := a.list.FindItem(args[0], "")
		if err != nil {
			return err
		}
		if len(found) == 0 {
			a.out.Status(ui.Status{Msg: "Cannot find that item:", Item: args[0], Failed: true})
			return errReported
		}
		for _, m := range found {
			m.Item.Important = important
			a.out.Status(itemStatus(msg, m.Key, m.Index, m.Item))
		}
		return a.save()
	case 2:
		key, query = args[0], args[1]
	}

	k, err := a.key(key)
	if err != nil {
		return err
	}
	m, ok, err := a.list.SetImportant(query, k.Label, important)
	if err != nil {
		return err
	}
	if !ok {
		a.out.Status(ui.Status{Msg: "Unable to find that item:", Item: query, Failed: true})
		return errReported
	}
	if m.Item == nil {
		a.out.Status(ui.Status{Msg: msg, Key: k.Label})
	} else {
		a.out.Status(itemStatus(msg, k, m.Index, m.Item))
	}
	return a.save()
}

func (a *app) printJSON(key string, asYAML bool) error {
	var doc any = a.list.Document()
	if key != "" {
		k, err := a.key(key)
		if err != nil {
			return err
		}
		doc = k.Export()
	}
	b, err := encode(doc, asYAML)
	if err != nil {
		a.out.Status(statusErr("Unable to format JSON!", err))
		return errReported
	}
	_, err = a.opt.Stdout.Write(b)
	return err
}

func encode(doc any, asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(doc)
	}
	return jsonstore.Encode(doc)
}

func (a *app) export(filename, key string) error {
	k, err := a.key(key)
	if err != nil {
		return err
	}
	if filename == "-" {
		b, err := jsonstore.Encode(k.Export())
		if err != nil {
			return err
		}
		_, err = a.opt.Stdout.Write(b)
		return err
	}
	a.out.Status(ui.Status{Msg: fmt.Sprintf("Merging key into %s:", filename), Key: k.Label})
	if err := a.store.Merge(filename, k.Export()); err != nil {
		a.out.Status(statusErr("Unable to export:", err))
		return errReported
	}
	a.out.OK(fmt.Sprintf("Exported %d %s.", k.Len(), plural(k.Len(), "item", "items")))
	return nil
}

func (a *app) clear(c tui.Confirmer) error {
	warn := fmt.Sprintf("This will clear all %d items from the list.", a.list.Count())
	if !a.confirm(c, "Clear the entire todo list?", warn) {
		a.out.Fail("User cancelled.")
		return errReported
	}
	a.list.Clear()
	return a.save()
}

func (a *app) browse(key string) error {
	k, err := a.key(key)
	if err != nil {
		return err
	}
	theme := a.out.Theme()
	if a.cfg.NoColor {
		theme = ui.ThemeByName("mono")
	}
	changed, err := a.opt.Browse(k, tui.Options{
		Theme:  theme,
		Input:  a.opt.Stdin,
		Output: a.opt.Stdout,
	})
	if err != nil {
		return fmt.Errorf("browse %s: %w", k.Label, err)
	}
	if !changed {
		a.log.Debug("nothing changed", "key", k.Label)
		return nil
	}
	return a.save()
}
