package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/store/jsonstore"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// globalFlags are shared by every command.
type globalFlags struct {
	file       string
	global     bool
	debug      bool
	theme      string
	noColor    bool
	configPath string
}

// app is the state one command runs against.
type app struct {
	opt   Options
	flags globalFlags

	cfg        *config.Config
	log        *log.Logger
	out        *ui.Printer
	store      *jsonstore.Store
	list       *model.List
	fileExists bool
}

// setup loads configuration and the todo list. Flags override config.
func (a *app) setup(cmd *cobra.Command) error {
	a.log = log.NewWithOptions(a.opt.Stderr, log.Options{Prefix: "tada", Level: log.WarnLevel})
	a.out = ui.NewPrinter(a.opt.Stdout, a.opt.Stderr, config.DefaultTheme, a.flags.noColor)

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		a.out.Status(statusErr("Unable to load the configuration:", err))
		return errReported
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = a.flags.file
	}
	if flags.Changed("theme") {
		cfg.Theme = strings.ToLower(a.flags.theme)
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.flags.noColor
	}
	if flags.Changed("debug") {
		cfg.Debug = a.flags.debug
	}
	if err := cfg.Validate(); err != nil {
		a.out.Status(statusErr("Invalid option:", err))
		return errReported
	}
	a.cfg = cfg
	if cfg.Debug {
		a.log.SetLevel(log.DebugLevel)
	}
	a.out = ui.NewPrinter(a.opt.Stdout, a.opt.Stderr, cfg.Theme, cfg.NoColor)
	a.store = jsonstore.New(cfg.BackupSuffix, a.log)

	path := cfg.ResolveFile(a.opt.Dir, a.flags.global)
	a.log.Debug("using todo file", "path", path, "command", cmd.Name())
	return a.load(path)
}

func (a *app) load(path string) error {
	l, err := a.store.Load(path)
	switch {
	case err == nil:
		a.list, a.fileExists = l, true
		return nil
	case errors.Is(err, model.ErrNoFile):
		a.log.Debug("no file exists", "path", path)
		a.list = model.NewList()
		a.list.Filename = path
		return nil
	case errors.Is(err, model.ErrParse):
		a.out.Status(statusErr("The todo.lst couldn't be loaded!", err))
	default:
		a.out.Status(statusErr("There was an error while loading the list:", err))
	}
	return errReported
}

// candidates lists the files a first run could use.
func (a *app) candidates() []string {
	files := []string{a.cfg.GlobalFile}
	if local := filepath.Join(a.opt.Dir, config.ListFileName); local != a.cfg.GlobalFile {
		files = append(files, local)
	}
	sort.Strings(files)
	return files
}

func (a *app) header() {
	a.out.Header(a.list, a.fileExists, Version, a.candidates())
}

// save writes the list and reports how many items were saved.
func (a *app) save() error {
	n, err := a.store.Save(a.list, "")
	if err != nil {
		a.out.Status(statusErr("Unable to save items!", err))
		return errReported
	}
	a.fileExists = true
	if n > 0 {
		a.out.Status(ui.Status{Msg: "Items saved:", Index: fmt.Sprint(n)})
	} else {
		a.out.Status(ui.Status{Msg: "Items saved. (list is blank)"})
	}
	return nil
}

// confirmerFor answers for the user when yes is set.
func (a *app) confirmerFor(yes bool) tui.Confirmer {
	if yes {
		return tui.Yes{}
	}
	return a.confirmer()
}

func (a *app) confirmer() tui.Confirmer {
	if a.opt.Confirmer != nil {
		return a.opt.Confirmer
	}
	if f, ok := a.opt.Stdin.(*os.File); ok && isTerminal(f) {
		return tui.KeyConfirmer{In: f, Out: a.opt.Stdout}
	}
	return tui.NewLineConfirmer(a.opt.Stdin, a.opt.Stdout)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// confirm prints warn, when set, then asks c. The warning is skipped when
// nobody is asked.
func (a *app) confirm(c tui.Confirmer, question, warn string) bool {
	if _, auto := c.(tui.Yes); !auto && warn != "" {
		fmt.Fprintf(a.opt.Stdout, "\n%s\n", a.out.Warn(warn))
	}
	if !strings.HasSuffix(question, "?") {
		question += "?"
	}
	ok, err := c.Confirm(question)
	if err != nil {
		a.log.Debug("confirmation failed", "err", err)
		return false
	}
	return ok
}

// key looks a key up, reporting a missing one.
func (a *app) key(name string) (*model.Key, error) {
	k, ok := a.list.GetKey(name)
	if !ok {
		a.out.Status(ui.Status{Msg: "No key named:", Key: a.list.ResolveKeyName(name), Failed: true})
		return nil, errReported
	}
	return k, nil
}

// offerRemoveEmpty asks to delete k once it has no items left.
func (a *app) offerRemoveEmpty(k *model.Key) {
	if k.Len() > 0 {
		a.log.Debug("key still has items", "key", k.Label)
		return
	}
	if !a.confirm(a.confirmer(), "Would you like to remove the key?", "This key is empty now: "+k.Label) {
		return
	}
	if err := a.list.DeleteKey(k.Label); err != nil {
		a.out.Status(statusErr("Unable to remove key:", err))
		return
	}
	a.out.Status(ui.Status{Msg: "Removed:", Key: k.Label})
}

func statusErr(msg string, err error) ui.Status {
	return ui.Status{Msg: msg, Err: err}
}

func itemStatus(msg string, k *model.Key, index int, it *model.Item) ui.Status {
	return ui.Status{Msg: msg, Key: k.Label, Index: fmt.Sprint(index), Item: it.Render(true)}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
