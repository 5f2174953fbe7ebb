package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/tada/internal/config"
	"github.com/Makepad-fr/tada/internal/ui"
)

// quiet commands print machine-readable output and skip the header.
func quiet(cmd *cobra.Command, args []string) bool {
	switch cmd.Name() {
	case "json":
		return true
	case "export":
		return len(args) > 0 && args[0] == "-"
	}
	return false
}

func newRootCmd(a *app) *cobra.Command {
	var important bool
	root := &cobra.Command{
		Use:   "tada [KEY] [ITEM]",
		Short: "Keyed todo list manager",
		Long: `tada keeps todo items grouped under keys in a JSON file.

With no arguments every key is listed. A single argument naming a key lists
that key; anything else is added as a new item, optionally under KEY.

Items are found by index or by a case-insensitive regular expression.
The file used is --file, else ./todo.lst when it exists, else ~/.tada/todo.lst.`,
		Version:       Version,
		Args:          nargs(0, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			if !quiet(cmd, args) {
				a.header()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return a.listAll(false, false)
			case 1:
				if _, ok := a.list.GetKey(args[0]); ok {
					return a.listKey(args[0], false, false)
				}
				return a.add(args[0], "", important)
			}
			return a.add(args[1], args[0], important)
		},
	}
	root.SetVersionTemplate("Todo v. {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })
	root.Flags().BoolVarP(&important, "important", "i", false, "mark the added item as important")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.file, "file", "f", "", "use this todo file")
	pf.BoolVarP(&a.flags.global, "global", "g", false, "use the global todo file even when a local one exists")
	pf.BoolVarP(&a.flags.debug, "debug", "D", false, "print debug information")
	pf.StringVar(&a.flags.theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(ui.ThemeNames, "|")+")")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colors")
	pf.StringVar(&a.flags.configPath, "config", "", "config file (default ~/.tada/config.toml)")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newKeysCmd(a),
		newRemoveCmd(a),
		newRemoveKeyCmd(a),
		newMoveCmd(a),
		newPositionCmd(a),
		newShortcutCmd(a, "top", "Move an item to the top of its key"),
		newShortcutCmd(a, "bottom", "Move an item to the bottom of its key"),
		newShortcutCmd(a, "up", "Move an item up one position"),
		newShortcutCmd(a, "down", "Move an item down one position"),
		newRenameCmd(a),
		newSearchCmd(a),
		newMarkCmd(a, true),
		newMarkCmd(a, false),
		newJSONCmd(a),
		newExportCmd(a),
		newClearCmd(a),
		newBrowseCmd(a),
	)
	return root
}

// keyAndRest splits optional leading KEY arguments: with want+1 args the
// first one is the key.
func keyAndRest(args []string, want int) (string, []string) {
	if len(args) > want {
		return args[0], args[1:]
	}
	return "", args
}

func newAddCmd(a *app) *cobra.Command {
	var important bool
	cmd := &cobra.Command{
		Use:   "add [KEY] ITEM",
		Short: "Add an item",
		Args:  nargs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 1)
			return a.add(rest[0], key, important)
		},
	}
	cmd.Flags().BoolVarP(&important, "important", "i", false, "mark the item as important")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var important, preview bool
	cmd := &cobra.Command{
		Use:     "ls [KEY]",
		Aliases: []string{"list"},
		Short:   "List one key, or every key",
		Args:    nargs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.listKey(args[0], preview, important)
			}
			return a.listAll(preview, important)
		},
	}
	cmd.Flags().BoolVarP(&important, "important", "i", false, "only show important items")
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "show a few items per key, shortened")
	return cmd
}

func newKeysCmd(a *app) *cobra.Command {
	var important bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List key names with their item counts",
		Args:  nargs(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.listKeys(important)
		},
	}
	cmd.Flags().BoolVarP(&important, "important", "i", false, "only show important keys")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm [KEY] ITEM",
		Short: "Remove an item, by index or pattern",
		Long:  "Remove the first match of ITEM in KEY, or in every key when KEY is omitted.",
		Args:  nargs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 1)
			return a.remove(rest[0], key, a.confirmerFor(yes))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newRemoveKeyCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rmkey [KEY]",
		Short: "Remove a key and all of its items",
		Args:  nargs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := keyAndRest(args, 0)
			return a.removeKey(key, a.confirmerFor(yes))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv [KEY] ITEM NEWKEY",
		Short: "Move an item to another key",
		Args:  nargs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 2)
			return a.moveToKey(rest[0], rest[1], key)
		},
	}
}

func newPositionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pos [KEY] ITEM POSITION",
		Short: "Move an item to a new position in its key",
		Long:  "POSITION is an index, or one of top, bottom, up and down (the first letter is enough).",
		Args:  nargs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 2)
			return a.move(rest[0], rest[1], key)
		},
	}
}

func newShortcutCmd(a *app, target, short string) *cobra.Command {
	return &cobra.Command{
		Use:   target + " [KEY] ITEM",
		Short: short,
		Args:  nargs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 1)
			return a.move(rest[0], target, key)
		},
	}
}

func newRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [KEY] NEWNAME",
		Short: "Give a key another name",
		Args:  nargs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 1)
			return a.renameKey(rest[0], key)
		},
	}
}

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search [KEY] QUERY",
		Short: "Search items by index or pattern",
		Args:  nargs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rest := keyAndRest(args, 1)
			return a.search(rest[0], key)
		},
	}
}

func newMarkCmd(a *app, important bool) *cobra.Command {
	use, short := "mark", "Mark a key or an item as important"
	if !important {
		use, short = "unmark", "Mark a key or an item as unimportant"
	}
	return &cobra.Command{
		Use:   use + " [KEY] [ITEM]",
		Short: short,
		Long:  short + ". A single argument that is not a key name is searched for in every key.",
		Args:  nargs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.mark(args, important)
		},
	}
}

func newJSONCmd(a *app) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "json [KEY]",
		Short: "Print the list, or one key, as JSON",
		Args:  nargs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := keyAndRest(args, 0)
			return a.printJSON(key, asYAML)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE [KEY]",
		Short: "Merge a key into a JSON file",
		Long:  "Merge a key into a new or existing JSON file. A FILE of - prints the key instead.",
		Args:  nargs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 2 {
				key = args[1]
			}
			return a.export(args[0], key)
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every key and item",
		Args:  nargs(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.clear(a.confirmerFor(yes))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [KEY]",
		Short: "Browse and edit a key interactively",
		Args:  nargs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := keyAndRest(args, 0)
			return a.browse(key)
		},
	}
}
