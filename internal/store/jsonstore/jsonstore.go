// Package jsonstore keeps a todo list in a single human-readable JSON file.
// No locking; fine for a local single-user CLI.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/tada/internal/model"
)

// DefaultBackupSuffix is appended to the file name of the pre-save copy.
const DefaultBackupSuffix = "~"

// Store loads and saves lists. The zero value is usable.
type Store struct {
	// BackupSuffix names the sibling copy taken before each save. Empty
	// means DefaultBackupSuffix.
	BackupSuffix string
	// Logger receives debug traces. Nil discards them.
	Logger *log.Logger
}

// New returns a store with the given backup suffix and logger.
func New(backupSuffix string, logger *log.Logger) *Store {
	return &Store{BackupSuffix: backupSuffix, Logger: logger}
}

func (s *Store) logger() *log.Logger {
	if s == nil || s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

func (s *Store) suffix() string {
	if s == nil || s.BackupSuffix == "" {
		return DefaultBackupSuffix
	}
	return s.BackupSuffix
}

// Load reads the list stored at path.
func (s *Store) Load(path string) (*model.List, error) {
	if path == "" {
		return nil, model.Errorf(model.ErrLoad, "no filename provided")
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, model.Errorf(model.ErrNoFile, "file doesn't exist: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, model.Wrap(model.ErrLoad, err, "unable to read: %s", path)
	}

	l := model.NewList()
	l.Filename = path
	if trimmed := bytes.TrimSpace(b); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		s.logger().Debug("empty todo file", "path", path)
		return l, nil
	}

	doc, err := decodeDocument(b)
	if err != nil {
		return nil, model.Wrap(model.ErrParse, err, "unable to parse JSON from: %s", path)
	}
	if problems := validate(doc); len(problems) > 0 {
		return nil, model.Errorf(model.ErrParse, "invalid todo file %s: %s", path, strings.Join(problems, "; "))
	}
	if err := json.Unmarshal(b, l); err != nil {
		return nil, err
	}
	s.logger().Debug("loaded todo file", "path", path, "keys", l.Len(), "items", l.Count(), "default", l.DefaultKey)
	return l, nil
}

// Save writes l to path, falling back to l.Filename, and returns the
// number of items written. An existing file is copied aside first; a
// failed copy does not stop the save.
func (s *Store) Save(l *model.List, path string) (int, error) {
	if path == "" {
		path = l.Filename
	}
	if path == "" {
		return 0, model.Errorf(model.ErrSave, "no filename provided")
	}
	b, err := Encode(l.Document())
	if err != nil {
		return 0, model.Wrap(model.ErrSave, err, "unable to generate JSON")
	}
	if _, err := s.Backup(path); err != nil {
		s.logger().Debug("backup failed", "path", path, "err", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, model.Wrap(model.ErrSave, err, "unable to create directory for: %s", path)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return 0, model.Wrap(model.ErrSave, err, "unable to write to file: %s", path)
	}
	l.Filename = path
	s.logger().Debug("saved todo file", "path", path, "items", l.Count())
	return l.Count(), nil
}

// Backup copies path to its backup name. It reports false without error
// when there is nothing to copy.
func (s *Store) Backup(path string) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger().Debug("nothing to back up", "path", path)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	backup := path + s.suffix()
	if err := os.WriteFile(backup, b, 0o644); err != nil {
		return false, err
	}
	s.logger().Debug("backed up todo file", "backup", backup)
	return true, nil
}

// Encode renders v the way todo files are written: keys sorted, four
// space indent, trailing newline.
func Encode(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
