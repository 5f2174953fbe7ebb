package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/Makepad-fr/tada/internal/model"
)

// Merge updates the JSON object stored at path with the top-level entries
// of obj, creating the file when it does not exist. Entries already in the
// file under other names are kept.
func (s *Store) Merge(path string, obj any) error {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger().Debug("creating a new JSON file", "path", path)
		data = []byte("{}")
	case err != nil:
		return model.Wrap(model.ErrLoad, err, "unable to read: %s", path)
	case len(bytes.TrimSpace(data)) == 0:
		data = []byte("{}")
	}

	var existing map[string]json.RawMessage
	if err := json.Unmarshal(data, &existing); err != nil {
		return model.Wrap(model.ErrParse, err, "not a valid JSON object: %s", path)
	}
	if existing == nil {
		existing = make(map[string]json.RawMessage)
	}

	update, err := json.Marshal(obj)
	if err != nil {
		return model.Wrap(model.ErrSave, err, "unable to encode export")
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(update, &entries); err != nil {
		return model.Wrap(model.ErrParse, err, "export is not a JSON object")
	}
	for k, v := range entries {
		existing[k] = v
	}

	out, err := Encode(existing)
	if err != nil {
		return model.Wrap(model.ErrSave, err, "unable to generate JSON")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return model.Wrap(model.ErrSave, err, "failed to write JSON data: %s", path)
	}
	return nil
}
