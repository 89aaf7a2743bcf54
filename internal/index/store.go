package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrCorruptIndex reports an existing index file that is not valid JSON.
// No recovery is attempted.
var ErrCorruptIndex = errors.New("corrupt index")

// Load reads and parses an existing index document.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptIndex, path, err)
	}
	return &idx, nil
}

// Ensure loads the index at path, or creates and immediately persists a
// minimal one in the given shape when the file does not exist. An empty
// shape defaults to items.
func Ensure(path string, shape Shape) (*Index, error) {
	if shape == "" {
		shape = ShapeItems
	}
	if _, err := ParseShape(string(shape)); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		return Load(path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking index %s: %w", path, err)
	}

	idx := New(shape)
	if err := write(path, idx); err != nil {
		return nil, err
	}
	return idx, nil
}

// Persist stamps meta.updated_at and writes the full document. Writes are
// not atomic; two concurrent writers to the same path are a lost-update
// race (last writer wins), which is an accepted limitation at catalog
// scale.
func Persist(path string, idx *Index) error {
	if idx.Meta == nil {
		idx.Meta = map[string]any{}
	}
	idx.Meta["updated_at"] = nowISO()
	return write(path, idx)
}

// write serializes the document as 2-space-indented UTF-8 JSON with a
// trailing newline, creating parent directories as needed.
func write(path string, idx *Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating index directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing index %s: %w", path, err)
	}
	return nil
}
