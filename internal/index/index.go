package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matrix-hub/mhub/internal/branding"
)

// Shape selects which list representation an index document uses.
type Shape string

const (
	// ShapeManifests lists absolute manifest URLs as plain strings.
	ShapeManifests Shape = "manifests"
	// ShapeItems lists {"manifest_url": ...} records.
	ShapeItems Shape = "items"
	// ShapeEntries lists {"path": ..., "base_url": ...} records.
	ShapeEntries Shape = "entries"
)

// ErrInvalidShape reports a requested shape outside the supported set.
var ErrInvalidShape = errors.New("invalid index shape")

// ParseShape validates a shape token from user input.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeManifests, ShapeItems, ShapeEntries:
		return Shape(s), nil
	}
	return "", fmt.Errorf("%w: %q (must be one of manifests, items, entries)", ErrInvalidShape, s)
}

// Item is one record of an items-shaped index.
type Item struct {
	ManifestURL string `json:"manifest_url"`
}

// Entry is one record of an entries-shaped index. Path is resolved
// relative to BaseURL by the consuming hub.
type Entry struct {
	Path    string `json:"path"`
	BaseURL string `json:"base_url"`
}

// Index is the catalog root document. A nil list means the key is absent
// from the document; a non-nil empty list means the key is present. Meta
// is informational and never validated. Unknown top-level keys found in
// an existing document are preserved verbatim across a load/persist
// round trip.
type Index struct {
	Manifests []string
	Items     []Item
	Entries   []Entry
	Meta      map[string]any

	extra map[string]json.RawMessage
}

// New returns a minimal index with only the list key for shape populated
// and an initialized meta block.
func New(shape Shape) *Index {
	idx := &Index{
		Meta: map[string]any{
			"format":       branding.IndexFormat(),
			"version":      1,
			"generated_by": branding.CLIName(),
			"created_at":   nowISO(),
		},
	}
	switch shape {
	case ShapeManifests:
		idx.Manifests = []string{}
	case ShapeItems:
		idx.Items = []Item{}
	case ShapeEntries:
		idx.Entries = []Entry{}
	}
	return idx
}

// UnmarshalJSON decodes a document while tracking which list keys are
// present, so absent and empty lists round-trip differently.
func (i *Index) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, val := range raw {
		var err error
		switch key {
		case "manifests":
			i.Manifests = []string{}
			err = json.Unmarshal(val, &i.Manifests)
			if i.Manifests == nil {
				i.Manifests = []string{}
			}
		case "items":
			i.Items = []Item{}
			err = json.Unmarshal(val, &i.Items)
			if i.Items == nil {
				i.Items = []Item{}
			}
		case "entries":
			i.Entries = []Entry{}
			err = json.Unmarshal(val, &i.Entries)
			if i.Entries == nil {
				i.Entries = []Entry{}
			}
		case "meta":
			err = json.Unmarshal(val, &i.Meta)
		default:
			if i.extra == nil {
				i.extra = map[string]json.RawMessage{}
			}
			i.extra[key] = val
		}
		if err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON emits only the list keys present on the document, never
// empty placeholders for absent shapes.
func (i Index) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, 4+len(i.extra))
	if i.Manifests != nil {
		doc["manifests"] = i.Manifests
	}
	if i.Items != nil {
		doc["items"] = i.Items
	}
	if i.Entries != nil {
		doc["entries"] = i.Entries
	}
	if i.Meta != nil {
		doc["meta"] = i.Meta
	}
	for k, v := range i.extra {
		doc[k] = v
	}
	return json.Marshal(doc)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
