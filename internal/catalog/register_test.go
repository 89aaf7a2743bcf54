package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matrix-hub/mhub/internal/index"
	"github.com/matrix-hub/mhub/internal/manifest"
)

func newToolManifest(t *testing.T) *manifest.ToolManifest {
	t.Helper()
	m, err := manifest.NewTool(
		manifest.Fields{ID: "hello-tool", Name: "hello", Version: "0.1.0", Summary: "Return a simple greeting."},
		`{"type":"object"}`, "")
	if err != nil {
		t.Fatalf("NewTool: %v", err)
	}
	return m
}

func TestRegisterScaffoldThenReference(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "matrix", "index.json")

	res, err := Register(indexPath, newToolManifest(t), "http://127.0.0.1:8001/matrix/")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !res.Added {
		t.Error("first registration should add an entry")
	}
	if len(res.Warnings) != 0 {
		t.Errorf("scaffolded tool should validate cleanly: %v", res.Warnings)
	}

	// The manifest file carries the parsed schema.
	data, err := os.ReadFile(res.ManifestPath)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	var schema map[string]any
	if err := json.Unmarshal(doc["input_schema"], &schema); err != nil {
		t.Fatalf("input_schema: %v", err)
	}
	if schema["type"] != "object" {
		t.Errorf("input_schema = %v", schema)
	}

	// The index references it by filename.
	idx, err := index.Load(indexPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(idx.Entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(idx.Entries))
	}
	if idx.Entries[0].Path != "hello-tool.manifest.json" {
		t.Errorf("entry path = %q", idx.Entries[0].Path)
	}
}

func TestRegisterIdempotentRerun(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "matrix", "index.json")
	baseURL := "http://127.0.0.1:8001/matrix/"

	if _, err := Register(indexPath, newToolManifest(t), baseURL); err != nil {
		t.Fatal(err)
	}
	res, err := Register(indexPath, newToolManifest(t), baseURL)
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if res.Added {
		t.Error("identical rerun should report the entry as already present")
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.Entries) != 1 {
		t.Errorf("expected 1 entry after rerun, got %d", len(idx.Entries))
	}
}

func TestRegisterDifferentBaseURLAddsSecondEntry(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "matrix", "index.json")

	if _, err := Register(indexPath, newToolManifest(t), "http://x/"); err != nil {
		t.Fatal(err)
	}
	res, err := Register(indexPath, newToolManifest(t), "http://y/")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Added {
		t.Error("a different base_url makes a distinct entry")
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(idx.Entries))
	}
}

func TestRegisterCreatesEntriesShapedIndex(t *testing.T) {
	indexPath := filepath.Join(t.TempDir(), "matrix", "index.json")

	if _, err := Register(indexPath, newToolManifest(t), "http://x/"); err != nil {
		t.Fatal(err)
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Entries == nil {
		t.Error("a fresh index should be created in the entries shape")
	}
	if idx.Items != nil || idx.Manifests != nil {
		t.Error("items and manifests keys should be absent")
	}
}

func TestRegisterWritesManifestNextToIndex(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "index.json")

	res, err := Register(indexPath, newToolManifest(t), "http://x/")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(res.ManifestPath) != dir {
		t.Errorf("manifest written to %s, want directory %s", res.ManifestPath, dir)
	}
}
