package catalog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matrix-hub/mhub/internal/index"
)

const toolSource = `{
  "type": "tool",
  "id": "hello-tool",
  "version": "0.1.0",
  "name": "hello"
}
`

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAddInlineCopiesAndRegisters(t *testing.T) {
	tmp := t.TempDir()
	src := writeSource(t, tmp, "hello.manifest.json", toolSource)
	indexPath := filepath.Join(tmp, "matrix", "index.json")

	res, err := AddInline(indexPath, src, "", "http://127.0.0.1:8001/matrix/", false)
	if err != nil {
		t.Fatalf("AddInline: %v", err)
	}
	if !res.Copied || !res.Added {
		t.Errorf("expected copy and new entry, got %+v", res)
	}
	if res.Kind != "tool" {
		t.Errorf("detected kind = %q", res.Kind)
	}

	copied, err := os.ReadFile(filepath.Join(tmp, "matrix", "hello.manifest.json"))
	if err != nil {
		t.Fatalf("destination not written: %v", err)
	}
	if !bytes.Equal(copied, []byte(toolSource)) {
		t.Error("destination content differs from source")
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.Entries) != 1 || idx.Entries[0].Path != "hello.manifest.json" {
		t.Errorf("unexpected entries: %+v", idx.Entries)
	}
}

func TestAddInlineSourceNotFound(t *testing.T) {
	tmp := t.TempDir()
	indexPath := filepath.Join(tmp, "matrix", "index.json")

	_, err := AddInline(indexPath, filepath.Join(tmp, "absent.json"), "", "http://x/", false)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("expected ErrSourceNotFound, got %v", err)
	}
}

func TestAddInlineConflictWithoutForce(t *testing.T) {
	tmp := t.TempDir()
	src := writeSource(t, tmp, "hello.manifest.json", toolSource)
	indexPath := filepath.Join(tmp, "matrix", "index.json")

	// Pre-existing destination with different content, and one registered
	// entry to detect index changes against.
	idx, err := index.Ensure(indexPath, index.ShapeEntries)
	if err != nil {
		t.Fatal(err)
	}
	idx.AddEntry("other.json", "http://x/")
	if err := index.Persist(indexPath, idx); err != nil {
		t.Fatal(err)
	}
	dest := writeSource(t, filepath.Join(tmp, "matrix"), "hello.manifest.json", `{"different": true}`)

	_, err = AddInline(indexPath, src, "", "http://x/", false)
	if !errors.Is(err, ErrDestinationConflict) {
		t.Fatalf("expected ErrDestinationConflict, got %v", err)
	}

	// Neither the destination nor the index changed.
	destData, _ := os.ReadFile(dest)
	if string(destData) != `{"different": true}` {
		t.Error("destination must be left unchanged on conflict")
	}
	after, err := index.Load(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Entries) != 1 || after.Entries[0].Path != "other.json" {
		t.Errorf("index must be left unchanged on conflict: %+v", after.Entries)
	}
}

func TestAddInlineIdenticalContentSkipsCopy(t *testing.T) {
	tmp := t.TempDir()
	src := writeSource(t, tmp, "hello.manifest.json", toolSource)
	indexPath := filepath.Join(tmp, "matrix", "index.json")
	writeSource(t, mkdir(t, tmp, "matrix"), "hello.manifest.json", toolSource)

	res, err := AddInline(indexPath, src, "", "http://x/", false)
	if err != nil {
		t.Fatalf("AddInline: %v", err)
	}
	if res.Copied {
		t.Error("byte-identical destination should be a no-op copy")
	}
	if !res.Added {
		t.Error("the entry should still be registered")
	}
}

func TestAddInlineForceOverwrites(t *testing.T) {
	tmp := t.TempDir()
	src := writeSource(t, tmp, "hello.manifest.json", toolSource)
	indexPath := filepath.Join(tmp, "matrix", "index.json")
	dest := writeSource(t, mkdir(t, tmp, "matrix"), "hello.manifest.json", `{"different": true}`)

	res, err := AddInline(indexPath, src, "", "http://x/", true)
	if err != nil {
		t.Fatalf("AddInline with force: %v", err)
	}
	if !res.Copied {
		t.Error("force should overwrite the destination")
	}

	destData, _ := os.ReadFile(dest)
	if !bytes.Equal(destData, []byte(toolSource)) {
		t.Error("destination should carry the source content after force")
	}
}

func TestAddInlineFilenameOverride(t *testing.T) {
	tmp := t.TempDir()
	src := writeSource(t, tmp, "hello.manifest.json", toolSource)
	indexPath := filepath.Join(tmp, "matrix", "index.json")

	res, err := AddInline(indexPath, src, "renamed.manifest.json", "http://x/", false)
	if err != nil {
		t.Fatalf("AddInline: %v", err)
	}
	if filepath.Base(res.DestPath) != "renamed.manifest.json" {
		t.Errorf("dest = %s", res.DestPath)
	}

	idx, err := index.Load(indexPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(idx.Entries) != 1 || idx.Entries[0].Path != "renamed.manifest.json" {
		t.Errorf("unexpected entries: %+v", idx.Entries)
	}
}

func TestAddInlineRerunReportsAlreadyPresent(t *testing.T) {
	tmp := t.TempDir()
	src := writeSource(t, tmp, "hello.manifest.json", toolSource)
	indexPath := filepath.Join(tmp, "matrix", "index.json")

	if _, err := AddInline(indexPath, src, "", "http://x/", false); err != nil {
		t.Fatal(err)
	}
	res, err := AddInline(indexPath, src, "", "http://x/", false)
	if err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if res.Added {
		t.Error("identical rerun should report the entry as already present")
	}
}

func mkdir(t *testing.T, parent, name string) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}
