package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matrix-hub/mhub/internal/index"
	"github.com/matrix-hub/mhub/internal/manifest"
)

var (
	// ErrSourceNotFound reports an inline-copy source path that does not
	// exist.
	ErrSourceNotFound = errors.New("manifest source not found")
	// ErrDestinationConflict reports a destination file whose content
	// differs from the source when --force is not set. The index is left
	// unmodified.
	ErrDestinationConflict = errors.New("destination exists with different content")
)

// InlineResult reports what an inline copy did.
type InlineResult struct {
	DestPath string
	Kind     string // detected manifest type, best effort ("" when unknown)
	Copied   bool   // false when the destination already had identical content
	Added    bool   // whether a new index entry was appended
}

// AddInline copies a local manifest file into the catalog directory next
// to the index and registers an entries record for it. destName overrides
// the destination filename; empty means the source's own name. A
// byte-identical destination is left as is; a differing one fails unless
// force is set.
func AddInline(indexPath, source, destName, baseURL string, force bool) (*InlineResult, error) {
	src, err := filepath.Abs(source)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", source, err)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return nil, fmt.Errorf("checking %s: %w", src, err)
	}
	srcData, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}

	idx, err := index.Ensure(indexPath, index.ShapeEntries)
	if err != nil {
		return nil, err
	}

	if destName == "" {
		destName = filepath.Base(src)
	}
	dest := filepath.Join(filepath.Dir(indexPath), destName)

	res := &InlineResult{DestPath: dest, Copied: true}
	if destData, err := os.ReadFile(dest); err == nil && !force {
		if !bytes.Equal(destData, srcData) {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite or choose --filename)", ErrDestinationConflict, dest)
		}
		// Same content already in place; skip the copy.
		res.Copied = false
	}
	if res.Copied {
		if err := os.WriteFile(dest, srcData, srcInfo.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("copying %s to %s: %w", src, dest, err)
		}
	}

	// Best-effort type detection for the info line; sources may be YAML
	// or JSON.
	if kind, err := manifest.DetectType(srcData); err == nil {
		res.Kind = kind
	}

	res.Added = idx.AddEntry(destName, baseURL)
	if err := index.Persist(indexPath, idx); err != nil {
		return nil, err
	}
	return res, nil
}
