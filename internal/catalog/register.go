package catalog

import (
	"path/filepath"

	"github.com/matrix-hub/mhub/internal/index"
	"github.com/matrix-hub/mhub/internal/manifest"
)

// RegisterResult reports what a scaffold registration did.
type RegisterResult struct {
	ManifestPath string   // where the manifest file was written
	Added        bool     // whether a new index entry was appended
	Warnings     []string // best-effort schema validation findings
}

// Register runs the scaffold workflow for an already-built manifest:
// ensure the index exists (new files are created in the entries shape),
// write the manifest next to it, register a {path, base_url} entry, and
// persist. Re-running the same scaffold overwrites the manifest file but
// reports Added=false unless the base URL differs.
func Register(indexPath string, m manifest.Manifest, baseURL string) (*RegisterResult, error) {
	idx, err := index.Ensure(indexPath, index.ShapeEntries)
	if err != nil {
		return nil, err
	}

	path, err := manifest.Write(m, filepath.Dir(indexPath))
	if err != nil {
		return nil, err
	}

	added := idx.AddEntry(filepath.Base(path), baseURL)
	if err := index.Persist(indexPath, idx); err != nil {
		return nil, err
	}

	res := &RegisterResult{ManifestPath: path, Added: added}

	// Early validation against the minimal schema mirror; findings are
	// warnings because the hub's own schemas stay authoritative.
	if valResult, err := manifest.ValidateFile(path); err == nil && !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			res.Warnings = append(res.Warnings, msg)
		}
	}

	return res, nil
}
