package cli

import (
	"fmt"
	"path/filepath"

	"github.com/matrix-hub/mhub/internal/catalog"
	"github.com/matrix-hub/mhub/internal/index"
	"github.com/spf13/cobra"
)

// ─── add-url ───────────────────────────────────────────────────────

var addManifestURL string

func init() {
	addURLCmd.Flags().StringVar(&addManifestURL, "manifest-url", "", "Absolute URL of the hosted manifest")
	addURLCmd.MarkFlagRequired("manifest-url")
	rootCmd.AddCommand(addURLCmd)
}

var addURLCmd = &cobra.Command{
	Use:   "add-url",
	Short: "Append one manifest URL (items or manifests shape)",
	Long: `Append a remote manifest URL to the index. An items list takes the URL as
a {manifest_url} record; a manifests list takes the raw string. Duplicate
URLs (exact string match) are reported, not re-added.

Example:
  mhub add-url --manifest-url https://your.host/hello.manifest.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := indexPath()
		idx, err := index.Ensure(path, "")
		if err != nil {
			return err
		}

		changed := idx.AddManifestURL(addManifestURL)
		if err := index.Persist(path, idx); err != nil {
			return err
		}

		if changed {
			fmt.Printf("Added URL %s\n", addManifestURL)
		} else {
			fmt.Printf("URL already present: %s\n", addManifestURL)
		}
		return nil
	},
}

// ─── add-entry ─────────────────────────────────────────────────────

var (
	entryPath    string
	entryBaseURL string
)

func init() {
	addEntryCmd.Flags().StringVar(&entryPath, "path", "", "Manifest path relative to the served catalog directory")
	addEntryCmd.Flags().StringVar(&entryBaseURL, "base-url", "", "Absolute base URL that serves the catalog directory")
	addEntryCmd.MarkFlagRequired("path")
	addEntryCmd.MarkFlagRequired("base-url")
	rootCmd.AddCommand(addEntryCmd)
}

var addEntryCmd = &cobra.Command{
	Use:   "add-entry",
	Short: "Append one (path, base_url) pair (entries shape)",
	Long: `Append a {path, base_url} record to the entries list. Identity is the
pair: the same path under a different base URL is a distinct entry.

Example:
  mhub add-entry --path hello.manifest.json --base-url http://127.0.0.1:8001/matrix/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := indexPath()
		idx, err := index.Ensure(path, index.ShapeEntries)
		if err != nil {
			return err
		}

		changed := idx.AddEntry(entryPath, entryBaseURL)
		if err := index.Persist(path, idx); err != nil {
			return err
		}

		if changed {
			fmt.Printf("Added entry (path=%s, base_url=%s)\n", entryPath, entryBaseURL)
		} else {
			fmt.Printf("Entry already present: path=%s, base_url=%s\n", entryPath, entryBaseURL)
		}
		return nil
	},
}

// ─── add-inline ────────────────────────────────────────────────────

var (
	inlineManifest string
	inlineBaseURL  string
	inlineFilename string
	inlineForce    bool
)

func init() {
	addInlineCmd.Flags().StringVar(&inlineManifest, "manifest", "", "Local path to the YAML/JSON manifest to copy")
	addInlineCmd.Flags().StringVar(&inlineBaseURL, "base-url", "", "Absolute base URL that serves the catalog directory")
	addInlineCmd.Flags().StringVar(&inlineFilename, "filename", "", "Destination filename (default: source filename)")
	addInlineCmd.Flags().BoolVar(&inlineForce, "force", false, "Overwrite the destination if it exists with different content")
	addInlineCmd.MarkFlagRequired("manifest")
	addInlineCmd.MarkFlagRequired("base-url")
	rootCmd.AddCommand(addInlineCmd)
}

var addInlineCmd = &cobra.Command{
	Use:   "add-inline",
	Short: "Copy a local manifest into the catalog directory and register it",
	Long: `Copy a local manifest file next to the index and append an entries
record for it. A destination with identical content is left untouched; a
differing one fails unless --force is set.

Example:
  mhub add-inline --manifest ./hello.manifest.json --base-url http://127.0.0.1:8001/matrix/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := catalog.AddInline(indexPath(), inlineManifest, inlineFilename, inlineBaseURL, inlineForce)
		if err != nil {
			return err
		}

		name := filepath.Base(res.DestPath)
		label := name
		if res.Kind != "" {
			label = fmt.Sprintf("%s (%s)", name, res.Kind)
		}
		switch {
		case res.Added && res.Copied:
			fmt.Printf("Copied %s and added entry (base_url=%s)\n", label, inlineBaseURL)
		case res.Added:
			fmt.Printf("%s already in place; added entry (base_url=%s)\n", label, inlineBaseURL)
		default:
			fmt.Printf("Entry already present: path=%s, base_url=%s\n", name, inlineBaseURL)
		}
		return nil
	},
}
