package cli

import (
	"github.com/matrix-hub/mhub/internal/branding"
	"github.com/matrix-hub/mhub/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// outPath is the shared --out flag; empty means the configured default.
var outPath string

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` initializes and maintains a Matrix-Hub compatible catalog:
an index document in one of three shapes (manifests, items, entries) plus
scaffolded manifest files the hub validates and ingests.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outPath, "out", "",
		"Index file path (default: "+config.DefaultIndexPath+")")
}

// indexPath resolves the index location: the --out flag wins, then the
// MHUB_INDEX_PATH variable / index.path setting, then the built-in
// default.
func indexPath() string {
	if outPath != "" {
		return outPath
	}
	return config.IndexPath()
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
