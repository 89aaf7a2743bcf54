package cli

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/matrix-hub/mhub/internal/catalog"
	"github.com/matrix-hub/mhub/internal/manifest"
	"github.com/spf13/cobra"
)

// scaffoldFlags holds the flags every scaffold command shares.
type scaffoldFlags struct {
	baseURL     string
	id          string
	name        string
	version     string
	summary     string
	description string
	license     string
	homepage    string
	publisher   string
}

func (f *scaffoldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "Absolute base URL that serves the catalog directory")
	cmd.Flags().StringVar(&f.id, "id", "", "Manifest id")
	cmd.Flags().StringVar(&f.name, "name", "", "Human-readable name")
	cmd.Flags().StringVar(&f.version, "version", "", "Manifest version (semver recommended)")
	cmd.Flags().StringVar(&f.summary, "summary", "", "One-line summary")
	cmd.Flags().StringVar(&f.description, "description", "", "Longer description")
	cmd.Flags().StringVar(&f.license, "license", "", "License identifier")
	cmd.Flags().StringVar(&f.homepage, "homepage", "", "Homepage URL")
	cmd.Flags().StringVar(&f.publisher, "publisher", "", "Publisher name")
	cmd.MarkFlagRequired("base-url")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("version")
}

func (f *scaffoldFlags) fields() manifest.Fields {
	return manifest.Fields{
		ID:          f.id,
		Name:        f.name,
		Version:     f.version,
		Summary:     f.summary,
		Description: f.description,
		License:     f.license,
		Homepage:    f.homepage,
		Publisher:   f.publisher,
	}
}

// warnVersion prints a non-fatal notice when the version is not semver.
// The value is embedded verbatim either way.
func (f *scaffoldFlags) warnVersion() {
	if _, err := semver.NewVersion(f.version); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: version %q is not valid semver; the hub may reject it\n", f.version)
	}
}

func printScaffoldResult(res *catalog.RegisterResult, baseURL string) {
	if res.Added {
		fmt.Printf("Wrote %s and added entry (base_url=%s)\n", res.ManifestPath, baseURL)
	} else {
		fmt.Printf("Wrote %s; entry already present (base_url=%s)\n", res.ManifestPath, baseURL)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(os.Stderr, "Validation warnings:")
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "  - %s\n", w)
		}
	}
}

// ─── scaffold-server ───────────────────────────────────────────────

var (
	serverFlags     scaffoldFlags
	serverTransport string
	serverURL       string
)

func init() {
	serverFlags.register(scaffoldServerCmd)
	scaffoldServerCmd.Flags().StringVar(&serverTransport, "transport", "", "Transport kind, e.g. SSE | REST | MCP (case-insensitive)")
	scaffoldServerCmd.Flags().StringVar(&serverURL, "url", "", "Transport endpoint URL")
	scaffoldServerCmd.MarkFlagRequired("transport")
	scaffoldServerCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(scaffoldServerCmd)
}

var scaffoldServerCmd = &cobra.Command{
	Use:   "scaffold-server",
	Short: "Create a minimal mcp_server manifest and register it",
	Long: `Create a minimal mcp_server manifest with an mcp_registration block and
append an entries record for it.

Example:
  mhub scaffold-server --id hello-sse-server --name "Hello World MCP (SSE)" \
      --version 0.1.0 --transport sse --url http://127.0.0.1:8000/messages/ \
      --base-url http://127.0.0.1:8001/matrix/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		serverFlags.warnVersion()

		m := manifest.NewServer(serverFlags.fields(), serverTransport, serverURL)
		res, err := catalog.Register(indexPath(), m, serverFlags.baseURL)
		if err != nil {
			return err
		}

		printScaffoldResult(res, serverFlags.baseURL)
		return nil
	},
}

// ─── scaffold-tool ─────────────────────────────────────────────────

var (
	toolFlags      scaffoldFlags
	toolInputJSON  string
	toolOutputJSON string
)

func init() {
	toolFlags.register(scaffoldToolCmd)
	scaffoldToolCmd.Flags().StringVar(&toolInputJSON, "input-json", "", "JSON document for input_schema")
	scaffoldToolCmd.Flags().StringVar(&toolOutputJSON, "output-json", "", "JSON document for output_schema")
	rootCmd.AddCommand(scaffoldToolCmd)
}

var scaffoldToolCmd = &cobra.Command{
	Use:   "scaffold-tool",
	Short: "Create a minimal tool manifest and register it",
	Long: `Create a minimal tool manifest, optionally carrying input/output JSON
schemas, and append an entries record for it. Invalid schema JSON aborts
before anything is written.

Example:
  mhub scaffold-tool --id hello-tool --name hello --version 0.1.0 \
      --input-json '{"type":"object"}' --base-url http://127.0.0.1:8001/matrix/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		toolFlags.warnVersion()

		m, err := manifest.NewTool(toolFlags.fields(), toolInputJSON, toolOutputJSON)
		if err != nil {
			return err
		}
		res, err := catalog.Register(indexPath(), m, toolFlags.baseURL)
		if err != nil {
			return err
		}

		printScaffoldResult(res, toolFlags.baseURL)
		return nil
	},
}

// ─── scaffold-agent ────────────────────────────────────────────────

var (
	agentFlags    scaffoldFlags
	agentServerID string
	agentToolIDs  string
)

func init() {
	agentFlags.register(scaffoldAgentCmd)
	scaffoldAgentCmd.Flags().StringVar(&agentServerID, "server-id", "", "Id of the server this agent runs against")
	scaffoldAgentCmd.Flags().StringVar(&agentToolIDs, "tool-ids", "", "Comma-separated tool ids")
	scaffoldAgentCmd.MarkFlagRequired("server-id")
	scaffoldAgentCmd.MarkFlagRequired("tool-ids")
	rootCmd.AddCommand(scaffoldAgentCmd)
}

var scaffoldAgentCmd = &cobra.Command{
	Use:   "scaffold-agent",
	Short: "Create a minimal agent manifest and register it",
	Long: `Create a minimal agent manifest linking a server and a list of tool ids,
and append an entries record for it.

Example:
  mhub scaffold-agent --id hello-agent --name "Hello Agent" --version 0.1.0 \
      --server-id hello-sse-server --tool-ids hello-tool \
      --base-url http://127.0.0.1:8001/matrix/`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		agentFlags.warnVersion()

		m := manifest.NewAgent(agentFlags.fields(), agentServerID, manifest.SplitToolIDs(agentToolIDs))
		res, err := catalog.Register(indexPath(), m, agentFlags.baseURL)
		if err != nil {
			return err
		}

		printScaffoldResult(res, agentFlags.baseURL)
		return nil
	},
}
