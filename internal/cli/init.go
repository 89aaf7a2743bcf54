package cli

import (
	"fmt"

	"github.com/matrix-hub/mhub/internal/index"
	"github.com/spf13/cobra"
)

var initShape string

func init() {
	initEmptyCmd.Flags().StringVar(&initShape, "shape", string(index.ShapeItems),
		"Index shape: manifests | items | entries")
	rootCmd.AddCommand(initEmptyCmd)
}

var initEmptyCmd = &cobra.Command{
	Use:   "init-empty",
	Short: "Create an empty index in a supported shape",
	Long: `Create an empty catalog index in one of the three shapes the hub ingests.

An existing index at the target path is left as is.

Example:
  mhub init-empty --shape entries`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		shape, err := index.ParseShape(initShape)
		if err != nil {
			return err
		}

		path := indexPath()
		idx, err := index.Ensure(path, shape)
		if err != nil {
			return err
		}
		if err := index.Persist(path, idx); err != nil {
			return err
		}

		fmt.Printf("Initialized empty index at %s with shape=%s\n", path, shape)
		return nil
	},
}
