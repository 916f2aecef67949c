package cmd

import (
	"fmt"

	"rsbundle/pkg/bundle"

	"github.com/spf13/cobra"
)

// treeCmd prints the files that would contribute to a bundle.
var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the files that would be bundled",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := cmd.Flags().GetString("entry")
		if err != nil {
			return err
		}

		cfg, err := bundle.LoadConfig(bundle.ConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		tree, err := bundle.GenerateTree(cfg, bundle.Arguments{Entry: entry}, logger)
		if err != nil {
			return fmt.Errorf("failed to generate tree: %w", err)
		}

		fmt.Print(tree)
		return nil
	},
}

func init() {
	treeCmd.Flags().StringP("entry", "e", "", "Entry point file appended after the scanned sources")
	RootCmd.AddCommand(treeCmd)
}
