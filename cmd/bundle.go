package cmd

import (
	"rsbundle/pkg/bundle"

	"github.com/spf13/cobra"
)

// bundleCmd runs the bundler once. Without --entry only the scan root
// contributes; with --entry the named file is appended last.
var bundleCmd = &cobra.Command{
	Use:   "bundle",
	Short: "Bundle the library into a single output file",
	Long: `Bundle scans the source directory recursively, strips use/mod/doc-comment
lines, truncates each file at its test section, and writes everything to
one output file preceded by the fixed prelude imports. An optional entry
point file is appended after the scanned files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := cmd.Flags().GetString("entry")
		if err != nil {
			return err
		}
		return bundle.Execute(bundle.Arguments{Entry: entry}, logger)
	},
}

func init() {
	bundleCmd.Flags().StringP("entry", "e", "", "Entry point file appended after the scanned sources")
	RootCmd.AddCommand(bundleCmd)
}
