package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show detailed version information for todo.

Displays the current version, commit hash, build date,
and Go/platform information.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	cmd.Printf("todo %s\n", Version)
	cmd.Printf("  commit:   %s\n", Commit)
	cmd.Printf("  built:    %s\n", Date)
	cmd.Printf("  go:       %s\n", runtime.Version())
	cmd.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	return nil
}
