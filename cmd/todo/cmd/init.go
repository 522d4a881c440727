package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file for todo.

The file documents every setting with its default value:
  - store.path and store.save_on_exit for task persistence
  - log.* for file logging

Use --force to overwrite an existing file.

Examples:
  todo init           # Write .todo/config.yaml
  todo init --force   # Overwrite an existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// runInit writes the example config to the configured path.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if err := config.WriteExample(path, force); err != nil {
		return err
	}

	cmd.Printf("Created %s\n", path)
	cmd.Println("")
	cmd.Println("Edit it to change where tasks are stored, then run 'todo'.")

	return nil
}
