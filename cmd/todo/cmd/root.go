// Package cmd provides the CLI commands for todo.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/todo/internal/config"
	"github.com/dbmrq/todo/internal/logging"
	"github.com/dbmrq/todo/internal/task"
	"github.com/dbmrq/todo/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A personal task tracker for your terminal",
	Long: `todo is a single-user task tracker that lives in your terminal.

Tasks have a description, a priority (high, medium, low), and an
optional due date. They are kept in a local JSON file, so your data
never leaves your machine.

Running todo with no subcommand opens the interactive menu.`,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default "+config.DefaultConfigPath+")")
	rootCmd.Flags().StringP("file", "f", "", "Path to the task file (overrides the config)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
}

// runRoot loads the configuration and the task file, then starts the
// interactive menu.
func runRoot(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	filePath, _ := cmd.Flags().GetString("file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if filePath != "" {
		cfg.Store.Path = filePath
	}

	level := logging.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logging.LevelDebug
	}
	logConfig := &logging.Config{
		Level:       level,
		LogDir:      cfg.Log.Dir,
		MaxLogFiles: cfg.Log.MaxFiles,
		MaxLogAge:   cfg.Log.MaxAge,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		// Non-fatal: warn but continue without file logging
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to initialize logging: %v\n", err)
	} else {
		defer func() { _ = logging.CloseGlobal() }()
		logging.Info("todo starting", "version", Version, "store", cfg.Store.Path)
	}

	store := task.NewStore(cfg.Store.Path)
	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	return tui.Run(store, cfg.Store.SaveOnExit)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set version info here after main.go has set the variables.
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("todo {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
