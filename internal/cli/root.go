// Package cli implements the rubik command-line interface.
//
// Commands scramble and solve simulated cubes, browse the solve history
// stored in SQLite, and run an interactive play mode. Logging uses
// charmbracelet/log attached to the command context; --verbose enables
// debug level.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/CaffeineLoop/rubiks-cube-solver/internal/config"
	"github.com/CaffeineLoop/rubiks-cube-solver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// cfg is loaded once before any command runs.
	cfg config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rubik",
	Short: "Rubik's cube simulator and solver",
	Long: `rubik simulates Rubik's cubes of any size and solves the 3x3 with a
layer-by-layer method.

Scramble cubes, solve them with per-phase diagnostics, keep a history of
solves in SQLite, and practice interactively in play mode.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := charmlog.InfoLevel
		if verbose {
			level = charmlog.DebugLevel
		}
		ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
		cmd.SetContext(ctx)

		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg, err = config.LoadDefault()
		}
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx, so commands stop when
// the process receives an interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.rubik/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rubik/rubik.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the solve database, preferring the --db flag, then the
// config file, then the default path.
func openDB() (*storage.DB, error) {
	switch {
	case dbPath != "":
		return storage.Open(dbPath)
	case cfg.Database.Path != "":
		return storage.Open(cfg.Database.Path)
	default:
		return storage.OpenDefault()
	}
}
