package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yarwhq/yarw/internal/application/ports"
	"github.com/yarwhq/yarw/internal/domain/repositories"
)

// rootOptions carries the global flags and the seams tests replace.
type rootOptions struct {
	repo      repositories.ProfileSnapshotRepository
	prompter  ports.ProfilePrompter
	logOutput io.Writer

	cfgFile    string
	storageDir string
	logLevel   string
	verbose    bool
}

// newRootCmd builds the command tree.
func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "yarw",
		Short: "Manage Roblox launch profiles",
		Long: `yarw keeps a local, persistent collection of Roblox launch profiles.
Each profile names the application variant to start, the render backend it
should use and the feature flag overrides applied at launch.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(opts)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (default is <user-config-dir>/yarw/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.storageDir, "storage-dir", "",
		"directory holding the profile database (overrides storage.dir)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides log.level)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newProfileCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func setupLogging(opts *rootOptions) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	out := opts.logOutput
	if out == nil {
		out = os.Stderr
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
