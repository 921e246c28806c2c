package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/yarwhq/yarw/internal/infrastructure/container"
	"github.com/yarwhq/yarw/internal/infrastructure/system"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// flagBindings maps global flags onto their config keys.
var flagBindings = map[string]string{
	"storage-dir": "storage.dir",
	"log-level":   "log.level",
}

// withContainer wraps a command handler with container initialization.
// Handles common setup: config loading, flag binding, logger creation and
// dependency injection.
func withContainer(opts *rootOptions, handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		loader := system.NewConfigLoader()
		for flag, key := range flagBindings {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := loader.Viper().BindPFlag(key, f); err != nil {
					return fmt.Errorf("failed to bind --%s: %w", flag, err)
				}
			}
		}

		c, err := container.New(container.Options{
			ConfigLoader:     loader,
			SystemConfigPath: opts.cfgFile,
			Repository:       opts.repo,
			Prompter:         opts.prompter,
			LogOutput:        opts.logOutput,
			Verbose:          opts.verbose,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := &CommandContext{
			Container: c,
			Logger:    c.Logger(),
			Context:   cmd.Context(),
		}
		if ctx.Context == nil {
			ctx.Context = context.Background()
		}

		return handler(ctx, cmd, args)
	}
}
