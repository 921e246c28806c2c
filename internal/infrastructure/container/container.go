// Package container provides dependency injection for the application.
package container

import (
	"context"
	"io"
	"log/slog"
	"os"

	apperrors "github.com/yarwhq/yarw/internal/application/errors"
	"github.com/yarwhq/yarw/internal/application/ports"
	"github.com/yarwhq/yarw/internal/application/services"
	"github.com/yarwhq/yarw/internal/domain/entities"
	"github.com/yarwhq/yarw/internal/domain/repositories"
	"github.com/yarwhq/yarw/internal/domain/values"
	"github.com/yarwhq/yarw/internal/infrastructure/output"
	"github.com/yarwhq/yarw/internal/infrastructure/persistence/leveldb"
	"github.com/yarwhq/yarw/internal/infrastructure/prompt"
	"github.com/yarwhq/yarw/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	repo        repositories.ProfileSnapshotRepository
	formatters  ports.OutputFormatterFactory
	prompter    ports.ProfilePrompter
	systemCfg   *system.Config
	logger      *slog.Logger
	storageRoot string

	defaultVariant  values.ApplicationVariant
	defaultRenderer values.RenderBackend
}

// Options configure the container.
type Options struct {
	// Logger is used as is when set. Otherwise a text logger on LogOutput is
	// built at the configured level.
	Logger    *slog.Logger
	LogOutput io.Writer

	// ConfigLoader may carry bound command-line flags. A fresh loader is used when nil.
	ConfigLoader *system.ConfigLoader

	// SystemConfigPath defaults to <config-dir>/config.yaml.
	SystemConfigPath string

	// StorageDir overrides the storage root from the config file and ConfigDir.
	StorageDir string

	// Repository replaces the LevelDB repository (tests).
	Repository repositories.ProfileSnapshotRepository

	// Prompter replaces the terminal prompter (tests).
	Prompter ports.ProfilePrompter

	Verbose bool
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	loader := opts.ConfigLoader
	if loader == nil {
		loader = system.NewConfigLoader()
	}
	configPath := opts.SystemConfigPath
	if configPath == "" {
		configPath = system.DefaultConfigPath()
	}

	systemCfg, err := loader.Load(configPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("config file", configPath, err)
	}

	defaultVariant, err := systemCfg.DefaultVariant()
	if err != nil {
		return nil, apperrors.NewConfigurationError("defaults.variant", systemCfg.Defaults.Variant, err)
	}
	defaultRenderer, err := systemCfg.DefaultRenderer()
	if err != nil {
		return nil, apperrors.NewConfigurationError("defaults.renderer", systemCfg.Defaults.Renderer, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger, err = newLogger(systemCfg, opts)
		if err != nil {
			return nil, err
		}
	}
	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug("using config file", "file", used)
	}

	storageRoot := opts.StorageDir
	if storageRoot == "" {
		storageRoot = systemCfg.StorageRoot()
	}

	repo := opts.Repository
	if repo == nil {
		repo = leveldb.NewSnapshotRepository(storageRoot, logger)
	}

	var prompter ports.ProfilePrompter = prompt.NewTerminalPrompter()
	if opts.Prompter != nil {
		prompter = opts.Prompter
	}

	return &Container{
		repo:        repo,
		formatters:  output.NewFormatterFactory(),
		prompter:    prompter,
		systemCfg:   systemCfg,
		logger:      logger,
		storageRoot: storageRoot,

		defaultVariant:  defaultVariant,
		defaultRenderer: defaultRenderer,
	}, nil
}

func newLogger(cfg *system.Config, opts Options) (*slog.Logger, error) {
	level, err := system.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, apperrors.NewConfigurationError("log.level", cfg.Log.Level, err)
	}
	if opts.Verbose {
		level = slog.LevelDebug
	}
	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	// Using TextHandler for CLI friendliness
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), nil
}

// LoadProfileStore opens the store from the configured repository.
func (c *Container) LoadProfileStore(ctx context.Context) (*services.ProfileStore, error) {
	return services.LoadProfileStore(ctx, c.repo, c.logger)
}

// NewProfileDraft returns a profile named name carrying the configured defaults.
func (c *Container) NewProfileDraft(name string) entities.Profile {
	p := entities.NewProfile(name)
	p.Variant = c.defaultVariant
	p.Renderer = c.defaultRenderer
	return p
}

// Formatters returns the output formatter factory.
func (c *Container) Formatters() ports.OutputFormatterFactory {
	return c.formatters
}

// Prompter returns the interactive prompter.
func (c *Container) Prompter() ports.ProfilePrompter {
	return c.prompter
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// StorageRoot returns the directory the profile database lives under.
func (c *Container) StorageRoot() string {
	return c.storageRoot
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
