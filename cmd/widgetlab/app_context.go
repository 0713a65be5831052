package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetlab/internal/application/page"
	"github.com/alexisbeaulieu97/widgetlab/internal/config"
	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	"github.com/alexisbeaulieu97/widgetlab/internal/infrastructure/events"
	logginginfra "github.com/alexisbeaulieu97/widgetlab/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/widgetlab/internal/journal"
	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

// runMode decides where diagnostics go: the interactive page owns the
// terminal, so it logs to a file or nowhere.
type runMode int

const (
	modeBatch runMode = iota
	modeInteractive
)

// AppContext bundles long-lived services created at startup. Fields that are
// already set when Setup runs are kept, which lets tests inject them.
type AppContext struct {
	Bootstrap *logginginfra.BootstrapLogger

	Config      *config.Config
	ConfigPath  string
	ConfigFound bool

	Logger  ports.Logger
	Events  ports.EventPublisher
	Journal *journal.Journal

	closers []io.Closer
	ready   bool
}

// Setup loads configuration, applies command-line overrides and builds the
// logger, the event publisher and the journal.
func (a *AppContext) Setup(cmd *cobra.Command, flags *rootFlags, mode runMode) error {
	if a.ready {
		return nil
	}
	ctx := commandContext(cmd)
	boot := a.bootstrap()

	if a.Config == nil {
		path := flags.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		boot.Debug(ctx, "loading configuration", "path", path)

		cfg, found, err := config.Load(path)
		if err != nil {
			boot.Error(ctx, "configuration rejected", "path", path, "error", err)
			a.flushBootstrap(cmd.ErrOrStderr())
			return err
		}
		if !found {
			boot.Debug(ctx, "no configuration file, using defaults", "path", path)
		}
		a.Config, a.ConfigPath, a.ConfigFound = cfg, path, found
	}

	if cmd.Flags().Changed("seed") {
		a.Config.Numbers.Seed = flags.seed
	}
	if flags.verbose {
		a.Config.Log.Level = "debug"
	}

	if a.Logger == nil {
		logger, err := a.newLogger(cmd.ErrOrStderr(), mode)
		if err != nil {
			a.flushBootstrap(cmd.ErrOrStderr())
			return err
		}
		a.Logger = logger
	}
	if dropped := boot.Replay(a.Logger); dropped > 0 {
		a.Logger.Warn(ctx, "early log entries dropped", "count", dropped)
	}

	if a.Events == nil {
		a.Events = events.NewLoggingPublisher(a.Logger.With("component", "events"))
	}

	if a.Journal == nil && a.Config.Journal.Path != "" {
		j, err := journal.Open(a.Config.Journal.Path, ports.GetCorrelationID(ctx))
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		if _, err := j.Attach(a.Events,
			widget.EventToggleActivated,
			widget.EventNumberAdded,
			widget.EventNumberIncremented,
			widget.EventGeneratorExhausted,
		); err != nil {
			_ = j.Close()
			return err
		}
		a.Journal = j
		a.closers = append(a.closers, j)
		a.Logger.Debug(ctx, "journal attached", "path", a.Config.Journal.Path)
	}

	a.ready = true
	return nil
}

func (a *AppContext) newLogger(stderr io.Writer, mode runMode) (ports.Logger, error) {
	writer := stderr
	if mode == modeInteractive {
		if a.Config.Log.File == "" {
			return logginginfra.NewNoOpLogger(), nil
		}
		if err := os.MkdirAll(filepath.Dir(a.Config.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(a.Config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		a.closers = append(a.closers, file)
		writer = file
	}

	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    writer,
		Level:     a.Config.Log.Level,
		Format:    a.Config.Log.Format,
		Layer:     "cli",
		Component: "widgetlab",
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// flushBootstrap writes buffered entries to w when setup fails before a
// configured logger exists.
func (a *AppContext) flushBootstrap(w io.Writer) {
	if a.Bootstrap == nil || a.Bootstrap.Len() == 0 {
		return
	}
	logger, err := logginginfra.New(logginginfra.Options{Writer: w, Level: "debug", Layer: "cli"})
	if err != nil {
		return
	}
	a.Bootstrap.Replay(logger)
}

func (a *AppContext) bootstrap() *logginginfra.BootstrapLogger {
	if a.Bootstrap == nil {
		a.Bootstrap = logginginfra.NewBootstrapLogger(0)
	}
	return a.Bootstrap
}

// CommandContext returns the command's context, carrying a correlation id,
// and a logger tagged with component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := commandContext(cmd)
	if a.Logger == nil {
		return ctx, nil
	}
	return ctx, a.Logger.With("component", component)
}

// NewPageService builds the widgets from the loaded configuration.
func (a *AppContext) NewPageService(logger ports.Logger) (*page.Service, error) {
	cfg := a.Config
	if cfg == nil {
		cfg = config.Default()
	}
	svc, err := page.NewService(page.Options{
		Labels:    cfg.ToggleLabels(),
		Generator: cfg.GeneratorOptions(),
		Increment: cfg.Numbers.Increment,
		Logger:    logger,
		Events:    a.Events,
	})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return svc, nil
}

// Close releases files opened by Setup. It is safe to call more than once.
func (a *AppContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// commandContext makes sure the command context carries a correlation id.
// The id is stored back on the command so every later lookup sees it.
func commandContext(cmd *cobra.Command) context.Context {
	ctx, added := logginginfra.EnsureCorrelationID(cmd.Context())
	if added {
		cmd.SetContext(ctx)
	}
	return ctx
}
