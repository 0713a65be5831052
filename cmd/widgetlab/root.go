package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/widgetlab/internal/tui"
)

type rootFlags struct {
	configPath string
	verbose    bool
	seed       uint64
}

var (
	isTerminalFunc = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runProgramFunc = func(m tea.Model) error {
		_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	}
)

var errNotATerminal = errors.New("standard output is not a terminal")

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "widgetlab",
		Short:         "A toggle and a list of unique random numbers, in your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminalFunc() {
				return newCommandError("start the page", "checking the terminal", errNotATerminal,
					"Run 'widgetlab play add toggle ...' to drive the widgets without a terminal.")
			}
			if err := app.Setup(cmd, flags, modeInteractive); err != nil {
				return err
			}

			ctx, logger := app.CommandContext(cmd, "command.root")
			logger.Info(ctx, "launching page")

			svc, err := app.NewPageService(logger.With("component", "page"))
			if err != nil {
				return err
			}
			if err := runProgramFunc(tui.NewModel(ctx, svc, tui.WithLogger(logger))); err != nil {
				logger.Error(ctx, "page execution failed", "error", err)
				return fmt.Errorf("run page: %w", err)
			}
			logger.Info(ctx, "page closed")
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file (default: user config dir)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "Seed for the number generator (overrides numbers.seed)")

	cmd.AddCommand(newPlayCmd(app, flags))
	cmd.AddCommand(newConfigCmd(app, flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
