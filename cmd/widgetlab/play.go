package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/widgetlab/internal/application/page"
	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	"github.com/alexisbeaulieu97/widgetlab/internal/tui"
	"github.com/alexisbeaulieu97/widgetlab/pkg/diff"
	apperrors "github.com/alexisbeaulieu97/widgetlab/pkg/errors"
)

const (
	traceUnified = "unified"
	traceInline  = "inline"
)

type playOptions struct {
	trace      bool
	traceStyle string
	jsonOutput bool
	width      int
}

type actionKind int

const (
	actionToggle actionKind = iota
	actionAdd
	actionSelect
	actionClick
)

type action struct {
	raw   string
	kind  actionKind
	id    widget.EntryID
	value int
}

var errUnknownAction = errors.New("unknown action (want toggle, add, select=<entry-id> or click=<value>)")

func newPlayCmd(app *AppContext, flags *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play ACTION...",
		Short: "Drive the widgets with a scripted list of actions",
		Long: `Run the page without a terminal. Each argument is one action:

  toggle             press the toggle button
  add                press "Add Number"
  select=<entry-id>  select the entry with that id (ids start at 1)
  click=<value>      select the first entry showing that value

The final page is printed when all actions succeeded.`,
		Example: "  widgetlab play add add toggle select=1\n  widgetlab play --seed 7 --trace add click=42",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePlayOptions(opts); err != nil {
				return err
			}
			actions, err := parseActions(args)
			if err != nil {
				return err
			}
			if err := app.Setup(cmd, flags, modeBatch); err != nil {
				return err
			}

			ctx, logger := app.CommandContext(cmd, "command.play")
			logger.Info(ctx, "playing script", "actions", len(actions))

			svc, err := app.NewPageService(logger.With("component", "page"))
			if err != nil {
				return err
			}
			err = runPlay(ctx, cmd.OutOrStdout(), svc, actions, opts)
			if err != nil {
				logger.Error(ctx, "play command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.trace, "trace", false, "Print how the page changes after each action")
	cmd.Flags().StringVar(&opts.traceStyle, "trace-style", traceUnified, "Trace format: unified or inline")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the final state as JSON instead of the page")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Page width in columns (default 32)")

	return cmd
}

func validatePlayOptions(opts *playOptions) error {
	switch opts.traceStyle {
	case traceUnified, traceInline:
	default:
		return fmt.Errorf("invalid --trace-style %q: want %s or %s", opts.traceStyle, traceUnified, traceInline)
	}
	if opts.width < 0 {
		return fmt.Errorf("invalid --width %d: must not be negative", opts.width)
	}
	return nil
}

func parseActions(args []string) ([]action, error) {
	actions := make([]action, 0, len(args))
	for i, raw := range args {
		a, err := parseAction(raw)
		if err != nil {
			return nil, apperrors.NewActionError(i, raw, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

func parseAction(raw string) (action, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(raw), "=")
	name = strings.ToLower(name)

	switch {
	case name == "toggle" && !hasArg:
		return action{raw: raw, kind: actionToggle}, nil
	case name == "add" && !hasArg:
		return action{raw: raw, kind: actionAdd}, nil
	case name == "select" && hasArg:
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
		if err != nil || n < 1 {
			return action{}, fmt.Errorf("entry id %q is not a positive integer", arg)
		}
		return action{raw: raw, kind: actionSelect, id: widget.EntryID(n)}, nil
	case name == "click" && hasArg:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return action{}, fmt.Errorf("value %q is not an integer", arg)
		}
		return action{raw: raw, kind: actionClick, value: n}, nil
	default:
		return action{}, errUnknownAction
	}
}

func applyAction(ctx context.Context, svc *page.Service, a action) error {
	var err error
	switch a.kind {
	case actionToggle:
		svc.ActivateToggle(ctx)
	case actionAdd:
		_, err = svc.AddNumber(ctx)
	case actionSelect:
		_, err = svc.SelectEntry(ctx, a.id)
	case actionClick:
		_, err = svc.SelectValue(ctx, a.value)
	}
	return err
}

func runPlay(ctx context.Context, out io.Writer, svc *page.Service, actions []action, opts *playOptions) error {
	render := func() string {
		v := tui.ViewFromSnapshot(svc.Snapshot())
		v.Width = opts.width
		return plainText(tui.RenderPage(v))
	}

	before := render()
	for i, a := range actions {
		if err := applyAction(ctx, svc, a); err != nil {
			return apperrors.NewActionError(i, a.raw, err)
		}
		if !opts.trace {
			continue
		}

		after := render()
		writeTrace(out, i, a.raw, before, after, opts.traceStyle)
		before = after
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(svc.Snapshot())
	}

	if opts.trace {
		fmt.Fprintln(out, "== final")
	}
	_, err := fmt.Fprintln(out, render())
	return err
}

func writeTrace(out io.Writer, index int, raw, before, after, style string) {
	fmt.Fprintf(out, "== %d: %s\n", index+1, raw)
	switch style {
	case traceInline:
		changed := diff.ChangedLines(before, after)
		if len(changed) == 0 {
			fmt.Fprintln(out, "(no change)")
		}
		for _, line := range changed {
			fmt.Fprintln(out, line)
		}
	default:
		unified := diff.GenerateUnifiedDiff([]byte(before+"\n"), []byte(after+"\n"),
			fmt.Sprintf("step %d", index), fmt.Sprintf("step %d", index+1))
		if unified == "" {
			fmt.Fprintln(out, "(no change)")
			return
		}
		fmt.Fprint(out, unified)
	}
}

// plainText strips escape sequences and trailing padding so output is stable
// whatever the terminal supports.
func plainText(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
