package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetlab/internal/config"
	logginginfra "github.com/alexisbeaulieu97/widgetlab/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

// newTestApp returns an app whose generator can only produce min..max and
// whose logs go to logBuf as JSON lines.
func newTestApp(t *testing.T, logBuf *bytes.Buffer, min, max int) *AppContext {
	t.Helper()

	cfg := config.Default()
	cfg.Numbers.Min = min
	cfg.Numbers.Max = max
	cfg.Numbers.Seed = 1

	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    logBuf,
		Level:     "debug",
		Format:    logginginfra.FormatJSON,
		Layer:     "cli",
		Component: "widgetlab",
	})
	require.NoError(t, err)

	return &AppContext{Config: cfg, ConfigPath: "test.yaml", ConfigFound: true, Logger: logger}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, app *AppContext, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd(app)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	ctx := ports.WithCorrelationID(context.Background(), "cli-corr-id")
	err := cmd.ExecuteContext(ctx)
	t.Cleanup(func() { _ = app.Close() })
	return out.String(), errOut.String(), err
}

func filterLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
