package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetlab/internal/config"
	apperrors "github.com/alexisbeaulieu97/widgetlab/pkg/errors"
)

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	out, _, err := execute(t, newTestApp(t, &logs, 1, 100), "config", "show", "--seed", "9", "--verbose")
	require.NoError(t, err)

	require.Contains(t, out, "# source: test.yaml\n")
	require.Contains(t, out, "seed: 9\n")
	require.Contains(t, out, "level: debug\n")
	require.Contains(t, out, `on_label: "ON"`)
}

func TestConfigShowReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("toggle:\n  on_label: Lit\nlog:\n  level: error\n"), 0o644))

	app := &AppContext{}
	out, _, err := execute(t, app, "config", "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "# source: "+path+"\n")
	require.Contains(t, out, "on_label: Lit\n")
	require.True(t, app.ConfigFound)
}

func TestConfigShowMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	app := &AppContext{}
	out, _, err := execute(t, app, "config", "show", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "(not found, defaults)")

	decoded, err := config.Parse("out", []byte(out))
	require.NoError(t, err)
	require.Equal(t, config.Default(), decoded)
}

func TestConfigShowInvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numbers:\n  min: 9\n  max: 3\n"), 0o644))

	_, stderr, err := execute(t, &AppContext{}, "config", "show", "--config", path)
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "numbers.max", validationErr.Field)
	require.Contains(t, stderr, "configuration rejected")
}

func TestOversizedRangeIsRejectedBeforePlaying(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numbers:\n  min: 0\n  max: 9223372036854775807\n"), 0o644))

	for _, args := range [][]string{
		{"config", "show", "--config", path},
		{"play", "add", "--config", path},
	} {
		out, _, err := execute(t, &AppContext{}, args...)
		var validationErr *apperrors.ValidationError
		require.ErrorAs(t, err, &validationErr, "args %v", args)
		require.Equal(t, "numbers.max", validationErr.Field)
		require.Empty(t, out)
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, &AppContext{}, "config", "path")
	require.NoError(t, err)
	require.Equal(t, config.DefaultPath()+"\n", out)
}
