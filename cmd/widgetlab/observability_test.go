package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
)

func TestPlayCommandStructuredLogging(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	_, _, err := execute(t, newTestApp(t, &logBuf, 1, 100), "play", "toggle", "add", "select=1")
	require.NoError(t, err)

	logLines := filterLines(logBuf.String())
	require.NotEmpty(t, logLines, "expected structured log output")

	var messages []string
	for _, line := range logLines {
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &payload))
		require.Equal(t, "cli-corr-id", payload["correlation_id"])
		require.Equal(t, "cli", payload["layer"])
		require.NotEmpty(t, payload["component"])
		messages = append(messages, payload["msg"].(string))
	}

	require.Contains(t, messages, "playing script")
	require.Contains(t, messages, "toggle activated")
	require.Contains(t, messages, "number added")
	require.Contains(t, messages, "number incremented")
	require.Contains(t, messages, "widget event")
}

func TestPlayWritesJournal(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	app := newTestApp(t, &logBuf, 1, 100)
	app.Config.Journal.Path = filepath.Join(t.TempDir(), "nested", "journal.jsonl")

	_, _, err := execute(t, app, "play", "toggle", "add", "select=1")
	require.NoError(t, err)
	require.NoError(t, app.Close())

	file, err := os.Open(app.Config.Journal.Path)
	require.NoError(t, err)
	defer file.Close()

	var events []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		require.Equal(t, "cli-corr-id", entry["session"])
		events = append(events, entry["event"].(string))
	}
	require.NoError(t, scanner.Err())

	require.Equal(t, []string{
		widget.EventToggleActivated,
		widget.EventNumberAdded,
		widget.EventNumberIncremented,
	}, events)
}
