package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	"github.com/alexisbeaulieu97/widgetlab/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

type entry map[string]any

func readEntries(t *testing.T, raw string) []entry {
	t.Helper()
	var out []entry
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		var e entry
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestJournalRecordsEventFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	pinned := time.Date(2025, 10, 3, 12, 0, 0, 0, time.UTC)
	j := New(Options{Writer: buf, Session: "s-1", Now: func() time.Time { return pinned }})

	ctx := ports.WithCorrelationID(context.Background(), "corr-9")
	require.NoError(t, j.Record(ctx, widget.NumberAdded(widget.Entry{ID: 4, Value: 17}, 4)))

	entries := readEntries(t, buf.String())
	require.Len(t, entries, 1)
	e := entries[0]
	require.Equal(t, "number.added", e["event"])
	require.Equal(t, "s-1", e["session"])
	require.Equal(t, "corr-9", e["correlation_id"])
	require.EqualValues(t, 1, e["seq"])
	require.EqualValues(t, 4, e["entry_id"])
	require.EqualValues(t, 17, e["value"])
	require.Equal(t, pinned.Format(time.RFC3339), e["time"])
}

func TestJournalSequenceIncreases(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	j := New(Options{Writer: buf})

	ctx := context.Background()
	require.NoError(t, j.Record(ctx, widget.ToggleActivated(widget.ToggleState{On: true, Label: "ON", Color: "red"})))
	require.NoError(t, j.Record(ctx, widget.ToggleActivated(widget.ToggleState{Label: "OFF", Color: "white"})))

	entries := readEntries(t, buf.String())
	require.Len(t, entries, 2)
	require.EqualValues(t, 1, entries[0]["seq"])
	require.EqualValues(t, 2, entries[1]["seq"])
	require.Equal(t, true, entries[0]["on"])
	require.Equal(t, "OFF", entries[1]["label"])
	require.NotContains(t, entries[0], "session")
}

func TestJournalAttachSubscribesToPublisher(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	j := New(Options{Writer: buf})
	publisher := events.NewLoggingPublisher(nil)

	subs, err := j.Attach(publisher, widget.EventNumberIncremented)
	require.NoError(t, err)
	require.Len(t, subs, 1)

	ctx := context.Background()
	require.NoError(t, publisher.Publish(ctx, widget.NumberIncremented(widget.Entry{ID: 1, Value: 155}, 55)))
	require.NoError(t, publisher.Publish(ctx, widget.GeneratorExhausted(100)))

	entries := readEntries(t, buf.String())
	require.Len(t, entries, 1)
	require.Equal(t, "number.incremented", entries[0]["event"])
	require.EqualValues(t, 55, entries[0]["previous"])
}

func TestJournalOpenAppendsToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "journal.jsonl")

	for i := 0; i < 2; i++ {
		j, err := Open(path, "file-session")
		require.NoError(t, err)
		require.NoError(t, j.Record(context.Background(), widget.GeneratorExhausted(100)))
		require.NoError(t, j.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	entries := readEntries(t, string(data))
	require.Len(t, entries, 2)
	require.Equal(t, "file-session", entries[1]["session"])
}

func TestJournalNilIsSafe(t *testing.T) {
	t.Parallel()

	var j *Journal
	require.NoError(t, j.Record(context.Background(), widget.GeneratorExhausted(1)))
	require.NoError(t, j.Close())
}
