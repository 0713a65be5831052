package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	out, _, err := execute(t, newTestApp(t, &logs, 1, 100), "version")
	require.NoError(t, err)
	require.Equal(t, "widgetlab dev\ncommit: none\nbuilt: unknown\n", out)
	require.Empty(t, logs.String(), "version does not set up logging")
}
