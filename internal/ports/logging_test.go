package ports

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCorrelationIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCorrelationID(context.Background(), "corr-1")
	require.Equal(t, "corr-1", GetCorrelationID(ctx))
	require.Empty(t, GetCorrelationID(context.Background()))
	require.Empty(t, GetCorrelationID(nil)) //nolint:staticcheck // nil context is tolerated
}

func TestGenerateCorrelationIDIsUUIDv4(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	first := GenerateCorrelationID()
	second := GenerateCorrelationID()

	require.Regexp(t, pattern, first)
	require.Regexp(t, pattern, second)
	require.NotEqual(t, first, second)
}
