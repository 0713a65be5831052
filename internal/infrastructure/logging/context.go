package logging

import (
	"context"

	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

// EnsureCorrelationID returns ctx carrying a correlation id, generating one
// when ctx has none. added reports whether a new id was stored.
func EnsureCorrelationID(ctx context.Context) (out context.Context, added bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) != "" {
		return ctx, false
	}
	return ports.WithCorrelationID(ctx, ports.GenerateCorrelationID()), true
}
