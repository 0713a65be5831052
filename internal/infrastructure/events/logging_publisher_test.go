package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	logginginfra "github.com/alexisbeaulieu97/widgetlab/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

func newJSONLogger(t *testing.T, buf *bytes.Buffer) *logginginfra.Logger {
	t.Helper()
	logger, err := logginginfra.New(logginginfra.Options{
		Writer:    buf,
		Level:     "debug",
		Layer:     "test",
		Component: "publisher",
		Format:    logginginfra.FormatJSON,
	})
	require.NoError(t, err)
	return logger
}

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf))

	ctx := ports.WithCorrelationID(context.Background(), "abc-123")
	err := publisher.Publish(ctx, widget.NumberAdded(widget.Entry{ID: 1, Value: 42}, 1))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "widget event", entry["msg"])
	require.Equal(t, widget.EventNumberAdded, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.EqualValues(t, 42, entry["value"])
}

func TestLoggingPublisherInvokesSubscribers(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var typed, all []string
	_, err := publisher.Subscribe(widget.EventToggleActivated, func(_ context.Context, event ports.DomainEvent) error {
		typed = append(typed, event.EventType())
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(AllEvents, func(_ context.Context, event ports.DomainEvent) error {
		all = append(all, event.EventType())
		return nil
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, publisher.Publish(ctx, widget.ToggleActivated(widget.ToggleState{On: true})))
	require.NoError(t, publisher.Publish(ctx, widget.GeneratorExhausted(100)))

	require.Equal(t, []string{widget.EventToggleActivated}, typed)
	require.Equal(t, []string{widget.EventToggleActivated, widget.EventGeneratorExhausted}, all)
}

func TestLoggingPublisherUnsubscribe(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)
	calls := 0
	sub, err := publisher.Subscribe(widget.EventNumberIncremented, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	event := widget.NumberIncremented(widget.Entry{ID: 1, Value: 150}, 50)
	require.NoError(t, publisher.Publish(context.Background(), event))
	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), event))

	require.Equal(t, 1, calls)
}

func TestLoggingPublisherLogsHandlerFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	publisher := NewLoggingPublisher(newJSONLogger(t, buf))

	delivered := false
	_, err := publisher.Subscribe(widget.EventNumberAdded, func(context.Context, ports.DomainEvent) error {
		return errors.New("disk full")
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(widget.EventNumberAdded, func(context.Context, ports.DomainEvent) error {
		delivered = true
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), widget.NumberAdded(widget.Entry{ID: 2, Value: 7}, 2)))
	require.True(t, delivered, "later subscribers still run")
	require.True(t, strings.Contains(buf.String(), "event handler failed"))
	require.True(t, strings.Contains(buf.String(), "disk full"))
}
