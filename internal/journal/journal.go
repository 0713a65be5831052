// Package journal records widget activity as JSON lines, one per event.
package journal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

// Options describes journal configuration supplied at creation time.
type Options struct {
	Writer  io.Writer
	Session string
	// Now overrides the timestamp source; tests pin it.
	Now func() time.Time
}

// Journal writes widget events through zerolog.
type Journal struct {
	mu     sync.Mutex
	base   zerolog.Logger
	closer io.Closer
	seq    int
}

// New creates a journal writing to opts.Writer (stdout when nil).
func New(opts Options) *Journal {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	ctx := zerolog.New(writer).With()
	if opts.Now == nil {
		ctx = ctx.Timestamp()
	}
	if opts.Session != "" {
		ctx = ctx.Str("session", opts.Session)
	}
	base := ctx.Logger()
	if opts.Now != nil {
		now := opts.Now
		base = base.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
			e.Time(zerolog.TimestampFieldName, now())
		}))
	}
	return &Journal{base: base}
}

// Open appends to the journal file at path, creating parent directories.
func Open(path string, session string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	j := New(Options{Writer: file, Session: session})
	j.closer = file
	return j, nil
}

// Record writes one entry for event. Payload map keys become top-level fields.
func (j *Journal) Record(ctx context.Context, event ports.DomainEvent) error {
	if j == nil || event == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	j.seq++
	entry := j.base.Log().
		Int("seq", j.seq).
		Str("event", event.EventType())
	if id := ports.GetCorrelationID(ctx); id != "" {
		entry = entry.Str("correlation_id", id)
	}

	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			entry = entry.Interface(key, payload[key])
		}
	case nil:
	default:
		entry = entry.Interface("payload", payload)
	}

	entry.Send()
	return nil
}

// Attach subscribes the journal to every event type in types.
func (j *Journal) Attach(publisher ports.EventPublisher, types ...string) ([]ports.Subscription, error) {
	subs := make([]ports.Subscription, 0, len(types))
	for _, eventType := range types {
		sub, err := publisher.Subscribe(eventType, j.Record)
		if err != nil {
			for _, s := range subs {
				s.Unsubscribe()
			}
			return nil, fmt.Errorf("subscribe journal to %s: %w", eventType, err)
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Close releases the underlying file, if the journal owns one.
func (j *Journal) Close() error {
	if j == nil || j.closer == nil {
		return nil
	}
	return j.closer.Close()
}
