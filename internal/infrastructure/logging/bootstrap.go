package logging

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

const defaultBootstrapLimit = 256

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type pendingEntry struct {
	ctx    context.Context
	level  level
	msg    string
	fields []interface{}
}

// BootstrapLogger holds entries written while the configuration that decides
// where logs go is still being loaded. Replay hands them to the real logger.
// Once full, the oldest entries are dropped.
type BootstrapLogger struct {
	state  *bootstrapState
	fields []interface{}
}

type bootstrapState struct {
	mu      sync.Mutex
	limit   int
	pending []pendingEntry
	dropped int
}

// NewBootstrapLogger creates a buffering logger holding at most limit entries
// (defaults to 256).
func NewBootstrapLogger(limit int) *BootstrapLogger {
	if limit <= 0 {
		limit = defaultBootstrapLimit
	}
	return &BootstrapLogger{state: &bootstrapState{limit: limit}}
}

func (l *BootstrapLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelDebug, msg, fields)
}

func (l *BootstrapLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelInfo, msg, fields)
}

func (l *BootstrapLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelWarn, msg, fields)
}

func (l *BootstrapLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.add(ctx, levelError, msg, fields)
}

// With returns a child sharing the same buffer.
func (l *BootstrapLogger) With(fields ...interface{}) ports.Logger {
	next := append(append([]interface{}{}, l.fields...), fields...)
	return &BootstrapLogger{state: l.state, fields: next}
}

// Len returns the number of entries waiting for Replay.
func (l *BootstrapLogger) Len() int {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	return len(l.state.pending)
}

// Replay writes buffered entries to delegate in order and empties the buffer.
// It returns how many entries had been dropped for lack of room.
func (l *BootstrapLogger) Replay(delegate ports.Logger) int {
	if delegate == nil {
		return 0
	}
	s := l.state
	s.mu.Lock()
	pending := s.pending
	dropped := s.dropped
	s.pending = nil
	s.dropped = 0
	s.mu.Unlock()

	for _, entry := range pending {
		switch entry.level {
		case levelDebug:
			delegate.Debug(entry.ctx, entry.msg, entry.fields...)
		case levelWarn:
			delegate.Warn(entry.ctx, entry.msg, entry.fields...)
		case levelError:
			delegate.Error(entry.ctx, entry.msg, entry.fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, entry.fields...)
		}
	}
	return dropped
}

func (l *BootstrapLogger) add(ctx context.Context, lvl level, msg string, fields []interface{}) {
	if l == nil || l.state == nil {
		return
	}
	entry := pendingEntry{
		ctx:    ctx,
		level:  lvl,
		msg:    msg,
		fields: append(append([]interface{}{}, l.fields...), fields...),
	}

	s := l.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == s.limit {
		s.pending = append(s.pending[1:], entry)
		s.dropped++
		return
	}
	s.pending = append(s.pending, entry)
}

var _ ports.Logger = (*BootstrapLogger)(nil)
