package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer       io.Writer
	Level        string
	Format       string
	TimeFormat   string
	ReportCaller bool
	Layer        string
	Component    string
	Fields       map[string]interface{}
}

// Logger implements ports.Logger using charmbracelet/log.
type Logger struct {
	logger *cblog.Logger
	fields []interface{}
	layer  string
}

// New creates a Logger with the supplied options. Format selects between
// logfmt-style text (the default) and JSON lines.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter, err := parseFormat(opts.Format)
	if err != nil {
		return nil, err
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
		ReportCaller:    opts.ReportCaller,
		Formatter:       formatter,
		Fields:          mapToFields(opts.Fields),
	})

	fields := make([]interface{}, 0, 2)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{
		logger: base,
		fields: fields,
		layer:  layer,
	}, nil
}

func parseFormat(format string) (cblog.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return cblog.TextFormatter, nil
	case FormatJSON:
		return cblog.JSONFormatter, nil
	default:
		return cblog.TextFormatter, fmt.Errorf("unknown log format %q", format)
	}
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields...)
}

// With derives a logger carrying extra persistent fields. A "layer" key
// replaces the layer instead of being duplicated.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return discard
	}
	layer := l.layer
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok && key == "layer" {
			if v, ok := fields[i+1].(string); ok && v != "" {
				layer = v
			}
			continue
		}
		next = append(next, fields[i], fields[i+1])
	}
	return &Logger{
		logger: l.logger,
		fields: next,
		layer:  layer,
	}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, fields ...interface{}) {
	if l == nil || l.logger == nil {
		return
	}
	extras := map[string]interface{}{
		"layer": l.layer,
	}
	if id := ports.GetCorrelationID(ctx); id != "" {
		extras["correlation_id"] = id
	}
	payload := mergeFields(l.fields, fields, extras)

	switch level {
	case cblog.DebugLevel:
		l.logger.Debug(msg, payload...)
	case cblog.WarnLevel:
		l.logger.Warn(msg, payload...)
	case cblog.ErrorLevel:
		l.logger.Error(msg, payload...)
	default:
		l.logger.Info(msg, payload...)
	}
}

func mapToFields(input map[string]interface{}) []interface{} {
	if len(input) == 0 {
		return nil
	}
	keys := make([]string, 0, len(input))
	for k := range input {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := make([]interface{}, 0, len(input)*2)
	for _, k := range keys {
		res = append(res, k, input[k])
	}
	return res
}

// mergeFields flattens persistent fields, call-site fields and extras into one
// key/value list. Later values win; first-seen key order is kept.
func mergeFields(base []interface{}, additions []interface{}, extras map[string]interface{}) []interface{} {
	store := make(map[string]interface{})
	order := make([]string, 0, (len(base)+len(additions))/2+len(extras))

	put := func(key string, value interface{}) {
		if key == "" {
			return
		}
		if _, exists := store[key]; !exists {
			order = append(order, key)
		}
		store[key] = value
	}

	for _, values := range [][]interface{}{base, additions} {
		for i := 0; i+1 < len(values); i += 2 {
			if key, ok := values[i].(string); ok {
				put(key, values[i+1])
			}
		}
	}

	extraKeys := make([]string, 0, len(extras))
	for key, value := range extras {
		if s, ok := value.(string); value == nil || (ok && s == "") {
			continue
		}
		extraKeys = append(extraKeys, key)
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		put(key, extras[key])
	}

	result := make([]interface{}, 0, len(order)*2)
	for _, key := range order {
		result = append(result, key, store[key])
	}
	return result
}

var _ ports.Logger = (*Logger)(nil)

// discard drops every entry. The interactive page uses it when no log file is
// configured, since the terminal belongs to the UI.
var discard ports.Logger = &discardLogger{}

type discardLogger struct{}

func (*discardLogger) Debug(context.Context, string, ...interface{}) {}
func (*discardLogger) Info(context.Context, string, ...interface{})  {}
func (*discardLogger) Warn(context.Context, string, ...interface{})  {}
func (*discardLogger) Error(context.Context, string, ...interface{}) {}

func (d *discardLogger) With(...interface{}) ports.Logger { return d }

// NewNoOpLogger returns the shared logger that drops every entry.
func NewNoOpLogger() ports.Logger {
	return discard
}
