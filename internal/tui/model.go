// Package tui is the interactive widgetlab page built on Bubble Tea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/widgetlab/internal/application/page"
	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
	"github.com/alexisbeaulieu97/widgetlab/internal/ui/components"
)

// Model is the Bubble Tea model for the page. Widget state lives in the
// page service; the model only tracks focus and presentation.
type Model struct {
	ctx     context.Context
	service *page.Service
	logger  ports.Logger

	keys  keyMap
	help  help.Model
	theme components.Theme

	focus    int
	errMsg   string
	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithTheme overrides the component theme.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithLogger sets the logger used for key handling diagnostics.
func WithLogger(logger ports.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// NewModel creates a page model driving svc. ctx is passed to every service
// call so log lines carry its correlation id.
func NewModel(ctx context.Context, svc *page.Service, opts ...Option) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:     ctx,
		service: svc,
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   defaultTheme(),
		focus:   FocusToggle,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model. The page needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus returns the focused position.
func (m Model) Focus() int {
	return m.focus
}

// Err returns the message shown in the error banner, if any.
func (m Model) Err() string {
	return m.errMsg
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Snapshot returns the current widget state.
func (m Model) Snapshot() page.Snapshot {
	return m.service.Snapshot()
}

// focusCount is the number of focusable positions: the two buttons plus one
// per entry.
func (m Model) focusCount() int {
	return FocusAdd + 1 + len(m.service.Snapshot().Entries)
}

func (m *Model) moveFocus(delta int) {
	n := m.focusCount()
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) setError(msg string) {
	m.errMsg = msg
	m.keys.Dismiss.SetEnabled(msg != "")
}
