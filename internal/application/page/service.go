// Package page coordinates the widgets shown on the widgetlab page. Every
// mutation is logged and published as a domain event.
package page

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
	"github.com/alexisbeaulieu97/widgetlab/internal/ports"
)

// Snapshot is the observable state of the page at one instant.
type Snapshot struct {
	Toggle    widget.ToggleState `json:"toggle"`
	Entries   []widget.Entry     `json:"entries"`
	Exhausted bool               `json:"exhausted"`
	Remaining int                `json:"remaining"`
	Min       int                `json:"min"`
	Max       int                `json:"max"`
}

// Service owns one toggle, one number list and the generator feeding it.
// It is not safe for concurrent use; callers drive it from a single event
// loop.
type Service struct {
	toggle    *widget.Toggle
	list      *widget.NumberList
	generator *widget.Generator
	logger    ports.Logger
	events    ports.EventPublisher
}

// Options configures a Service.
type Options struct {
	Labels    widget.ToggleLabels
	Generator []widget.GeneratorOption
	Increment int
	Logger    ports.Logger
	Events    ports.EventPublisher
}

// NewService builds the widgets. It fails only when the generator options
// are invalid.
func NewService(opts Options) (*Service, error) {
	gen, err := widget.NewGenerator(opts.Generator...)
	if err != nil {
		return nil, err
	}

	var listOpts []widget.ListOption
	if opts.Increment > 0 {
		listOpts = append(listOpts, widget.WithIncrement(opts.Increment))
	}

	return &Service{
		toggle:    widget.NewToggle(opts.Labels),
		list:      widget.NewNumberList(gen, listOpts...),
		generator: gen,
		logger:    opts.Logger,
		events:    opts.Events,
	}, nil
}

// ActivateToggle flips the toggle.
func (s *Service) ActivateToggle(ctx context.Context) widget.ToggleState {
	state := s.toggle.Activate()
	if s.logger != nil {
		s.logger.Debug(ctx, "toggle activated", "on", state.On, "label", state.Label)
	}
	s.publish(ctx, widget.ToggleActivated(state))
	return state
}

// AddNumber appends a freshly generated number. When the generator has
// nothing left the error matches widget.ErrExhausted and the list is
// unchanged.
func (s *Service) AddNumber(ctx context.Context) (widget.Entry, error) {
	entry, err := s.list.Add()
	if err != nil {
		if errors.Is(err, widget.ErrExhausted) {
			if s.logger != nil {
				s.logger.Warn(ctx, "number generator exhausted", "generated", len(s.generator.History()))
			}
			s.publish(ctx, widget.GeneratorExhausted(len(s.generator.History())))
		} else if s.logger != nil {
			s.logger.Error(ctx, "failed to add number", "error", err)
		}
		return widget.Entry{}, err
	}

	if s.logger != nil {
		s.logger.Debug(ctx, "number added", "entry_id", int(entry.ID), "value", entry.Value)
	}
	s.publish(ctx, widget.NumberAdded(entry, s.list.Len()))
	return entry, nil
}

// SelectEntry increments the entry with the given id.
func (s *Service) SelectEntry(ctx context.Context, id widget.EntryID) (widget.Entry, error) {
	before, _ := s.list.Entry(id)
	entry, err := s.list.Select(id)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn(ctx, "select failed", "entry_id", int(id), "error", err)
		}
		return widget.Entry{}, err
	}
	s.selected(ctx, entry, before.Value)
	return entry, nil
}

// SelectValue increments the first entry whose value equals v.
func (s *Service) SelectValue(ctx context.Context, v int) (widget.Entry, error) {
	entry, err := s.list.SelectValue(v)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn(ctx, "select failed", "value", v, "error", err)
		}
		return widget.Entry{}, err
	}
	s.selected(ctx, entry, v)
	return entry, nil
}

func (s *Service) selected(ctx context.Context, entry widget.Entry, previous int) {
	if s.logger != nil {
		s.logger.Debug(ctx, "number incremented", "entry_id", int(entry.ID), "previous", previous, "value", entry.Value)
	}
	s.publish(ctx, widget.NumberIncremented(entry, previous))
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		Toggle:    s.toggle.State(),
		Entries:   s.list.Entries(),
		Exhausted: s.generator.Exhausted(),
		Remaining: s.generator.Remaining(),
		Min:       s.generator.Min(),
		Max:       s.generator.Max(),
	}
}

func (s *Service) publish(ctx context.Context, event widget.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "failed to publish domain event", "event_type", event.EventType(), "error", err)
	}
}
