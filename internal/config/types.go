package config

import (
	"github.com/alexisbeaulieu97/widgetlab/internal/domain/widget"
)

// Config is the full widgetlab configuration document.
type Config struct {
	Log     LogSettings     `yaml:"log"`
	Toggle  ToggleSettings  `yaml:"toggle"`
	Numbers NumberSettings  `yaml:"numbers"`
	Journal JournalSettings `yaml:"journal"`
}

// LogSettings controls diagnostic logging.
type LogSettings struct {
	Level  string `yaml:"level" validate:"required,loglevel"`
	Format string `yaml:"format" validate:"required,oneof=text json"`
	// File receives logs while the interactive page owns the terminal.
	// Empty discards them there.
	File string `yaml:"file,omitempty"`
}

// ToggleSettings holds the toggle's labels and colours.
type ToggleSettings struct {
	OffLabel string `yaml:"off_label" validate:"required,max=32"`
	OnLabel  string `yaml:"on_label" validate:"required,max=32"`
	OffColor string `yaml:"off_color" validate:"required,colour"`
	OnColor  string `yaml:"on_color" validate:"required,colour"`
}

// NumberSettings configures the generator and the list.
type NumberSettings struct {
	Min       int `yaml:"min"`
	Max       int `yaml:"max" validate:"gtefield=Min,rangesize"`
	Increment int `yaml:"increment" validate:"min=1"`
	// Seed fixes the random sequence; 0 picks a random seed per run.
	Seed uint64 `yaml:"seed,omitempty"`
}

// JournalSettings configures the JSON-lines activity journal.
type JournalSettings struct {
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	labels := widget.DefaultToggleLabels()
	return &Config{
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
		Toggle: ToggleSettings{
			OffLabel: labels.Off,
			OnLabel:  labels.On,
			OffColor: labels.OffColor,
			OnColor:  labels.OnColor,
		},
		Numbers: NumberSettings{
			Min:       widget.DefaultMin,
			Max:       widget.DefaultMax,
			Increment: widget.DefaultIncrement,
		},
	}
}

// ToggleLabels converts the toggle settings for the widget.
func (c *Config) ToggleLabels() widget.ToggleLabels {
	return widget.ToggleLabels{
		Off:      c.Toggle.OffLabel,
		On:       c.Toggle.OnLabel,
		OffColor: c.Toggle.OffColor,
		OnColor:  c.Toggle.OnColor,
	}
}

// GeneratorOptions converts the number settings for widget.NewGenerator.
func (c *Config) GeneratorOptions() []widget.GeneratorOption {
	opts := []widget.GeneratorOption{widget.WithRange(c.Numbers.Min, c.Numbers.Max)}
	if c.Numbers.Seed != 0 {
		opts = append(opts, widget.WithSeed(c.Numbers.Seed))
	}
	return opts
}
