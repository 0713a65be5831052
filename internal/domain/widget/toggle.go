package widget

// ToggleLabels holds the fixed strings and colours a toggle renders for each
// of its two states.
type ToggleLabels struct {
	Off      string
	On       string
	OffColor string
	OnColor  string
}

// DefaultToggleLabels returns the stock OFF/ON labels on white/red.
func DefaultToggleLabels() ToggleLabels {
	return ToggleLabels{
		Off:      "OFF",
		On:       "ON",
		OffColor: "white",
		OnColor:  "red",
	}
}

func (l ToggleLabels) withDefaults() ToggleLabels {
	def := DefaultToggleLabels()
	if l.Off == "" {
		l.Off = def.Off
	}
	if l.On == "" {
		l.On = def.On
	}
	if l.OffColor == "" {
		l.OffColor = def.OffColor
	}
	if l.OnColor == "" {
		l.OnColor = def.OnColor
	}
	return l
}

// ToggleState is the rendered view of a toggle at one point in time.
type ToggleState struct {
	On    bool   `json:"on"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Toggle is a two-state widget flipped by each activation. It starts off.
type Toggle struct {
	on     bool
	labels ToggleLabels
}

// NewToggle creates a toggle in the off state. Empty label fields fall back to
// DefaultToggleLabels.
func NewToggle(labels ToggleLabels) *Toggle {
	return &Toggle{labels: labels.withDefaults()}
}

// Activate flips the flag and returns the resulting state.
func (t *Toggle) Activate() ToggleState {
	t.on = !t.on
	return t.State()
}

// On reports whether the toggle is currently on.
func (t *Toggle) On() bool {
	return t.on
}

// Label returns the label for the current state.
func (t *Toggle) Label() string {
	if t.on {
		return t.labels.On
	}
	return t.labels.Off
}

// Color returns the background colour for the current state.
func (t *Toggle) Color() string {
	if t.on {
		return t.labels.OnColor
	}
	return t.labels.OffColor
}

// State snapshots the toggle.
func (t *Toggle) State() ToggleState {
	return ToggleState{On: t.on, Label: t.Label(), Color: t.Color()}
}
