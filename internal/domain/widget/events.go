package widget

const (
	// EventToggleActivated is emitted after a toggle flips.
	EventToggleActivated = "toggle.activated"
	// EventNumberAdded is emitted after a new entry is appended.
	EventNumberAdded = "number.added"
	// EventNumberIncremented is emitted after an entry is selected.
	EventNumberIncremented = "number.incremented"
	// EventGeneratorExhausted is emitted when an add fails for lack of values.
	EventGeneratorExhausted = "generator.exhausted"
)

// Event is a widget state change. It satisfies ports.DomainEvent.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType returns the event name.
func (e Event) EventType() string { return e.Type }

// Payload returns the event fields.
func (e Event) Payload() interface{} { return e.Fields }

// ToggleActivated builds the event for a toggle flip.
func ToggleActivated(state ToggleState) Event {
	return Event{Type: EventToggleActivated, Fields: map[string]interface{}{
		"on":    state.On,
		"label": state.Label,
		"color": state.Color,
	}}
}

// NumberAdded builds the event for an append.
func NumberAdded(entry Entry, length int) Event {
	return Event{Type: EventNumberAdded, Fields: map[string]interface{}{
		"entry_id": int(entry.ID),
		"value":    entry.Value,
		"length":   length,
	}}
}

// NumberIncremented builds the event for a selection.
func NumberIncremented(entry Entry, previous int) Event {
	return Event{Type: EventNumberIncremented, Fields: map[string]interface{}{
		"entry_id": int(entry.ID),
		"previous": previous,
		"value":    entry.Value,
	}}
}

// GeneratorExhausted builds the event for an add that found no free value.
func GeneratorExhausted(generated int) Event {
	return Event{Type: EventGeneratorExhausted, Fields: map[string]interface{}{
		"generated": generated,
	}}
}
