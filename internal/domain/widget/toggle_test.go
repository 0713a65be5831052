package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToggleStartsOff(t *testing.T) {
	t.Parallel()

	toggle := NewToggle(ToggleLabels{})

	require.False(t, toggle.On())
	require.Equal(t, "OFF", toggle.Label())
	require.Equal(t, "white", toggle.Color())
}

func TestToggleActivateCycles(t *testing.T) {
	t.Parallel()

	toggle := NewToggle(DefaultToggleLabels())

	state := toggle.Activate()
	require.Equal(t, ToggleState{On: true, Label: "ON", Color: "red"}, state)

	state = toggle.Activate()
	require.Equal(t, ToggleState{On: false, Label: "OFF", Color: "white"}, state)
}

func TestToggleAlternatesInLockstep(t *testing.T) {
	t.Parallel()

	toggle := NewToggle(DefaultToggleLabels())
	for i := 1; i <= 25; i++ {
		state := toggle.Activate()
		if i%2 == 1 {
			require.Equal(t, "ON", state.Label, "activation %d", i)
			require.Equal(t, "red", state.Color, "activation %d", i)
		} else {
			require.Equal(t, "OFF", state.Label, "activation %d", i)
			require.Equal(t, "white", state.Color, "activation %d", i)
		}
	}
}

func TestToggleCustomLabelsKeepDefaultsForBlanks(t *testing.T) {
	t.Parallel()

	toggle := NewToggle(ToggleLabels{On: "Enabled", OnColor: "green"})

	require.Equal(t, "OFF", toggle.Label())
	require.Equal(t, "white", toggle.Color())

	toggle.Activate()
	require.Equal(t, "Enabled", toggle.Label())
	require.Equal(t, "green", toggle.Color())
}
