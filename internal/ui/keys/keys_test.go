package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestBindingsMatchKeyPresses(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"tab", tea.KeyPressMsg{Code: tea.KeyTab}, Default.NextBlock},
		{"shift+tab", tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}, Default.PrevBlock},
		{"right", tea.KeyPressMsg{Code: tea.KeyRight}, Default.NextStep},
		{"left", tea.KeyPressMsg{Code: tea.KeyLeft}, Default.PrevStep},
		{"digit", tea.KeyPressMsg{Code: '3', Text: "3"}, Default.Part},
		{"enter", tea.KeyPressMsg{Code: tea.KeyEnter}, Default.Select},
		{"submit", tea.KeyPressMsg{Code: 's', Text: "s"}, Default.Submit},
		{"mute", tea.KeyPressMsg{Code: 'm', Text: "m"}, Default.Mute},
		{"esc", tea.KeyPressMsg{Code: tea.KeyEscape}, Default.Back},
		{"ctrl+c", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, Default.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding), "%q", tt.msg.String())
		})
	}
}

func TestPartIndex(t *testing.T) {
	i, ok := PartIndex("1")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = PartIndex("9")
	assert.True(t, ok)
	assert.Equal(t, 8, i)

	for _, k := range []string{"0", "a", "10", ""} {
		_, ok := PartIndex(k)
		assert.False(t, ok, k)
	}
}

func TestHintsDeduplicate(t *testing.T) {
	hints := Hints(Default.ScrollDown, Default.ScrollUp, Default.Mute)
	assert.Len(t, hints, 2)
	assert.Equal(t, "j/k", hints[0].Key)
	assert.Equal(t, "m", hints[1].Key)
}
