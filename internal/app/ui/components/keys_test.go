package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		keys     []string
		expected []string
	}{
		{name: "back", keys: km.Back.Keys(), expected: []string{"left", "h", "b"}},
		{name: "next", keys: km.Next.Keys(), expected: []string{"right", "l", "n", " "}},
		{name: "retry", keys: km.Retry.Keys(), expected: []string{"r"}},
		{name: "quit", keys: km.Quit.Keys(), expected: []string{"q"}},
		{name: "force quit", keys: km.ForceQuit.Keys(), expected: []string{"ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.keys)
		})
	}
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 4)
	assert.Len(t, km.FullHelp(), 2)
	assert.Equal(t, "back", km.ShortHelp()[0].Help().Desc)
}
