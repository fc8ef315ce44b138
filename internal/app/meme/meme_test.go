package meme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memeview/internal/app/errors"
)

func Test_Item_Media(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected Media
	}{
		{
			name:     "static when no animation",
			item:     Item{ID: "1", StaticURL: "u1"},
			expected: Media{Kind: Static, URL: "u1"},
		},
		{
			name:     "animated when gif present",
			item:     Item{ID: "2", AnimatedURL: "g2", StaticURL: "u2"},
			expected: Media{Kind: Animated, URL: "g2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.Media())
		})
	}
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "static", Static.String())
	assert.Equal(t, "animated", Animated.String())
}

func Test_Decode(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Item
		error    error
	}{
		{
			name:     "null gif",
			body:     `{"id":"1","description":"A","gifURL":null,"previewURL":"u1"}`,
			expected: Item{ID: "1", Description: "A", StaticURL: "u1"},
		},
		{
			name:     "missing gif",
			body:     `{"id":"1","description":"A","previewURL":"u1"}`,
			expected: Item{ID: "1", Description: "A", StaticURL: "u1"},
		},
		{
			name:     "numeric id and gif",
			body:     `{"id":4242,"description":" Deploy on friday ","gifURL":"https://x/g.gif","previewURL":"https://x/p.jpg"}`,
			expected: Item{ID: "4242", Description: "Deploy on friday", AnimatedURL: "https://x/g.gif", StaticURL: "https://x/p.jpg"},
		},
		{
			name:     "protocol relative urls",
			body:     `{"id":"7","description":"B","gifURL":"//cdn/g.gif","previewURL":"//cdn/p.jpg"}`,
			expected: Item{ID: "7", Description: "B", AnimatedURL: "https://cdn/g.gif", StaticURL: "https://cdn/p.jpg"},
		},
		{
			name:  "missing preview",
			body:  `{"id":"1","description":"A","gifURL":"g"}`,
			error: errors.ErrInvalidItem,
		},
		{
			name:  "malformed json",
			body:  `{"id":`,
			error: errors.ErrInvalidItem,
		},
		{
			name:  "id of wrong type",
			body:  `{"id":{},"previewURL":"u"}`,
			error: errors.ErrInvalidItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := Decode([]byte(tt.body))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, item)
		})
	}
}
