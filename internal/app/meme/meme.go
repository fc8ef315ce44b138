package meme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"memeview/internal/app/errors"
)

// Kind tells the renderer which media pipeline to use
type Kind int

const (
	Static Kind = iota
	Animated
)

// String returns the kind name
func (k Kind) String() string {
	if k == Animated {
		return "animated"
	}

	return "static"
}

// Media is the single renderable source of an item
type Media struct {
	Kind Kind
	URL  string
}

// Item is one fetched meme, immutable once decoded
type Item struct {
	ID          string
	Description string
	AnimatedURL string
	StaticURL   string
}

// Media picks the animated variant when present, the static preview otherwise
func (i Item) Media() Media {
	if i.AnimatedURL != "" {
		return Media{Kind: Animated, URL: i.AnimatedURL}
	}

	return Media{Kind: Static, URL: i.StaticURL}
}

// Payload is the wire format returned by the random endpoint
type Payload struct {
	ID          FlexString `json:"id"`
	Description string     `json:"description"`
	GifURL      *string    `json:"gifURL"`
	PreviewURL  string     `json:"previewURL"`
}

// Item converts the payload into a validated Item
func (p Payload) Item() (Item, error) {
	preview := normalizeURL(p.PreviewURL)
	if preview == "" {
		return Item{}, fmt.Errorf("%w: previewURL is required", errors.ErrInvalidItem)
	}

	item := Item{
		ID:          string(p.ID),
		Description: strings.TrimSpace(p.Description),
		StaticURL:   preview,
	}

	if p.GifURL != nil {
		item.AnimatedURL = normalizeURL(*p.GifURL)
	}

	return item, nil
}

// Decode parses a raw endpoint response
func Decode(data []byte) (Item, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Item{}, fmt.Errorf("%w: %w", errors.ErrInvalidItem, err)
	}

	return p.Item()
}

// FlexString accepts both JSON strings and numbers, the endpoint has sent ids as either
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*f = FlexString(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*f = FlexString(n.String())

	return nil
}

// normalizeURL trims the url and turns protocol-relative links into https ones
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}

	return raw
}
