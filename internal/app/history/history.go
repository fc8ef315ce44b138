package history

import (
	"memeview/internal/app/errors"
	"memeview/internal/app/meme"
)

// Empty is the cursor value before any item has been loaded
const Empty = -1

// History is the append-only list of items seen this session plus a cursor into it
type History struct {
	items  []meme.Item
	cursor int
}

// New creates an empty history
func New() *History {
	return &History{cursor: Empty}
}

// Len returns the number of items fetched so far
func (h *History) Len() int {
	return len(h.items)
}

// Cursor returns the current index or Empty
func (h *History) Cursor() int {
	return h.cursor
}

// IsEmpty reports whether nothing has been loaded yet
func (h *History) IsEmpty() bool {
	return h.cursor == Empty
}

// Current returns the item under the cursor
func (h *History) Current() (meme.Item, bool) {
	if h.cursor == Empty {
		return meme.Item{}, false
	}

	return h.items[h.cursor], true
}

// At returns the item at position i
func (h *History) At(i int) (meme.Item, bool) {
	if i < 0 || i >= len(h.items) {
		return meme.Item{}, false
	}

	return h.items[i], true
}

// CanBack reports whether there is an earlier item to return to
func (h *History) CanBack() bool {
	return h.cursor > 0
}

// CanForward reports whether a later item can be replayed without fetching
func (h *History) CanForward() bool {
	return h.cursor != Empty && h.cursor < len(h.items)-1
}

// Append adds a freshly fetched item and moves the cursor onto it
func (h *History) Append(item meme.Item) meme.Item {
	h.items = append(h.items, item)
	h.cursor = len(h.items) - 1

	return item
}

// Forward moves to the next already fetched item
func (h *History) Forward() (meme.Item, error) {
	if !h.CanForward() {
		return meme.Item{}, errors.ErrNoNextItem
	}

	h.cursor++

	return h.items[h.cursor], nil
}

// Back moves to the previous item
func (h *History) Back() (meme.Item, error) {
	if !h.CanBack() {
		return meme.Item{}, errors.ErrNoPreviousItem
	}

	h.cursor--

	return h.items[h.cursor], nil
}
