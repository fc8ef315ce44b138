package components

import "time"

// UI timing constants
const (
	// UITickInterval is the tick rate driving animations and stats refresh
	UITickInterval = 100 * time.Millisecond

	// UITicksPerSecond is the animation frame rate derived from UITickInterval
	UITicksPerSecond = int(time.Second / UITickInterval)

	// StatsPollingInterval is the delay between own-process stats samples
	StatsPollingInterval = 2 * time.Second

	// StatsCallTimeout bounds a single stats sample
	StatsCallTimeout = 500 * time.Millisecond

	// MBToGB is the threshold above which memory is shown in gigabytes
	MBToGB = 1024
)

// Header layout constants
const (
	HeaderSeparatorMinWidth = 4
	HeaderFixedChars        = 10
)

// Footer layout constants
const (
	FooterSeparatorMinWidth = 4
	FooterFixedChars        = 5
)

// Content layout constants
const (
	// ChromeHeight is the number of rows taken by header, footer, description and notice
	ChromeHeight   = 9
	ContentPadding = 4
	MinPictureRows = 4
	DefaultWidth   = 80
)
