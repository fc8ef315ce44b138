package config

import "time"

// app constants
const (
	AppName        = "memeview"
	AppDescription = "terminal browser for random developer memes"

	Version = "0.3.0"

	FileName    = "memeview.yaml"
	EnvFileName = ".env"
	EnvPrefix   = "MEMEVIEW"
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// endpoint constants
const (
	DefaultEndpointURL = "https://developerslife.ru/random?json=true"
	DefaultTimeout     = 10 * time.Second
)

// render constants
const (
	DefaultRenderWidth  = 64
	MinRenderWidth      = 8
	MaxRenderWidth      = 400
	DefaultCornerRadius = 3
)

// ui constants
const (
	DefaultNoticeDuration = 3 * time.Second
	ShutdownTimeout       = 5 * time.Second
)
