package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToLoadEnv     = errors.New("failed to load .env file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrEndpointRequired    = errors.New("endpoint url is required")
	ErrInvalidEndpoint     = errors.New("endpoint url must be an absolute http(s) url")
	ErrInvalidTimeout      = errors.New("endpoint timeout must not be negative")
	ErrInvalidRenderWidth  = errors.New("render width must be between 8 and 400")
	ErrInvalidCornerRadius = errors.New("corner radius must not be negative")
	ErrInvalidNoticeTime   = errors.New("notice duration must be positive")

	ErrFetchFailed  = errors.New("failed to fetch next item")
	ErrInvalidItem  = errors.New("invalid item payload")
	ErrRenderFailed = errors.New("failed to load media")
	ErrDecodeFailed = errors.New("failed to decode media")
	ErrEmptyMedia   = errors.New("item has no media url")

	ErrNoPreviousItem  = errors.New("no previous item")
	ErrNoNextItem      = errors.New("no next item in history")
	ErrFetchInProgress = errors.New("fetch already in progress")

	ErrFailedToOpenLogFile = errors.New("failed to open log file")
	ErrFailedToInitSentry  = errors.New("failed to initialize sentry")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
