//go:generate mockgen -source=fetcher.go -destination=fetcher_mock.go -package=fetcher
package fetcher

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"memeview/internal/app/errors"
	"memeview/internal/app/meme"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

const userAgent = config.AppName + "/" + config.Version

// Fetcher retrieves one random item per call
type Fetcher interface {
	Fetch(ctx context.Context) (meme.Item, error)
}

type fetcher struct {
	client   *resty.Client
	endpoint string
	log      logger.Logger
}

// NewFetcher creates a fetcher for the configured endpoint
func NewFetcher(cfg *config.Config, log logger.Logger) Fetcher {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	client.SetHeader("User-Agent", userAgent)

	if cfg.Endpoint.Timeout > 0 {
		client.SetTimeout(cfg.Endpoint.Timeout)
	}

	return &fetcher{
		client:   client,
		endpoint: cfg.Endpoint.URL,
		log:      log.WithComponent("FETCHER"),
	}
}

// Fetch performs a single GET against the endpoint, without retries
func (f *fetcher) Fetch(ctx context.Context) (meme.Item, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.endpoint)
	if err != nil {
		return meme.Item{}, fmt.Errorf("%w: %w", errors.ErrFetchFailed, err)
	}

	if resp.IsError() {
		return meme.Item{}, fmt.Errorf("%w: status %d", errors.ErrFetchFailed, resp.StatusCode())
	}

	item, err := meme.Decode(resp.Body())
	if err != nil {
		return meme.Item{}, err
	}

	f.log.Debug().Msgf("Fetched item %s (%s) in %s", item.ID, item.Media().Kind, resp.Time())

	return item, nil
}
