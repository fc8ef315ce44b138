//go:generate mockgen -source=renderer.go -destination=renderer_mock.go -package=renderer
package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/go-resty/resty/v2"
	_ "golang.org/x/image/webp"

	"memeview/internal/app/errors"
	"memeview/internal/app/meme"
	"memeview/internal/config"
	"memeview/internal/config/logger"
)

// Size is the terminal area available for a picture, zero Rows means unbounded
type Size struct {
	Cols int
	Rows int
}

// Picture is a decoded item ready to be printed in a terminal
type Picture struct {
	Lines    []string
	Width    int
	Height   int
	Animated bool
	Frames   int
}

// String joins the picture rows
func (p Picture) String() string {
	return strings.Join(p.Lines, "\n")
}

// IsZero reports whether nothing has been rendered
func (p Picture) IsZero() bool {
	return len(p.Lines) == 0
}

// Renderer loads an item's media and turns it into a Picture
type Renderer interface {
	Render(ctx context.Context, item meme.Item, size Size) (Picture, error)
}

type renderer struct {
	client *resty.Client
	radius int
	log    logger.Logger
}

// NewRenderer creates a renderer using the configured timeout and corner radius
func NewRenderer(cfg *config.Config, log logger.Logger) Renderer {
	client := resty.New()
	client.SetHeader("User-Agent", config.AppName+"/"+config.Version)

	if cfg.Endpoint.Timeout > 0 {
		client.SetTimeout(cfg.Endpoint.Timeout)
	}

	return &renderer{
		client: client,
		radius: cfg.Render.CornerRadius,
		log:    log.WithComponent("RENDERER"),
	}
}

// Render resolves exactly once with either a picture or an error
func (r *renderer) Render(ctx context.Context, item meme.Item, size Size) (Picture, error) {
	media := item.Media()
	if media.URL == "" {
		return Picture{}, fmt.Errorf("%w: %w", errors.ErrRenderFailed, errors.ErrEmptyMedia)
	}

	data, err := r.download(ctx, media.URL)
	if err != nil {
		return Picture{}, err
	}

	img, frames, err := decode(media.Kind, data)
	if err != nil {
		return Picture{}, fmt.Errorf("%w: %w: %w", errors.ErrRenderFailed, errors.ErrDecodeFailed, err)
	}

	picture := draw(img, size, r.radius)
	picture.Animated = media.Kind == meme.Animated
	picture.Frames = frames

	r.log.Debug().Msgf("Rendered item %s (%s, %d frames) at %dx%d", item.ID, media.Kind, frames, picture.Width, picture.Height)

	return picture, nil
}

// download fetches raw media bytes
func (r *renderer) download(ctx context.Context, url string) ([]byte, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrRenderFailed, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", errors.ErrRenderFailed, resp.StatusCode())
	}

	return resp.Body(), nil
}

var errEmptyImage = errors.New("image has no pixels")

// decode returns the first frame of the media and the number of frames it has
func decode(kind meme.Kind, data []byte) (image.Image, int, error) {
	if kind == meme.Animated {
		g, err := gif.DecodeAll(bytes.NewReader(data))
		if err == nil && len(g.Image) > 0 {
			return firstFrame(g), len(g.Image), nil
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, err
	}

	if img.Bounds().Empty() {
		return nil, 0, errEmptyImage
	}

	return img, 1, nil
}

// firstFrame places the first gif frame on the full logical canvas
func firstFrame(g *gif.GIF) image.Image {
	frame := g.Image[0]

	width, height := g.Config.Width, g.Config.Height
	if width == 0 || height == 0 || frame.Bounds() == image.Rect(0, 0, width, height) {
		return frame
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	drawOver(canvas, frame)

	return canvas
}
