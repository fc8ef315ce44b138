package renderer

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	blank     = " "

	// pixels below this alpha are treated as transparent
	alphaThreshold = 128

	// MaxPictureCols and MaxPictureRows bound a picture when the area leaves a side unset
	MaxPictureCols = 400
	MaxPictureRows = 200
)

// draw scales the image into the given terminal area, two pixels per cell
func draw(src image.Image, size Size, radius int) Picture {
	width, height := fit(src.Bounds(), size)

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	roundCorners(dst, radius)

	rows := (height + 1) / 2
	lines := make([]string, 0, rows)

	for row := 0; row < rows; row++ {
		var b strings.Builder

		for x := 0; x < width; x++ {
			top := dst.NRGBAAt(x, 2*row)

			var bottom color.NRGBA
			if 2*row+1 < height {
				bottom = dst.NRGBAAt(x, 2*row+1)
			}

			b.WriteString(cell(top, bottom))
		}

		lines = append(lines, b.String())
	}

	return Picture{
		Lines:  lines,
		Width:  width,
		Height: rows,
	}
}

// fit returns the scaled pixel dimensions preserving the aspect ratio
func fit(bounds image.Rectangle, size Size) (int, int) {
	srcWidth, srcHeight := bounds.Dx(), bounds.Dy()

	width := size.Cols
	if width <= 0 {
		width = min(srcWidth, MaxPictureCols)
	}

	rows := size.Rows
	if rows <= 0 {
		rows = MaxPictureRows
	}

	height := width * srcHeight / srcWidth

	if height > rows*2 {
		height = rows * 2
		width = height * srcWidth / srcHeight
	}

	return max(width, 1), max(height, 1)
}

// roundCorners clears the pixels outside a quarter circle at each corner
func roundCorners(img *image.NRGBA, radius int) {
	bounds := img.Bounds()
	radius = min(radius, bounds.Dx()/2, bounds.Dy()/2)

	if radius <= 0 {
		return
	}

	r := float64(radius)

	for y := 0; y < radius; y++ {
		for x := 0; x < radius; x++ {
			dx := r - float64(x) - 0.5
			dy := r - float64(y) - 0.5

			if dx*dx+dy*dy <= r*r {
				continue
			}

			right := bounds.Dx() - 1 - x
			bottom := bounds.Dy() - 1 - y

			img.SetNRGBA(x, y, color.NRGBA{})
			img.SetNRGBA(right, y, color.NRGBA{})
			img.SetNRGBA(x, bottom, color.NRGBA{})
			img.SetNRGBA(right, bottom, color.NRGBA{})
		}
	}
}

// cell renders two vertically stacked pixels as one half block character
func cell(top, bottom color.NRGBA) string {
	topOpaque := top.A >= alphaThreshold
	bottomOpaque := bottom.A >= alphaThreshold

	switch {
	case topOpaque && bottomOpaque:
		return lipgloss.NewStyle().
			Foreground(hex(top)).
			Background(hex(bottom)).
			Render(upperHalf)
	case topOpaque:
		return lipgloss.NewStyle().Foreground(hex(top)).Render(upperHalf)
	case bottomOpaque:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render(lowerHalf)
	default:
		return blank
	}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// drawOver composites src onto dst at its own offset
func drawOver(dst *image.RGBA, src image.Image) {
	xdraw.Draw(dst, src.Bounds(), src, src.Bounds().Min, xdraw.Over)
}
