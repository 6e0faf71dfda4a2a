package integrations

import (
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"
	"golang.org/x/image/draw"
)

// ThumbnailSettings bounds a thumbnail in terminal cells.
type ThumbnailSettings struct {
	Width   int // columns
	MaxRows int // each row carries two pixel rows
}

// DefaultThumbnailSettings fits a game card.
var DefaultThumbnailSettings = ThumbnailSettings{Width: 24, MaxRows: 12}

// AssetLoader opens an image by its catalog path.
type AssetLoader func(ctx context.Context, path string) (io.ReadCloser, error)

// ThumbnailRenderer turns game images into half-block terminal art.
type ThumbnailRenderer struct {
	settings ThumbnailSettings
	load     AssetLoader
	cache    *cache.Cache
}

func NewThumbnailRenderer(settings ThumbnailSettings, load AssetLoader) *ThumbnailRenderer {
	if settings.Width <= 0 {
		settings.Width = DefaultThumbnailSettings.Width
	}
	if settings.MaxRows <= 0 {
		settings.MaxRows = DefaultThumbnailSettings.MaxRows
	}
	return &ThumbnailRenderer{
		settings: settings,
		load:     load,
		// the catalog is fixed for a session, so nothing expires
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Render loads the image at path and renders it, caching by path.
func (r *ThumbnailRenderer) Render(ctx context.Context, path string) (string, error) {
	if cached, found := r.cache.Get(path); found {
		return cached.(string), nil
	}

	rc, err := r.load(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	out, err := r.RenderImage(rc)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	r.cache.Set(path, out, cache.DefaultExpiration)
	return out, nil
}

// RenderImage decodes an image and renders it within the configured box.
func (r *ThumbnailRenderer) RenderImage(input io.Reader) (string, error) {
	img, _, err := image.Decode(input)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return "", fmt.Errorf("empty image")
	}

	width, height := r.calculateDimensions(bounds.Dx(), bounds.Dy())
	return r.halfBlocks(r.resize(img, width, height)), nil
}

// calculateDimensions returns the pixel size to scale to. Height is always
// even so every cell gets a top and a bottom pixel.
func (r *ThumbnailRenderer) calculateDimensions(width, height int) (int, int) {
	maxW := r.settings.Width
	maxH := r.settings.MaxRows * 2

	scale := float64(maxW) / float64(width)
	if hs := float64(maxH) / float64(height); hs < scale {
		scale = hs
	}

	newWidth := int(float64(width)*scale + 0.5)
	newHeight := int(float64(height)*scale + 0.5)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 2 {
		newHeight = 2
	}
	if newHeight%2 == 1 {
		newHeight++
	}
	return newWidth, newHeight
}

func (r *ThumbnailRenderer) resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func (r *ThumbnailRenderer) halfBlocks(img *image.RGBA) string {
	bounds := img.Bounds()
	lines := make([]string, 0, bounds.Dy()/2)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var b strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := img.RGBAAt(x, y+1)
			cell := lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom))
			b.WriteString(cell.Render("▀"))
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n")
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
