// Package picture draws local images as half-block terminal art and falls
// back to a captioned placeholder when an image cannot be shown.
package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // decoder registration
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration
	"os"
	"path"
	"path/filepath"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp" // decoder registration

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/logging"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/kv"
)

const cacheSize = 64

var (
	// ErrRemote is returned for http(s) locators; nothing is fetched.
	ErrRemote = errors.New("remote image")
	// ErrNoAssets is returned when a site-relative locator has no assets
	// directory to resolve against.
	ErrNoAssets = errors.New("no assets directory")
	// ErrDisabled is returned when image drawing is turned off.
	ErrDisabled = errors.New("image drawing disabled")
)

// Renderer draws gallery images into a fixed cell box.
type Renderer struct {
	assetsDir string
	enabled   bool
	cache     *kv.Store[string, string]
}

// New creates a renderer. Locators starting with "/" resolve under
// assetsDir.
func New(assetsDir string, enabled bool) *Renderer {
	return &Renderer{
		assetsDir: assetsDir,
		enabled:   enabled,
		cache:     kv.NewBounded[string, string](cacheSize),
	}
}

// Resolve maps a locator to a file path.
func (r *Renderer) Resolve(locator string) (string, error) {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return "", ErrRemote
	}
	if strings.HasPrefix(locator, "/") {
		if r.assetsDir == "" {
			return "", ErrNoAssets
		}
		return filepath.Join(r.assetsDir, filepath.FromSlash(strings.TrimPrefix(locator, "/"))), nil
	}
	if r.assetsDir != "" && !filepath.IsAbs(locator) {
		return filepath.Join(r.assetsDir, filepath.FromSlash(locator)), nil
	}
	return locator, nil
}

// Render draws ref into a width x height cell box. Failures render a
// placeholder with the caption instead.
func (r *Renderer) Render(ref gallery.ImageRef, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	key := fmt.Sprintf("%s@%dx%d", ref.Locator, width, height)
	return r.cache.GetOrCompute(key, func() string {
		art, err := r.draw(ref.Locator, width, height)
		if err != nil {
			logger := logging.Component("picture")
			logger.Debug().Err(err).Str("locator", ref.Locator).Msg("showing image placeholder")
			return Placeholder(ref, err, width, height)
		}
		return art
	})
}

// Reset drops every cached drawing, e.g. after a theme change.
func (r *Renderer) Reset() {
	r.cache.Clear()
}

func (r *Renderer) draw(locator string, width, height int) (string, error) {
	if !r.enabled {
		return "", ErrDisabled
	}

	p, err := r.Resolve(locator)
	if err != nil {
		return "", err
	}

	f, err := os.Open(p)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path.Base(locator), err)
	}

	// Each cell holds two vertical pixels.
	thumb := resize.Thumbnail(uint(width), uint(height*2), img, resize.Bilinear)
	art := HalfBlocks(thumb)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, art), nil
}

// HalfBlocks renders img using upper half blocks, the foreground carrying
// the top pixel and the background the bottom one.
func HalfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := opaque(img.At(x, y))
			style := lipgloss.NewStyle().Foreground(top)
			if y+1 < b.Max.Y {
				style = style.Background(opaque(img.At(x, y+1)))
			}
			sb.WriteString(style.Render("▀"))
		}
	}

	return sb.String()
}

func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}

// Placeholder renders the alt text box shown when an image cannot be drawn.
func Placeholder(ref gallery.ImageRef, reason error, width, height int) string {
	alt := ref.Caption
	if alt == "" {
		alt = path.Base(ref.Locator)
	}

	lines := []string{styles.IconImages + " " + alt}
	if reason != nil && !errors.Is(reason, ErrDisabled) {
		lines = append(lines, styles.TextMutedStyle.Render(reasonText(reason)))
	}

	return styles.ImageFallbackStyle.
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func reasonText(err error) string {
	switch {
	case errors.Is(err, ErrRemote):
		return "remote image not loaded"
	case errors.Is(err, ErrNoAssets):
		return "set assets_dir to show images"
	case errors.Is(err, os.ErrNotExist):
		return "image not found"
	default:
		return "image unavailable"
	}
}
