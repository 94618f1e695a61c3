package tui

import (
	"strconv"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/picture"
)

const (
	lightboxMarginX = 2
	lightboxMarginY = 1
	arrowWidth      = 3
	thumbHeight     = 3 // tile text plus border
	thumbGap        = 1
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type thumbSlot struct {
	thumb gallery.Thumbnail
	area  rect
}

// lightboxLayout positions every clickable part of the lightbox. Inner
// rectangles are relative to the content origin (ox, oy).
type lightboxLayout struct {
	fullscreen bool
	box        rect // screen coordinates
	ox, oy     int
	innerW     int
	innerH     int

	close     rect
	prev      rect
	next      rect
	image     rect
	captionY  int
	thumbs    []thumbSlot
	thumbSize int
}

func layoutLightbox(store *gallery.Store, thumbs *gallery.Thumbnails, width, height, thumbWidth int) lightboxLayout {
	l := lightboxLayout{fullscreen: store.Fullscreen(), thumbSize: thumbWidth}

	if l.fullscreen {
		l.box = rect{0, 0, width, height}
		l.innerW, l.innerH = width, height
	} else {
		// border and horizontal padding take 2 columns per side, border 1 row
		l.box = rect{lightboxMarginX, lightboxMarginY, max(width-2*lightboxMarginX, 12), max(height-2*lightboxMarginY, 6)}
		l.ox, l.oy = l.box.x+2, l.box.y+1
		l.innerW, l.innerH = l.box.w-4, l.box.h-2
	}

	l.close = rect{l.innerW - 1, 0, 1, 1}

	imageH := l.innerH - 2 // header and caption rows
	if thumbs.Shown() {
		imageH -= thumbHeight
	}
	imageH = max(imageH, 1)

	l.image = rect{0, 1, l.innerW, imageH}
	if store.Len() > 1 {
		l.prev = rect{0, 1, arrowWidth, imageH}
		l.next = rect{l.innerW - arrowWidth, 1, arrowWidth, imageH}
		l.image = rect{arrowWidth, 1, max(l.innerW-2*arrowWidth, 1), imageH}
	}
	l.captionY = 1 + imageH

	if thumbs.Shown() {
		tile := thumbWidth + 2
		limit := max((l.innerW+thumbGap)/(tile+thumbGap), 1)
		visible := thumbs.Visible(limit)
		total := len(visible)*tile + (len(visible)-1)*thumbGap
		x := max((l.innerW-total)/2, 0)
		for _, t := range visible {
			l.thumbs = append(l.thumbs, thumbSlot{thumb: t, area: rect{x, l.captionY + 1, tile, thumbHeight}})
			x += tile + thumbGap
		}
	}

	return l
}

// lightboxHit is what a click on the lightbox landed on.
type lightboxHit int

const (
	hitNone lightboxHit = iota
	hitBackground
	hitClose
	hitPrev
	hitNext
	hitThumbnail
)

// hit classifies a click at screen position (x, y). For hitThumbnail the
// image index is returned too.
func (l lightboxLayout) hit(x, y int) (lightboxHit, int) {
	if !l.box.contains(x, y) {
		return hitBackground, -1
	}
	ix, iy := x-l.ox, y-l.oy
	switch {
	case l.close.contains(ix, iy):
		return hitClose, -1
	case l.prev.contains(ix, iy):
		return hitPrev, -1
	case l.next.contains(ix, iy):
		return hitNext, -1
	}
	for _, s := range l.thumbs {
		if s.area.contains(ix, iy) {
			return hitThumbnail, s.thumb.Index
		}
	}
	return hitNone, -1
}

// renderLightbox draws the open session over bg.
func renderLightbox(bg string, l lightboxLayout, store *gallery.Store, pictures *picture.Renderer, slide *Slide) string {
	active, ok := store.Active()
	if !ok {
		return bg
	}

	counter := styles.LightboxCounterStyle.Render(store.Counter())
	hint := ""
	if !l.fullscreen {
		hint = styles.TextMutedStyle.Render(styles.IconFullscreen + " f  ")
	}
	header := components.PadRight(counter, max(l.innerW-1-lipgloss.Width(hint), 0)) + hint + styles.LightboxArrowStyle.Render(styles.IconClose)

	art := pictures.Render(active, l.image.w, l.image.h)
	art = lipgloss.Place(l.image.w, l.image.h, lipgloss.Center, lipgloss.Center, art)
	art = slide.Apply(art, l.image.w)

	imageRow := art
	if l.prev.w > 0 {
		left := lipgloss.Place(arrowWidth, l.image.h, lipgloss.Center, lipgloss.Center, styles.LightboxArrowStyle.Render(styles.IconArrowLeft))
		right := lipgloss.Place(arrowWidth, l.image.h, lipgloss.Center, lipgloss.Center, styles.LightboxArrowStyle.Render(styles.IconArrowRight))
		imageRow = lipgloss.JoinHorizontal(lipgloss.Top, left, art, right)
	}

	caption := lipgloss.PlaceHorizontal(l.innerW, lipgloss.Center,
		styles.LightboxCaptionStyle.Render(components.Truncate(active.Caption, l.innerW)))

	rows := []string{header, imageRow, caption}
	if len(l.thumbs) > 0 {
		rows = append(rows, renderThumbStrip(l))
	}

	inner := lipgloss.JoinVertical(lipgloss.Left, rows...)

	var box string
	if l.fullscreen {
		box = styles.LightboxFullscreenStyle.Render(inner)
	} else {
		box = styles.LightboxStyle.Render(inner)
	}

	bgLayer := lipgloss.NewLayer(bg)
	boxLayer := lipgloss.NewLayer(box)
	boxLayer.X(l.box.x).Y(l.box.y).Z(2)
	return lipgloss.NewCompositor(bgLayer, boxLayer).Render()
}

func renderThumbStrip(l lightboxLayout) string {
	tiles := make([]string, 0, len(l.thumbs)*2)
	if len(l.thumbs) > 0 {
		tiles = append(tiles, components.Pad(l.thumbs[0].area.x))
	}
	for i, s := range l.thumbs {
		if i > 0 {
			tiles = append(tiles, components.Pad(thumbGap))
		}
		tiles = append(tiles, renderThumb(s.thumb, l.thumbSize))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func renderThumb(t gallery.Thumbnail, width int) string {
	label := strconv.Itoa(t.Index + 1)
	if t.Image.Caption != "" {
		label += " " + t.Image.Caption
	}
	label = components.PadRight(components.Truncate(label, width), width)
	if t.Active {
		return styles.ThumbnailActiveStyle.Render(label)
	}
	return styles.ThumbnailStyle.Render(label)
}
