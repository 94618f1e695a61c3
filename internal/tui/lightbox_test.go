package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/picture"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/tuitest"
)

func openStore(t *testing.T, n, start int) (*gallery.Store, *gallery.Thumbnails) {
	t.Helper()
	images := make([]gallery.ImageRef, n)
	for i := range images {
		images[i] = gallery.ImageRef{Locator: "/images/" + string(rune('a'+i)) + ".jpg", Caption: "photo " + string(rune('a'+i))}
	}
	store := gallery.NewStore()
	require.True(t, store.Open(images, start))
	return store, gallery.NewThumbnails(store)
}

func TestLayoutLightbox_hit(t *testing.T) {
	store, thumbs := openStore(t, 6, 0)
	l := layoutLightbox(store, thumbs, 100, 30, 12)

	require.Len(t, l.thumbs, 6)
	second := l.thumbs[1]

	tests := []struct {
		name  string
		x, y  int
		want  lightboxHit
		index int
	}{
		{"outside the box", 0, 0, hitBackground, -1},
		{"close button", l.ox + l.innerW - 1, l.oy, hitClose, -1},
		{"left arrow", l.ox + 1, l.oy + 5, hitPrev, -1},
		{"right arrow", l.ox + l.innerW - 2, l.oy + 5, hitNext, -1},
		{"second thumbnail", l.ox + second.area.x + 2, l.oy + second.area.y + 1, hitThumbnail, 1},
		{"image area", l.ox + l.innerW/2, l.oy + 5, hitNone, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, index := l.hit(tt.x, tt.y)
			assert.Equal(t, tt.want, hit)
			assert.Equal(t, tt.index, index)
		})
	}
}

func TestLayoutLightbox_thumbnails_fit_inside(t *testing.T) {
	store, thumbs := openStore(t, 11, 10)
	l := layoutLightbox(store, thumbs, 60, 24, 12)

	require.NotEmpty(t, l.thumbs)
	assert.Less(t, len(l.thumbs), 11)
	last := l.thumbs[len(l.thumbs)-1]
	assert.Equal(t, 10, last.thumb.Index, "window follows the active image")
	assert.True(t, last.thumb.Active)
	assert.LessOrEqual(t, last.area.x+last.area.w, l.innerW)
}

func TestLayoutLightbox_single_image_has_no_arrows(t *testing.T) {
	store, thumbs := openStore(t, 1, 0)
	l := layoutLightbox(store, thumbs, 100, 30, 12)

	assert.Empty(t, l.thumbs)
	hit, _ := l.hit(l.ox+1, l.oy+5)
	assert.Equal(t, hitNone, hit)
}

func TestLayoutLightbox_fullscreen(t *testing.T) {
	store, thumbs := openStore(t, 3, 0)
	store.ToggleFullscreen()
	l := layoutLightbox(store, thumbs, 100, 30, 12)

	assert.Equal(t, rect{0, 0, 100, 30}, l.box)
	assert.Empty(t, l.thumbs)

	hit, _ := l.hit(99, 0)
	assert.Equal(t, hitClose, hit)
	hit, _ = l.hit(0, 0)
	assert.NotEqual(t, hitBackground, hit)
}

func TestRenderLightbox(t *testing.T) {
	store, thumbs := openStore(t, 3, 1)
	l := layoutLightbox(store, thumbs, 80, 24, 10)
	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)

	out := tuitest.StripANSI(renderLightbox(bg, l, store, picture.New("", false), NewSlide(slideTicks)))

	assert.Contains(t, out, "2 / 3")
	assert.Contains(t, out, "photo b")
	assert.Contains(t, out, "3 photo c")
	assert.True(t, strings.HasPrefix(out, strings.Repeat(".", 80)), "margin row keeps the background")
}

func TestRenderLightbox_closed(t *testing.T) {
	store := gallery.NewStore()
	l := layoutLightbox(store, gallery.NewThumbnails(store), 80, 24, 10)

	assert.Equal(t, "bg", renderLightbox("bg", l, store, picture.New("", false), NewSlide(slideTicks)))
}
