package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/pkg/tuitest"
)

func defaultSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Parse(content.DefaultYAML())
	require.NoError(t, err)
	return site
}

func TestPageItems(t *testing.T) {
	site := defaultSite(t)

	tests := []struct {
		page  content.Page
		kinds []itemKind
	}{
		{content.PageHome, []itemKind{itemHero, itemHero, itemNews}},
		{content.PageAnnouncements, []itemKind{itemAnnouncement}},
		{content.PageEvents, []itemKind{itemEvent, itemEvent, itemAlbum, itemAlbum}},
	}

	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			items := pageItems(site, tt.page)
			kinds := make([]itemKind, len(items))
			for i, it := range items {
				kinds[i] = it.kind
			}
			assert.Equal(t, tt.kinds, kinds)
		})
	}

	assert.Len(t, pageItems(site, content.PageAbout), len(site.Team))
	assert.Len(t, pageItems(site, content.PageAlumni), site.AlumniCount())
}

func TestPageItems_alumni_keep_their_group(t *testing.T) {
	site := &content.Site{Alumni: []content.YearGroup{
		{Year: "28th", Members: []content.AlumniMember{{Name: "a"}, {Name: "b"}}},
		{Year: "27th", Members: []content.AlumniMember{{Name: "c"}}},
	}}

	items := pageItems(site, content.PageAlumni)

	assert.Equal(t, []pageItem{
		{kind: itemAlumni, index: 0, group: 0},
		{kind: itemAlumni, index: 1, group: 0},
		{kind: itemAlumni, index: 0, group: 1},
	}, items)
}

func TestRenderPage_spans_cover_cards(t *testing.T) {
	site := defaultSite(t)
	page := renderPage(site, content.PageEvents, 1, 80)
	lines := strings.Split(tuitest.StripANSI(page.body), "\n")

	require.Len(t, page.spans, 4)
	for i, span := range page.spans {
		assert.Less(t, span.start, span.end)
		if i > 0 {
			assert.GreaterOrEqual(t, span.start, page.spans[i-1].end)
		}
		assert.LessOrEqual(t, span.end, len(lines))
	}

	first := strings.Join(lines[page.spans[0].start:page.spans[0].end], "\n")
	assert.Contains(t, first, site.Events[0].Title)

	assert.Equal(t, 2, page.cardAt(page.spans[2].start))
	assert.Equal(t, -1, page.cardAt(0), "page title is not a card")
	assert.Equal(t, -1, page.cardAt(len(lines)+5))
}

func TestRenderPage_empty(t *testing.T) {
	site := &content.Site{Name: "x"}
	page := renderPage(site, content.PageContact, 0, 80)

	assert.Empty(t, page.spans)
	assert.Contains(t, tuitest.StripANSI(page.body), "Nothing here yet.")
}

func TestRenderPage_home_shows_hero_buttons(t *testing.T) {
	site := defaultSite(t)
	out := tuitest.StripANSI(renderPage(site, content.PageHome, 0, 100).body)

	for _, b := range site.HeroButtons {
		assert.Contains(t, out, b.Text)
	}
	assert.Contains(t, out, site.News[0].Title)
}
