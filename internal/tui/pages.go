package tui

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
)

// itemKind identifies what a selectable card on a page shows.
type itemKind int

const (
	itemHero itemKind = iota
	itemNews
	itemMember
	itemAnnouncement
	itemEvent
	itemAlbum
	itemAlumni
	itemContact
)

// pageItem points at one record of the site. group is the year group for
// alumni and unused otherwise.
type pageItem struct {
	kind  itemKind
	index int
	group int
}

// pageItems lists the selectable cards of page in display order.
func pageItems(site *content.Site, page content.Page) []pageItem {
	var items []pageItem
	add := func(kind itemKind, n int) {
		for i := range n {
			items = append(items, pageItem{kind: kind, index: i})
		}
	}

	switch page {
	case content.PageHome:
		add(itemHero, len(site.HeroButtons))
		add(itemNews, len(site.News))
	case content.PageAbout:
		add(itemMember, len(site.Team))
	case content.PageAnnouncements:
		add(itemAnnouncement, len(site.Announcements))
	case content.PageEvents:
		add(itemEvent, len(site.Events))
		add(itemAlbum, len(site.Albums))
	case content.PageAlumni:
		for g, group := range site.Alumni {
			for i := range group.Members {
				items = append(items, pageItem{kind: itemAlumni, index: i, group: g})
			}
		}
	case content.PageContact:
		add(itemContact, len(site.Contact))
	}
	return items
}

// cardSpan is the half-open line range [start, end) a card occupies in the
// rendered page.
type cardSpan struct {
	start int
	end   int
}

// pageBuilder stacks blocks vertically while tracking card line ranges.
type pageBuilder struct {
	blocks []string
	lines  int
	spans  []cardSpan
}

func (b *pageBuilder) add(block string) {
	b.blocks = append(b.blocks, block)
	b.lines += lipgloss.Height(block)
}

func (b *pageBuilder) addCard(block string) {
	start := b.lines
	b.add(block)
	b.spans = append(b.spans, cardSpan{start: start, end: b.lines})
}

func (b *pageBuilder) String() string {
	return strings.Join(b.blocks, "\n")
}

// renderedPage is a page body ready for the viewport.
type renderedPage struct {
	body  string
	spans []cardSpan
}

// cardAt returns the card index covering line, or -1.
func (p renderedPage) cardAt(line int) int {
	for i, s := range p.spans {
		if line >= s.start && line < s.end {
			return i
		}
	}
	return -1
}

func renderPage(site *content.Site, page content.Page, cursor, width int) renderedPage {
	width = max(width, 20)
	b := &pageBuilder{}

	header := site.Header(page)
	b.add(styles.PageTitleStyle.Render(header.Title))
	if header.Subtitle != "" {
		b.add(styles.PageSubtitleStyle.Render(header.Subtitle))
	}
	b.add("")

	switch page {
	case content.PageHome:
		b.add(renderHero(site, width))
	case content.PageAbout:
		b.add(renderFeatures(site.Features, width))
		b.add("")
	}

	items := pageItems(site, page)
	section := ""
	for i, item := range items {
		if title := sectionTitle(site, item); title != section {
			if section != "" {
				b.add("")
			}
			b.add(styles.TextSecondaryStyle.Bold(true).Render(title))
			section = title
		}
		b.addCard(renderCard(site, item, i == cursor, width))
	}

	if len(items) == 0 && page != content.PageHome && page != content.PageAbout {
		b.add(styles.TextMutedStyle.Render("Nothing here yet."))
	}

	return renderedPage{body: b.String(), spans: b.spans}
}

func sectionTitle(site *content.Site, item pageItem) string {
	switch item.kind {
	case itemHero:
		return "Quick links"
	case itemNews:
		return "最新消息"
	case itemMember:
		return "幹部介紹"
	case itemAnnouncement:
		return "公告"
	case itemEvent:
		return "活動"
	case itemAlbum:
		return "相簿"
	case itemAlumni:
		return site.Alumni[item.group].Year
	case itemContact:
		return "聯絡方式"
	}
	return ""
}

func renderHero(site *content.Site, width int) string {
	lines := []string{site.Name}
	meta := []string{}
	if site.Tagline != "" {
		meta = append(meta, site.Tagline)
	}
	if site.Cohort != "" {
		meta = append(meta, site.Cohort)
	}
	if site.Location != "" {
		meta = append(meta, styles.IconLocation+" "+site.Location)
	}
	hero := styles.HeroStyle.Render(strings.Join(lines, "\n"))
	if len(meta) > 0 {
		hero = lipgloss.JoinVertical(lipgloss.Left, hero,
			styles.TextMutedStyle.Render(components.Truncate(strings.Join(meta, " · "), width)))
	}
	return hero
}

func renderFeatures(features []content.Feature, width int) string {
	lines := make([]string, 0, len(features))
	for _, f := range features {
		line := fmt.Sprintf("%s %s  %s", f.Icon, styles.TextForegroundBoldStyle.Render(f.Title), styles.TextMutedStyle.Render(f.Description))
		lines = append(lines, components.Truncate(line, width))
	}
	return strings.Join(lines, "\n")
}

func renderCard(site *content.Site, item pageItem, selected bool, width int) string {
	inner := max(width-4, 10)
	var lines []string

	title := func(s string) string {
		return components.Truncate(styles.CardTitleStyle.Render(s), inner)
	}
	muted := func(parts ...string) string {
		return components.Truncate(styles.TextMutedStyle.Render(strings.Join(nonEmpty(parts), " · ")), inner)
	}
	text := func(s string) string {
		return components.Truncate(styles.TextForegroundStyle.Render(s), inner)
	}

	switch item.kind {
	case itemHero:
		btn := site.HeroButtons[item.index]
		return renderButton(btn.Text, selected)

	case itemNews:
		n := site.News[item.index]
		lines = append(lines,
			title(badged(n.Category, n.Title)),
			muted(styles.IconCalendar+" "+n.Date, n.Location),
			text(n.Description))

	case itemMember:
		t := site.Team[item.index]
		lines = append(lines,
			title(nameWithNickname(t.Name, t.Nickname)),
			muted(t.Role),
			text(t.Description))
		if len(t.Skills) > 0 {
			lines = append(lines, muted(t.Skills...))
		}

	case itemAnnouncement:
		a := site.Announcements[item.index]
		meta := []string{styles.IconCalendar + " " + a.Date}
		if len(a.Images) > 0 {
			meta = append(meta, fmt.Sprintf("%s %d", styles.IconImages, len(a.Images)))
		}
		lines = append(lines, title(badged(a.Category, a.Title)), muted(meta...), text(a.Description))
		if a.Link != "" {
			lines = append(lines, components.Truncate(styles.TextSecondaryStyle.Render(styles.IconLink+" "+linkText(a.LinkText)), inner))
		}

	case itemEvent:
		e := site.Events[item.index]
		photos := ""
		if len(e.Images) > 0 {
			photos = fmt.Sprintf("%s %d", styles.IconImages, len(e.Images))
		}
		lines = append(lines,
			title(badged(e.Category, e.Title)),
			muted(styles.IconCalendar+" "+e.Date, e.Location, photos),
			text(e.Description))

	case itemAlbum:
		a := site.Albums[item.index]
		lines = append(lines,
			title(styles.IconImages+" "+a.Title),
			muted(styles.IconCalendar+" "+a.Date, fmt.Sprintf("%d photos", len(a.Images))))
		if cover, ok := a.Cover(); ok {
			lines = append(lines, muted("cover "+cover.Ref().Locator))
		}

	case itemAlumni:
		a := site.Alumni[item.group].Members[item.index]
		lines = append(lines,
			title(nameWithNickname(a.Name, a.Nickname)),
			muted(a.Role, a.Year))
		if a.CurrentJob != "" {
			lines = append(lines, text(a.CurrentJob))
		}

	case itemContact:
		c := site.Contact[item.index]
		lines = append(lines, title(strings.TrimSpace(c.Icon+" "+c.Title)), text(c.Value))
	}

	style := styles.CardStyle
	if selected {
		style = styles.CardSelectedStyle
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderButton(label string, selected bool) string {
	if selected {
		return styles.ButtonStyle.Render(styles.IconArrowRight + " " + label)
	}
	return styles.TextPrimaryBoldStyle.Render("  " + label)
}

func badged(category, title string) string {
	if category == "" {
		return title
	}
	return styles.Badge(category) + " " + title
}

func nameWithNickname(name, nickname string) string {
	if nickname == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, nickname)
}

func linkText(s string) string {
	if s == "" {
		return "查看詳情"
	}
	return s
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}
