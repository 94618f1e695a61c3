package tui

import (
	"fmt"
	"strings"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/avatar"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/content"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
)

// detailView is an open detail modal together with the targets its keys
// act on.
type detailView struct {
	detail components.Detail
	modal  *components.DetailModal

	// link is copied with y and opened with o.
	link string
	// album opens with g/enter; images open at a digit's index.
	album  []gallery.ImageRef
	images []gallery.ImageRef
	// leaveOnAlbum closes the modal before the album opens.
	leaveOnAlbum bool

	clear func()
}

func (d *detailView) resize(width, height int) {
	d.modal = components.NewDetailModal(d.detail, d.helpText(), width, height)
}

func (d *detailView) helpText() string {
	parts := []string{"[esc] close", "[j/k] scroll"}
	if len(d.album) > 0 {
		parts = append(parts, "[g] view album")
	}
	if len(d.images) > 0 {
		parts = append(parts, fmt.Sprintf("[1-%d] photo", min(len(d.images), 9)))
	}
	if d.link != "" {
		parts = append(parts, "[y] copy", "[o] open")
	}
	return strings.Join(parts, "  ")
}

func infoSection(fields ...components.DetailField) components.DetailSection {
	s := components.DetailSection{Title: "資訊"}
	for _, f := range fields {
		if strings.TrimSpace(f.Value) != "" {
			s.Fields = append(s.Fields, f)
		}
	}
	return s
}

func field(label, value string) components.DetailField {
	return components.DetailField{Label: label, Value: value}
}

func photoSection(images []gallery.ImageRef) components.DetailSection {
	s := components.DetailSection{Title: "照片"}
	for i, img := range images {
		label := img.Caption
		if label == "" {
			label = img.Locator
		}
		s.Bullets = append(s.Bullets, fmt.Sprintf("%d  %s", i+1, label))
	}
	return s
}

func linkSection(text, href string) components.DetailSection {
	return components.DetailSection{
		Title:  "連結",
		Fields: []components.DetailField{field(linkText(text), href)},
	}
}

func imageRefs(images []content.Image) []gallery.ImageRef {
	out := make([]gallery.ImageRef, len(images))
	for i, img := range images {
		out[i] = img.Ref()
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func mailto(email string) string {
	if email == "" {
		return ""
	}
	return "mailto:" + email
}

func newsDetail(n content.NewsItem) *detailView {
	d := components.Detail{
		Title:    n.Title,
		Badge:    n.Category,
		Subtitle: n.Date,
		Sections: []components.DetailSection{
			infoSection(field("時間", n.Time), field("地點", n.Location), field("主辦", n.Organizer)),
		},
		Body: firstNonEmpty(n.Content, n.Description),
	}
	if n.Link != "" {
		d.Sections = append(d.Sections, linkSection(n.LinkText, n.Link))
	}
	return &detailView{detail: d, link: n.Link}
}

func memberDetail(t content.TeamMember) *detailView {
	d := components.Detail{
		Title:    nameWithNickname(t.Name, t.Nickname),
		Subtitle: t.Role,
		Body:     t.Description,
	}
	if len(t.Skills) > 0 {
		d.Sections = append(d.Sections, components.DetailSection{Title: "專長", Bullets: t.Skills})
	}
	if len(t.Responsibilities) > 0 {
		d.Sections = append(d.Sections, components.DetailSection{Title: "負責事項", Bullets: t.Responsibilities})
	}
	d.Sections = append(d.Sections, components.DetailSection{
		Title: "聯絡方式",
		Fields: nonEmptyFields(
			field("Email", t.Contact.Email),
			field("Instagram", t.Contact.Instagram),
			field("GitHub", t.Contact.GitHub),
			field("頭像", avatar.URL(t.Contact.Email, avatar.DefaultSize)),
		),
	})
	return &detailView{
		detail: d,
		link:   firstNonEmpty(t.Contact.GitHub, t.Contact.Instagram, mailto(t.Contact.Email)),
	}
}

func announcementDetail(a content.Announcement) *detailView {
	images := imageRefs(a.Images)
	d := components.Detail{
		Title:    a.Title,
		Badge:    a.Category,
		Subtitle: a.Date,
		Sections: []components.DetailSection{
			infoSection(field("時間", a.Time), field("地點", a.Location), field("主辦", a.Organizer)),
		},
		Body: firstNonEmpty(a.Content, a.Description),
	}
	if len(images) > 0 {
		d.Sections = append(d.Sections, photoSection(images))
	}
	if a.Link != "" {
		d.Sections = append(d.Sections, linkSection(a.LinkText, a.Link))
	}
	return &detailView{detail: d, link: a.Link, album: images, images: images}
}

func eventDetail(site *content.Site, e content.Event) *detailView {
	images := e.Refs()
	d := components.Detail{
		Title:    e.Title,
		Badge:    e.Category,
		Subtitle: e.Date,
		Sections: []components.DetailSection{
			infoSection(
				field("時間", e.Time),
				field("地點", e.Location),
				field("參與人數", e.Participants),
				field("主辦", e.Organizer),
			),
		},
		Body: strings.TrimSpace(e.Description + "\n\n" + e.Content),
	}
	if e.AlbumID != "" {
		if album, err := site.Album(e.AlbumID); err == nil {
			d.Sections[0].Fields = append(d.Sections[0].Fields,
				field("相簿", fmt.Sprintf("%s (%d)", album.Title, len(album.Images))))
		}
	}
	if len(images) > 0 {
		d.Sections = append(d.Sections, photoSection(images))
	}

	album, _ := site.EventGallery(e)
	return &detailView{detail: d, album: album, images: images, leaveOnAlbum: true}
}

func alumniDetail(a content.AlumniMember) *detailView {
	d := components.Detail{
		Title:    nameWithNickname(a.Name, a.Nickname),
		Subtitle: strings.Join(nonEmpty([]string{a.Role, a.Year}), " · "),
		Sections: []components.DetailSection{
			infoSection(field("現職", a.CurrentJob)),
		},
		Body: a.Description,
	}
	if len(a.Achievements) > 0 {
		d.Sections = append(d.Sections, components.DetailSection{Title: "成就", Bullets: a.Achievements})
	}
	d.Sections = append(d.Sections, components.DetailSection{
		Title: "聯絡方式",
		Fields: nonEmptyFields(
			field("Email", a.Contact.Email),
			field("LinkedIn", a.Contact.LinkedIn),
			field("Website", a.Contact.Website),
			field("GitHub", a.Contact.GitHub),
			field("頭像", avatar.URL(a.Contact.Email, avatar.DefaultSize)),
		),
	})
	return &detailView{
		detail: d,
		link:   firstNonEmpty(a.Contact.Website, a.Contact.GitHub, a.Contact.LinkedIn, mailto(a.Contact.Email)),
	}
}

func nonEmptyFields(fields ...components.DetailField) []components.DetailField {
	out := fields[:0:0]
	for _, f := range fields {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
