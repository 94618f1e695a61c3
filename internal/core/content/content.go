// Package content defines the club site's static records and loads them
// from YAML.
package content

import (
	"errors"
	"fmt"
	"slices"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/gallery"
)

// ErrAlbumNotFound is returned when an album id has no matching record.
var ErrAlbumNotFound = errors.New("album not found")

// Page identifies one top-level page of the site.
type Page string

const (
	PageHome          Page = "home"
	PageAbout         Page = "about"
	PageAnnouncements Page = "announcements"
	PageEvents        Page = "events"
	PageAlumni        Page = "alumni"
	PageContact       Page = "contact"
)

// Pages lists every page in navigation order.
var Pages = []Page{PageHome, PageAbout, PageAnnouncements, PageEvents, PageAlumni, PageContact}

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	return slices.Contains(Pages, p)
}

// Site is the whole content tree.
type Site struct {
	Name          string         `yaml:"name"                   json:"name"`
	Tagline       string         `yaml:"tagline,omitempty"      json:"tagline,omitempty"`
	Cohort        string         `yaml:"cohort,omitempty"       json:"cohort,omitempty"`
	Nav           []NavItem      `yaml:"nav"                    json:"nav"`
	Headers       []PageHeader   `yaml:"headers,omitempty"      json:"headers,omitempty"`
	HeroButtons   []Link         `yaml:"hero_buttons,omitempty" json:"hero_buttons,omitempty"`
	News          []NewsItem     `yaml:"news,omitempty"         json:"news,omitempty"`
	Features      []Feature      `yaml:"features,omitempty"     json:"features,omitempty"`
	Team          []TeamMember   `yaml:"team,omitempty"         json:"team,omitempty"`
	Announcements []Announcement `yaml:"announcements,omitempty" json:"announcements,omitempty"`
	Events        []Event        `yaml:"events,omitempty"       json:"events,omitempty"`
	Albums        []Album        `yaml:"albums,omitempty"       json:"albums,omitempty"`
	Alumni        []YearGroup    `yaml:"alumni,omitempty"       json:"alumni,omitempty"`
	Contact       []ContactInfo  `yaml:"contact,omitempty"      json:"contact,omitempty"`
	Location      string         `yaml:"location,omitempty"     json:"location,omitempty"`
}

// NavItem is one navbar entry.
type NavItem struct {
	Page  Page   `yaml:"page"  json:"page"`
	Title string `yaml:"title" json:"title"`
}

// PageHeader is the heading and subtitle shown at the top of a page.
type PageHeader struct {
	Page     Page   `yaml:"page"     json:"page"`
	Title    string `yaml:"title"    json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

// Link is an outbound link with display text.
type Link struct {
	Text string `yaml:"text" json:"text"`
	Href string `yaml:"href" json:"href"`
}

// NewsItem is a home page news entry.
type NewsItem struct {
	ID          int    `yaml:"id"                  json:"id"`
	Title       string `yaml:"title"               json:"title"`
	Description string `yaml:"description"         json:"description"`
	Date        string `yaml:"date"                json:"date"`
	Category    string `yaml:"category"            json:"category"`
	Content     string `yaml:"content,omitempty"   json:"content,omitempty"`
	Location    string `yaml:"location,omitempty"  json:"location,omitempty"`
	Time        string `yaml:"time,omitempty"      json:"time,omitempty"`
	Organizer   string `yaml:"organizer,omitempty" json:"organizer,omitempty"`
	Link        string `yaml:"link,omitempty"      json:"link,omitempty"`
	LinkText    string `yaml:"link_text,omitempty" json:"link_text,omitempty"`
}

// Feature is one "what we do" card on the about page.
type Feature struct {
	Title       string `yaml:"title"       json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon"        json:"icon"`
}

// TeamContact holds a current officer's contact handles.
type TeamContact struct {
	Email     string `yaml:"email,omitempty"     json:"email,omitempty"`
	Instagram string `yaml:"instagram,omitempty" json:"instagram,omitempty"`
	GitHub    string `yaml:"github,omitempty"    json:"github,omitempty"`
}

// TeamMember is a current club officer.
type TeamMember struct {
	Name             string      `yaml:"name"                       json:"name"`
	Nickname         string      `yaml:"nickname,omitempty"         json:"nickname,omitempty"`
	Role             string      `yaml:"role"                       json:"role"`
	Description      string      `yaml:"description,omitempty"      json:"description,omitempty"`
	Skills           []string    `yaml:"skills,omitempty"           json:"skills,omitempty"`
	Responsibilities []string    `yaml:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Contact          TeamContact `yaml:"contact,omitempty"          json:"contact,omitzero"`
}

// Announcement is an entry on the announcements page.
type Announcement struct {
	Title       string  `yaml:"title"               json:"title"`
	Date        string  `yaml:"date"                json:"date"`
	Category    string  `yaml:"category"            json:"category"`
	Description string  `yaml:"description"         json:"description"`
	Link        string  `yaml:"link,omitempty"      json:"link,omitempty"`
	LinkText    string  `yaml:"link_text,omitempty" json:"link_text,omitempty"`
	Content     string  `yaml:"content,omitempty"   json:"content,omitempty"`
	Images      []Image `yaml:"images,omitempty"    json:"images,omitempty"`
	Location    string  `yaml:"location,omitempty"  json:"location,omitempty"`
	Time        string  `yaml:"time,omitempty"      json:"time,omitempty"`
	Organizer   string  `yaml:"organizer,omitempty" json:"organizer,omitempty"`
}

// Event is an entry on the events timeline.
type Event struct {
	ID            string  `yaml:"id"                       json:"id"`
	Title         string  `yaml:"title"                    json:"title"`
	Date          string  `yaml:"date"                     json:"date"`
	Description   string  `yaml:"description"              json:"description"`
	Images        []Image `yaml:"images,omitempty"         json:"images,omitempty"`
	Category      string  `yaml:"category"                 json:"category"`
	Location      string  `yaml:"location,omitempty"       json:"location,omitempty"`
	Time          string  `yaml:"time,omitempty"           json:"time,omitempty"`
	Participants  string  `yaml:"participants,omitempty"   json:"participants,omitempty"`
	Organizer     string  `yaml:"organizer,omitempty"      json:"organizer,omitempty"`
	Content       string  `yaml:"content,omitempty"        json:"content,omitempty"`
	PreviewImages []int   `yaml:"preview_images,omitempty" json:"preview_images,omitempty"`
	AlbumID       string  `yaml:"album_id,omitempty"       json:"album_id,omitempty"`
}

// Previews returns the indexes of the images shown on the event card:
// PreviewImages when set, otherwise the first two images.
func (e Event) Previews() []int {
	if len(e.PreviewImages) > 0 {
		return slices.Clone(e.PreviewImages)
	}
	n := min(2, len(e.Images))
	out := make([]int, n)
	for i := range n {
		out[i] = i
	}
	return out
}

// Refs converts the event's images to gallery references, captioned the way
// the site labels them ("<title> 照片 N") when no caption is set.
func (e Event) Refs() []gallery.ImageRef {
	return refs(e.Images, e.Title)
}

// Album is a named photo collection.
type Album struct {
	ID         string  `yaml:"id"                    json:"id"`
	Title      string  `yaml:"title"                 json:"title"`
	Date       string  `yaml:"date"                  json:"date"`
	Images     []Image `yaml:"images,omitempty"      json:"images,omitempty"`
	Glob       string  `yaml:"glob,omitempty"        json:"glob,omitempty"`
	CoverIndex int     `yaml:"cover_index,omitempty" json:"cover_index,omitempty"`
}

// Cover returns the album's cover image, falling back to the first image
// when CoverIndex is out of range.
func (a Album) Cover() (Image, bool) {
	if len(a.Images) == 0 {
		return Image{}, false
	}
	if a.CoverIndex >= 0 && a.CoverIndex < len(a.Images) {
		return a.Images[a.CoverIndex], true
	}
	return a.Images[0], true
}

// Refs converts the album's images to gallery references.
func (a Album) Refs() []gallery.ImageRef {
	return refs(a.Images, a.Title)
}

// AlumniContact holds a former officer's contact handles.
type AlumniContact struct {
	Email    string `yaml:"email,omitempty"    json:"email,omitempty"`
	LinkedIn string `yaml:"linkedin,omitempty" json:"linkedin,omitempty"`
	Website  string `yaml:"website,omitempty"  json:"website,omitempty"`
	GitHub   string `yaml:"github,omitempty"   json:"github,omitempty"`
}

// AlumniMember is a former club officer.
type AlumniMember struct {
	Name         string        `yaml:"name"                   json:"name"`
	Nickname     string        `yaml:"nickname,omitempty"     json:"nickname,omitempty"`
	Role         string        `yaml:"role"                   json:"role"`
	Year         string        `yaml:"year"                   json:"year"`
	Description  string        `yaml:"description,omitempty"  json:"description,omitempty"`
	Achievements []string      `yaml:"achievements,omitempty" json:"achievements,omitempty"`
	CurrentJob   string        `yaml:"current_job,omitempty"  json:"current_job,omitempty"`
	Contact      AlumniContact `yaml:"contact,omitempty"      json:"contact,omitzero"`
}

// YearGroup groups alumni by cohort.
type YearGroup struct {
	Year    string         `yaml:"year"    json:"year"`
	Members []AlumniMember `yaml:"members" json:"members"`
}

// ContactInfo is one card on the contact page.
type ContactInfo struct {
	Title string `yaml:"title"          json:"title"`
	Value string `yaml:"value"          json:"value"`
	Icon  string `yaml:"icon,omitempty" json:"icon,omitempty"`
}

// Album looks up an album by id.
func (s *Site) Album(id string) (Album, error) {
	for _, a := range s.Albums {
		if a.ID == id {
			return a, nil
		}
	}
	return Album{}, fmt.Errorf("%w: %q", ErrAlbumNotFound, id)
}

// EventGallery returns the images the "view album" action on an event opens:
// the linked album when it exists and has images, otherwise the event's own
// images. The bool is false when neither has images.
func (s *Site) EventGallery(e Event) ([]gallery.ImageRef, bool) {
	if e.AlbumID != "" {
		album, err := s.Album(e.AlbumID)
		if err != nil || len(album.Images) == 0 {
			return nil, false
		}
		return album.Refs(), true
	}
	if len(e.Images) == 0 {
		return nil, false
	}
	return e.Refs(), true
}

// Header returns the header for page, or a header built from the nav title.
func (s *Site) Header(page Page) PageHeader {
	for _, h := range s.Headers {
		if h.Page == page {
			return h
		}
	}
	return PageHeader{Page: page, Title: s.NavTitle(page)}
}

// NavTitle returns the navbar title for page, falling back to the page id.
func (s *Site) NavTitle(page Page) string {
	for _, n := range s.Nav {
		if n.Page == page {
			return n.Title
		}
	}
	return string(page)
}

// AlumniCount returns the number of alumni across all year groups.
func (s *Site) AlumniCount() int {
	n := 0
	for _, g := range s.Alumni {
		n += len(g.Members)
	}
	return n
}

func refs(images []Image, title string) []gallery.ImageRef {
	out := make([]gallery.ImageRef, len(images))
	for i, img := range images {
		out[i] = img.Ref()
		if out[i].Caption == "" && title != "" {
			out[i].Caption = fmt.Sprintf("%s 照片 %d", title, i+1)
		}
	}
	return out
}
