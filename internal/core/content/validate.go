package content

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hay-kot/criterio"
)

// Category sets accepted by each record type.
var (
	NewsCategories         = []string{"活動", "公告", "課程"}
	AnnouncementCategories = []string{"活動", "課程", "競賽", "公告"}
	EventCategories        = []string{"活動", "講座", "競賽"}
)

// Validate checks references and ranges across the whole site. All problems
// are reported together as criterio field errors.
func (s *Site) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("name", s.Name, required),
		s.validateNav(),
		s.validateNews(),
		s.validateAnnouncements(),
		s.validateAlbums(),
		s.validateEvents(),
		s.validateAlumni(),
	)
}

func required(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("is required")
	}
	return nil
}

func oneOf(allowed []string) func(string) error {
	return func(v string) error {
		if !slices.Contains(allowed, v) {
			return fmt.Errorf("unknown category %q (want one of %s)", v, strings.Join(allowed, ", "))
		}
		return nil
	}
}

func (s *Site) validateNav() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[Page]bool)
	for i, n := range s.Nav {
		field := fmt.Sprintf("nav[%d]", i)
		if !n.Page.Valid() {
			errs = errs.Append(field+".page", fmt.Errorf("unknown page %q", n.Page))
		}
		if seen[n.Page] {
			errs = errs.Append(field+".page", fmt.Errorf("duplicate page %q", n.Page))
		}
		seen[n.Page] = true
		if err := required(n.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}
	}
	for i, h := range s.Headers {
		if !h.Page.Valid() {
			errs = errs.Append(fmt.Sprintf("headers[%d].page", i), fmt.Errorf("unknown page %q", h.Page))
		}
	}
	return errs.ToError()
}

func (s *Site) validateNews() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[int]bool)
	for i, n := range s.News {
		field := fmt.Sprintf("news[%d]", i)
		if seen[n.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %d", n.ID))
		}
		seen[n.ID] = true
		if err := required(n.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}
		if err := oneOf(NewsCategories)(n.Category); err != nil {
			errs = errs.Append(field+".category", err)
		}
	}
	return errs.ToError()
}

func (s *Site) validateAnnouncements() error {
	var errs criterio.FieldErrorsBuilder
	for i, a := range s.Announcements {
		field := fmt.Sprintf("announcements[%d]", i)
		if err := required(a.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}
		if err := oneOf(AnnouncementCategories)(a.Category); err != nil {
			errs = errs.Append(field+".category", err)
		}
		for j, img := range a.Images {
			if err := required(img.URL); err != nil {
				errs = errs.Append(fmt.Sprintf("%s.images[%d].url", field, j), err)
			}
		}
	}
	return errs.ToError()
}

func (s *Site) validateAlbums() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool)
	for i, a := range s.Albums {
		field := fmt.Sprintf("albums[%d]", i)
		if err := required(a.ID); err != nil {
			errs = errs.Append(field+".id", err)
		} else if seen[a.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %q", a.ID))
		}
		seen[a.ID] = true

		if a.CoverIndex < 0 || (len(a.Images) > 0 && a.CoverIndex >= len(a.Images)) {
			errs = errs.Append(field+".cover_index",
				fmt.Errorf("index %d out of range for %d images", a.CoverIndex, len(a.Images)))
		}
	}
	return errs.ToError()
}

func (s *Site) validateEvents() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool)
	for i, e := range s.Events {
		field := fmt.Sprintf("events[%d]", i)
		if err := required(e.ID); err != nil {
			errs = errs.Append(field+".id", err)
		} else if seen[e.ID] {
			errs = errs.Append(field+".id", fmt.Errorf("duplicate id %q", e.ID))
		}
		seen[e.ID] = true

		if err := oneOf(EventCategories)(e.Category); err != nil {
			errs = errs.Append(field+".category", err)
		}

		for j, idx := range e.PreviewImages {
			if idx < 0 || idx >= len(e.Images) {
				errs = errs.Append(fmt.Sprintf("%s.preview_images[%d]", field, j),
					fmt.Errorf("index %d out of range for %d images", idx, len(e.Images)))
			}
		}

		if e.AlbumID != "" {
			if _, err := s.Album(e.AlbumID); err != nil {
				errs = errs.Append(field+".album_id", err)
			}
		}
	}
	return errs.ToError()
}

func (s *Site) validateAlumni() error {
	var errs criterio.FieldErrorsBuilder
	for i, g := range s.Alumni {
		field := fmt.Sprintf("alumni[%d]", i)
		if err := required(g.Year); err != nil {
			errs = errs.Append(field+".year", err)
		}
		for j, m := range g.Members {
			if err := required(m.Name); err != nil {
				errs = errs.Append(fmt.Sprintf("%s.members[%d].name", field, j), err)
			}
		}
	}
	return errs.ToError()
}
