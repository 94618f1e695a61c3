package gallery

// Thumbnail is the projected state of one image in the strip.
type Thumbnail struct {
	Index  int
	Image  ImageRef
	Active bool
}

// Thumbnails is a read-only projection of a Store's active index.
type Thumbnails struct {
	store *Store
}

// NewThumbnails creates a projection over store.
func NewThumbnails(store *Store) *Thumbnails {
	return &Thumbnails{store: store}
}

// All returns one entry per image in the open session, nil when closed.
func (t *Thumbnails) All() []Thumbnail {
	sess, ok := t.store.Session()
	if !ok {
		return nil
	}
	thumbs := make([]Thumbnail, len(sess.Images))
	for i, img := range sess.Images {
		thumbs[i] = Thumbnail{
			Index:  i,
			Image:  img,
			Active: i == sess.Active,
		}
	}
	return thumbs
}

// Visible returns at most limit thumbnails, windowed so the active one is
// included and roughly centered.
func (t *Thumbnails) Visible(limit int) []Thumbnail {
	all := t.All()
	if limit <= 0 || len(all) <= limit {
		return all
	}
	start := t.store.ActiveIndex() - limit/2
	start = min(max(start, 0), len(all)-limit)
	return all[start : start+limit]
}

// Shown reports whether the strip should be drawn: more than one image and
// not in fullscreen mode.
func (t *Thumbnails) Shown() bool {
	return t.store.Len() > 1 && !t.store.Fullscreen()
}

// Select forwards a thumbnail pick to the store.
func (t *Thumbnails) Select(index int) {
	t.store.JumpTo(index)
}
