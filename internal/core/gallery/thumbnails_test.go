package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeIndexes(thumbs []Thumbnail) []int {
	var out []int
	for _, th := range thumbs {
		if th.Active {
			out = append(out, th.Index)
		}
	}
	return out
}

func TestThumbnails_All_marks_single_active(t *testing.T) {
	s := NewStore()
	th := NewThumbnails(s)
	assert.Nil(t, th.All())

	s.Open(refs("a", "b", "c", "d"), 2)
	all := th.All()
	require.Len(t, all, 4)
	assert.Equal(t, []int{2}, activeIndexes(all))

	s.Next()
	assert.Equal(t, []int{3}, activeIndexes(th.All()))
}

func TestThumbnails_Select_forwards_to_store(t *testing.T) {
	s := NewStore()
	th := NewThumbnails(s)
	s.Open(refs("a", "b", "c"), 0)

	th.Select(2)
	assert.Equal(t, 2, s.ActiveIndex())

	th.Select(7)
	assert.Equal(t, 2, s.ActiveIndex())
}

func TestThumbnails_Shown(t *testing.T) {
	s := NewStore()
	th := NewThumbnails(s)
	assert.False(t, th.Shown())

	s.Open(refs("a"), 0)
	assert.False(t, th.Shown(), "single image hides the strip")

	s.Open(refs("a", "b"), 0)
	assert.True(t, th.Shown())

	s.ToggleFullscreen()
	assert.False(t, th.Shown(), "fullscreen hides the strip")
}

func TestThumbnails_Visible_window(t *testing.T) {
	s := NewStore()
	th := NewThumbnails(s)
	s.Open(refs("a", "b", "c", "d", "e", "f", "g", "h"), 0)

	tests := []struct {
		active    int
		wantFirst int
	}{
		{0, 0},
		{1, 0},
		{4, 2},
		{7, 3},
	}

	for _, tt := range tests {
		s.JumpTo(tt.active)
		vis := th.Visible(5)
		require.Len(t, vis, 5)
		assert.Equal(t, tt.wantFirst, vis[0].Index, "active=%d", tt.active)
		assert.Equal(t, []int{tt.active}, activeIndexes(vis))
	}

	assert.Len(t, th.Visible(0), 8)
	assert.Len(t, th.Visible(20), 8)
}
