package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_evicts_oldest(t *testing.T) {
	h := NewHistory(2)

	assert.Equal(t, int64(1), h.Save(Notification{Message: "a"}))
	assert.Equal(t, int64(2), h.Save(Notification{Message: "b"}))
	assert.Equal(t, int64(3), h.Save(Notification{Message: "c"}))

	got := h.List()
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].Message)
	assert.Equal(t, "b", got[1].Message)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestHistory_Clear_keeps_ids_increasing(t *testing.T) {
	h := NewHistory(0)
	h.Save(Notification{Message: "a"})
	h.Clear()

	assert.Zero(t, h.Count())
	assert.Equal(t, int64(2), h.Save(Notification{Message: "b"}))
}
