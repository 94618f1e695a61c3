package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	logger := Component("gallery")
	ctx := WithAlbumID(WithPage(context.Background(), "events"), "1")
	logger.Info().Ctx(ctx).Msg("opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "gallery", entry["cmp"])
	assert.Equal(t, "opened", entry["message"])
	assert.Equal(t, "events", entry["page"])
	assert.Equal(t, "1", entry["album_id"])
}
