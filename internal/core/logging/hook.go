package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies page and album_id from the event context into the log
// event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if page := GetPage(ctx); page != "" {
		e.Str("page", page)
	}

	if albumID := GetAlbumID(ctx); albumID != "" {
		e.Str("album_id", albumID)
	}
}
