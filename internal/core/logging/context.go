package logging

import "context"

type contextKey string

const (
	pageKey    contextKey = "page"
	albumIDKey contextKey = "album_id"
)

// WithPage adds the current page to the context.
func WithPage(ctx context.Context, page string) context.Context {
	return context.WithValue(ctx, pageKey, page)
}

// WithAlbumID adds an album ID to the context.
func WithAlbumID(ctx context.Context, albumID string) context.Context {
	return context.WithValue(ctx, albumIDKey, albumID)
}

// GetPage retrieves the page from the context.
// Returns empty string if not present.
func GetPage(ctx context.Context) string {
	if p, ok := ctx.Value(pageKey).(string); ok {
		return p
	}
	return ""
}

// GetAlbumID retrieves the album ID from the context.
// Returns empty string if not present.
func GetAlbumID(ctx context.Context) string {
	if id, ok := ctx.Value(albumIDKey).(string); ok {
		return id
	}
	return ""
}
