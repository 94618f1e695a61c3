// Package iojson writes command output as JSON for scripting.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Error is the JSON shape of a failed command.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// WriteWith encodes obj as indented JSON to w. URLs and CJK text are
// written verbatim rather than HTML-escaped.
func WriteWith(w io.Writer, obj any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Write calls WriteWith with [os.Stdout].
func Write(obj any) error {
	return WriteWith(os.Stdout, obj)
}

// WriteError writes an Error object to w.
func WriteError(w io.Writer, msg string, data map[string]any) error {
	return WriteWith(w, Error{Message: msg, Data: data})
}
