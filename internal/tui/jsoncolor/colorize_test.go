package jsoncolor

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "object is indented",
			in:   `{"title":"迎新","count":6,"open":true,"cover":null}`,
			want: "{\n  \"title\": \"迎新\",\n  \"count\": 6,\n  \"open\": true,\n  \"cover\": null\n}",
		},
		{
			name: "escaped quotes stay inside the string",
			in:   `["a \"b\" c",-1.5e3]`,
			want: "[\n  \"a \\\"b\\\" c\",\n  -1.5e3\n]",
		},
		{
			name: "invalid json is returned as is",
			in:   `{"broken"`,
			want: `{"broken"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ansi.Strip(Colorize([]byte(tt.in))))
		})
	}
}
