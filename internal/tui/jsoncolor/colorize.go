// Package jsoncolor highlights JSON for terminal output.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
)

type token int

const (
	tokKey token = iota
	tokString
	tokNumber
	tokBool
	tokNull
	tokPunct
)

func styleFor(t token) lipgloss.Style {
	switch t {
	case tokKey:
		return styles.TextPrimaryBoldStyle
	case tokString:
		return styles.TextSuccessStyle
	case tokNumber, tokBool:
		return styles.TextSecondaryStyle
	case tokNull:
		return styles.TextErrorStyle
	default:
		return styles.TextMutedStyle
	}
}

// Colorize indents data and colors it with the active theme. Invalid JSON
// is returned unchanged.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	raw := buf.String()
	var out strings.Builder
	for i := 0; i < len(raw); {
		ch := raw[i]
		switch {
		case ch == '"':
			end := stringEnd(raw, i)
			kind := tokString
			if rest := strings.TrimLeft(raw[end+1:], " "); strings.HasPrefix(rest, ":") {
				kind = tokKey
			}
			out.WriteString(styleFor(kind).Render(raw[i : end+1]))
			i = end + 1
		case ch == '-' || (ch >= '0' && ch <= '9'):
			end := i + 1
			for end < len(raw) && strings.IndexByte("0123456789.eE+-", raw[end]) >= 0 {
				end++
			}
			out.WriteString(styleFor(tokNumber).Render(raw[i:end]))
			i = end
		case strings.HasPrefix(raw[i:], "true"), strings.HasPrefix(raw[i:], "false"):
			word := "true"
			if ch == 'f' {
				word = "false"
			}
			out.WriteString(styleFor(tokBool).Render(word))
			i += len(word)
		case strings.HasPrefix(raw[i:], "null"):
			out.WriteString(styleFor(tokNull).Render("null"))
			i += 4
		case strings.IndexByte("{}[]:,", ch) >= 0:
			out.WriteString(styleFor(tokPunct).Render(string(ch)))
			i++
		default:
			out.WriteByte(ch)
			i++
		}
	}
	return out.String()
}

// stringEnd returns the index of the quote closing the string opened at pos.
func stringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return len(s) - 1
}
