package components

import (
	"strings"
	"sync"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const maxCachedPad = 200

var (
	paddingCache [maxCachedPad + 1]string
	paddingOnce  sync.Once
)

func initPaddingCache() {
	for i := 1; i <= maxCachedPad; i++ {
		paddingCache[i] = strings.Repeat(" ", i)
	}
}

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n <= maxCachedPad {
		paddingOnce.Do(initPaddingCache)
		return paddingCache[n]
	}
	return strings.Repeat(" ", n)
}

// PadRight pads s with spaces to width display cells. Wide runes count
// as two cells.
func PadRight(s string, width int) string {
	return s + Pad(width-lipgloss.Width(s))
}

// Truncate shortens s to width display cells, marking the cut with an
// ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
