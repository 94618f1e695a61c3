// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single printable rune.
func KeyPress(key rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: key, Text: string(key)})
}

// KeyCode creates a key press message for a special key such as
// tea.KeyRight or tea.KeyEscape.
func KeyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

// KeyRight creates a right arrow key press message.
func KeyRight() tea.KeyPressMsg { return KeyCode(tea.KeyRight) }

// KeyLeft creates a left arrow key press message.
func KeyLeft() tea.KeyPressMsg { return KeyCode(tea.KeyLeft) }

// KeyDown creates a down arrow key press message.
func KeyDown() tea.KeyPressMsg { return KeyCode(tea.KeyDown) }

// KeyUp creates an up arrow key press message.
func KeyUp() tea.KeyPressMsg { return KeyCode(tea.KeyUp) }

// KeyEnter creates an enter key press message.
func KeyEnter() tea.KeyPressMsg { return KeyCode(tea.KeyEnter) }

// KeyEsc creates an escape key press message.
func KeyEsc() tea.KeyPressMsg { return KeyCode(tea.KeyEscape) }

// KeyTab creates a tab key press message.
func KeyTab() tea.KeyPressMsg { return KeyCode(tea.KeyTab) }

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// Click creates a left mouse click at the given cell.
func Click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

// WheelDown creates a mouse wheel scroll-down event.
func WheelDown(x, y int) tea.MouseWheelMsg {
	return tea.MouseWheelMsg{X: x, Y: y, Button: tea.MouseWheelDown}
}
