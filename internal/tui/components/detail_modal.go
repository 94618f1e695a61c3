// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
)

const (
	detailModalMaxWidth  = 90
	detailModalMaxHeight = 32
	detailModalMargin    = 4
	detailModalChrome    = 7 // title + meta + divider + help + spacing
	detailModalMinWidth  = 40
	detailModalPadding   = 4
)

// DetailField is a single labeled row in a detail section.
type DetailField struct {
	Label string
	Value string
}

// DetailSection groups fields and bullet lines under a title.
type DetailSection struct {
	Title   string
	Fields  []DetailField
	Bullets []string
}

// Detail is everything a detail modal shows for one record.
type Detail struct {
	Title    string
	Badge    string // category label, rendered in its hashed color
	Subtitle string
	Sections []DetailSection
	Body     string // markdown
}

// DetailModal displays one selected record with a scrollable body.
type DetailModal struct {
	detail   Detail
	helpText string
	status   string
	viewport viewport.Model
}

func detailSize(width, height int) (int, int) {
	w := min(max(int(float64(width)*0.7), detailModalMinWidth), detailModalMaxWidth, max(width-detailModalMargin, 1))
	h := min(max(height-detailModalMargin, 1), detailModalMaxHeight)
	return w, h
}

// NewDetailModal creates a detail modal sized for a width x height screen.
func NewDetailModal(d Detail, helpText string, width, height int) *DetailModal {
	modalWidth, modalHeight := detailSize(width, height)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-detailModalPadding),
		viewport.WithHeight(max(modalHeight-detailModalChrome, 1)),
	)

	m := &DetailModal{
		detail:   d,
		helpText: helpText,
		viewport: vp,
	}
	m.viewport.SetContent(m.renderContent(modalWidth - detailModalPadding))
	return m
}

// Title returns the title of the shown record.
func (m *DetailModal) Title() string {
	return m.detail.Title
}

func (m *DetailModal) renderContent(width int) string {
	separator := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(width-2, 1)))
	lines := make([]string, 0)

	for i, section := range m.detail.Sections {
		if i > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title))
			lines = append(lines, separator)
		}
		for _, f := range section.Fields {
			lines = append(lines, formatDetailField(f))
		}
		for _, b := range section.Bullets {
			lines = append(lines, styles.TextForegroundStyle.Render(styles.IconDot+" "+b))
		}
	}

	if body := strings.TrimSpace(m.detail.Body); body != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, renderMarkdown(body, width))
	}

	return strings.Join(lines, "\n")
}

func formatDetailField(f DetailField) string {
	label := styles.TextForegroundBoldStyle.Render(f.Label)
	value := styles.TextMutedStyle.Render(f.Value)
	return fmt.Sprintf("%s  %s", label, value)
}

// renderMarkdown renders body with the active theme, falling back to the raw
// text when glamour fails.
func renderMarkdown(body string, width int) string {
	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return body
	}

	rendered, err := renderer.Render(body)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return body
	}

	content := strings.TrimSpace(rendered)
	content = stripLeadingDecorative(content)
	return stripTrailingDecorative(content)
}

// ScrollUp scrolls the viewport up.
func (m *DetailModal) ScrollUp() {
	m.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (m *DetailModal) ScrollDown() {
	m.viewport.ScrollDown(1)
}

// SetStatus replaces the help line with a one-off status such as "copied".
func (m *DetailModal) SetStatus(status string) {
	m.status = status
}

// Overlay renders the modal centered over the background.
func (m *DetailModal) Overlay(background string, width, height int) string {
	return Center(background, m.render(width, height), width, height, 1)
}

// Bounds returns the screen rectangle the modal covers when centered on a
// width x height screen.
func (m *DetailModal) Bounds(width, height int) (x, y, w, h int) {
	modal := m.render(width, height)
	w, h = lipgloss.Width(modal), lipgloss.Height(modal)
	return max((width-w)/2, 0), max((height-h)/2, 0), w, h
}

func (m *DetailModal) render(width, height int) string {
	modalWidth, modalHeight := detailSize(width, height)

	scrollInfo := ""
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	header := styles.ModalTitleStyle.Render(m.detail.Title) + scrollInfo
	if m.detail.Badge != "" {
		header = styles.Badge(m.detail.Badge) + " " + header
	}

	helpText := m.helpText
	if m.status != "" {
		helpText = styles.TextSuccessStyle.Render(m.status)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	parts := []string{header}
	if m.detail.Subtitle != "" {
		parts = append(parts, styles.TextMutedStyle.Render(m.detail.Subtitle))
	}
	parts = append(parts, divider, m.viewport.View(), styles.ModalHelpStyle.Render(helpText))

	return styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Center composites fg over bg, centered, at layer z.
func Center(bg, fg string, width, height, z int) string {
	bgLayer := lipgloss.NewLayer(bg)
	fgLayer := lipgloss.NewLayer(fg)

	x := max((width-lipgloss.Width(fg))/2, 0)
	y := max((height-lipgloss.Height(fg))/2, 0)
	fgLayer.X(x).Y(y).Z(z)

	return lipgloss.NewCompositor(bgLayer, fgLayer).Render()
}

func isDecorativeLine(line string) bool {
	stripped := strings.TrimSpace(ansi.Strip(line))
	if stripped == "" {
		return true
	}
	for _, r := range stripped {
		if r != '─' && r != '━' && r != '-' && r != '=' {
			return false
		}
	}
	return true
}

func stripLeadingDecorative(content string) string {
	lines := strings.Split(content, "\n")
	start := 0
	for start < len(lines) && isDecorativeLine(lines[start]) {
		start++
	}
	return strings.Join(lines[start:], "\n")
}

func stripTrailingDecorative(content string) string {
	lines := strings.Split(content, "\n")
	end := len(lines)
	for end > 0 && isDecorativeLine(lines[end-1]) {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
