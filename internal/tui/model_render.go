package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/core/styles"
	"github.com/fssh-cs-club/fscs.fssh.khc.edu.tw/internal/tui/components"
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := m.renderTabView()
	content = m.modals.OverlayDetail(content)

	if m.store.IsOpen() {
		layout := layoutLightbox(m.store, m.thumbs, w, h, m.cfg.Gallery.ThumbnailWidth)
		content = renderLightbox(content, layout, m.store, m.pictures, m.slide)
	}

	content = m.modals.Overlay(content)

	// Apply toast overlay on top of everything
	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderTabs renders the navbar tabs and returns each tab's column range
// on the tab row.
func (m Model) renderTabs() (string, []cardSpan) {
	const margin = 1
	sep := " | "

	pages := m.navPages()
	tabs := make([]string, 0, len(pages))
	spans := make([]cardSpan, 0, len(pages))
	x := margin
	for i, page := range pages {
		label := m.site.NavTitle(page)
		var tab string
		if page == m.page {
			tab = styles.ViewSelectedStyle.Render(label)
		} else {
			tab = styles.ViewNormalStyle.Render(label)
		}
		if i > 0 {
			x += lipgloss.Width(sep)
		}
		w := lipgloss.Width(tab)
		spans = append(spans, cardSpan{start: x, end: x + w})
		x += w
		tabs = append(tabs, tab)
	}

	return strings.Join(tabs, sep), spans
}

// renderTabView renders the navbar, the active page and the footer.
func (m Model) renderTabView() string {
	tabsLeft, _ := m.renderTabs()

	name := m.site.Name
	if m.site.Tagline != "" {
		name = m.site.Tagline
	}
	branding := styles.TabBrandingStyle.Render(name)

	// Layout: [margin] tabs [spacer] branding [margin]
	margin := 1
	tabsWidth := lipgloss.Width(tabsLeft)
	brandingWidth := lipgloss.Width(branding)
	spacerWidth := max(m.width-tabsWidth-brandingWidth-(margin*2), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		components.Pad(margin), tabsLeft, components.Pad(spacerWidth), branding, components.Pad(margin))

	dividerWidth := m.width
	if dividerWidth < 1 {
		dividerWidth = 80 // default width before WindowSizeMsg
	}
	divider := styles.TextMutedStyle.Render(strings.Repeat("─", dividerWidth))

	body := lipgloss.NewStyle().Height(m.contentHeight()).Render(m.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, divider, header, divider, body, m.renderFooter())
}

func (m Model) renderFooter() string {
	help := "tab pages • ↑/↓ cards • enter open • g photos • ? help • q quit"
	if m.store.IsOpen() {
		help = "←/→ browse • f fullscreen • 1-9 jump • y copy • esc close"
	} else if m.modals.Detail != nil {
		help = "j/k scroll • g album • esc close"
	}

	left := styles.TextMutedStyle.Render(help)
	right := ""
	if m.gate.Locked() {
		right = styles.ScrollLockedStyle.Render(styles.IconLock + " scroll locked")
	}

	width := max(m.width, 80)
	left = components.Truncate(left, max(width-lipgloss.Width(right)-2, 0))
	return " " + components.PadRight(left, width-lipgloss.Width(right)-2) + right
}
