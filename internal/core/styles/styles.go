// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextSecondaryStyle      lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Navbar.
	ViewSelectedStyle lipgloss.Style
	ViewNormalStyle   lipgloss.Style
	TabBrandingStyle  lipgloss.Style

	// Modals.
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	// Pages.
	PageTitleStyle    lipgloss.Style
	PageSubtitleStyle lipgloss.Style
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CardTitleStyle    lipgloss.Style
	HeroStyle         lipgloss.Style
	ButtonStyle       lipgloss.Style
	ScrollLockedStyle lipgloss.Style

	// Lightbox.
	LightboxStyle           lipgloss.Style
	LightboxFullscreenStyle lipgloss.Style
	LightboxCounterStyle    lipgloss.Style
	LightboxCaptionStyle    lipgloss.Style
	LightboxArrowStyle      lipgloss.Style
	ThumbnailStyle          lipgloss.Style
	ThumbnailActiveStyle    lipgloss.Style
	ImageFallbackStyle      lipgloss.Style

	// Toasts.
	ToastErrorStyle   lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
)

// ColorPool is used for deterministic color hashing of category badges.
var ColorPool []color.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(ColorForeground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	ViewSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ViewNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TabBrandingStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	HelpDialogModalStyle = ModalStyle
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = ModalHelpStyle

	PageTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	PageSubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	CardSelectedStyle = CardStyle.
		BorderForeground(ColorPrimary)
	CardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	HeroStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(1, 2)
	ButtonStyle = lipgloss.NewStyle().
		Foreground(ColorBackground).
		Background(ColorPrimary).
		Padding(0, 1)
	ScrollLockedStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	LightboxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 1)
	LightboxFullscreenStyle = lipgloss.NewStyle()
	LightboxCounterStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	LightboxCaptionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Italic(true)
	LightboxArrowStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ThumbnailStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorSurface).
		Foreground(ColorMuted)
	ThumbnailActiveStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorPrimary).
		Foreground(ColorForeground)
	ImageFallbackStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Background(ColorSurface).
		Align(lipgloss.Center, lipgloss.Center)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Foreground(ColorForeground)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary)

	ColorPool = []color.Color{
		ColorPrimary,
		ColorSecondary,
		ColorSuccess,
		ColorWarning,
		ColorError,
		Blend(ColorPrimary, ColorError, 0.5),
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) color.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return ColorPool[hash%uint32(len(ColorPool))]
}

// Badge renders a category label in its hashed color.
func Badge(category string) string {
	if category == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorForString(category)).
		Bold(true).
		Render("[" + category + "]")
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
