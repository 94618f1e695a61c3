package styles

// Plain glyphs that render without a patched font.
var (
	IconCalendar = "◷"
	IconLocation = "⌖"
	IconClock    = "◔"
	IconPerson   = "☺"
	IconImages   = "▣"
	IconLink     = "↗"
	IconMail     = "✉"
	IconLock     = "⊘"
	IconDot      = "•"
)

// Lightbox controls.
var (
	IconArrowLeft  = "‹"
	IconArrowRight = "›"
	IconClose      = "✕"
	IconFullscreen = "⤢"
)

// Toast levels.
var (
	IconNotifyError   = "✗"
	IconNotifyWarning = "!"
	IconNotifyInfo    = "i"
)
