package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader    = lipgloss.Color("205")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("240")
	ColorHighlight = lipgloss.Color("63")
	ColorSelected  = lipgloss.Color("229")
	ColorWarning   = lipgloss.Color("214")
	ColorCritical  = lipgloss.Color("196")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared across views.
var (
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorHighlight)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)
	BoxStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorHighlight).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted).
				Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Background(ColorHighlight).
				Bold(false)

	// PageCurrentStyle marks the current page in the page selector.
	PageCurrentStyle = lipgloss.NewStyle().
				Foreground(ColorSelected).
				Background(ColorHighlight).
				Bold(true).
				Padding(0, 1)
	// PageStyle renders the other pages in the page selector.
	PageStyle = lipgloss.NewStyle().Foreground(ColorValue).Padding(0, 1)
	// PageDisabledStyle renders navigation arrows that cannot be used.
	PageDisabledStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)

// Layout.
const (
	defaultWidth   = 100
	defaultHeight  = 24
	minHeight      = 3
	footerHeight   = 4
	borderPadding  = 4
	maxColumnWidth = 30
	minColumnWidth = 4
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyNext     = "n"
	keyPrev     = "p"
	keyRight    = "right"
	keyLeft     = "left"
	keyPgDown   = "pgdown"
	keyPgUp     = "pgup"
	keyHome     = "home"
	keyEnd      = "end"
	keyFirst    = "g"
	keyLast     = "G"
	keyGrow     = "]"
	keyShrink   = "["
	keyGoToPage = ":"
)

// ViewState is the screen the grid is showing.
type ViewState int

// View states.
const (
	ViewStateList ViewState = iota
	ViewStateDetail
	ViewStateQuitting
)
