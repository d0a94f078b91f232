// Package style provides the colors and glyphs shared by the terminal
// front ends, so the picker, the linear renderer and the logger agree.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#0EA5E9")
	Muted  = lipgloss.Color("#667085")
	Text   = lipgloss.Color("#E4E7EC")
	Faint  = lipgloss.Color("#475467")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Pointer = "❯"
	Expand  = "›"
	Search  = "⌕"
)

// Checkbox glyphs by tri-state.
const (
	BoxChecked       = "[x]"
	BoxUnchecked     = "[ ]"
	BoxIndeterminate = "[-]"
)
