package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/cascade/internal/ui/style"
)

const (
	maxColumnWidth = 28
	minColumnWidth = 6
	defaultHeight  = 10
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Faint).
			PaddingRight(1).
			MarginRight(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	activeStyle = lipgloss.NewStyle().
			Foreground(style.Accent)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	disabledStyle = lipgloss.NewStyle().
			Foreground(style.Faint).
			Strikethrough(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Muted)

	matchStyle = lipgloss.NewStyle().
			Foreground(style.Yellow).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(style.Text).
			Bold(true)
)
