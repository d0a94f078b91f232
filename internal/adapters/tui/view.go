package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/ui/style"
)

// View implements tea.Model.
func (m *CascaderModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.valueLine() + "\n")
	if m.session.Engine().Config().ShowSearch {
		b.WriteString(m.input.View() + "\n")
	}
	b.WriteString("\n")

	if m.searching && m.session.State().Searching() {
		b.WriteString(m.resultsView())
	} else {
		b.WriteString(m.columnsView())
	}

	b.WriteString("\n\n")
	if m.searching {
		b.WriteString(m.help.View(m.searchKeys))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// valueLine renders the committed selection or the placeholder.
func (m *CascaderModel) valueLine() string {
	texts := m.session.Engine().DisplayTexts(m.session.State())
	if len(texts) == 0 {
		return mutedStyle.Render(m.placeholder)
	}
	return valueStyle.Render(strings.Join(texts, ", "))
}

func (m *CascaderModel) columnsView() string {
	cols := m.columns()
	if len(cols) == 0 {
		return mutedStyle.Render(m.notFound)
	}

	rendered := make([]string, len(cols))
	for level, col := range cols {
		rendered[level] = columnStyle.Render(m.columnView(level, col))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *CascaderModel) columnView(level int, col []domain.Option) string {
	engine := m.session.Engine()
	state := m.session.State()
	multiple := engine.Config().Multiple
	parent := state.ActivePath[:min(level, len(state.ActivePath))]

	cursor := 0
	if level < len(m.cursor) {
		cursor = m.cursor[level]
	}
	width := columnWidth(col)
	start, end := window(cursor, len(col), m.height)

	lines := make([]string, 0, end-start)
	for row := start; row < end; row++ {
		o := col[row]
		path := parent.Append(o)

		var b strings.Builder
		if level == m.focus && row == cursor {
			b.WriteString(cursorStyle.Render(style.Pointer) + " ")
		} else {
			b.WriteString("  ")
		}
		if multiple {
			b.WriteString(checkbox(engine.NodeStatus(state, o)) + " ")
		}

		label := runewidth.FillRight(Truncate(domain.Label(o), width), width)
		switch {
		case o.Disabled:
			label = disabledStyle.Render(label)
		case engine.IsPathActive(state, path, level):
			label = activeStyle.Render(label)
		case !multiple && engine.IsPathSelected(state, path):
			label = selectedStyle.Render(label)
		}
		b.WriteString(label)

		if domain.HasChildren(o) {
			b.WriteString(" " + mutedStyle.Render(style.Expand))
		} else {
			b.WriteString("  ")
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func (m *CascaderModel) resultsView() string {
	engine := m.session.Engine()
	state := m.session.State()
	results := engine.SearchResults(state)
	if len(results) == 0 {
		return mutedStyle.Render(m.notFound)
	}

	sep := engine.Config().Separator
	start, end := window(m.resultCursor, len(results), m.height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		t := results[i]

		var b strings.Builder
		if i == m.resultCursor {
			b.WriteString(cursorStyle.Render(style.Pointer) + " ")
		} else {
			b.WriteString("  ")
		}
		if engine.Config().Multiple {
			b.WriteString(checkbox(engine.NodeStatus(state, t.Option)) + " ")
		}

		text := domain.DisplayText(t.Path, sep)
		if m.width > 0 {
			text = Truncate(text, m.width-6)
		}
		if blockedPath(t.Path) {
			text = disabledStyle.Render(text)
		}
		b.WriteString(text)
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func checkbox(status domain.CheckedStatus) string {
	switch status {
	case domain.Checked:
		return activeStyle.Render(style.BoxChecked)
	case domain.Indeterminate:
		return matchStyle.Render(style.BoxIndeterminate)
	default:
		return mutedStyle.Render(style.BoxUnchecked)
	}
}

// columnWidth is the display width of the widest label, clamped.
func columnWidth(col []domain.Option) int {
	width := minColumnWidth
	for _, o := range col {
		width = max(width, runewidth.StringWidth(domain.Label(o)))
	}
	return min(width, maxColumnWidth)
}

// Truncate shortens s to at most width cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// window returns the visible [start, end) range of n rows that keeps cursor
// in view.
func window(cursor, n, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := max(cursor-height+1, 0)
	return start, min(start+height, n)
}

func blockedPath(path domain.Path) bool {
	for _, o := range path {
		if o.Disabled {
			return true
		}
	}
	return false
}
