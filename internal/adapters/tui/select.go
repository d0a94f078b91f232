package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cascade/internal/adapters/matcher"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/ui/style"
)

type selectKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func newSelectKeyMap(multiple bool) selectKeyMap {
	k := selectKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "check")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:    key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
	k.Toggle.SetEnabled(multiple)
	return k
}

// ShortHelp implements help.KeyMap.
func (k selectKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k selectKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// SelectModel is a flat dropdown over path tuples with fuzzy filtering.
type SelectModel struct {
	items    []domain.PathTuple
	multiple bool

	keys  selectKeyMap
	help  help.Model
	input textinput.Model

	ranked []matcher.Ranked
	cursor int
	// chosen is keyed by the item's index in items.
	chosen map[int]struct{}

	placeholder string
	notFound    string
	height      int

	done    bool
	aborted bool
}

// NewSelectModel creates a dropdown over items.
func NewSelectModel(items []domain.PathTuple, multiple bool, opts Options) *SelectModel {
	m := &SelectModel{
		items:       items,
		multiple:    multiple,
		keys:        newSelectKeyMap(multiple),
		help:        help.New(),
		chosen:      make(map[int]struct{}),
		placeholder: opts.Placeholder,
		notFound:    opts.NotFound,
		height:      defaultHeight,
	}
	if m.placeholder == "" {
		m.placeholder = domain.DefaultPlaceholder
	}
	if m.notFound == "" {
		m.notFound = domain.DefaultNotFound
	}
	m.input = textinput.New()
	m.input.Prompt = style.Search + " "
	m.input.Placeholder = m.placeholder
	m.input.Focus()

	m.ranked = matcher.Rank("", items)
	return m
}

// Init implements tea.Model.
func (m *SelectModel) Init() tea.Cmd {
	return textinput.Blink
}

// Aborted reports whether the user left without confirming.
func (m *SelectModel) Aborted() bool {
	return m.aborted
}

// Chosen returns the confirmed items in their original order.
func (m *SelectModel) Chosen() []domain.PathTuple {
	out := []domain.PathTuple{}
	for i, t := range m.items {
		if _, ok := m.chosen[i]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Visible returns the items matching the current query, best first.
func (m *SelectModel) Visible() []domain.PathTuple {
	out := make([]domain.PathTuple, len(m.ranked))
	for i, r := range m.ranked {
		out[i] = r.Tuple
	}
	return out
}

// Update implements tea.Model.
func (m *SelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-4, 3)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.ranked)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.highlighted(); ok {
				if _, on := m.chosen[i]; on {
					delete(m.chosen, i)
				} else {
					m.chosen[i] = struct{}{}
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			if len(m.chosen) == 0 {
				i, ok := m.highlighted()
				if !ok {
					return m, nil
				}
				m.chosen[i] = struct{}{}
			}
			m.done = true
			return m, tea.Quit
		}
	}

	query := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != query {
		m.ranked = matcher.Rank(m.input.Value(), m.items)
		m.cursor = 0
	}
	return m, cmd
}

// highlighted returns the index in items of the row under the cursor.
// Disabled rows cannot be chosen.
func (m *SelectModel) highlighted() (int, bool) {
	if m.cursor >= len(m.ranked) {
		return 0, false
	}
	r := m.ranked[m.cursor]
	if blockedPath(r.Tuple.Path) {
		return 0, false
	}
	return r.Index, true
}

// View implements tea.Model.
func (m *SelectModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View() + "\n\n")

	if len(m.ranked) == 0 {
		b.WriteString(mutedStyle.Render(m.notFound))
	} else {
		start, end := window(m.cursor, len(m.ranked), m.height)
		for i := start; i < end; i++ {
			r := m.ranked[i]
			if i == m.cursor {
				b.WriteString(cursorStyle.Render(style.Pointer) + " ")
			} else {
				b.WriteString("  ")
			}
			if m.multiple {
				box := style.BoxUnchecked
				if _, on := m.chosen[r.Index]; on {
					box = style.BoxChecked
				}
				b.WriteString(box + " ")
			}
			b.WriteString(highlight(r.Tuple.Label, r.Matched, blockedPath(r.Tuple.Path)))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n" + m.help.View(m.keys))
	return b.String()
}

// highlight renders label with the matched byte offsets emphasised.
func highlight(label string, matched []int, disabled bool) string {
	if disabled {
		return disabledStyle.Render(label)
	}
	if len(matched) == 0 {
		return label
	}
	hit := make(map[int]struct{}, len(matched))
	for _, i := range matched {
		hit[i] = struct{}{}
	}

	var b strings.Builder
	for i, r := range label {
		if _, ok := hit[i]; ok {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
