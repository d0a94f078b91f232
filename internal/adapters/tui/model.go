// Package tui provides the interactive cascader and dropdown pickers.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/engine/session"
	"go.trai.ch/cascade/internal/ui/style"
)

// CascaderModel is a bubbletea model showing one column per tree level.
type CascaderModel struct {
	session *session.Session

	keys       keyMap
	searchKeys searchKeyMap
	help       help.Model
	input      textinput.Model

	// cursor holds the highlighted row of each column.
	cursor []int
	focus  int

	searching    bool
	resultCursor int

	placeholder string
	notFound    string
	width       int
	height      int

	lastChange *session.Change
	done       bool
	aborted    bool
}

// Options configures a CascaderModel.
type Options struct {
	Placeholder string
	NotFound    string
}

// NewCascaderModel creates a cascader over cfg starting from value.
func NewCascaderModel(cfg session.Config, value session.Value, opts Options) *CascaderModel {
	m := &CascaderModel{
		keys:        newKeyMap(cfg.Multiple, cfg.ShowSearch),
		searchKeys:  newSearchKeyMap(),
		help:        help.New(),
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
	m.input.Placeholder = "search"

	m.session = session.NewSession(session.New(cfg), value, session.Handlers{
		OnChange: func(c session.Change) { m.lastChange = &c },
	})
	m.openAtSelection()
	return m
}

// openAtSelection expands the columns along the committed single selection.
func (m *CascaderModel) openAtSelection() {
	selected := m.session.State().SelectedPath
	if len(selected) == 0 {
		m.sync()
		return
	}
	m.session.Expand(selected[:len(selected)-1])
	m.sync()
	m.focus = len(selected) - 1
	for level, o := range selected {
		if level < len(m.cursor) {
			m.cursor[level] = indexOf(m.columns()[level], o.Value)
		}
	}
}

// Init implements tea.Model.
func (m *CascaderModel) Init() tea.Cmd {
	return nil
}

// Session exposes the underlying session.
func (m *CascaderModel) Session() *session.Session {
	return m.session
}

// Aborted reports whether the user left without confirming.
func (m *CascaderModel) Aborted() bool {
	return m.aborted
}

// Done reports whether the user confirmed the selection.
func (m *CascaderModel) Done() bool {
	return m.done
}

// Focus returns the focused column and its cursor row.
func (m *CascaderModel) Focus() (column, row int) {
	if m.focus < len(m.cursor) {
		return m.focus, m.cursor[m.focus]
	}
	return m.focus, 0
}

// Searching reports whether the search box has focus.
func (m *CascaderModel) Searching() bool {
	return m.searching
}

// Update implements tea.Model.
func (m *CascaderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height-6, 3)
		m.help.Width = msg.Width
		return m, nil

	case ReloadMsg:
		m.session.Reload(msg.Options)
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateColumns(msg)
	}
	return m, nil
}

func (m *CascaderModel) updateColumns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.session.Engine()
	multiple := engine.Config().Multiple

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.move(-1)

	case key.Matches(msg, m.keys.Down):
		m.move(1)

	case key.Matches(msg, m.keys.Expand):
		m.expand()

	case key.Matches(msg, m.keys.Collapse):
		if m.focus > 0 {
			m.focus--
			active := m.session.State().ActivePath
			m.session.Expand(active[:min(m.focus+1, len(active))])
			m.sync()
			if m.focus < len(active) {
				m.cursor[m.focus] = indexOf(m.columns()[m.focus], active[m.focus].Value)
			}
		}

	case key.Matches(msg, m.keys.Toggle):
		if o, ok := m.current(); ok {
			status := m.session.Engine().NodeStatus(m.session.State(), o)
			m.session.MultipleSelectPath(m.parent().Append(o), status != domain.Checked)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.resultCursor = 0
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Clear):
		m.session.Clear()
		m.focus = 0
		m.sync()

	case key.Matches(msg, m.keys.Confirm):
		if multiple {
			m.done = true
			return m, tea.Quit
		}
		return m, m.confirmSingle()
	}
	return m, nil
}

// confirmSingle commits the highlighted node. A leaf, or any node when
// changeOnSelect is set, ends the picker; other nodes expand.
func (m *CascaderModel) confirmSingle() tea.Cmd {
	o, ok := m.current()
	if !ok {
		return nil
	}
	parent := m.parent()
	path := parent.Append(o)

	if domain.HasChildren(o) && !m.session.Engine().Config().ChangeOnSelect {
		m.expand()
		return nil
	}

	if domain.HasChildren(o) {
		m.session.PathChange(path, false)
	} else {
		m.session.FinalSelect(o, parent)
	}
	if !m.session.Engine().IsPathSelected(m.session.State(), path) {
		return nil
	}
	m.done = true
	return tea.Quit
}

// expand opens the highlighted node and moves focus into its children.
func (m *CascaderModel) expand() {
	o, ok := m.current()
	if !ok || !domain.HasChildren(o) {
		return
	}
	path := m.parent().Append(o)
	m.session.PathChange(path, false)
	if len(m.session.State().ActivePath) != len(path) {
		return
	}
	m.sync()
	if m.focus+1 < len(m.cursor) {
		m.focus++
		m.cursor[m.focus] = 0
	}
}

func (m *CascaderModel) move(delta int) {
	cols := m.columns()
	if m.focus >= len(cols) {
		return
	}
	n := len(cols[m.focus])
	if n == 0 {
		return
	}
	m.cursor[m.focus] = (m.cursor[m.focus] + delta + n) % n

	if m.session.Engine().Config().ExpandTrigger == domain.ExpandHover {
		o := cols[m.focus][m.cursor[m.focus]]
		path := m.parent().Append(o)
		if domain.HasChildren(o) {
			m.session.Expand(path)
		} else {
			m.session.Expand(path[:m.focus])
		}
		m.sync()
	}
}

func (m *CascaderModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.session.Engine()
	results := engine.SearchResults(m.session.State())

	switch {
	case key.Matches(msg, m.searchKeys.Abort):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.searchKeys.Leave):
		m.leaveSearch()
		return m, nil

	case key.Matches(msg, m.searchKeys.Up):
		if m.resultCursor > 0 {
			m.resultCursor--
		}
		return m, nil

	case key.Matches(msg, m.searchKeys.Down):
		if m.resultCursor < len(results)-1 {
			m.resultCursor++
		}
		return m, nil

	case key.Matches(msg, m.searchKeys.Confirm):
		if m.resultCursor >= len(results) {
			return m, nil
		}
		before := m.session.State()
		m.session.SearchSelect(results[m.resultCursor])
		after := m.session.State()
		if after.Searching() == before.Searching() {
			// blocked by a disabled node
			return m, nil
		}
		m.leaveSearch()
		if !engine.Config().Multiple {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.State().SearchValue {
		m.session.SearchChange(m.input.Value())
		m.resultCursor = 0
	}
	return m, cmd
}

func (m *CascaderModel) leaveSearch() {
	m.searching = false
	m.input.Blur()
	m.input.SetValue("")
	if m.session.State().Searching() {
		m.session.SearchChange("")
	}
	m.resultCursor = 0
	m.sync()
}

// parent returns the active path above the focused column.
func (m *CascaderModel) parent() domain.Path {
	active := m.session.State().ActivePath
	return active[:min(m.focus, len(active))]
}

func (m *CascaderModel) columns() [][]domain.Option {
	return m.session.Engine().Columns(m.session.State())
}

// current returns the option under the cursor of the focused column.
func (m *CascaderModel) current() (domain.Option, bool) {
	cols := m.columns()
	if m.focus >= len(cols) {
		return domain.Option{}, false
	}
	col := cols[m.focus]
	row := m.cursor[m.focus]
	if row >= len(col) {
		return domain.Option{}, false
	}
	return col[row], true
}

// sync fits the cursors to the current columns.
func (m *CascaderModel) sync() {
	cols := m.columns()
	cursor := make([]int, len(cols))
	for i, col := range cols {
		if i < len(m.cursor) {
			cursor[i] = min(m.cursor[i], max(len(col)-1, 0))
		}
	}
	m.cursor = cursor
	if m.focus >= len(cols) {
		m.focus = max(len(cols)-1, 0)
	}
}

func indexOf(options []domain.Option, k domain.Key) int {
	for i, o := range options {
		if o.Value == k {
			return i
		}
	}
	return 0
}
