package session

import "go.trai.ch/cascade/internal/core/domain"

// IsValueSelected reports whether value equals the committed value, or one of
// the committed values in multiple mode.
func (e *Engine) IsValueSelected(s State, value []domain.Key) bool {
	if !e.cfg.Multiple {
		return domain.ValuesEqual(value, domain.ValueFromPath(s.SelectedPath))
	}
	for _, v := range e.SelectedValues(s) {
		if domain.ValuesEqual(value, v) {
			return true
		}
	}
	return false
}

// IsPathSelected reports whether the value of path is selected.
func (e *Engine) IsPathSelected(s State, path domain.Path) bool {
	return e.IsValueSelected(s, domain.ValueFromPath(path))
}

// IsPathActive reports whether path[0..level] matches the active path by value.
func (e *Engine) IsPathActive(s State, path domain.Path, level int) bool {
	if level < 0 || level >= len(s.ActivePath) || level >= len(path) {
		return false
	}
	for i := 0; i <= level; i++ {
		if path[i].Value != s.ActivePath[i].Value {
			return false
		}
	}
	return true
}

// SelectedValue returns the committed single-mode value.
func (e *Engine) SelectedValue(s State) []domain.Key {
	return domain.ValueFromPath(s.SelectedPath)
}

// SelectedValues returns the value of every checked leaf in tree order.
func (e *Engine) SelectedValues(s State) [][]domain.Key {
	paths := domain.CheckedPaths(e.cfg.Options, s.CheckedKeys)
	out := make([][]domain.Key, len(paths))
	for i, p := range paths {
		out[i] = domain.ValueFromPath(p)
	}
	return out
}

// DisplayText renders the single-mode selection, or "" when nothing is selected.
func (e *Engine) DisplayText(s State) string {
	if len(s.SelectedPath) == 0 {
		return ""
	}
	return domain.DisplayText(s.SelectedPath, e.cfg.Separator)
}

// DisplayTexts renders the selection as one line per entry. In multiple mode
// the entries follow the display strategy.
func (e *Engine) DisplayTexts(s State) []string {
	if !e.cfg.Multiple {
		if text := e.DisplayText(s); text != "" {
			return []string{text}
		}
		return []string{}
	}
	paths := domain.SummaryPaths(e.cfg.Options, s.CheckedKeys, e.cfg.DisplayStrategy)
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = domain.DisplayText(p, e.cfg.Separator)
	}
	return out
}

// SearchResults returns the tuples matching the current search text.
func (e *Engine) SearchResults(s State) []domain.PathTuple {
	if !e.cfg.ShowSearch || !s.Searching() {
		return []domain.PathTuple{}
	}
	return domain.FilterOptionsWith(e.cfg.Options, s.SearchValue, e.cfg.ChangeOnSelect, e.cfg.Filter)
}

// Columns returns the options shown at each level: the roots followed by the
// children of every node on the active path that has any.
func (e *Engine) Columns(s State) [][]domain.Option {
	columns := [][]domain.Option{}
	for level := 0; level <= len(s.ActivePath); level++ {
		opts := domain.CurrentLevelOptions(e.cfg.Options, s.ActivePath, level)
		if len(opts) == 0 {
			break
		}
		columns = append(columns, opts)
	}
	return columns
}

// NodeStatus returns the checkbox state of o.
func (e *Engine) NodeStatus(s State, o domain.Option) domain.CheckedStatus {
	return domain.NodeCheckedStatus(o, s.CheckedKeys)
}

// Committed returns the current selection in the shape of an OnChange payload.
func (e *Engine) Committed(s State) Change {
	if !e.cfg.Multiple {
		if len(s.SelectedPath) == 0 {
			return Change{}
		}
		return Change{Value: domain.ValueFromPath(s.SelectedPath), Path: s.SelectedPath}
	}
	paths := domain.CheckedPaths(e.cfg.Options, s.CheckedKeys)
	values := make([][]domain.Key, len(paths))
	for i, p := range paths {
		values[i] = domain.ValueFromPath(p)
	}
	return Change{Multiple: true, Values: values, Paths: paths}
}
