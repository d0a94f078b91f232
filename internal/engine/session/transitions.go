package session

import "go.trai.ch/cascade/internal/core/domain"

// PathChange moves the active path. A leaf, or any node when ChangeOnSelect
// is set, is also committed as the selection.
func (e *Engine) PathChange(s State, path domain.Path, isLeaf bool) (State, []Effect) {
	if blocked(path) {
		return s, nil
	}
	s.ActivePath = path.Clone()
	if !isLeaf && !e.cfg.ChangeOnSelect {
		return s, nil
	}
	s.SelectedPath = path.Clone()
	return s, []Effect{e.singleChange(s.SelectedPath)}
}

// Expand moves the active path without committing anything. It backs hover
// expansion and keyboard navigation.
func (e *Engine) Expand(s State, path domain.Path) State {
	if blocked(path) {
		return s
	}
	s.ActivePath = path.Clone()
	return s
}

// FinalSelect commits path followed by option and closes the active path.
func (e *Engine) FinalSelect(s State, option domain.Option, path domain.Path) (State, []Effect) {
	full := path.Append(option)
	if blocked(full) {
		return s, nil
	}
	s.SelectedPath = full
	s.ActivePath = nil
	if s.Searching() {
		s.SearchValue = ""
	}
	return s, []Effect{e.singleChange(full)}
}

// Clear resets the selection and the search text.
func (e *Engine) Clear(s State) (State, []Effect) {
	s.SearchValue = ""
	if e.cfg.Multiple {
		s.CheckedKeys = domain.KeySet{}
		s.HalfCheckedKeys = domain.KeySet{}
		return s, []Effect{ChangeEffect{Change: Change{
			Multiple: true,
			Values:   [][]domain.Key{},
			Paths:    []domain.Path{},
		}}}
	}
	s.SelectedPath = nil
	s.ActivePath = nil
	return s, []Effect{ChangeEffect{}}
}

// MultipleSelect checks or unchecks option and every leaf below it. Only the
// option's own Disabled flag is consulted; use MultipleSelectPath when the
// ancestors must be checked too.
func (e *Engine) MultipleSelect(s State, option domain.Option, checked bool) (State, []Effect) {
	if option.Disabled {
		return s, nil
	}
	s.CheckedKeys = domain.UpdateCheckedKeys(option, checked, s.CheckedKeys)
	s.HalfCheckedKeys = domain.HalfCheckedKeys(e.cfg.Options, s.CheckedKeys)
	if s.Searching() {
		s.SearchValue = ""
	}
	return s, []Effect{ChangeEffect{Change: e.Committed(s)}}
}

// MultipleSelectPath is MultipleSelect for the last node of path. Nothing
// changes when any node on path is disabled.
func (e *Engine) MultipleSelectPath(s State, path domain.Path, checked bool) (State, []Effect) {
	o, ok := path.Last()
	if !ok || blocked(path) {
		return s, nil
	}
	return e.MultipleSelect(s, o, checked)
}

// SearchChange records the search text.
func (e *Engine) SearchChange(s State, text string) (State, []Effect) {
	s.SearchValue = text
	return s, []Effect{SearchEffect{Text: text}}
}

// SearchSelect commits a search result. In multiple mode the result is
// toggled: a leaf by its membership, an internal node by its status.
func (e *Engine) SearchSelect(s State, result domain.PathTuple) (State, []Effect) {
	if len(result.Path) == 0 || blocked(result.Path) {
		return s, nil
	}
	if !e.cfg.Multiple {
		return e.FinalSelect(s, result.Option, result.Path[:len(result.Path)-1])
	}

	o := result.Option
	if domain.IsLeaf(o) {
		return e.MultipleSelectPath(s, result.Path, !s.CheckedKeys.Has(o.Value))
	}
	return e.MultipleSelectPath(s, result.Path, domain.NodeCheckedStatus(o, s.CheckedKeys) != domain.Checked)
}

func (e *Engine) singleChange(path domain.Path) Effect {
	return ChangeEffect{Change: Change{
		Value: domain.ValueFromPath(path),
		Path:  path,
	}}
}
