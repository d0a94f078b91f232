// Package session implements the cascader selection state machine: an
// immutable State plus pure transitions that return the next State and the
// effects a host must dispatch.
package session

import "go.trai.ch/cascade/internal/core/domain"

// State is the selection state of one cascader.
// HalfCheckedKeys is always derived from CheckedKeys; transitions recompute it.
type State struct {
	SelectedPath    domain.Path
	CheckedKeys     domain.KeySet
	HalfCheckedKeys domain.KeySet
	ActivePath      domain.Path
	SearchValue     string
}

// Searching reports whether a search query is active.
func (s State) Searching() bool {
	return s.SearchValue != ""
}

// Value is a controlled or default value.
type Value = domain.Selection

// DefaultValue picks the part of a file's default value that applies to the mode.
func DefaultValue(multiple bool, values [][]domain.Key) Value {
	if multiple {
		return Value{Multiple: values}
	}
	if len(values) == 0 {
		return Value{}
	}
	return Value{Single: values[0]}
}

// Change is the payload of an OnChange notification.
type Change = domain.Change

// Effect is a side effect requested by a transition.
type Effect interface {
	effect()
}

// ChangeEffect asks the host to invoke OnChange.
type ChangeEffect struct {
	Change Change
}

// SearchEffect asks the host to invoke OnSearch.
type SearchEffect struct {
	Text string
}

func (ChangeEffect) effect() {}
func (SearchEffect) effect() {}
