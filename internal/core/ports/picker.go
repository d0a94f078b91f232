package ports

import (
	"context"

	"go.trai.ch/cascade/internal/core/domain"
)

// PickRequest describes one cascader interaction.
type PickRequest struct {
	// Config is the cascader configuration, options included.
	Config domain.CascaderConfig
	// Value is the initial selection.
	Value domain.Selection
	// Placeholder is shown while nothing is selected.
	Placeholder string
	// NotFound is shown when a search has no results.
	NotFound string
	// Reload delivers replacement option trees while the picker runs. May be nil.
	Reload <-chan []domain.Option
}

// PickResult is the committed selection of a cascader.
type PickResult struct {
	Multiple bool
	Values   [][]domain.Key
	Paths    []domain.Path
	Texts    []string
}

// NewPickResult builds a result from a committed change and its display texts.
func NewPickResult(change domain.Change, texts []string) *PickResult {
	r := &PickResult{Multiple: change.Multiple, Texts: texts}
	if change.Multiple {
		r.Values = change.Values
		r.Paths = change.Paths
		return r
	}
	if len(change.Path) > 0 {
		r.Values = [][]domain.Key{change.Value}
		r.Paths = []domain.Path{change.Path}
	}
	return r
}

// Empty reports whether nothing was selected.
func (r *PickResult) Empty() bool {
	return r == nil || len(r.Paths) == 0
}

// SelectRequest describes one flat dropdown interaction.
type SelectRequest struct {
	Items       []domain.PathTuple
	Multiple    bool
	Placeholder string
	NotFound    string
}

// Picker runs a selection against the user.
//
//go:generate mockgen -source=picker.go -destination=mocks/mock_picker.go -package=mocks
type Picker interface {
	// Pick runs a cascader and returns the committed selection.
	// It returns domain.ErrSelectionAborted when the user leaves without confirming.
	Pick(ctx context.Context, req PickRequest) (*PickResult, error)

	// Select runs a flat dropdown and returns the chosen items.
	Select(ctx context.Context, req SelectRequest) ([]domain.PathTuple, error)
}
