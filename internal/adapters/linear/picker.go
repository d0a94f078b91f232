package linear

import (
	"context"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/engine/session"
)

var _ ports.Picker = (*Picker)(nil)

// Picker answers a pick without prompting: the initial value is resolved and
// returned as the committed selection.
type Picker struct{}

// NewPicker creates a new Picker.
func NewPicker() *Picker {
	return &Picker{}
}

// Pick resolves req.Value against the options.
func (p *Picker) Pick(ctx context.Context, req ports.PickRequest) (*ports.PickResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	engine := session.New(req.Config)
	state := engine.Init(req.Value)
	return ports.NewPickResult(engine.Committed(state), engine.DisplayTexts(state)), nil
}

// Select cannot choose without a terminal.
func (p *Picker) Select(_ context.Context, _ ports.SelectRequest) ([]domain.PathTuple, error) {
	return nil, domain.ErrNotInteractive
}
