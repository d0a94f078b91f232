package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Picker = (*Picker)(nil)

// Picker runs the cascader and dropdown models as bubbletea programs drawn
// on stderr, leaving stdout for the result.
type Picker struct {
	teaOptions []tea.ProgramOption
}

// NewPicker creates a Picker. Extra program options are appended to the
// defaults, which is how tests feed input.
func NewPicker(opts ...tea.ProgramOption) *Picker {
	return &Picker{teaOptions: opts}
}

// Pick runs the cascader until the user confirms or leaves.
func (p *Picker) Pick(ctx context.Context, req ports.PickRequest) (*ports.PickResult, error) {
	model := NewCascaderModel(req.Config, req.Value, Options{
		Placeholder: req.Placeholder,
		NotFound:    req.NotFound,
	})

	program := tea.NewProgram(model, p.options(ctx)...)

	done := make(chan struct{})
	defer close(done)
	if req.Reload != nil {
		go forwardReloads(program, req.Reload, done)
	}

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, zerr.Wrap(err, domain.ErrPickerFailed.Error())
	}
	if !model.Done() {
		return nil, domain.ErrSelectionAborted
	}

	s := model.Session()
	state := s.State()
	return ports.NewPickResult(s.Engine().Committed(state), s.Engine().DisplayTexts(state)), nil
}

// Select runs the dropdown until the user confirms or leaves.
func (p *Picker) Select(ctx context.Context, req ports.SelectRequest) ([]domain.PathTuple, error) {
	model := NewSelectModel(req.Items, req.Multiple, Options{
		Placeholder: req.Placeholder,
		NotFound:    req.NotFound,
	})

	if _, err := tea.NewProgram(model, p.options(ctx)...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, zerr.Wrap(err, domain.ErrPickerFailed.Error())
	}
	if model.Aborted() {
		return nil, domain.ErrSelectionAborted
	}
	return model.Chosen(), nil
}

func (p *Picker) options(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(os.Stderr)}
	return append(opts, p.teaOptions...)
}

func forwardReloads(program *tea.Program, reload <-chan []domain.Option, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case options, ok := <-reload:
			if !ok {
				return
			}
			program.Send(ReloadMsg{Options: options})
		}
	}
}
