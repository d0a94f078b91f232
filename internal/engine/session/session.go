package session

import "go.trai.ch/cascade/internal/core/domain"

// Handlers are the host callbacks effects are dispatched to. Nil handlers are skipped.
type Handlers struct {
	OnChange func(Change)
	OnSearch func(string)
}

// Session owns the current State of one cascader and dispatches the effects of
// every transition. It is not safe for concurrent use.
type Session struct {
	engine   *Engine
	state    State
	handlers Handlers
}

// NewSession starts a session at the state resolved from v.
func NewSession(engine *Engine, v Value, handlers Handlers) *Session {
	return &Session{
		engine:   engine,
		state:    engine.Init(v),
		handlers: handlers,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Engine returns the engine the session runs on.
func (s *Session) Engine() *Engine {
	return s.engine
}

// PathChange applies Engine.PathChange.
func (s *Session) PathChange(path domain.Path, isLeaf bool) {
	s.apply(s.engine.PathChange(s.state, path, isLeaf))
}

// FinalSelect applies Engine.FinalSelect.
func (s *Session) FinalSelect(option domain.Option, path domain.Path) {
	s.apply(s.engine.FinalSelect(s.state, option, path))
}

// Clear applies Engine.Clear.
func (s *Session) Clear() {
	s.apply(s.engine.Clear(s.state))
}

// MultipleSelect applies Engine.MultipleSelect.
func (s *Session) MultipleSelect(option domain.Option, checked bool) {
	s.apply(s.engine.MultipleSelect(s.state, option, checked))
}

// MultipleSelectPath applies Engine.MultipleSelectPath.
func (s *Session) MultipleSelectPath(path domain.Path, checked bool) {
	s.apply(s.engine.MultipleSelectPath(s.state, path, checked))
}

// SearchChange applies Engine.SearchChange.
func (s *Session) SearchChange(text string) {
	s.apply(s.engine.SearchChange(s.state, text))
}

// SearchSelect applies Engine.SearchSelect.
func (s *Session) SearchSelect(result domain.PathTuple) {
	s.apply(s.engine.SearchSelect(s.state, result))
}

// Expand applies Engine.Expand.
func (s *Session) Expand(path domain.Path) {
	s.state = s.engine.Expand(s.state, path)
}

// SetValue replaces the selection without notifying OnChange.
func (s *Session) SetValue(v Value) {
	s.state = s.engine.SetValue(s.state, v)
}

// Reload swaps the option tree and keeps whatever selection still resolves.
func (s *Session) Reload(options []domain.Option) {
	s.engine, s.state = s.engine.WithOptions(s.state, options)
}

func (s *Session) apply(next State, effects []Effect) {
	s.state = next
	for _, eff := range effects {
		switch eff := eff.(type) {
		case ChangeEffect:
			if s.handlers.OnChange != nil {
				s.handlers.OnChange(eff.Change)
			}
		case SearchEffect:
			if s.handlers.OnSearch != nil {
				s.handlers.OnSearch(eff.Text)
			}
		}
	}
}
