package session

import "go.trai.ch/cascade/internal/core/domain"

// Config holds the inputs a host passes to a cascader.
type Config = domain.CascaderConfig

// ConfigFromSettings builds a Config from a loaded options file.
func ConfigFromSettings(options []domain.Option, s domain.Settings) Config {
	return Config{
		Options:         options,
		Multiple:        s.Multiple,
		ChangeOnSelect:  s.ChangeOnSelect,
		ShowSearch:      s.ShowSearch,
		ExpandTrigger:   s.ExpandTrigger,
		Separator:       s.Separator,
		DisplayStrategy: s.DisplayStrategy,
	}
}

// Engine runs the transitions for a fixed Config. It holds no mutable state.
type Engine struct {
	cfg Config
}

// New returns an Engine with defaults applied to the empty fields of cfg.
func New(cfg Config) *Engine {
	if cfg.Separator == "" {
		cfg.Separator = domain.DefaultSeparator
	}
	if cfg.Filter == nil {
		cfg.Filter = domain.DefaultFilter
	}
	if cfg.DisplayStrategy == "" {
		cfg.DisplayStrategy = domain.ShowChild
	}
	if cfg.ExpandTrigger == "" {
		cfg.ExpandTrigger = domain.ExpandClick
	}
	return &Engine{cfg: cfg}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Options returns the option tree.
func (e *Engine) Options() []domain.Option {
	return e.cfg.Options
}

// Init resolves v against the options and returns the initial State.
// Unresolvable entries are dropped.
func (e *Engine) Init(v Value) State {
	s := State{
		CheckedKeys:     domain.KeySet{},
		HalfCheckedKeys: domain.KeySet{},
	}
	if !e.cfg.Multiple {
		s.SelectedPath = domain.FindPathByValue(e.cfg.Options, v.Single)
		return s
	}

	for _, value := range v.Multiple {
		path := domain.FindPathByValue(e.cfg.Options, value)
		last, ok := path.Last()
		if !ok {
			continue
		}
		for k := range domain.DescendantLeafKeys(last) {
			s.CheckedKeys.Add(k)
		}
	}
	s.HalfCheckedKeys = domain.HalfCheckedKeys(e.cfg.Options, s.CheckedKeys)
	return s
}

// SetValue replaces the selection with a controlled value. The search text is
// kept and the active path is reset.
func (e *Engine) SetValue(s State, v Value) State {
	next := e.Init(v)
	next.SearchValue = s.SearchValue
	return next
}

// WithOptions returns an Engine over a new option tree together with s
// re-resolved against it. Selections that no longer exist are dropped.
func (e *Engine) WithOptions(s State, options []domain.Option) (*Engine, State) {
	cfg := e.cfg
	cfg.Options = options
	next := New(cfg)

	ns := State{SearchValue: s.SearchValue}
	if cfg.Multiple {
		ns.CheckedKeys, ns.HalfCheckedKeys = domain.SyncCheckedKeys(options, s.CheckedKeys)
		return next, ns
	}
	ns.CheckedKeys = domain.KeySet{}
	ns.HalfCheckedKeys = domain.KeySet{}
	ns.SelectedPath = domain.FindPathByValue(options, domain.ValueFromPath(s.SelectedPath))
	return next, ns
}

func blocked(path domain.Path) bool {
	for _, o := range path {
		if domain.IsDisabled(o) {
			return true
		}
	}
	return false
}
