package domain

// CascaderConfig holds the inputs a host passes to a cascader.
type CascaderConfig struct {
	Options         []Option
	Multiple        bool
	ChangeOnSelect  bool
	ShowSearch      bool
	ExpandTrigger   ExpandTrigger
	Separator       string
	Filter          FilterFunc
	DisplayStrategy DisplayStrategy
}

// Selection is a controlled or default value. Single is used in single mode,
// Multiple in multiple mode.
type Selection struct {
	Single   []Key
	Multiple [][]Key
}

// Change is the payload of an OnChange notification.
// Single mode fills Value and Path, multiple mode fills Values and Paths.
type Change struct {
	Multiple bool
	Value    []Key
	Path     Path
	Values   [][]Key
	Paths    []Path
}
