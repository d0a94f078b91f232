package domain

// Options file names, in discovery order.
const (
	OptionsFileYAML    = "cascade.yaml"
	OptionsFileYML     = "cascade.yml"
	OptionsFileJSON    = "cascade.json"
	DefaultPlaceholder = "Please select"
	DefaultNotFound    = "No data"
)

// OptionsFileNames lists the names probed when discovering an options file.
var OptionsFileNames = []string{OptionsFileYAML, OptionsFileYML, OptionsFileJSON}

// ExpandTrigger controls whether moving the cursor onto a node expands it.
type ExpandTrigger string

const (
	// ExpandClick expands a node only on explicit activation.
	ExpandClick ExpandTrigger = "click"
	// ExpandHover expands a node as soon as the cursor rests on it.
	ExpandHover ExpandTrigger = "hover"
)

// ParseExpandTrigger validates a trigger name. An empty name means click.
func ParseExpandTrigger(s string) (ExpandTrigger, error) {
	switch ExpandTrigger(s) {
	case "", ExpandClick:
		return ExpandClick, nil
	case ExpandHover:
		return ExpandHover, nil
	default:
		return "", ErrInvalidExpandTrigger
	}
}

// Settings are the widget options a host passes alongside the tree.
type Settings struct {
	Multiple        bool
	ChangeOnSelect  bool
	ShowSearch      bool
	ExpandTrigger   ExpandTrigger
	Separator       string
	DisplayStrategy DisplayStrategy
	Placeholder     string
	NotFoundContent string
}

// DefaultSettings returns the settings used when a file specifies none.
func DefaultSettings() Settings {
	return Settings{
		ShowSearch:      true,
		ExpandTrigger:   ExpandClick,
		Separator:       DefaultSeparator,
		DisplayStrategy: ShowChild,
		Placeholder:     DefaultPlaceholder,
		NotFoundContent: DefaultNotFound,
	}
}

// Catalog is a loaded options file: the tree, its settings and default value.
type Catalog struct {
	Source       string
	Options      []Option
	Settings     Settings
	DefaultValue [][]Key
}
