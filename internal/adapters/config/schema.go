package config

// OptionsFile is the structure of cascade.yaml and cascade.json.
// Option nodes stay untyped until decodeOptions applies FieldNames.
type OptionsFile struct {
	Version      string      `yaml:"version" json:"version"`
	FieldNames   FieldNames  `yaml:"fieldNames" json:"fieldNames"`
	Settings     SettingsDTO `yaml:"settings" json:"settings"`
	DefaultValue []any       `yaml:"defaultValue" json:"defaultValue"`
	Options      []any       `yaml:"options" json:"options"`
}

// FieldNames renames the keys read from every option node.
type FieldNames struct {
	Label    string `yaml:"label" json:"label"`
	Value    string `yaml:"value" json:"value"`
	Children string `yaml:"children" json:"children"`
}

// SettingsDTO holds the widget settings. Nil fields keep their defaults.
type SettingsDTO struct {
	Multiple        *bool   `yaml:"multiple" json:"multiple"`
	ChangeOnSelect  *bool   `yaml:"changeOnSelect" json:"changeOnSelect"`
	ShowSearch      *bool   `yaml:"showSearch" json:"showSearch"`
	ExpandTrigger   *string `yaml:"expandTrigger" json:"expandTrigger"`
	Separator       *string `yaml:"separator" json:"separator"`
	DisplayStrategy *string `yaml:"displayStrategy" json:"displayStrategy"`
	Placeholder     *string `yaml:"placeholder" json:"placeholder"`
	NotFoundContent *string `yaml:"notFoundContent" json:"notFoundContent"`
}

func (f FieldNames) withDefaults() FieldNames {
	if f.Label == "" {
		f.Label = "label"
	}
	if f.Value == "" {
		f.Value = "value"
	}
	if f.Children == "" {
		f.Children = "children"
	}
	return f
}
