// Package config discovers and decodes cascade options files.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.OptionsLoader for YAML and JSON files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// WithFileSystem replaces the filesystem, typically with a MapFSAdapter in tests.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.FS = fsys
	return l
}

// Discover walks up from cwd and returns the first options file found.
// Within one directory the names are probed in domain.OptionsFileNames order.
func (l *Loader) Discover(cwd string) (string, error) {
	current := cwd
	for {
		for _, name := range domain.OptionsFileNames {
			candidate := filepath.Join(current, name)
			if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", zerr.With(domain.ErrOptionsNotFound, "cwd", cwd)
}

// Load reads and decodes the options file at path.
func (l *Loader) Load(path string) (*domain.Catalog, error) {
	unmarshal, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsReadFailed.Error()), "path", path)
	}

	var file OptionsFile
	if err := unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrOptionsParseFailed.Error()), "path", path)
	}

	return l.build(path, &file)
}

func (l *Loader) build(path string, file *OptionsFile) (*domain.Catalog, error) {
	settings, err := applySettings(file.Settings)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	options, err := decodeOptions(file.Options, file.FieldNames.withDefaults(), "options")
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	defaults, err := decodeDefaultValue(file.DefaultValue)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.warnDuplicates(options)

	return &domain.Catalog{
		Source:       path,
		Options:      options,
		Settings:     settings,
		DefaultValue: defaults,
	}, nil
}

// warnDuplicates reports keys used by more than one node. Lookups resolve to
// the first node in depth-first order.
func (l *Loader) warnDuplicates(options []domain.Option) {
	if l.Logger == nil {
		return
	}
	seen := domain.KeySet{}
	reported := domain.KeySet{}
	for _, t := range domain.Flatten(options, nil) {
		k := t.Option.Value
		if !k.Defined() {
			continue
		}
		if seen.Has(k) && !reported.Has(k) {
			l.Logger.Warn(fmt.Sprintf("option value %q is used more than once, the first match wins", k.String()))
			reported.Add(k)
		}
		seen.Add(k)
	}
}

func decoderFor(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".json":
		return json.Unmarshal, nil
	default:
		return nil, zerr.With(domain.ErrUnsupportedFormat, "path", path)
	}
}
