package config

import (
	"fmt"
	"math"
	"strconv"

	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/zerr"
)

// toKey converts a decoded scalar into a key. A nil value is undefined.
func toKey(v any) (domain.Key, error) {
	switch x := v.(type) {
	case nil:
		return domain.Key{}, nil
	case string:
		return domain.StringKey(x), nil
	case int:
		return domain.NumberKey(float64(x)), nil
	case int64:
		return domain.NumberKey(float64(x)), nil
	case uint64:
		return domain.NumberKey(float64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return domain.Key{}, zerr.With(domain.ErrInvalidOptionValue, "value", x)
		}
		return domain.NumberKey(x), nil
	default:
		return domain.Key{}, zerr.With(domain.ErrInvalidOptionValue, "value", fmt.Sprintf("%v", v))
	}
}

// decodeOptions converts untyped option nodes using the configured field names.
func decodeOptions(nodes []any, names FieldNames, where string) ([]domain.Option, error) {
	out := make([]domain.Option, 0, len(nodes))
	for i, n := range nodes {
		at := where + "[" + strconv.Itoa(i) + "]"
		m, ok := n.(map[string]any)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidOptionNode, "at", at)
		}
		o, err := decodeOption(m, names, at)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func decodeOption(m map[string]any, names FieldNames, at string) (domain.Option, error) {
	var o domain.Option

	value, err := toKey(m[names.Value])
	if err != nil {
		return o, zerr.With(err, "at", at)
	}
	o.Value = value

	if raw, ok := m[names.Label]; ok && raw != nil {
		o.Label = fmt.Sprintf("%v", raw)
		o.HasLabel = true
	}
	if disabled, ok := m["disabled"].(bool); ok {
		o.Disabled = disabled
	}
	if title, ok := m["title"].(string); ok {
		o.Title = title
	}

	switch children := m[names.Children].(type) {
	case nil:
	case []any:
		o.Children, err = decodeOptions(children, names, at+"."+names.Children)
		if err != nil {
			return o, err
		}
	default:
		return o, zerr.With(domain.ErrInvalidOptionNode, "at", at+"."+names.Children)
	}
	return o, nil
}

// decodeDefaultValue accepts a list of value paths or a single flat path.
func decodeDefaultValue(raw []any) ([][]domain.Key, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	if _, nested := raw[0].([]any); !nested {
		path, err := decodePath(raw)
		if err != nil {
			return nil, err
		}
		return [][]domain.Key{path}, nil
	}

	out := make([][]domain.Key, 0, len(raw))
	for i, entry := range raw {
		list, ok := entry.([]any)
		if !ok {
			return nil, zerr.With(domain.ErrInvalidOptionValue, "defaultValue", i)
		}
		path, err := decodePath(list)
		if err != nil {
			return nil, err
		}
		out = append(out, path)
	}
	return out, nil
}

func decodePath(raw []any) ([]domain.Key, error) {
	path := make([]domain.Key, 0, len(raw))
	for _, v := range raw {
		k, err := toKey(v)
		if err != nil {
			return nil, err
		}
		path = append(path, k)
	}
	return path, nil
}

// applySettings overlays the file settings on the defaults.
func applySettings(dto SettingsDTO) (domain.Settings, error) {
	s := domain.DefaultSettings()
	if dto.Multiple != nil {
		s.Multiple = *dto.Multiple
	}
	if dto.ChangeOnSelect != nil {
		s.ChangeOnSelect = *dto.ChangeOnSelect
	}
	if dto.ShowSearch != nil {
		s.ShowSearch = *dto.ShowSearch
	}
	if dto.ExpandTrigger != nil {
		trigger, err := domain.ParseExpandTrigger(*dto.ExpandTrigger)
		if err != nil {
			return s, err
		}
		s.ExpandTrigger = trigger
	}
	if dto.Separator != nil && *dto.Separator != "" {
		s.Separator = *dto.Separator
	}
	if dto.DisplayStrategy != nil {
		strategy, err := domain.ParseDisplayStrategy(*dto.DisplayStrategy)
		if err != nil {
			return s, err
		}
		s.DisplayStrategy = strategy
	}
	if dto.Placeholder != nil {
		s.Placeholder = *dto.Placeholder
	}
	if dto.NotFoundContent != nil {
		s.NotFoundContent = *dto.NotFoundContent
	}
	return s, nil
}
