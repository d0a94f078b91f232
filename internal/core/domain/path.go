package domain

import "strings"

// FindPathByValue resolves a value array to the matching tree path. At each
// level the first child whose key equals the next target key wins. It returns
// nil when target is empty or any step has no match.
func FindPathByValue(options []Option, target []Key) Path {
	if len(target) == 0 {
		return nil
	}
	path := make(Path, 0, len(target))
	level := options
	for _, want := range target {
		idx := -1
		for i, o := range level {
			if o.Value == want {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		path = append(path, level[idx])
		level = level[idx].Children
	}
	return path
}

// ValueFromPath maps a path to its keys, dropping undefined entries only.
// Falsy but defined keys such as 0 or "" are kept.
func ValueFromPath(path Path) []Key {
	out := make([]Key, 0, len(path))
	for _, o := range path {
		if o.Value.Defined() {
			out = append(out, o.Value)
		}
	}
	return out
}

// Label returns the option's label, falling back to its stringified key.
func Label(o Option) string {
	if o.HasLabel {
		return o.Label
	}
	return o.Value.String()
}

// LabelsFromPath maps each node to its label.
func LabelsFromPath(path Path) []string {
	out := make([]string, len(path))
	for i, o := range path {
		out[i] = Label(o)
	}
	return out
}

// DisplayText joins the path labels with separator, DefaultSeparator when empty.
func DisplayText(path Path, separator string) string {
	if separator == "" {
		separator = DefaultSeparator
	}
	return strings.Join(LabelsFromPath(path), separator)
}
