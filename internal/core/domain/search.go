package domain

import "strings"

// FilterFunc decides whether a path matches the search input.
type FilterFunc func(input string, path Path) bool

// DefaultFilter matches when input is empty or is a case-insensitive substring
// of any label on the path.
func DefaultFilter(input string, path Path) bool {
	if input == "" {
		return true
	}
	needle := strings.ToLower(input)
	for _, label := range LabelsFromPath(path) {
		if strings.Contains(strings.ToLower(label), needle) {
			return true
		}
	}
	return false
}

// FilterOptions returns the tuples whose path matches input. Unless
// changeOnSelect is set, only leaves are returned since intermediate nodes
// cannot be committed on their own.
func FilterOptions(options []Option, input string, changeOnSelect bool) []PathTuple {
	return FilterOptionsWith(options, input, changeOnSelect, DefaultFilter)
}

// FilterOptionsWith is FilterOptions with a caller-supplied filter.
// A nil filter falls back to DefaultFilter.
func FilterOptionsWith(options []Option, input string, changeOnSelect bool, filter FilterFunc) []PathTuple {
	if input == "" {
		return []PathTuple{}
	}
	if filter == nil {
		filter = DefaultFilter
	}
	results := []PathTuple{}
	for _, t := range Flatten(options, nil) {
		if !filter(input, t.Path) {
			continue
		}
		if !changeOnSelect && HasChildren(t.Option) {
			continue
		}
		results = append(results, t)
	}
	return results
}
