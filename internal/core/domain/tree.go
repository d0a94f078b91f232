package domain

import "strings"

// DefaultSeparator joins path labels into display text.
const DefaultSeparator = " / "

// HasChildren reports whether the option has a non-empty child list.
func HasChildren(o Option) bool {
	return len(o.Children) > 0
}

// IsLeaf reports whether the option has no children.
func IsLeaf(o Option) bool {
	return !HasChildren(o)
}

// Children returns the option's children, never nil.
func Children(o Option) []Option {
	if len(o.Children) == 0 {
		return []Option{}
	}
	return o.Children
}

// IsDisabled reports whether the option is disabled.
func IsDisabled(o Option) bool {
	return o.Disabled
}

// Flatten walks the tree depth-first in pre-order and emits one tuple per node.
func Flatten(options []Option, parentPath Path) []PathTuple {
	var out []PathTuple
	flatten(options, parentPath, &out)
	return out
}

func flatten(options []Option, parentPath Path, out *[]PathTuple) {
	for _, o := range options {
		path := parentPath.Append(o)
		*out = append(*out, PathTuple{
			Option: o,
			Path:   path,
			Value:  ValueFromPath(path),
			Label:  strings.Join(LabelsFromPath(path), DefaultSeparator),
		})
		if HasChildren(o) {
			flatten(o.Children, path, out)
		}
	}
}

// AllLeafKeys collects the keys of every leaf in the forest.
// Grouping nodes with an undefined key are traversed but contribute nothing.
func AllLeafKeys(options []Option) KeySet {
	keys := KeySet{}
	for _, o := range options {
		collectLeafKeys(o, keys)
	}
	return keys
}

// DescendantLeafKeys returns {o.Value} for a leaf, or the leaf keys of its subtree.
func DescendantLeafKeys(o Option) KeySet {
	keys := KeySet{}
	collectLeafKeys(o, keys)
	return keys
}

func collectLeafKeys(o Option, keys KeySet) {
	if IsLeaf(o) {
		if o.Value.Defined() {
			keys.Add(o.Value)
		}
		return
	}
	for _, c := range o.Children {
		collectLeafKeys(c, keys)
	}
}

// AncestorKeys returns the keys from the root down to, but excluding, the
// first node whose key equals target. Undefined ancestors are skipped.
// The search stops at the first match in depth-first order.
func AncestorKeys(options []Option, target Key) []Key {
	if !target.Defined() {
		return []Key{}
	}
	if path, ok := findFirst(options, target, nil); ok {
		return ValueFromPath(path[:len(path)-1])
	}
	return []Key{}
}

// FindOption returns the first node, in depth-first order, whose key equals target.
func FindOption(options []Option, target Key) (Option, bool) {
	if !target.Defined() {
		return Option{}, false
	}
	path, ok := findFirst(options, target, nil)
	if !ok {
		return Option{}, false
	}
	return path[len(path)-1], true
}

// FindNodePath returns the full path to the first node whose key equals target.
func FindNodePath(options []Option, target Key) Path {
	if !target.Defined() {
		return nil
	}
	path, ok := findFirst(options, target, nil)
	if !ok {
		return nil
	}
	return path
}

func findFirst(options []Option, target Key, parent Path) (Path, bool) {
	for _, o := range options {
		path := parent.Append(o)
		if o.Value == target {
			return path, true
		}
		if found, ok := findFirst(o.Children, target, path); ok {
			return found, true
		}
	}
	return nil, false
}

// CurrentLevelOptions returns the options shown in column level: the roots for
// level 0, otherwise the children of activePath[level-1]. Negative or
// out-of-range levels yield nil instead of panicking.
func CurrentLevelOptions(options []Option, activePath Path, level int) []Option {
	if level < 0 {
		return nil
	}
	if level == 0 {
		return options
	}
	if level > len(activePath) {
		return nil
	}
	parent := activePath[level-1]
	if !HasChildren(parent) {
		return nil
	}
	return parent.Children
}
