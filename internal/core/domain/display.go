package domain

// DisplayStrategy selects how checked leaves are summarised for display.
type DisplayStrategy string

const (
	// ShowChild lists every checked leaf.
	ShowChild DisplayStrategy = "child"
	// ShowParent lists a fully checked node in place of its leaves.
	ShowParent DisplayStrategy = "parent"
)

// ParseDisplayStrategy validates a strategy name. An empty name means ShowChild.
func ParseDisplayStrategy(s string) (DisplayStrategy, error) {
	switch DisplayStrategy(s) {
	case "", ShowChild:
		return ShowChild, nil
	case ShowParent:
		return ShowParent, nil
	default:
		return "", ErrInvalidDisplayStrategy
	}
}

// CheckedOptions returns the checked leaves in tree order.
func CheckedOptions(options []Option, checked KeySet) []Option {
	paths := CheckedPaths(options, checked)
	out := make([]Option, 0, len(paths))
	for _, p := range paths {
		last, _ := p.Last()
		out = append(out, last)
	}
	return out
}

// CheckedPaths returns the root-to-leaf path of every checked leaf in tree order.
func CheckedPaths(options []Option, checked KeySet) []Path {
	out := []Path{}
	var walk func([]Option, Path)
	walk = func(level []Option, parent Path) {
		for _, o := range level {
			path := parent.Append(o)
			if IsLeaf(o) {
				if o.Value.Defined() && checked.Has(o.Value) {
					out = append(out, path)
				}
				continue
			}
			walk(o.Children, path)
		}
	}
	walk(options, nil)
	return out
}

// DisplayPaths returns the paths unchanged.
func DisplayPaths(paths []Path) []Path {
	return paths
}

// CollapsedPaths is the ShowParent summary: a fully checked node with a
// defined key stands in for its whole subtree.
func CollapsedPaths(options []Option, checked KeySet) []Path {
	out := []Path{}
	var walk func([]Option, Path)
	walk = func(level []Option, parent Path) {
		for _, o := range level {
			path := parent.Append(o)
			status := NodeCheckedStatus(o, checked)
			if status == Checked {
				out = append(out, path)
				continue
			}
			if HasChildren(o) && (status == Indeterminate || !o.Value.Defined()) {
				walk(o.Children, path)
			}
		}
	}
	walk(options, nil)
	return out
}

// SummaryPaths applies strategy to the checked set.
func SummaryPaths(options []Option, checked KeySet, strategy DisplayStrategy) []Path {
	if strategy == ShowParent {
		return CollapsedPaths(options, checked)
	}
	return DisplayPaths(CheckedPaths(options, checked))
}
