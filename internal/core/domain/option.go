// Package domain holds the cascader option tree and the pure algorithms that
// operate on it: tree queries, path resolution, search and checked state.
package domain

// Option is one node of the cascading option tree.
type Option struct {
	Value    Key
	Label    string
	HasLabel bool
	Disabled bool
	Title    string
	Children []Option
}

// NewOption returns an option with a string key and a label.
func NewOption(value, label string, children ...Option) Option {
	return Option{
		Value:    StringKey(value),
		Label:    label,
		HasLabel: true,
		Children: children,
	}
}

// Path is an ordered root-to-node sequence of options.
type Path []Option

// Last returns the final node of the path.
func (p Path) Last() (Option, bool) {
	if len(p) == 0 {
		return Option{}, false
	}
	return p[len(p)-1], true
}

// Append returns a new path with o added. The receiver is never modified.
func (p Path) Append(o Option) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, o)
}

// Clone returns an independent copy of the path slice.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// PathTuple is one flattened entry of the option tree as used by search.
type PathTuple struct {
	Option Option
	Path   Path
	Value  []Key
	Label  string
}

// CheckedStatus is the tri-state of a node in multi-select mode.
type CheckedStatus uint8

const (
	// Unchecked means none of the node's leaves are checked.
	Unchecked CheckedStatus = iota
	// Checked means all of the node's leaves are checked.
	Checked
	// Indeterminate means some but not all leaves are checked.
	Indeterminate
)

func (s CheckedStatus) String() string {
	switch s {
	case Checked:
		return "checked"
	case Indeterminate:
		return "indeterminate"
	default:
		return "unchecked"
	}
}
