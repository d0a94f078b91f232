package domain

// NodeCheckedStatus computes the tri-state of o from the checked leaf keys.
// Undefined nodes and internal nodes without leaves are always unchecked.
func NodeCheckedStatus(o Option, checked KeySet) CheckedStatus {
	if !o.Value.Defined() {
		return Unchecked
	}
	if IsLeaf(o) {
		if checked.Has(o.Value) {
			return Checked
		}
		return Unchecked
	}

	leaves := DescendantLeafKeys(o)
	hits := 0
	for k := range leaves {
		if checked.Has(k) {
			hits++
		}
	}
	switch {
	case hits == 0:
		return Unchecked
	case hits == leaves.Len():
		return Checked
	default:
		return Indeterminate
	}
}

// HalfCheckedKeys returns the keys of every internal node whose status is
// indeterminate. Each node is evaluated on its own.
func HalfCheckedKeys(options []Option, checked KeySet) KeySet {
	half := KeySet{}
	var walk func([]Option)
	walk = func(level []Option) {
		for _, o := range level {
			if !HasChildren(o) {
				continue
			}
			if o.Value.Defined() && NodeCheckedStatus(o, checked) == Indeterminate {
				half.Add(o.Value)
			}
			walk(o.Children)
		}
	}
	walk(options)
	return half
}

// UpdateCheckedKeys returns a new set with every descendant leaf of o added
// (checked) or removed. Ancestors are untouched; callers recompute the
// half-checked set with HalfCheckedKeys afterwards.
func UpdateCheckedKeys(o Option, checked bool, current KeySet) KeySet {
	next := current.Clone()
	if !o.Value.Defined() {
		return next
	}
	for k := range DescendantLeafKeys(o) {
		if checked {
			next.Add(k)
		} else {
			next.Remove(k)
		}
	}
	return next
}

// SyncCheckedKeys drops keys that are no longer leaves of options and returns
// the pruned checked set with its matching half-checked set.
func SyncCheckedKeys(options []Option, checked KeySet) (KeySet, KeySet) {
	leaves := AllLeafKeys(options)
	pruned := KeySet{}
	for k := range checked {
		if leaves.Has(k) {
			pruned.Add(k)
		}
	}
	return pruned, HalfCheckedKeys(options, pruned)
}
