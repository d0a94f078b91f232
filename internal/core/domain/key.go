package domain

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

type keyKind uint8

const (
	keyUndefined keyKind = iota
	keyString
	keyNumber
)

// Key is the value of an Option. It is either a string, a number or undefined
// (the zero value). Keys are comparable and compare strictly: a string key
// never equals a number key, even when they print the same.
type Key struct {
	kind keyKind
	str  string
	num  float64
}

// StringKey returns a string key.
func StringKey(s string) Key {
	return Key{kind: keyString, str: s}
}

// NumberKey returns a number key.
func NumberKey(n float64) Key {
	return Key{kind: keyNumber, num: n}
}

// Defined reports whether the key carries a value.
func (k Key) Defined() bool {
	return k.kind != keyUndefined
}

// IsNumber reports whether the key is a number key.
func (k Key) IsNumber() bool {
	return k.kind == keyNumber
}

// Number returns the numeric value and whether the key is a number key.
func (k Key) Number() (float64, bool) {
	return k.num, k.kind == keyNumber
}

// Falsy reports whether the key would be dropped by a truthiness filter:
// undefined, the empty string, 0 and NaN.
func (k Key) Falsy() bool {
	switch k.kind {
	case keyString:
		return k.str == ""
	case keyNumber:
		return k.num == 0 || math.IsNaN(k.num)
	default:
		return true
	}
}

// String returns the stringified value, or "" for an undefined key.
func (k Key) String() string {
	switch k.kind {
	case keyString:
		return k.str
	case keyNumber:
		return strconv.FormatFloat(k.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Any returns the key as a string, a float64 or nil, for encoders.
func (k Key) Any() any {
	switch k.kind {
	case keyString:
		return k.str
	case keyNumber:
		return k.num
	default:
		return nil
	}
}

// GoString renders the key with its kind, for test failure output.
func (k Key) GoString() string {
	switch k.kind {
	case keyString:
		return strconv.Quote(k.str)
	case keyNumber:
		return k.String()
	default:
		return "undefined"
	}
}

// compareKeys orders undefined < strings < numbers.
func compareKeys(a, b Key) int {
	if a.kind != b.kind {
		return int(a.kind) - int(b.kind)
	}
	switch a.kind {
	case keyNumber:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case keyString:
		return strings.Compare(a.str, b.str)
	default:
		return 0
	}
}

// ParseKey interprets raw text as a key. Text that parses as a number becomes
// a number key unless it is quoted; everything else is a string key.
func ParseKey(raw string) Key {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return StringKey(raw[1 : len(raw)-1])
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) {
		return NumberKey(n)
	}
	return StringKey(raw)
}

// ParseValuePath splits a separator-delimited value path ("zhejiang/hangzhou")
// into keys using ParseKey. An empty input yields nil.
func ParseValuePath(raw, sep string) []Key {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, sep)
	keys := make([]Key, 0, len(parts))
	for _, p := range parts {
		keys = append(keys, ParseKey(strings.TrimSpace(p)))
	}
	return keys
}

// ValuesEqual reports element-wise, order-sensitive equality of two value arrays.
func ValuesEqual(a, b []Key) bool {
	return slices.Equal(a, b)
}

// KeySet is a set of option keys.
type KeySet map[Key]struct{}

// NewKeySet returns a set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add inserts k.
func (s KeySet) Add(k Key) {
	s[k] = struct{}{}
}

// Remove deletes k.
func (s KeySet) Remove(k Key) {
	delete(s, k)
}

// Len returns the number of keys.
func (s KeySet) Len() int {
	return len(s)
}

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	for k := range s {
		c[k] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same keys.
func (s KeySet) Equal(other KeySet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Keys returns the keys in a deterministic order.
func (s KeySet) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)
	return keys
}
