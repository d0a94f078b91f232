package session_test

import (
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/engine/session"
)

func key(s string) domain.Key {
	return domain.StringKey(s)
}

func keys(ss ...string) []domain.Key {
	out := make([]domain.Key, len(ss))
	for i, s := range ss {
		out[i] = key(s)
	}
	return out
}

func node(v string, children ...domain.Option) domain.Option {
	return domain.NewOption(v, v, children...)
}

// tree is
//
//	A ─ A1, A2
//	B ─ B1 ─ B1a, B1b
//	  └ B2
//	C (disabled) ─ C1
func tree() []domain.Option {
	c := node("C", node("C1"))
	c.Disabled = true
	return []domain.Option{
		node("A", node("A1"), node("A2")),
		node("B", node("B1", node("B1a"), node("B1b")), node("B2")),
		c,
	}
}

func path(options []domain.Option, vs ...string) domain.Path {
	return domain.FindPathByValue(options, keys(vs...))
}

func changes(effects []session.Effect) []session.Change {
	var out []session.Change
	for _, e := range effects {
		if c, ok := e.(session.ChangeEffect); ok {
			out = append(out, c.Change)
		}
	}
	return out
}
