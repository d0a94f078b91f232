package domain_test

import "go.trai.ch/cascade/internal/core/domain"

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

// sampleTree is
//
//	A ─ A1, A2
//	B ─ B1 ─ B1a, B1b
//	  └ B2
func sampleTree() []domain.Option {
	return []domain.Option{
		node("A", node("A1"), node("A2")),
		node("B", node("B1", node("B1a"), node("B1b")), node("B2")),
	}
}

func zhejiangTree() []domain.Option {
	return []domain.Option{
		domain.NewOption("zhejiang", "浙江",
			domain.NewOption("hangzhou", "杭州",
				domain.NewOption("xihu", "西湖"),
			),
		),
	}
}

func valuesOf(paths []domain.Path) [][]domain.Key {
	out := make([][]domain.Key, len(paths))
	for i, p := range paths {
		out[i] = domain.ValueFromPath(p)
	}
	return out
}
