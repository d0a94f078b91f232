package session_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/engine/session"
)

func TestIsValueSelected(t *testing.T) {
	e := session.New(session.Config{Options: tree()})
	s := e.Init(session.Value{Single: keys("A", "A1")})

	assert.True(t, e.IsValueSelected(s, keys("A", "A1")))
	assert.False(t, e.IsValueSelected(s, keys("A1", "A")), "order matters")
	assert.False(t, e.IsValueSelected(s, keys("A")))
	assert.True(t, e.IsPathSelected(s, path(tree(), "A", "A1")))

	m := session.New(session.Config{Options: tree(), Multiple: true})
	ms := m.Init(session.Value{Multiple: [][]domain.Key{keys("B", "B2")}})
	assert.True(t, m.IsValueSelected(ms, keys("B", "B2")))
	assert.False(t, m.IsValueSelected(ms, keys("B")))
}

func TestIsPathActive(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts})
	s, _ := e.PathChange(e.Init(session.Value{}), path(opts, "B", "B1"), false)

	tests := []struct {
		name  string
		path  domain.Path
		level int
		want  bool
	}{
		{name: "root level", path: path(opts, "B"), level: 0, want: true},
		{name: "second level", path: path(opts, "B", "B1", "B1a"), level: 1, want: true},
		{name: "other branch", path: path(opts, "A", "A1"), level: 0, want: false},
		{name: "beyond active path", path: path(opts, "B", "B1", "B1a"), level: 2, want: false},
		{name: "beyond candidate path", path: path(opts, "B"), level: 1, want: false},
		{name: "negative", path: path(opts, "B"), level: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsPathActive(s, tt.path, tt.level))
		})
	}
}

func TestColumns(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts})
	s := e.Init(session.Value{})

	require.Len(t, e.Columns(s), 1)

	s, _ = e.PathChange(s, path(opts, "B", "B1"), false)
	cols := e.Columns(s)
	require.Len(t, cols, 3)
	assert.Equal(t, "B1", cols[1][0].Label)
	assert.Equal(t, "B1a", cols[2][0].Label)

	s, _ = e.PathChange(s, path(opts, "B", "B2"), true)
	assert.Len(t, e.Columns(s), 2, "a leaf opens no column")
}

func TestDisplayTexts(t *testing.T) {
	opts := tree()
	single := session.New(session.Config{Options: opts, Separator: " > "})
	assert.Equal(t, []string{}, single.DisplayTexts(single.Init(session.Value{})))
	assert.Equal(t, []string{"A > A2"}, single.DisplayTexts(single.Init(session.Value{Single: keys("A", "A2")})))

	value := session.Value{Multiple: [][]domain.Key{keys("A"), keys("B", "B1", "B1a")}}

	child := session.New(session.Config{Options: opts, Multiple: true})
	assert.Equal(t, []string{"A / A1", "A / A2", "B / B1 / B1a"}, child.DisplayTexts(child.Init(value)))

	parent := session.New(session.Config{Options: opts, Multiple: true, DisplayStrategy: domain.ShowParent})
	assert.Equal(t, []string{"A", "B / B1 / B1a"}, parent.DisplayTexts(parent.Init(value)))
}

func TestSearchResults(t *testing.T) {
	zj := []domain.Option{
		domain.NewOption("zhejiang", "浙江",
			domain.NewOption("hangzhou", "杭州",
				domain.NewOption("xihu", "西湖"),
			),
		),
	}

	e := session.New(session.Config{Options: zj, ShowSearch: true})
	s, _ := e.SearchChange(e.Init(session.Value{}), "杭")
	got := e.SearchResults(s)
	require.Len(t, got, 1)
	assert.Equal(t, "西湖", got[0].Option.Label)

	s, _ = e.SearchChange(s, "江苏")
	assert.Empty(t, e.SearchResults(s))

	s, _ = e.SearchChange(s, "西")
	require.Len(t, e.SearchResults(s), 1)

	hidden := session.New(session.Config{Options: zj})
	hs, _ := hidden.SearchChange(hidden.Init(session.Value{}), "西")
	assert.Empty(t, hidden.SearchResults(hs), "search disabled")

	prefix := session.New(session.Config{
		Options:    tree(),
		ShowSearch: true,
		Filter: func(input string, p domain.Path) bool {
			last, _ := p.Last()
			return strings.HasPrefix(last.Label, input)
		},
	})
	ps, _ := prefix.SearchChange(prefix.Init(session.Value{}), "A")
	assert.Len(t, prefix.SearchResults(ps), 2)
}

func TestSelectedValues(t *testing.T) {
	e := session.New(session.Config{Options: tree(), Multiple: true})
	s := e.Init(session.Value{Multiple: [][]domain.Key{keys("B", "B2"), keys("A", "A1")}})

	assert.Equal(t, [][]domain.Key{keys("A", "A1"), keys("B", "B2")}, e.SelectedValues(s))
}

func TestCommitted(t *testing.T) {
	opts := tree()

	e := session.New(session.Config{Options: opts})
	assert.Equal(t, session.Change{}, e.Committed(e.Init(session.Value{})))

	s := e.Init(session.Value{Single: keys("B", "B1", "B1a")})
	got := e.Committed(s)
	assert.False(t, got.Multiple)
	assert.Equal(t, keys("B", "B1", "B1a"), got.Value)
	assert.Equal(t, path(opts, "B", "B1", "B1a"), got.Path)

	m := session.New(session.Config{Options: opts, Multiple: true})
	ms := m.Init(session.Value{Multiple: [][]domain.Key{keys("B", "B1")}})
	mc := m.Committed(ms)
	assert.True(t, mc.Multiple)
	assert.Equal(t, [][]domain.Key{keys("B", "B1", "B1a"), keys("B", "B1", "B1b")}, mc.Values)
	require.Len(t, mc.Paths, 2)

	empty := m.Committed(m.Init(session.Value{}))
	assert.Empty(t, empty.Values)
	assert.NotNil(t, empty.Values)
}
