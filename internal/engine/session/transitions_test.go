package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/engine/session"
)

func TestPathChange(t *testing.T) {
	opts := tree()

	tests := []struct {
		name           string
		changeOnSelect bool
		path           domain.Path
		isLeaf         bool
		wantSelected   []domain.Key
		wantChange     bool
	}{
		{name: "internal node only moves", path: path(opts, "B"), wantSelected: []domain.Key{}},
		{name: "leaf commits", path: path(opts, "A", "A2"), isLeaf: true, wantSelected: keys("A", "A2"), wantChange: true},
		{name: "change on select commits internal", changeOnSelect: true, path: path(opts, "B", "B1"), wantSelected: keys("B", "B1"), wantChange: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := session.New(session.Config{Options: opts, ChangeOnSelect: tt.changeOnSelect})
			s, effects := e.PathChange(e.Init(session.Value{}), tt.path, tt.isLeaf)

			assert.Equal(t, domain.ValueFromPath(tt.path), domain.ValueFromPath(s.ActivePath))
			assert.Equal(t, tt.wantSelected, e.SelectedValue(s))

			got := changes(effects)
			if !tt.wantChange {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantSelected, got[0].Value)
			assert.Equal(t, tt.wantSelected, domain.ValueFromPath(got[0].Path))
		})
	}
}

func TestPathChange_DoesNotAliasInput(t *testing.T) {
	e := session.New(session.Config{Options: tree()})
	p := path(tree(), "A", "A1")

	s, _ := e.PathChange(e.Init(session.Value{}), p, true)
	p[1] = node("X")
	assert.Equal(t, "A / A1", e.DisplayText(s))
}

func TestFinalSelect_SingleSelectScenario(t *testing.T) {
	opts := []domain.Option{node("A", node("A1"), node("A2"))}
	e := session.New(session.Config{Options: opts, ShowSearch: true})

	s, _ := e.PathChange(e.Init(session.Value{}), path(opts, "A"), false)
	s, _ = e.SearchChange(s, "a")
	s, effects := e.FinalSelect(s, opts[0].Children[0], path(opts, "A"))

	assert.Equal(t, "A / A1", e.DisplayText(s))
	assert.Nil(t, s.ActivePath)
	assert.Equal(t, "", s.SearchValue)

	got := changes(effects)
	require.Len(t, got, 1)
	assert.Equal(t, keys("A", "A1"), got[0].Value)
	assert.False(t, got[0].Multiple)
}

func TestClear_Single(t *testing.T) {
	e := session.New(session.Config{Options: tree()})
	s := e.Init(session.Value{Single: keys("A", "A1")})
	s, _ = e.SearchChange(s, "x")

	s, effects := e.Clear(s)
	assert.Empty(t, s.SelectedPath)
	assert.Empty(t, s.ActivePath)
	assert.Equal(t, "", s.SearchValue)

	got := changes(effects)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Value)
	assert.Nil(t, got[0].Path)
}

func TestClear_Multiple(t *testing.T) {
	e := session.New(session.Config{Options: tree(), Multiple: true})
	s := e.Init(session.Value{Multiple: [][]domain.Key{keys("B")}})

	s, effects := e.Clear(s)
	assert.Equal(t, 0, s.CheckedKeys.Len())
	assert.Equal(t, 0, s.HalfCheckedKeys.Len())

	got := changes(effects)
	require.Len(t, got, 1)
	assert.True(t, got[0].Multiple)
	require.NotNil(t, got[0].Values)
	require.NotNil(t, got[0].Paths)
	assert.Empty(t, got[0].Values)
	assert.Empty(t, got[0].Paths)
}

func TestMultipleSelect_CascadeScenario(t *testing.T) {
	opts := []domain.Option{node("A", node("A1"), node("A2"))}
	e := session.New(session.Config{Options: opts, Multiple: true})
	s := e.Init(session.Value{})

	s, effects := e.MultipleSelect(s, opts[0], true)
	assert.True(t, s.CheckedKeys.Equal(domain.NewKeySet(keys("A1", "A2")...)))
	assert.Equal(t, 0, s.HalfCheckedKeys.Len())
	assert.Equal(t, domain.Checked, e.NodeStatus(s, opts[0]))

	got := changes(effects)
	require.Len(t, got, 1)
	assert.Equal(t, [][]domain.Key{keys("A", "A1"), keys("A", "A2")}, got[0].Values)
	assert.Len(t, got[0].Paths, 2)

	s, _ = e.MultipleSelect(s, opts[0].Children[1], false)
	assert.True(t, s.HalfCheckedKeys.Equal(domain.NewKeySet(key("A"))))
	assert.Equal(t, domain.Indeterminate, e.NodeStatus(s, opts[0]))
}

func TestMultipleSelect_ClearsSearch(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts, Multiple: true, ShowSearch: true})
	s, _ := e.SearchChange(e.Init(session.Value{}), "b")

	s, _ = e.MultipleSelect(s, opts[1].Children[1], true)
	assert.Equal(t, "", s.SearchValue)
}

func TestDisabledGuard(t *testing.T) {
	opts := tree()
	c := opts[2]

	single := session.New(session.Config{Options: opts, ChangeOnSelect: true})
	start := single.Init(session.Value{Single: keys("A", "A1")})

	s, effects := single.PathChange(start, path(opts, "C"), false)
	assert.Equal(t, start, s)
	assert.Empty(t, effects)

	s, effects = single.FinalSelect(start, c.Children[0], path(opts, "C"))
	assert.Equal(t, start, s)
	assert.Empty(t, effects)

	multi := session.New(session.Config{Options: opts, Multiple: true})
	ms := multi.Init(session.Value{})

	next, effects := multi.MultipleSelectPath(ms, path(opts, "C", "C1"), true)
	assert.Equal(t, 0, next.CheckedKeys.Len(), "a leaf under a disabled node cannot be checked")
	assert.Empty(t, effects)
}

func TestMultipleSelect_DuplicateKeyUnderDisabledBranch(t *testing.T) {
	hidden := node("X")
	hidden.Disabled = true
	opts := []domain.Option{
		node("A", hidden),
		node("B", node("X2"), node("X")),
	}
	e := session.New(session.Config{Options: opts, Multiple: true})
	start := e.Init(session.Value{})

	s, effects := e.MultipleSelect(start, opts[1].Children[1], true)
	assert.True(t, s.CheckedKeys.Has(domain.StringKey("X")))
	assert.Len(t, effects, 1)

	s, effects = e.MultipleSelectPath(start, domain.Path{opts[1], opts[1].Children[1]}, true)
	assert.True(t, s.CheckedKeys.Has(domain.StringKey("X")))
	assert.Len(t, effects, 1)

	s, effects = e.MultipleSelectPath(start, domain.Path{opts[0], hidden}, true)
	assert.Equal(t, 0, s.CheckedKeys.Len())
	assert.Empty(t, effects)

	s, effects = e.MultipleSelectPath(start, nil, true)
	assert.Equal(t, start, s)
	assert.Empty(t, effects)
}

func TestSearchChange(t *testing.T) {
	e := session.New(session.Config{Options: tree(), ShowSearch: true})

	s, effects := e.SearchChange(e.Init(session.Value{}), "B1")
	assert.Equal(t, "B1", s.SearchValue)
	assert.Equal(t, []session.Effect{session.SearchEffect{Text: "B1"}}, effects)
}

func TestSearchSelect_Single(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts, ShowSearch: true})
	s, _ := e.SearchChange(e.Init(session.Value{}), "b1b")

	results := e.SearchResults(s)
	require.Len(t, results, 1)

	s, effects := e.SearchSelect(s, results[0])
	assert.Equal(t, "B / B1 / B1b", e.DisplayText(s))
	assert.Equal(t, "", s.SearchValue)
	require.Len(t, changes(effects), 1)
}

func TestSearchSelect_MultipleTogglesLeaf(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts, Multiple: true, ShowSearch: true})
	s, _ := e.SearchChange(e.Init(session.Value{}), "A2")

	result := e.SearchResults(s)[0]
	s, _ = e.SearchSelect(s, result)
	assert.True(t, s.CheckedKeys.Has(key("A2")))

	s, _ = e.SearchSelect(s, result)
	assert.False(t, s.CheckedKeys.Has(key("A2")))
}

func TestSearchSelect_MultipleTogglesInternalByStatus(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts, Multiple: true, ShowSearch: true, ChangeOnSelect: true})
	s := e.Init(session.Value{Multiple: [][]domain.Key{keys("B", "B1", "B1a")}})

	s, _ = e.SearchChange(s, "B1")
	var b1 domain.PathTuple
	for _, r := range e.SearchResults(s) {
		if r.Option.Label == "B1" {
			b1 = r
		}
	}
	require.Equal(t, "B1", b1.Option.Label)

	s, _ = e.SearchSelect(s, b1)
	assert.True(t, s.CheckedKeys.Equal(domain.NewKeySet(keys("B1a", "B1b")...)), "indeterminate node is checked")

	s, _ = e.SearchSelect(s, b1)
	assert.Equal(t, 0, s.CheckedKeys.Len(), "checked node is unchecked")
}

func TestSearchSelect_EmptyTuple(t *testing.T) {
	e := session.New(session.Config{Options: tree()})
	start := e.Init(session.Value{})

	s, effects := e.SearchSelect(start, domain.PathTuple{})
	assert.Equal(t, start, s)
	assert.Empty(t, effects)
}

func TestExpand(t *testing.T) {
	opts := tree()
	e := session.New(session.Config{Options: opts, ChangeOnSelect: true})
	s := e.Init(session.Value{Single: keys("A", "A1")})

	next := e.Expand(s, path(opts, "B", "B1"))
	assert.Equal(t, keys("B", "B1"), domain.ValueFromPath(next.ActivePath))
	assert.Equal(t, keys("A", "A1"), e.SelectedValue(next), "expanding never commits")

	blockedNext := e.Expand(next, path(opts, "C"))
	assert.Equal(t, next.ActivePath, blockedNext.ActivePath)

	collapsed := e.Expand(next, nil)
	assert.Empty(t, collapsed.ActivePath)
}
