package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/core/domain"
)

func TestDefaultFilter(t *testing.T) {
	path := domain.FindPathByValue(zhejiangTree(), keys("zhejiang", "hangzhou"))

	assert.True(t, domain.DefaultFilter("", path))
	assert.True(t, domain.DefaultFilter("杭", path))
	assert.True(t, domain.DefaultFilter("浙", path))
	assert.False(t, domain.DefaultFilter("西", path))

	mixed := domain.Path{domain.NewOption("x", "Hello World")}
	assert.True(t, domain.DefaultFilter("WORLD", mixed))
	assert.True(t, domain.DefaultFilter("lo wo", mixed))
}

func TestFilterOptions_LeavesOnly(t *testing.T) {
	tree := zhejiangTree()

	byAncestor := domain.FilterOptions(tree, "杭", false)
	require.Len(t, byAncestor, 1, "杭州 itself is not a leaf")
	assert.Equal(t, "西湖", byAncestor[0].Option.Label)
	for _, tuple := range domain.FilterOptions(sampleTree(), "a", false) {
		assert.False(t, domain.HasChildren(tuple.Option), tuple.Label)
	}

	got := domain.FilterOptions(tree, "西", false)
	require.Len(t, got, 1)
	assert.Equal(t, "西湖", got[0].Option.Label)
	assert.Equal(t, "浙江 / 杭州 / 西湖", got[0].Label)
	assert.Equal(t, keys("zhejiang", "hangzhou", "xihu"), got[0].Value)
}

func TestFilterOptions_AncestorLabelMatchesLeaf(t *testing.T) {
	got := domain.FilterOptions(zhejiangTree(), "浙", false)
	require.Len(t, got, 1)
	assert.Equal(t, "西湖", got[0].Option.Label)
}

func TestFilterOptions_ChangeOnSelect(t *testing.T) {
	got := domain.FilterOptions(zhejiangTree(), "杭", true)
	require.Len(t, got, 2)
	assert.Equal(t, "浙江 / 杭州", got[0].Label)
	assert.Equal(t, "浙江 / 杭州 / 西湖", got[1].Label)
}

func TestFilterOptions_EmptyInput(t *testing.T) {
	got := domain.FilterOptions(sampleTree(), "", true)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterOptionsWith_CustomFilter(t *testing.T) {
	prefix := func(input string, path domain.Path) bool {
		last, _ := path.Last()
		return strings.HasPrefix(domain.Label(last), input)
	}

	got := domain.FilterOptionsWith(sampleTree(), "B1", false, prefix)
	require.Len(t, got, 2)
	assert.Equal(t, "B1a", got[0].Option.Label)
	assert.Equal(t, "B1b", got[1].Option.Label)

	fallback := domain.FilterOptionsWith(sampleTree(), "b2", false, nil)
	require.Len(t, fallback, 1)
	assert.Equal(t, "B2", fallback[0].Option.Label)
}
