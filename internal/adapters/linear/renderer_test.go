package linear_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/adapters/linear"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
)

func ascii() termenv.Profile { return termenv.Ascii }

func newRenderer() (*linear.Renderer, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return linear.NewRendererWithProfile(&stdout, &stderr, ascii), &stdout, &stderr
}

// provinces is
//
//	浙江 ─ 杭州 ─ 西湖, 灵隐
//	     └ 宁波
//	江苏 ─ 南京 ─ 中华门 (disabled)
func provinces() []domain.Option {
	gate := domain.NewOption("zhonghuamen", "中华门")
	gate.Disabled = true
	return []domain.Option{
		domain.NewOption("zhejiang", "浙江",
			domain.NewOption("hangzhou", "杭州",
				domain.NewOption("xihu", "西湖"),
				domain.NewOption("lingyin", "灵隐"),
			),
			domain.NewOption("ningbo", "宁波"),
		),
		domain.NewOption("jiangsu", "江苏",
			domain.NewOption("nanjing", "南京", gate),
		),
	}
}

func TestRenderer_Golden(t *testing.T) {
	tests := []struct {
		name       string
		render     func(*linear.Renderer)
		goldenName string
	}{
		{
			name:       "tree",
			render:     func(r *linear.Renderer) { r.Tree(provinces(), nil, false) },
			goldenName: "tree_plain",
		},
		{
			name: "tree with checkboxes",
			render: func(r *linear.Renderer) {
				r.Tree(provinces(), domain.NewKeySet(domain.StringKey("xihu")), true)
			},
			goldenName: "tree_checked",
		},
		{
			name: "search results",
			render: func(r *linear.Renderer) {
				r.Results(domain.FilterOptions(provinces(), "江", false), domain.DefaultSeparator, domain.DefaultNotFound)
			},
			goldenName: "results_basic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stdout, stderr := newRenderer()
			tt.render(r)

			assert.Empty(t, stderr.String())
			g := goldie.New(t)
			g.Assert(t, tt.goldenName, stdout.Bytes())
		})
	}
}

func TestRenderer_ResultsNotFound(t *testing.T) {
	r, stdout, stderr := newRenderer()

	r.Results(nil, domain.DefaultSeparator, "No data")

	assert.Empty(t, stdout.String())
	assert.Equal(t, "No data\n", stderr.String())
}

func TestRenderer_Selection(t *testing.T) {
	r, stdout, stderr := newRenderer()

	r.Selection(&ports.PickResult{
		Paths: []domain.Path{domain.FindPathByValue(provinces(), []domain.Key{domain.StringKey("zhejiang")})},
		Texts: []string{"浙江"},
	}, "Please select")

	assert.Equal(t, "浙江\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_SelectionEmpty(t *testing.T) {
	r, stdout, stderr := newRenderer()

	r.Selection(&ports.PickResult{}, "Please select")

	assert.Empty(t, stdout.String())
	assert.Equal(t, "Please select\n", stderr.String())
}

func TestRenderer_Tuples(t *testing.T) {
	r, stdout, _ := newRenderer()
	tuples := domain.FilterOptions(provinces(), "宁", false)

	r.Tuples(tuples, " > ")

	assert.Equal(t, "浙江 > 宁波\n", stdout.String())
}

func TestRenderer_SelectionJSON_Single(t *testing.T) {
	r, stdout, _ := newRenderer()
	path := domain.FindPathByValue(provinces(), []domain.Key{
		domain.StringKey("zhejiang"), domain.StringKey("hangzhou"), domain.StringKey("xihu"),
	})

	require.NoError(t, r.SelectionJSON(&ports.PickResult{Paths: []domain.Path{path}}))

	var got linear.Entry
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, []any{"zhejiang", "hangzhou", "xihu"}, got.Value)
	assert.Equal(t, []string{"浙江", "杭州", "西湖"}, got.Labels)
	assert.False(t, got.Disabled)
}

func TestRenderer_SelectionJSON_Empty(t *testing.T) {
	r, stdout, _ := newRenderer()

	require.NoError(t, r.SelectionJSON(&ports.PickResult{}))

	assert.JSONEq(t, `{"value": [], "labels": []}`, stdout.String())
}

func TestRenderer_SelectionJSON_Multiple(t *testing.T) {
	r, stdout, _ := newRenderer()
	opts := provinces()
	paths := domain.CheckedPaths(opts, domain.NewKeySet(domain.StringKey("ningbo"), domain.StringKey("zhonghuamen")))

	require.NoError(t, r.SelectionJSON(&ports.PickResult{Multiple: true, Paths: paths}))

	assert.JSONEq(t, `[
		{"value": ["zhejiang", "ningbo"], "labels": ["浙江", "宁波"]},
		{"value": ["jiangsu", "nanjing", "zhonghuamen"], "labels": ["江苏", "南京", "中华门"], "disabled": true}
	]`, stdout.String())
}

func TestNewEntry_NumberKeys(t *testing.T) {
	opts := []domain.Option{{Value: domain.NumberKey(1), Children: []domain.Option{{Value: domain.NumberKey(0)}}}}
	path := domain.FindPathByValue(opts, []domain.Key{domain.NumberKey(1), domain.NumberKey(0)})

	entry := linear.NewEntry(path)

	assert.Equal(t, []any{1.0, 0.0}, entry.Value)
	assert.Equal(t, []string{"1", "0"}, entry.Labels)
}
