package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
)

func TestNewPickResult(t *testing.T) {
	a := domain.NewOption("a", "A", domain.NewOption("a1", "A1"))
	path := domain.Path{a, a.Children[0]}
	value := []domain.Key{domain.StringKey("a"), domain.StringKey("a1")}

	single := ports.NewPickResult(domain.Change{Value: value, Path: path}, []string{"A / A1"})
	assert.False(t, single.Multiple)
	assert.Equal(t, [][]domain.Key{value}, single.Values)
	assert.Equal(t, []domain.Path{path}, single.Paths)
	assert.False(t, single.Empty())

	none := ports.NewPickResult(domain.Change{}, []string{})
	assert.True(t, none.Empty())
	assert.Nil(t, none.Values)

	multi := ports.NewPickResult(domain.Change{
		Multiple: true,
		Values:   [][]domain.Key{value},
		Paths:    []domain.Path{path},
	}, []string{"A / A1"})
	assert.True(t, multi.Multiple)
	assert.Len(t, multi.Paths, 1)

	var nilResult *ports.PickResult
	assert.True(t, nilResult.Empty())
}
