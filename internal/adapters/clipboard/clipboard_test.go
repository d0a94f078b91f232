package clipboard_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cascade/internal/adapters/clipboard"
	"go.trai.ch/cascade/internal/core/domain"
)

func TestSystem_Write(t *testing.T) {
	var got string
	cb := clipboard.NewWithWriter(func(s string) error {
		got = s
		return nil
	})

	require.NoError(t, cb.Write("浙江 / 杭州 / 西湖"))
	assert.Equal(t, "浙江 / 杭州 / 西湖", got)
}

func TestSystem_WriteFailure(t *testing.T) {
	cb := clipboard.NewWithWriter(func(string) error {
		return errors.New("xclip: not found")
	})

	err := cb.Write("A / A1")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrClipboardUnavailable.Error())
	assert.ErrorContains(t, err, "xclip: not found")
}

func TestSystem_NoWriter(t *testing.T) {
	err := clipboard.NewWithWriter(nil).Write("A")
	require.ErrorIs(t, err, domain.ErrClipboardUnavailable)
}
