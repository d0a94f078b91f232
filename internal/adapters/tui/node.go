package tui

import (
	"context"

	"github.com/grindlemire/graft"
)

// PickerNodeID is the unique identifier for the interactive picker Graft node.
const PickerNodeID graft.ID = "adapter.picker.tui"

func init() {
	graft.Register(graft.Node[*Picker]{
		ID:        PickerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Picker, error) {
			return NewPicker(), nil
		},
	})
}
