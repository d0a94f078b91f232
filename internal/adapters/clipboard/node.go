package clipboard

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cascade/internal/core/ports"
)

// NodeID is the unique identifier for the clipboard Graft node.
const NodeID graft.ID = "adapter.clipboard"

func init() {
	graft.Register(graft.Node[ports.Clipboard]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Clipboard, error) {
			return New(), nil
		},
	})
}
