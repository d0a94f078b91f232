package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cascade/internal/adapters/clipboard" //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/adapters/tui"       //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cascade/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			clipboard.NodeID,
			watcher.NodeID,
			tui.PickerNodeID,
			linear.PickerNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.OptionsLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	clip, err := graft.Dep[ports.Clipboard](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	interactive, err := graft.Dep[*tui.Picker](ctx)
	if err != nil {
		return nil, err
	}

	fallback, err := graft.Dep[*linear.Picker](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, tracer, clip, w, interactive, fallback), nil
}
