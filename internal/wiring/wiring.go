// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cascade/internal/adapters/clipboard"
	_ "go.trai.ch/cascade/internal/adapters/config"
	_ "go.trai.ch/cascade/internal/adapters/linear"
	_ "go.trai.ch/cascade/internal/adapters/logger"
	_ "go.trai.ch/cascade/internal/adapters/telemetry"
	_ "go.trai.ch/cascade/internal/adapters/tui"
	_ "go.trai.ch/cascade/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/cascade/internal/app"
)
