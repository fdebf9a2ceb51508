// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tsconf/internal/adapters/cache"
	_ "go.trai.ch/tsconf/internal/adapters/fs"
	_ "go.trai.ch/tsconf/internal/adapters/jsonc"
	_ "go.trai.ch/tsconf/internal/adapters/logger"
	_ "go.trai.ch/tsconf/internal/adapters/npm"
	_ "go.trai.ch/tsconf/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/tsconf/internal/app"
	_ "go.trai.ch/tsconf/internal/engine/resolver"
)
