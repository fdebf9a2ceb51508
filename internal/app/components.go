package app

import "go.trai.ch/tsconf/internal/core/ports"

// Components holds the fully wired application graph handed to the CLI.
type Components struct {
	App      *App
	Logger   ports.Logger
	Resolver ports.ConfigResolver
}
