package ports

import (
	"context"

	"go.trai.ch/tsconf/internal/core/domain"
)

// ConfigResolver resolves the effective configuration for a request.
//
//go:generate mockgen -source=config_resolver.go -destination=mocks/mock_config_resolver.go -package=mocks
type ConfigResolver interface {
	// Resolve never fails; every outcome is a domain.Result variant.
	Resolve(ctx context.Context, req domain.Request) domain.Result
	// Locate returns the absolute path of the configuration file that Resolve
	// would load, or domain.ErrConfigNotFound.
	Locate(ctx context.Context, req domain.Request) (string, error)
	// ClearCache drops every memoized result.
	ClearCache()
}
