package ports

import "go.trai.ch/tsconf/internal/core/domain"

// ResultCache memoizes resolution results. Implementations must be safe for
// concurrent use.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResultCache interface {
	// Key returns the cache key for req and false when req must not be cached.
	Key(req domain.Request) (string, bool)
	// Get returns the result stored for req, if any.
	Get(req domain.Request) (domain.Result, bool)
	// Set stores res for req. It is a no-op for uncached strategies.
	Set(req domain.Request, res domain.Result)
	// Clear empties every strategy store.
	Clear()
}
