package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CacheStrategy selects how resolution results are memoized across calls.
type CacheStrategy string

const (
	// CacheNever bypasses the cache; every call recomputes.
	CacheNever CacheStrategy = "never"
	// CacheAlways keys results by search name only, regardless of working directory.
	CacheAlways CacheStrategy = "always"
	// CacheDirectory keys results by working directory and search name.
	CacheDirectory CacheStrategy = "directory"
)

// ParseCacheStrategy converts a user supplied name into a CacheStrategy.
// The empty string yields the zero value so that defaults still apply.
func ParseCacheStrategy(name string) (CacheStrategy, error) {
	switch s := CacheStrategy(strings.ToLower(strings.TrimSpace(name))); s {
	case "", CacheNever, CacheAlways, CacheDirectory:
		return s, nil
	default:
		return "", zerr.With(ErrInvalidCacheStrategy, "strategy", name)
	}
}

// Request describes one resolution call. It is built once and never mutated.
type Request struct {
	// Cwd is the absolute directory (or file) to resolve from.
	Cwd string
	// SearchName is the filename searched for. Defaults to DefaultSearchName.
	SearchName string
	// FilePath is an explicit configuration path, relative to Cwd, or a
	// package reference carrying PackageMarker.
	FilePath string
	// CacheStrategy controls memoization. Defaults to CacheNever, or
	// CacheAlways when FilePath is set.
	CacheStrategy CacheStrategy
	// IgnoreExtends disables extends chain resolution.
	IgnoreExtends bool
}

// WithDefaults returns a copy of r with every unset field filled in. getwd
// supplies the working directory when Cwd is empty; a failing getwd leaves
// Cwd as ".".
func (r Request) WithDefaults(getwd func() (string, error)) Request {
	if r.Cwd == "" {
		r.Cwd = "."
		if getwd != nil {
			if wd, err := getwd(); err == nil {
				r.Cwd = wd
			}
		}
	}
	if abs, err := filepath.Abs(r.Cwd); err == nil {
		r.Cwd = abs
	}

	if r.SearchName == "" {
		r.SearchName = DefaultSearchName
	}

	if r.CacheStrategy == "" {
		r.CacheStrategy = CacheNever
		if r.FilePath != "" {
			r.CacheStrategy = CacheAlways
		}
	}

	return r
}
