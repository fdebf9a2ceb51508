// Package resolver implements configuration lookup and extends-chain merging.
package resolver

import (
	"context"
	"os"
	"strconv"

	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Resolver combines lookup, loading and caching into one total operation.
type Resolver struct {
	locator *Locator
	chain   *Chain
	cache   ports.ResultCache
	tracer  ports.Tracer
	logger  ports.Logger
	getwd   func() (string, error)
	flight  singleflight.Group
}

// New creates a Resolver from its collaborators.
func New(
	fs ports.FileSystem,
	parser ports.Parser,
	packages ports.PackageResolver,
	cache ports.ResultCache,
	tracer ports.Tracer,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		locator: NewLocator(fs, packages),
		chain:   NewChain(NewLoader(fs, parser), fs, packages, logger),
		cache:   cache,
		tracer:  tracer,
		logger:  logger,
		getwd:   os.Getwd,
	}
}

// Resolve returns the merged configuration for req. It never fails: every
// outcome is one of the domain.Result variants.
//
// Concurrent misses for the same cache key share a single computation.
func (r *Resolver) Resolve(ctx context.Context, req domain.Request) domain.Result {
	req = req.WithDefaults(r.getwd)

	ctx, span := r.tracer.Start(ctx, "tsconf.resolve",
		ports.WithAttribute("cwd", req.Cwd),
		ports.WithAttribute("search_name", req.SearchName),
		ports.WithAttribute("cache", string(req.CacheStrategy)),
	)
	defer span.End()

	key, cacheable := r.cache.Key(req)
	if !cacheable {
		return r.compute(ctx, req)
	}

	if res, ok := r.cache.Get(req); ok {
		r.logger.Debug("cache hit for " + strconv.Quote(key))
		span.SetAttribute("cache_hit", true)
		return res
	}
	r.logger.Debug("cache miss for " + strconv.Quote(key))

	v, _, _ := r.flight.Do(string(req.CacheStrategy)+"\x00"+key, func() (any, error) {
		if res, ok := r.cache.Get(req); ok {
			return res, nil
		}
		res := r.compute(ctx, req)
		r.cache.Set(req, res)
		return res, nil
	})

	return v.(domain.Result)
}

// Locate returns the configuration file Resolve would load for req.
func (r *Resolver) Locate(ctx context.Context, req domain.Request) (string, error) {
	req = req.WithDefaults(r.getwd)

	_, span := r.tracer.Start(ctx, "tsconf.locate", ports.WithAttribute("cwd", req.Cwd))
	defer span.End()

	path, err := r.locator.Locate(req.Cwd, req.SearchName, req.FilePath)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	span.SetAttribute("path", path)
	return path, nil
}

// ClearCache drops every memoized result.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
	r.logger.Debug("result cache cleared")
}

func (r *Resolver) compute(ctx context.Context, req domain.Request) domain.Result {
	path, err := r.Locate(ctx, req)
	if err != nil {
		r.logger.Debug("no configuration found from " + req.Cwd)
		return &domain.NotFound{}
	}

	_, span := r.tracer.Start(ctx, "tsconf.extends",
		ports.WithAttribute("path", path),
		ports.WithAttribute("ignore_extends", req.IgnoreExtends),
	)
	defer span.End()

	visited := NewVisited(path)
	doc, err := r.chain.Resolve(path, visited, req.IgnoreExtends)
	if err != nil {
		span.RecordError(err)
		r.logger.Debug("invalid configuration at " + path)
		return &domain.InvalidConfig{Path: path}
	}

	extended := visited.Paths()
	span.SetAttribute("extended_paths", extended)

	return &domain.Success{
		Path:          path,
		Config:        doc,
		ExtendedPaths: extended,
		Fingerprint:   visited.Fingerprint(),
	}
}
