// Package tsconf resolves the effective tsconfig.json of a project.
//
// A configuration file is located from a working directory, parsed with
// comments and trailing commas allowed, and merged with every file it
// extends. Resolution never fails: the result is one of *NotFound,
// *InvalidConfig or *Success.
//
//	res := tsconf.Resolve(ctx, tsconf.Options{Cwd: "packages/app"})
//	if s, ok := res.(*tsconf.Success); ok {
//		fmt.Println(s.Path, s.Config.CompilerOptions()["target"])
//	}
package tsconf

import (
	"context"
	"io"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/tsconf/internal/adapters/cache"
	"go.trai.ch/tsconf/internal/adapters/fs"
	"go.trai.ch/tsconf/internal/adapters/jsonc"
	"go.trai.ch/tsconf/internal/adapters/logger"
	"go.trai.ch/tsconf/internal/adapters/npm"
	"go.trai.ch/tsconf/internal/adapters/telemetry"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/engine/resolver"
)

// CacheStrategy selects how results are memoized across calls.
type CacheStrategy = domain.CacheStrategy

// Cache strategies.
const (
	CacheNever     = domain.CacheNever
	CacheAlways    = domain.CacheAlways
	CacheDirectory = domain.CacheDirectory
)

// Reason explains why no configuration was produced.
type Reason = domain.Reason

// Failure reasons.
const (
	ReasonNotFound      = domain.ReasonNotFound
	ReasonInvalidConfig = domain.ReasonInvalidConfig
)

type (
	// Result is one of *NotFound, *InvalidConfig or *Success.
	Result = domain.Result
	// NotFound means no configuration file was located.
	NotFound = domain.NotFound
	// InvalidConfig means the located file could not be parsed into an object.
	InvalidConfig = domain.InvalidConfig
	// Success carries the merged configuration.
	Success = domain.Success
	// Document is a parsed configuration object.
	Document = domain.Document
)

// ParseCacheStrategy converts a strategy name such as "directory".
func ParseCacheStrategy(name string) (CacheStrategy, error) {
	return domain.ParseCacheStrategy(name)
}

// Options describes one resolution. Every field is optional.
type Options struct {
	// Cwd is the directory (or file) to resolve from. Defaults to the
	// process working directory.
	Cwd string
	// SearchName is the filename searched for. Defaults to "tsconfig.json".
	SearchName string
	// FilePath names the configuration explicitly, relative to Cwd. Prefix a
	// package name with "npm:" to load it from node_modules.
	FilePath string
	// CacheStrategy defaults to CacheNever, or CacheAlways with FilePath.
	CacheStrategy CacheStrategy
	// IgnoreExtends returns the file without merging its ancestors.
	IgnoreExtends bool
}

// Logger receives diagnostics about lookup and extends resolution.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}

// Option configures a Resolver.
type Option func(*config)

type config struct {
	fs     afero.Fs
	logger Logger
}

// WithFs resolves against fsys instead of the operating system.
func WithFs(fsys afero.Fs) Option {
	return func(c *config) {
		c.fs = fsys
	}
}

// WithLogger sends diagnostics to log. By default they are discarded.
func WithLogger(log Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}

// Resolver resolves configurations and owns a result cache.
// It is safe for concurrent use.
type Resolver struct {
	engine *resolver.Resolver
}

// New creates a Resolver with its own empty cache.
func New(opts ...Option) *Resolver {
	cfg := &config{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		l := logger.New().(*logger.Logger)
		l.SetOutput(io.Discard)
		cfg.logger = l
	}

	probe := fs.NewProbeWithFs(cfg.fs)
	return &Resolver{
		engine: resolver.New(
			probe,
			jsonc.NewParser(),
			npm.NewResolver(probe),
			cache.NewStore(),
			telemetry.NewOTelTracer(telemetry.InstrumentationName),
			cfg.logger,
		),
	}
}

// Resolve returns the merged configuration described by opts.
func (r *Resolver) Resolve(ctx context.Context, opts Options) Result {
	return r.engine.Resolve(ctx, opts.request())
}

// Locate returns the path of the file Resolve would load.
func (r *Resolver) Locate(ctx context.Context, opts Options) (string, error) {
	return r.engine.Locate(ctx, opts.request())
}

// ClearCache drops every cached result.
func (r *Resolver) ClearCache() {
	r.engine.ClearCache()
}

func (o Options) request() domain.Request {
	return domain.Request{
		Cwd:           o.Cwd,
		SearchName:    o.SearchName,
		FilePath:      o.FilePath,
		CacheStrategy: o.CacheStrategy,
		IgnoreExtends: o.IgnoreExtends,
	}
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return New()
})

// Resolve resolves opts with the process-wide default Resolver, whose cache
// persists across calls until ClearCache.
func Resolve(ctx context.Context, opts Options) Result {
	return defaultResolver().Resolve(ctx, opts)
}

// ClearCache empties the cache of the process-wide default Resolver.
func ClearCache() {
	defaultResolver().ClearCache()
}
