// Package app implements the application layer for tsconf.
package app

import (
	"context"
	"log/slog"

	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	resolver ports.ConfigResolver
	logger   ports.Logger
}

// New creates a new App instance.
func New(resolver ports.ConfigResolver, log ports.Logger) *App {
	return &App{
		resolver: resolver,
		logger:   log,
	}
}

// ResolveOptions carries the request fields shared by every directory.
type ResolveOptions struct {
	SearchName    string
	FilePath      string
	CacheStrategy domain.CacheStrategy
	IgnoreExtends bool
}

// Outcome pairs a requested directory with its result.
type Outcome struct {
	Dir    string
	Result domain.Result
}

// LogOptions controls log output.
type LogOptions struct {
	JSON    bool
	Verbose bool
}

// logConfigurer is implemented by loggers that can switch format and level.
type logConfigurer interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
}

// ConfigureLogging applies opts when the logger supports it.
func (a *App) ConfigureLogging(opts LogOptions) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}

	lc.SetJSON(opts.JSON)
	if opts.Verbose {
		lc.SetLevel(slog.LevelDebug)
	}
}

// Resolve resolves every directory concurrently. Outcomes keep the order of
// dirs; an empty dirs resolves the process working directory.
//
// Each failed resolution is logged and domain.ErrResolutionFailed is
// returned alongside the complete outcome list.
func (a *App) Resolve(ctx context.Context, dirs []string, opts ResolveOptions) ([]Outcome, error) {
	if len(dirs) == 0 {
		dirs = []string{""}
	}

	outcomes := make([]Outcome, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			outcomes[i] = Outcome{
				Dir:    dir,
				Result: a.resolver.Resolve(gctx, opts.request(dir)),
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := false
	for _, o := range outcomes {
		switch res := o.Result.(type) {
		case *domain.Success:
			continue
		case *domain.InvalidConfig:
			a.logger.Error(zerr.With(zerr.With(domain.ErrResolutionFailed, "reason", string(res.Reason())), "path", res.Path))
		default:
			a.logger.Error(zerr.With(zerr.With(domain.ErrResolutionFailed, "reason", string(res.Reason())), "cwd", o.Dir))
		}
		failed = true
	}

	if failed {
		return outcomes, domain.ErrResolutionFailed
	}
	return outcomes, nil
}

// Locate returns the configuration file that would be loaded for dir.
func (a *App) Locate(ctx context.Context, dir string, opts ResolveOptions) (string, error) {
	path, err := a.resolver.Locate(ctx, opts.request(dir))
	if err != nil {
		return "", zerr.Wrap(err, "failed to locate configuration")
	}
	return path, nil
}

func (o ResolveOptions) request(dir string) domain.Request {
	return domain.Request{
		Cwd:           dir,
		SearchName:    o.SearchName,
		FilePath:      o.FilePath,
		CacheStrategy: o.CacheStrategy,
		IgnoreExtends: o.IgnoreExtends,
	}
}
