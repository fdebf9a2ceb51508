package resolver

import (
	"path/filepath"
	"strings"

	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator finds the single configuration file a request refers to.
type Locator struct {
	fs       ports.FileSystem
	packages ports.PackageResolver
}

// NewLocator creates a Locator.
func NewLocator(fs ports.FileSystem, packages ports.PackageResolver) *Locator {
	return &Locator{
		fs:       fs,
		packages: packages,
	}
}

// Locate returns the absolute path of the configuration file for cwd.
//
// An explicit path is authoritative: if it does not lead to a file the result
// is domain.ErrConfigNotFound without any directory search. A non-default
// searchName is only looked up in cwd. The default name is searched upward
// from cwd to the filesystem root.
func (l *Locator) Locate(cwd, searchName, explicit string) (string, error) {
	if searchName == "" {
		searchName = domain.DefaultSearchName
	}

	switch {
	case explicit != "":
		return l.locateExplicit(cwd, searchName, explicit)
	case searchName != domain.DefaultSearchName:
		return l.locateNamed(cwd, searchName)
	default:
		return l.walkUp(cwd)
	}
}

func (l *Locator) locateExplicit(cwd, searchName, explicit string) (string, error) {
	var candidate string

	if name, ok := strings.CutPrefix(explicit, domain.PackageMarker); ok {
		resolved, err := l.packages.ResolvePackage(name, cwd)
		if err != nil {
			return "", zerr.With(notFound("file", explicit), "reason", err.Error())
		}

		switch {
		case l.fs.IsDir(resolved):
			candidate = filepath.Join(resolved, searchName)
		case l.fs.IsFile(resolved):
			candidate = resolved
		default:
			candidate = resolved + domain.JSONExtension
		}
	} else {
		candidate = l.join(cwd, explicit)
		if l.fs.IsDir(candidate) {
			candidate = filepath.Join(candidate, searchName)
		}
	}

	if !l.fs.IsFile(candidate) {
		return "", notFound("file", candidate)
	}
	return candidate, nil
}

func (l *Locator) locateNamed(cwd, searchName string) (string, error) {
	candidate := l.join(cwd, searchName)
	if l.fs.IsDir(candidate) {
		candidate = filepath.Join(candidate, domain.DefaultSearchName)
	}

	if !l.fs.IsFile(candidate) {
		return "", notFound("file", candidate)
	}
	return candidate, nil
}

func (l *Locator) walkUp(cwd string) (string, error) {
	if l.fs.IsFile(cwd) {
		return filepath.Clean(cwd), nil
	}

	dir := filepath.Clean(cwd)
	for {
		candidate := filepath.Join(dir, domain.DefaultSearchName)
		if l.fs.IsFile(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", notFound("cwd", cwd)
		}
		dir = parent
	}
}

// join resolves ref against base unless ref is already rooted.
func (l *Locator) join(base, ref string) string {
	if Classify(ref, PlatformNative).IsAbsolute {
		return filepath.Clean(ref)
	}
	return filepath.Join(base, ref)
}

// notFound keeps domain.ErrConfigNotFound as the cause so errors.Is matches
// through the attached metadata.
func notFound(key, value string) error {
	return zerr.With(zerr.Wrap(domain.ErrConfigNotFound, ""), key, value)
}
