// Package npm resolves package references the way Node's module resolution does.
package npm

import (
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageResolver = (*Resolver)(nil)

// manifestEntryFields are the package.json fields consulted, in order, when a
// package resolves to a directory.
var manifestEntryFields = []string{"tsconfig", "main"}

// Resolver implements ports.PackageResolver by walking up node_modules directories.
type Resolver struct {
	fs ports.FileSystem
}

// NewResolver creates a Resolver probing the given filesystem.
func NewResolver(fsys ports.FileSystem) *Resolver {
	return &Resolver{fs: fsys}
}

// ResolvePackage resolves name (optionally with a subpath, e.g.
// "@scope/pkg/tsconfig.base") starting at basedir and moving up one directory
// at a time until the filesystem root.
func (r *Resolver) ResolvePackage(name, basedir string) (string, error) {
	if name == "" {
		return "", packageNotFound(name, basedir)
	}

	dir := filepath.Clean(basedir)
	for {
		if filepath.Base(dir) != domain.NodeModulesDirName {
			candidate := filepath.Join(dir, domain.NodeModulesDirName, filepath.FromSlash(name))
			if path, ok := r.probe(candidate); ok {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", packageNotFound(name, basedir)
}

func packageNotFound(name, basedir string) error {
	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, ""), "package", name)
	return zerr.With(err, "basedir", basedir)
}

// probe checks one node_modules candidate: the exact file, the file with a
// known extension, then the package directory itself.
func (r *Resolver) probe(candidate string) (string, bool) {
	if r.fs.IsFile(candidate) {
		return candidate, true
	}

	for _, ext := range []string{domain.JSONExtension, domain.JSExtension} {
		if r.fs.IsFile(candidate + ext) {
			return candidate + ext, true
		}
	}

	if !r.fs.IsDir(candidate) {
		return "", false
	}

	if entry, ok := r.manifestEntry(candidate); ok {
		return entry, true
	}

	return candidate, true
}

// manifestEntry reads the package manifest in dir and returns the first entry
// field that points at an existing file.
func (r *Resolver) manifestEntry(dir string) (string, bool) {
	data, err := r.fs.ReadFile(filepath.Join(dir, domain.PackageManifestName))
	if err != nil || !gjson.ValidBytes(data) {
		return "", false
	}

	for _, field := range manifestEntryFields {
		value := gjson.GetBytes(data, field)
		if value.Type != gjson.String || value.Str == "" {
			continue
		}

		entry := filepath.Join(dir, filepath.FromSlash(value.Str))
		if r.fs.IsFile(entry) {
			return entry, true
		}
		if r.fs.IsFile(entry + domain.JSONExtension) {
			return entry + domain.JSONExtension, true
		}
	}

	return "", false
}
