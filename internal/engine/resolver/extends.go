package resolver

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
)

// Visited is the ordered set of ancestor paths met during one resolution.
// It doubles as the cycle guard and as the provenance returned to callers.
// The starting file is a member but is not reported by Paths.
type Visited struct {
	start  string
	order  []string
	seen   map[string]struct{}
	digest *xxhash.Digest
}

// NewVisited creates a set seeded with the starting file.
func NewVisited(start string) *Visited {
	return &Visited{
		start:  start,
		seen:   map[string]struct{}{start: {}},
		digest: xxhash.New(),
	}
}

// Add appends path and reports whether it was not yet present.
func (v *Visited) Add(path string) bool {
	if _, ok := v.seen[path]; ok {
		return false
	}
	v.seen[path] = struct{}{}
	v.order = append(v.order, path)
	return true
}

// Contains reports whether path is the starting file or an ancestor already met.
func (v *Visited) Contains(path string) bool {
	_, ok := v.seen[path]
	return ok
}

// Paths returns the ancestors in order of first encounter.
func (v *Visited) Paths() []string {
	return append([]string{}, v.order...)
}

// Fingerprint digests the path and content of every file loaded so far.
func (v *Visited) Fingerprint() uint64 {
	return v.digest.Sum64()
}

func (v *Visited) record(path string, data []byte) {
	_, _ = v.digest.WriteString(path)
	_, _ = v.digest.Write([]byte{0})
	_, _ = v.digest.Write(data)
	_, _ = v.digest.Write([]byte{0})
}

// Chain resolves a configuration file together with everything it extends.
type Chain struct {
	loader   *Loader
	fs       ports.FileSystem
	packages ports.PackageResolver
	logger   ports.Logger
	platform Platform
}

// NewChain creates a Chain classifying references with the native path syntax.
func NewChain(loader *Loader, fs ports.FileSystem, packages ports.PackageResolver, logger ports.Logger) *Chain {
	return &Chain{
		loader:   loader,
		fs:       fs,
		packages: packages,
		logger:   logger,
		platform: PlatformNative,
	}
}

// Resolve loads path and merges its ancestors into it.
//
// Only a failure to load path itself is returned. Ancestors that fail to
// load are merged as empty documents, and a package reference that cannot
// be resolved leaves the document as it is.
func (c *Chain) Resolve(path string, visited *Visited, ignoreExtends bool) (domain.Document, error) {
	doc, data, err := c.loader.Load(path)
	if err != nil {
		return nil, err
	}
	visited.record(path, data)

	ref, ok := doc.Extends()
	if !ok || ignoreExtends {
		return doc, nil
	}

	ancestor, reference, ok := c.ancestor(path, ref)
	if !ok {
		return doc, nil
	}

	if !visited.Add(ancestor) {
		c.logger.Debug("extends cycle stopped at " + ancestor)
		return doc, nil
	}
	c.logger.Debug("extending " + path + " from " + ancestor)

	base, err := c.Resolve(ancestor, visited, ignoreExtends)
	if err != nil {
		c.logger.Warn("ancestor " + ancestor + " could not be loaded and is treated as empty: " + err.Error())
		base = domain.Document{}
	}

	if url, ok := base.BaseURL(); ok && !Classify(url, c.platform).IsAbsolute {
		base = base.WithBaseURL(filepath.Join(filepath.Dir(reference), url))
	}

	return domain.Merge(base, doc), nil
}

// ancestor maps an extends reference found in path to the ancestor file. The
// second result is the reference the ancestor's base URL is relative to: the
// reference as written for paths, the resolved file for packages.
func (c *Chain) ancestor(path, ref string) (string, string, bool) {
	info := Classify(ref, c.platform)

	if info.IsPackage {
		resolved, err := c.packages.ResolvePackage(ref, filepath.Dir(path))
		if err != nil {
			c.logger.Warn("extends " + ref + " in " + path + " could not be resolved and is ignored")
			return "", "", false
		}

		switch {
		case c.fs.IsDir(resolved):
			resolved = filepath.Join(resolved, domain.DefaultSearchName)
		case c.fs.IsFile(resolved):
		case c.fs.IsFile(resolved + domain.JSONExtension):
			resolved += domain.JSONExtension
		}
		return resolved, resolved, true
	}

	if !strings.HasSuffix(ref, domain.JSONExtension) {
		ref += domain.JSONExtension
	}
	if info.IsAbsolute {
		return filepath.Clean(ref), ref, true
	}
	return filepath.Join(filepath.Dir(path), ref), ref, true
}
