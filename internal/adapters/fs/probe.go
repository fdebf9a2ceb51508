// Package fs provides the filesystem probe used to locate and read configuration files.
package fs

import (
	"github.com/spf13/afero"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*Probe)(nil)

// Probe implements ports.FileSystem on top of an afero.Fs.
type Probe struct {
	fs afero.Fs
}

// NewProbe creates a Probe backed by the operating system filesystem.
func NewProbe() *Probe {
	return NewProbeWithFs(afero.NewOsFs())
}

// NewProbeWithFs creates a Probe over the given filesystem. Tests pass an
// afero.MemMapFs.
func NewProbeWithFs(fsys afero.Fs) *Probe {
	return &Probe{fs: fsys}
}

// Exists reports whether anything exists at path.
func (p *Probe) Exists(path string) bool {
	ok, err := afero.Exists(p.fs, path)
	return err == nil && ok
}

// IsDir reports whether path is a directory.
func (p *Probe) IsDir(path string) bool {
	ok, err := afero.IsDir(p.fs, path)
	return err == nil && ok
}

// IsFile reports whether path is a regular file.
func (p *Probe) IsFile(path string) bool {
	info, err := p.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadFile reads the whole file at path.
func (p *Probe) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}
