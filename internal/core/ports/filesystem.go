// Package ports defines the core interfaces for the application.
package ports

// FileSystem is the file probing collaborator used by lookup and loading.
// Probes never fail: an unreadable path simply does not exist.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether anything exists at path.
	Exists(path string) bool
	// IsDir reports whether path is a directory.
	IsDir(path string) bool
	// IsFile reports whether path is a regular file.
	IsFile(path string) bool
	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)
}
