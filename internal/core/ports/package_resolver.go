package ports

// PackageResolver maps a package name to a path on disk using module
// resolution semantics.
//
//go:generate mockgen -source=package_resolver.go -destination=mocks/mock_package_resolver.go -package=mocks
type PackageResolver interface {
	// ResolvePackage resolves name starting from basedir. The returned path is
	// absolute and may name a file or a directory. It returns
	// domain.ErrPackageNotFound when nothing matches.
	ResolvePackage(name, basedir string) (string, error)
}
