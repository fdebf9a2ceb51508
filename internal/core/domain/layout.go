package domain

const (
	// DefaultSearchName is the configuration filename searched for when none is given.
	DefaultSearchName = "tsconfig.json"

	// JSONExtension is appended to extends references that lack it.
	JSONExtension = ".json"

	// JSExtension is probed by the package resolver after JSONExtension.
	JSExtension = ".js"

	// PackageMarker prefixes an explicit file path that names a package.
	PackageMarker = "npm:"

	// NodeModulesDirName is the directory searched by the package resolver.
	NodeModulesDirName = "node_modules"

	// PackageManifestName is the package manifest consulted for directory packages.
	PackageManifestName = "package.json"

	// ExtendsKey is the top-level key holding the extends reference.
	ExtendsKey = "extends"

	// CompilerOptionsKey is the nested options mapping that receives key-level merging.
	CompilerOptionsKey = "compilerOptions"

	// BaseURLKey is the path-valued compiler option rewritten across the extends chain.
	BaseURLKey = "baseUrl"
)
