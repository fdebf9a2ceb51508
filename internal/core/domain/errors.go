package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no configuration file could be located.
	ErrConfigNotFound = zerr.New("could not find configuration file")

	// ErrConfigReadFailed is returned when a located configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when a configuration file is not valid JSON-with-comments.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotObject is returned when a configuration file parses to something other than an object.
	ErrConfigNotObject = zerr.New("config file does not contain an object")

	// ErrPackageNotFound is returned when a package reference cannot be resolved from node_modules.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrInvalidCacheStrategy is returned when a cache strategy name is not recognized.
	ErrInvalidCacheStrategy = zerr.New("invalid cache strategy, expected 'never', 'always' or 'directory'")

	// ErrQueryNoMatch is returned by the CLI when a --get path matches nothing.
	ErrQueryNoMatch = zerr.New("query did not match any value")

	// ErrUnsupportedFormat is returned by the CLI for an unknown --format value.
	ErrUnsupportedFormat = zerr.New("unsupported output format, expected 'json' or 'yaml'")

	// ErrResolutionFailed is returned by the CLI when a resolution does not produce a configuration.
	ErrResolutionFailed = zerr.New("configuration resolution failed")
)
