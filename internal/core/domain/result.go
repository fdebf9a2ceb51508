package domain

// Reason explains why a resolution did not produce a configuration.
type Reason string

const (
	// ReasonNotFound means no configuration file could be located.
	ReasonNotFound Reason = "not-found"
	// ReasonInvalidConfig means a file was located but is not a valid configuration.
	ReasonInvalidConfig Reason = "invalid-config"
)

// Result is the outcome of a resolution. It is exactly one of *NotFound,
// *InvalidConfig or *Success.
type Result interface {
	// Exists reports whether a configuration was loaded.
	Exists() bool
	// Reason is empty for a success.
	Reason() Reason

	isResult()
}

// NotFound is returned when no file could be located by any lookup step.
type NotFound struct{}

// InvalidConfig is returned when the located file cannot be parsed into an object.
type InvalidConfig struct {
	// Path is the absolute path of the offending file.
	Path string
}

// Success carries the fully merged configuration.
type Success struct {
	// Path is the absolute path of the resolved configuration file.
	Path string
	// Config is the merged document. Callers must not modify it.
	Config Document
	// ExtendedPaths lists the ancestor files merged in, in traversal order.
	ExtendedPaths []string
	// Fingerprint digests the path and content of every file merged into Config.
	Fingerprint uint64
}

// Exists reports false.
func (*NotFound) Exists() bool { return false }

// Reason reports ReasonNotFound.
func (*NotFound) Reason() Reason { return ReasonNotFound }

func (*NotFound) isResult() {}

// Exists reports false.
func (*InvalidConfig) Exists() bool { return false }

// Reason reports ReasonInvalidConfig.
func (*InvalidConfig) Reason() Reason { return ReasonInvalidConfig }

func (*InvalidConfig) isResult() {}

// Exists reports true.
func (*Success) Exists() bool { return true }

// Reason is always empty for a success.
func (*Success) Reason() Reason { return "" }

func (*Success) isResult() {}
