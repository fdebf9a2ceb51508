// export_test.go exports private functions for white-box testing.
package logger

// ErrorEntry exposes the fields of an errorEntry for assertions.
type ErrorEntry = errorEntry

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Message returns the entry's own message.
func (e ErrorEntry) Message() string { return e.message }

// Metadata returns the entry's metadata.
func (e ErrorEntry) Metadata() map[string]any { return e.metadata }
