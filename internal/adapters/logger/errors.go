package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches the Message() method of *zerr.Error, which reports
// the error's own message without the wrapped chain.
type messager interface {
	Message() string
}

// metadataer matches the Metadata() method of *zerr.Error.
type metadataer interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of zerr errors. The first error that
// is not a zerr error ends the walk and contributes its full Error() text.
// Layers without a message of their own hand their metadata to the next one.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			pending = nil
			break
		}

		metadata := pending
		if md, ok := current.(metadataer); ok && len(md.Metadata()) > 0 {
			metadata = mergeMetadata(metadata, md.Metadata())
		}

		if m.Message() == "" {
			pending = metadata
			continue
		}
		pending = nil

		// Layers added by zerr.With repeat the message of the error they decorate.
		if n := len(entries); n > 0 && entries[n-1].message == m.Message() {
			entries[n-1].metadata = mergeMetadata(entries[n-1].metadata, metadata)
			continue
		}
		entries = append(entries, errorEntry{message: m.Message(), metadata: metadata})
	}

	if len(entries) == 0 {
		entries = append(entries, errorEntry{message: err.Error(), metadata: pending})
	}

	return entries
}

// mergeMetadata copies src keys missing from dst into a fresh map.
func mergeMetadata(dst, src map[string]any) map[string]any {
	if len(src) == 0 {
		return dst
	}

	out := maps.Clone(dst)
	if out == nil {
		out = make(map[string]any, len(src))
	}
	for k, v := range src {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}

// formatErrorEntries renders the entries as an "Error:" headline followed by
// a "Caused by:" list. Metadata keys are printed sorted below their message.
func formatErrorEntries(entries []errorEntry) string {
	lines := make([]string, 0, len(entries)*2)

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")

		prefix, indent := "    → ", "      "
		if i == 0 {
			prefix, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
