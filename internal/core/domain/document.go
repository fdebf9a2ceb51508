package domain

// Document is a parsed configuration object. Values are whatever encoding/json
// produces for an object: nested maps are map[string]any.
//
// A Document handed out in a result is never mutated again; merges always
// build a new Document.
type Document map[string]any

// Extends returns the extends reference if the document declares a non-empty
// string one.
func (d Document) Extends() (string, bool) {
	ref, ok := d[ExtendsKey].(string)
	if !ok || ref == "" {
		return "", false
	}
	return ref, true
}

// CompilerOptions returns the nested options mapping, or nil when it is absent
// or not an object.
func (d Document) CompilerOptions() map[string]any {
	opts, _ := d[CompilerOptionsKey].(map[string]any)
	return opts
}

// BaseURL returns the compiler options base URL if it is a non-empty string.
func (d Document) BaseURL() (string, bool) {
	url, ok := d.CompilerOptions()[BaseURLKey].(string)
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// WithBaseURL returns a copy of d whose compiler options carry the given base
// URL. The receiver and its options mapping are left untouched.
func (d Document) WithBaseURL(url string) Document {
	opts := make(map[string]any, len(d.CompilerOptions())+1)
	for k, v := range d.CompilerOptions() {
		opts[k] = v
	}
	opts[BaseURLKey] = url

	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	out[CompilerOptionsKey] = opts
	return out
}

// Merge layers child over base. Top-level keys of child replace those of base
// entirely, except the compiler options mapping, which is merged key by key
// with child winning. Neither argument is modified.
func Merge(base, child Document) Document {
	out := make(Document, len(base)+len(child))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}

	baseOpts, childOpts := base.CompilerOptions(), child.CompilerOptions()
	opts := make(map[string]any, len(baseOpts)+len(childOpts))
	for k, v := range baseOpts {
		opts[k] = v
	}
	for k, v := range childOpts {
		opts[k] = v
	}
	out[CompilerOptionsKey] = opts

	return out
}
