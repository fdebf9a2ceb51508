package resolver

import (
	"bytes"

	"go.trai.ch/tsconf/internal/core/domain"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads one configuration file into a Document.
type Loader struct {
	fs     ports.FileSystem
	parser ports.Parser
}

// NewLoader creates a Loader.
func NewLoader(fs ports.FileSystem, parser ports.Parser) *Loader {
	return &Loader{
		fs:     fs,
		parser: parser,
	}
}

// Load reads and parses the file at path. It returns the document and the
// content it was parsed from, with any byte-order mark removed.
func (l *Loader) Load(path string) (domain.Document, []byte, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	value, err := l.parser.Parse(data)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, nil, zerr.With(domain.ErrConfigNotObject, "path", path)
	}

	return domain.Document(obj), data, nil
}
