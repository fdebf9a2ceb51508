// Package jsonc parses permissive JSON: comments, trailing commas and the
// JSON5 relaxations found in hand-written configuration files.
package jsonc

import (
	"encoding/json"

	"github.com/tidwall/jsonc"
	"github.com/titanous/json5"
	"go.trai.ch/tsconf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Parser = (*Parser)(nil)

// Parser implements ports.Parser. Input is first decoded as JSON with
// comments via tidwall/jsonc; anything that fails that is retried as JSON5
// (unquoted keys, single-quoted strings, hexadecimal numbers).
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into a JSON value. Objects become map[string]any.
func (p *Parser) Parse(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(jsonc.ToJSON(data), &v); err == nil {
		return v, nil
	}

	v = nil
	if err := json5.Unmarshal(data, &v); err != nil {
		return nil, zerr.Wrap(err, "invalid json")
	}
	return v, nil
}
