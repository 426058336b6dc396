package json

import (
	"bytes"
	"fmt"

	"github.com/tailscale/hujson"

	yamlparser "github.com/0xalexb/hjarta-conf/config/parser/yaml"
)

// ErrEmptyData is returned when the input holds nothing but whitespace.
var ErrEmptyData = yamlparser.ErrEmptyData

// ErrPathNotFound is returned when the requested section is not in the document.
var ErrPathNotFound = yamlparser.ErrPathNotFound

// Parser implements config.Parser for JSON and JSONC (JSON with comments and
// trailing commas) documents.
type Parser struct {
	yaml *yamlparser.Parser
}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{yaml: yamlparser.NewParser()}
}

// Parse standardizes data to plain JSON and decodes it with the YAML parser,
// which gives ordered maps and section paths for free.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	standard, err := hujson.Standardize(bytes.Clone(data))
	if err != nil {
		return fmt.Errorf("standardize error: %w", err)
	}

	return p.yaml.Parse(standard, target, path) //nolint:wrapcheck
}
