package toml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input holds nothing but whitespace.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the requested section is not in the document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotTable is returned when a section path points at a non-table value.
var ErrNotTable = errors.New("section is not a table")

// Parser implements config.Parser for TOML documents.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into target. The path selects a table using colon (:)
// as separator; an empty path decodes the whole document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := toml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	var doc map[string]any

	err := toml.Unmarshal(data, &doc)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	section, err := lookupTable(doc, path)
	if err != nil {
		return err
	}

	encoded, err := toml.Marshal(section)
	if err != nil {
		return fmt.Errorf("encoding section %q: %w", path, err)
	}

	err = toml.Unmarshal(encoded, target)
	if err != nil {
		return fmt.Errorf("decoding section %q: %w", path, err)
	}

	return nil
}

func lookupTable(doc map[string]any, path string) (map[string]any, error) {
	current := doc

	for _, key := range strings.Split(path, ":") {
		next, ok := current[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		table, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotTable, path)
		}

		current = table
	}

	return current, nil
}
