package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input holds nothing but whitespace.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the requested section is not in the document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for YAML documents.
// Untyped targets receive mappings as yaml.MapSlice so key order survives.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into target. The path selects a section using colon (:)
// as separator; an empty path decodes the whole document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, yaml.UseOrderedMap())
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, yaml.UseOrderedMap())
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath turns "api:permissions" into "$.api.permissions".
// Segments holding anything but letters, digits, '_' or '-' are quoted.
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	for i, part := range parts {
		if needsQuoting(part) {
			parts[i] = "'" + part + "'"
		}
	}

	return "$." + strings.Join(parts, ".")
}

func needsQuoting(segment string) bool {
	if segment == "" {
		return true
	}

	for _, r := range segment {
		isWord := r == '_' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !isWord {
			return true
		}
	}

	return false
}
