package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
	jsonparser "github.com/0xalexb/hjarta-conf/config/parser/json"
	tomlparser "github.com/0xalexb/hjarta-conf/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-conf/config/parser/yaml"
)

// Source pairs a fetcher with the parser that understands its data.
type Source struct {
	// Identifier names the source in errors and logs.
	Identifier string
	Fetcher    DataFetcher
	Parser     Parser
	// Section optionally selects a part of the document, using the
	// Parser path syntax.
	Section string
}

// ParserFor picks a parser from the identifier's extension.
//
//nolint:ireturn // callers only need the Parser behaviour
func ParserFor(identifier string) (Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(identifier)); ext {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	case ".json", ".jsonc":
		return jsonparser.NewParser(), nil
	case ".toml":
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q for %q", ErrInvalidFormat, ext, identifier)
	}
}

// FileSource builds a Source reading the file at identifier.
// The file is read once, at construction. Missing files and directories are
// reported as ErrSourceNotFound; other I/O failures are returned as they are.
func FileSource(identifier string) (Source, error) {
	if strings.TrimSpace(identifier) == "" {
		return Source{}, ErrEmptyIdentifier
	}

	fetcher, err := filefetcher.NewFetcher(identifier)()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, filefetcher.ErrPathIsDirectory) {
			return Source{}, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}

		return Source{}, fmt.Errorf("reading %q: %w", identifier, err)
	}

	parser, err := ParserFor(identifier)
	if err != nil {
		return Source{}, err
	}

	return Source{
		Identifier: identifier,
		Fetcher:    fetcher,
		Parser:     parser,
		Section:    "",
	}, nil
}

// Load fetches and parses src and merges the result into the store.
// Content that does not decode to a map is rejected with ErrInvalidFormat
// and leaves the store untouched.
func (s *Store) Load(src Source) error {
	if src.Fetcher == nil || src.Parser == nil {
		return fmt.Errorf("%w: %q", ErrIncompleteSource, src.Identifier)
	}

	data, err := src.Fetcher.Fetch()
	if err != nil {
		return fmt.Errorf("reading data error: %w", err)
	}

	var raw any

	err = src.Parser.Parse(data, &raw, src.Section)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %w", ErrInvalidFormat, src.Identifier, err)
	}

	tree := ValueOf(raw)
	if tree.Kind() != KindMap {
		return fmt.Errorf("%w: %q decodes to a %s, want a map", ErrInvalidFormat, src.Identifier, tree.Kind())
	}

	s.mergeRoot(tree)
	s.logger.Debug("configuration source loaded",
		slog.String("source", src.Identifier),
		slog.String("section", src.Section))

	return nil
}

// LoadFile loads the file at identifier, choosing the parser by extension.
func (s *Store) LoadFile(identifier string) error {
	src, err := FileSource(identifier)
	if err != nil {
		return err
	}

	return s.Load(src)
}
