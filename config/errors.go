package config

import "errors"

// ErrEmptyIdentifier is returned when a source identifier is blank.
var ErrEmptyIdentifier = errors.New("empty source identifier")

// ErrSourceNotFound is returned when a source identifier does not resolve.
var ErrSourceNotFound = errors.New("source not found")

// ErrInvalidFormat is returned when source content is not a nested map.
var ErrInvalidFormat = errors.New("invalid format")

// ErrIncompleteSource is returned when a Source lacks a fetcher or a parser.
var ErrIncompleteSource = errors.New("source requires a fetcher and a parser")

// ErrPathNotFound is returned by Decode when nothing exists at the path.
var ErrPathNotFound = errors.New("path not found")
