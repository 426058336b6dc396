package config

import (
	"log/slog"
	"regexp"
)

// NoValue is the default returned by Value for absent paths and the result of
// a whole-value reference to an absent path.
const NoValue = false

// Store is a hierarchical key-value configuration tree addressed by
// delimited paths.
//
// Store is not internally synchronized. Concurrent writers, or a writer
// running alongside readers, need external mutual exclusion.
type Store struct {
	root        Value
	delimiter   string
	reference   string
	placeholder *regexp.Regexp
	logger      *slog.Logger
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	options.SetDefaults()

	return &Store{
		root:        NewMap(),
		delimiter:   options.Delimiter,
		reference:   options.Reference,
		placeholder: placeholderPattern(options.Reference, options.Delimiter),
		logger:      options.Logger,
	}
}

// Delimiter returns the path segment separator.
func (s *Store) Delimiter() string {
	return s.delimiter
}

// Reference returns the reference and placeholder marker.
func (s *Store) Reference() string {
	return s.reference
}

// Join builds a path from segments using the store delimiter.
func (s *Store) Join(segments ...string) string {
	return joinPath(segments, s.delimiter)
}

// Get returns the value at path with references and placeholders expanded.
// If nothing meaningful exists at path, def is returned as given.
// Containers come back as map[string]any and []any copies owned by the caller.
func (s *Store) Get(path string, def any) any {
	value, ok := s.Lookup(path)
	if !ok {
		return def
	}

	return value
}

// Value is Get with NoValue as the default.
func (s *Store) Value(path string) any {
	return s.Get(path, NoValue)
}

// Lookup is Get without a default; ok reports whether path exists.
func (s *Store) Lookup(path string) (any, bool) {
	node, ok := s.Node(path)
	if !ok {
		return nil, false
	}

	return node.Interface(), true
}

// Node returns the expanded tree node at path.
func (s *Store) Node(path string) (Value, bool) {
	node, ok := navigate(s.root, splitPath(path, s.delimiter))
	if !ok {
		return Null(), false
	}

	return s.substitute(node), true
}

// Expand returns the whole tree with references and placeholders expanded.
func (s *Store) Expand() Value {
	return s.substitute(s.root)
}

// Set stores value at path, creating intermediate maps as needed and
// overwriting whatever was there. Setting nil keeps the key but makes Exist
// report false for it and everything below it.
func (s *Store) Set(path string, value any) bool {
	s.root = write(s.root, splitPath(path, s.delimiter), ValueOf(value))

	return true
}

// Exist reports whether a non-nil value is stored at path.
func (s *Store) Exist(path string) bool {
	return exists(s.root, splitPath(path, s.delimiter))
}

// Merge deep-merges incoming into the store. See merge for the rules.
func (s *Store) Merge(incoming map[string]any) {
	s.mergeRoot(ValueOf(incoming))
}

func (s *Store) mergeRoot(incoming Value) {
	s.root = merge(s.root, incoming)
	s.logger.Debug("configuration merged", slog.Int("keys", incoming.Len()))
}

// Tree returns a copy of the whole tree without any substitution applied.
// Keys set to nil are present with a nil value.
func (s *Store) Tree() map[string]any {
	tree, ok := s.root.Interface().(map[string]any)
	if !ok {
		return map[string]any{}
	}

	return tree
}

// Root returns the raw root node.
func (s *Store) Root() Value {
	return s.root
}

// Clone returns an independent Store with the same settings and contents.
func (s *Store) Clone() *Store {
	clone := *s

	return &clone
}
