// Package config provides a hierarchical key-value configuration store
// addressed by delimited paths such as "database.host".
//
// # Paths
//
// A path is split on the store delimiter (default "."). Missing intermediate
// nodes are created as maps by Set. List elements are addressed by their
// decimal index ("hosts.0"). An empty path is a single empty segment and
// only matches a root key named "".
//
// # Substitution
//
// Strings read through Get are expanded in two ways, using the reference
// marker (default "%"):
//
//	"%database.port%"              -> the value at database.port, type kept
//	"tcp://%db.host%:%db.port%"    -> placeholders replaced by their text form
//
// A whole-value reference is replaced by the raw node it names and is not
// expanded again; a placeholder whose path does not exist stays verbatim.
// Reference cycles are not detected.
//
// # Merging and loading
//
// Merge and Load deep-merge nested maps into the store: maps merge by key,
// scalars overwrite, lists concatenate. LoadFile picks a parser by file
// extension (YAML, JSON, JSONC, TOML) and reports ErrEmptyIdentifier,
// ErrSourceNotFound or ErrInvalidFormat.
//
// # Concurrency
//
// A Store is not safe for concurrent use when any goroutine writes. See the
// live package for a holder that serializes access and supports reloading.
package config
