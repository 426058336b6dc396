package config

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Parser defines an interface for parsing raw source data into a target.
//
// The path parameter selects a section of the document using colon (:) as
// the separator for nested keys. For example:
//   - "api:permissions" navigates to doc["api"]["permissions"]
//   - "" (empty path) means parse the entire document
//
// When target is a *any, implementations should produce nested maps, slices
// and scalars, preserving key order where the format allows it.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading raw source data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating decoded configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in decoded configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Decode copies the expanded value at path into target through a YAML round
// trip, so `yaml` struct tags apply. An empty path decodes the whole tree.
func (s *Store) Decode(path string, target any) error {
	var node Value

	if path == "" {
		node = s.Expand()
	} else {
		found, ok := s.Node(path)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		node = found
	}

	data, err := yaml.Marshal(node)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", path, err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	return nil
}

// Provider returns a function that decodes the section at path, sets
// defaults, and validates the result.
func Provider[T any](target *T, path string) func(*Store) (*T, error) {
	return func(store *Store) (*T, error) {
		err := store.Decode(path, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				store.logger.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
