package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/hjarta-conf/config"
)

const formatJSON = "json"

// Get prints the expanded value at a path.
type Get struct {
	Format  string `default:"yaml" enum:"yaml,json" help:"Output format for containers." short:"o"`
	Default string `help:"Printed when the path does not exist."`

	Path string `arg:"" help:"Delimited path to read."`
}

// Run executes the get command.
func (g *Get) Run(env *Env) error {
	store, err := env.Load()
	if err != nil {
		return err
	}

	node, ok := store.Node(g.Path)
	if !ok {
		if g.Default == "" {
			return fmt.Errorf("%w: %s", ErrAbsent, g.Path)
		}

		_, err = fmt.Fprintln(env.Out, g.Default)

		return err //nolint:wrapcheck
	}

	if !node.IsContainer() {
		_, err = fmt.Fprintln(env.Out, node.Interface())

		return err //nolint:wrapcheck
	}

	return write(env.Out, g.Format, node)
}

// Exist reports whether a path holds a value.
type Exist struct {
	Path string `arg:"" help:"Delimited path to test."`
}

// Run executes the exist command.
func (e *Exist) Run(env *Env) error {
	store, err := env.Load()
	if err != nil {
		return err
	}

	found := store.Exist(e.Path)

	_, err = fmt.Fprintln(env.Out, found)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrAbsent, e.Path)
	}

	return nil
}

// Dump prints the whole configuration.
type Dump struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format." short:"o"`
	Expand bool   `help:"Expand references and placeholders."`
}

// Run executes the dump command.
func (d *Dump) Run(env *Env) error {
	store, err := env.Load()
	if err != nil {
		return err
	}

	tree := store.Root()
	if d.Expand {
		tree = store.Expand()
	}

	return write(env.Out, d.Format, tree)
}

// Set stores a value and prints the resulting configuration.
// The value is read as a YAML scalar or flow collection, so "8080" is a
// number and "[a, b]" a list.
type Set struct {
	Format string `default:"yaml" enum:"yaml,json" help:"Output format." short:"o"`

	Path  string `arg:"" help:"Delimited path to write."`
	Value string `arg:"" help:"Value to store."`
}

// Run executes the set command.
func (s *Set) Run(env *Env) error {
	store, err := env.Load()
	if err != nil {
		return err
	}

	var value any

	err = yaml.UnmarshalWithOptions([]byte(s.Value), &value, yaml.UseOrderedMap())
	if err != nil {
		value = s.Value
	}

	store.Set(s.Path, value)

	return write(env.Out, s.Format, store.Root())
}

func write(w io.Writer, format string, tree config.Value) error {
	var (
		out []byte
		err error
	)

	switch format {
	case formatJSON:
		out, err = json.MarshalIndent(tree, "", "  ")
		out = append(out, '\n')
	default:
		out, err = yaml.Marshal(tree)
	}

	if err != nil {
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck
}
