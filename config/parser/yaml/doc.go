// Package yaml provides a YAML parser implementation for the config package.
//
// Decoding uses github.com/goccy/go-yaml. Untyped targets (*any) receive
// mappings as yaml.MapSlice, which the config store turns into ordered maps.
// A colon-separated section path (e.g. "api:permissions") is converted to a
// goccy PathString ("$.api.permissions") and only that node is decoded.
//
//	parser := yaml.NewParser()
//	var raw any
//	err := parser.Parse(data, &raw, "")
package yaml
