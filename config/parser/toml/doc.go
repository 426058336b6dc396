// Package toml provides a TOML parser implementation for the config package,
// built on github.com/pelletier/go-toml/v2.
//
// TOML tables decode into map[string]any, so key order is not preserved;
// the config store sorts such keys. Section paths are colon-separated and
// must point at a table.
package toml
