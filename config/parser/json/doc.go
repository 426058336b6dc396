// Package json provides a JSON and JSONC parser implementation for the config
// package.
//
// Input is first standardized with github.com/tailscale/hujson, which strips
// comments and trailing commas, and then decoded by the YAML parser (JSON is
// a subset of YAML), so untyped targets keep key order and colon-separated
// section paths work the same way as for YAML.
package json
