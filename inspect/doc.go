// Package inspect exposes a live configuration over HTTP.
//
// Routes:
//
//	GET  /config            whole tree, references left as written
//	GET  /config/{path...}  expanded value at path, 404 when absent
//	HEAD /config/{path...}  200 when path exists, 404 otherwise
//	POST /reload            rebuild from sources, 204 or 500
//
// URL segments after /config/ are joined with the store delimiter, so with
// the default "." both /config/db/host and /config/db.host address the same
// entry.
package inspect
