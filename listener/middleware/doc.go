// Package middleware holds the net/http middleware the listener puts in front
// of every handler: request IDs, access logging, panic recovery and an
// optional token-bucket rate limit built on golang.org/x/time/rate.
package middleware
