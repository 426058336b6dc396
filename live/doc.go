// Package live keeps a config.Store that can be read concurrently and
// reloaded from its sources.
//
// config.Store itself has no locking. Holder adds the external mutual
// exclusion: readers go through Read, writers through Update, and Reload
// swaps in a freshly built Store. Watch uses fsnotify (via the file fetcher
// package) to reload when a source file changes.
//
// NewModule wires a Holder into an Fx application.
package live
