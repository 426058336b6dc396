// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read at construction time and cached; Fetch hands out copies
// of that snapshot. Picking up later edits is done by building a new Fetcher,
// typically from a Watch notification:
//
//	stop, err := file.Watch(ctx, "/etc/app/config.yaml", func(err error) {
//	    // rebuild the configuration
//	})
//
// Errors include the file path. A missing file wraps fs.ErrNotExist and a
// directory wraps ErrPathIsDirectory; the config package reports both as
// config.ErrSourceNotFound.
package file
