package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/0xalexb/hjarta-conf/config"
	filefetcher "github.com/0xalexb/hjarta-conf/config/fetcher/file"
)

// ErrNilBuilder is returned when a Holder is created without a Builder.
var ErrNilBuilder = errors.New("builder must not be nil")

// Builder produces a fully loaded Store.
type Builder func() (*config.Store, error)

// FromFiles returns a Builder that loads the given files, in order, into a
// new Store.
func FromFiles(files []string, opts ...config.Option) Builder {
	return func() (*config.Store, error) {
		store := config.New(opts...)

		for _, file := range files {
			err := store.LoadFile(file)
			if err != nil {
				return nil, fmt.Errorf("loading %q: %w", file, err)
			}
		}

		return store, nil
	}
}

// Holder owns the current Store and serializes access to it.
// Reload builds a fresh Store and swaps it in; merging into the old one
// would concatenate lists a second time.
type Holder struct {
	mu       sync.RWMutex
	reloadMu sync.Mutex
	store    *config.Store
	build    Builder
	logger   *slog.Logger
}

// NewHolder builds the initial Store.
func NewHolder(build Builder, logger *slog.Logger) (*Holder, error) {
	if build == nil {
		return nil, ErrNilBuilder
	}

	if logger == nil {
		logger = slog.Default()
	}

	store, err := build()
	if err != nil {
		return nil, fmt.Errorf("building configuration: %w", err)
	}

	return &Holder{
		store:  store,
		build:  build,
		logger: logger,
	}, nil
}

// Read calls fn with the current Store while holding a read lock.
// fn must not modify the Store or keep it after returning.
func (h *Holder) Read(fn func(*config.Store)) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	fn(h.store)
}

// Update calls fn with the current Store while holding the write lock.
func (h *Holder) Update(fn func(*config.Store)) {
	h.mu.Lock()
	defer h.mu.Unlock()

	fn(h.store)
}

// Snapshot returns an independent copy of the current Store.
func (h *Holder) Snapshot() *config.Store {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.store.Clone()
}

// Reload rebuilds the Store. On failure the current Store is kept.
func (h *Holder) Reload() error {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()

	store, err := h.build()
	if err != nil {
		h.logger.Error("configuration reload failed", slog.Any("error", err))

		return fmt.Errorf("reloading configuration: %w", err)
	}

	h.mu.Lock()
	h.store = store
	h.mu.Unlock()

	h.logger.Info("configuration reloaded")

	return nil
}

// Watch reloads whenever one of files changes, until ctx is done or the
// returned stop function is called.
func (h *Holder) Watch(ctx context.Context, files []string) (func() error, error) {
	stops := make([]func() error, 0, len(files))

	stopAll := func() error {
		var errs []error

		for _, stop := range stops {
			errs = append(errs, stop())
		}

		return errors.Join(errs...)
	}

	for _, file := range files {
		stop, err := filefetcher.Watch(ctx, file, func(watchErr error) {
			if watchErr != nil {
				h.logger.Warn("configuration watch error", slog.String("file", file), slog.Any("error", watchErr))

				return
			}

			h.logger.Debug("configuration file changed", slog.String("file", file))

			_ = h.Reload()
		})
		if err != nil {
			_ = stopAll()

			return nil, fmt.Errorf("watching %q: %w", file, err)
		}

		stops = append(stops, stop)
	}

	return stopAll, nil
}
