package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store holds the active site content and swaps it when the override file
// changes. Readers never block.
type Store struct {
	loader  *Loader
	path    string
	current atomic.Pointer[Snapshot]

	reloadMu  sync.Mutex
	mu        sync.Mutex
	listeners []func(Content)
	recorder  ReloadRecorder
}

// Snapshot is one generation of content. Version increases with every
// successful reload.
type Snapshot struct {
	Content Content
	Version uint64
}

// ReloadRecorder is told about every reload attempt.
type ReloadRecorder interface {
	RecordContentReload(err error)
}

// NewStore creates a store. With an empty path the defaults are used and
// Reload and Watch do nothing. Otherwise the file must load cleanly.
func NewStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{loader: NewLoader(fs), path: path}
	if path == "" {
		s.current.Store(&Snapshot{Content: Default()})
		return s, nil
	}
	c, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	s.current.Store(&Snapshot{Content: c})
	slog.Info("Loaded site content", "path", path)
	return s, nil
}

// Snapshot returns the active content together with its version. Callers
// that key anything by version must take both from the same snapshot.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Current returns the active content. The returned value must be treated as
// read-only.
func (s *Store) Current() Content {
	return s.current.Load().Content
}

// Version increases every time new content is swapped in.
func (s *Store) Version() uint64 {
	return s.current.Load().Version
}

// Path returns the override file path, if any.
func (s *Store) Path() string {
	return s.path
}

// OnReload registers fn to be called with the new content after each
// successful reload.
func (s *Store) OnReload(fn func(Content)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SetRecorder installs r to observe reload outcomes.
func (s *Store) SetRecorder(r ReloadRecorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = r
}

// Reload re-reads the override file. On failure the previous content stays
// active and the error is returned.
func (s *Store) Reload() error {
	if s.path == "" {
		return nil
	}
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	c, err := s.loader.Load(s.path)

	s.mu.Lock()
	listeners := append([]func(Content){}, s.listeners...)
	recorder := s.recorder
	s.mu.Unlock()

	if recorder != nil {
		recorder.RecordContentReload(err)
	}
	if err != nil {
		return err
	}
	prev := s.current.Load()
	s.current.Store(&Snapshot{Content: c, Version: prev.Version + 1})

	for _, fn := range listeners {
		fn(c)
	}
	return nil
}

// Watch reloads the content whenever the override file is written or
// replaced. It blocks until ctx is cancelled. The parent directory is
// watched so editors that save via rename are picked up.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create content watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(s.path)
	slog.Debug("Watching site content for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(); err != nil {
				slog.Error("Failed to reload site content, keeping previous version", "path", target, "error", err)
				continue
			}
			slog.Info("Reloaded site content", "path", target, "version", s.Version())

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
