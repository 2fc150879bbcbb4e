package asset

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cache entries when the backing media files change on
// disk, so edited assets show up on their next request without a restart.
// Cache mutation happens on the caller's thread: the host loop calls Sync
// once per frame to apply pending changes.
type Watcher struct {
	watcher *fsnotify.Watcher
	cache   *Cache
	base    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch begins watching dirs for media file changes against cache. Changed
// files are invalidated under their path relative to base, which must match
// the keys callers pass to the cache.
func Watch(cache *Cache, base string, dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		cache:   cache,
		base:    base,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isMediaFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Sync applies pending file changes to the cache. Call once per frame from
// the thread that owns the cache.
func (w *Watcher) Sync() {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			w.invalidate(path)
		default:
			return
		}
	}
}

// invalidate drops the changed file under every key callers may have used
// for it: the raw path and the path relative to the base directory.
func (w *Watcher) invalidate(path string) {
	w.cache.Invalidate(filepath.ToSlash(path))
	if rel, err := filepath.Rel(w.base, path); err == nil && !strings.HasPrefix(rel, "..") {
		w.cache.Invalidate(filepath.ToSlash(rel))
	}
}

func isMediaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".wav", ".ogg", ".ttf", ".otf":
		return true
	}
	return false
}
