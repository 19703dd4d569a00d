// Package watch re-runs a callback when data or template files change.
package watch

import (
	"context"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period collected before a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// DefaultExtensions are the file types that trigger a rebuild.
var DefaultExtensions = []string{".json", ".yaml", ".yml", ".html"}

// Config configures a Watcher.
type Config struct {
	Dirs       []string
	Debounce   time.Duration
	Extensions []string // empty means DefaultExtensions
	Ignore     []string // base names that never trigger, e.g. generated files
	Logger     *zap.Logger
}

// Watcher collects file changes under a set of directories and reports them
// in debounced batches.
type Watcher struct {
	config  Config
	watcher *fsnotify.Watcher
	logger  *zap.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op // path → most recent operation
}

// New creates a watcher over cfg.Dirs and their subdirectories.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Watcher{
		config:  cfg,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]fsnotify.Op),
	}
	for _, dir := range cfg.Dirs {
		if err := w.addRecursive(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Run blocks until ctx is cancelled, calling fn with the sorted paths changed
// in each debounced batch. Errors returned by fn are logged; the watch goes on.
func (w *Watcher) Run(ctx context.Context, fn func(ctx context.Context, changed []string) error) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(w.config.Debounce)
	defer ticker.Stop()

	w.logger.Info("watching for changes", zap.Strings("dirs", w.config.Dirs), zap.Duration("debounce", w.config.Debounce))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-ticker.C:
			changed := w.flush()
			if len(changed) == 0 {
				continue
			}
			w.logger.Info("change detected", zap.Strings("paths", changed))
			if err := fn(ctx, changed); err != nil {
				w.logger.Error("rebuild failed", zap.Error(err))
			}
		}
	}
}

// Watch runs fn on every batch of changes under dirs until ctx is cancelled.
func Watch(ctx context.Context, cfg Config, fn func(ctx context.Context, changed []string) error) error {
	w, err := New(cfg)
	if err != nil {
		return err
	}
	return w.Run(ctx, fn)
}

// addRecursive watches root and every non-hidden directory below it.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return err
		}
		w.logger.Debug("watching directory", zap.String("path", path))
		return nil
	})
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.addRecursive(path); err != nil {
				w.logger.Warn("failed to watch new directory", zap.String("path", path), zap.Error(err))
			}
			return
		}
	}
	if event.Op == fsnotify.Chmod || !w.relevant(path) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = event.Op
	w.pendingMu.Unlock()

	w.logger.Debug("file change detected", zap.String("path", path), zap.String("op", event.Op.String()))
}

// relevant reports whether a change to path should trigger a rebuild.
func (w *Watcher) relevant(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || slices.Contains(w.config.Ignore, base) {
		return false
	}
	return slices.Contains(w.config.Extensions, strings.ToLower(filepath.Ext(base)))
}

// flush returns and clears the pending paths.
func (w *Watcher) flush() []string {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	changed := slices.Sorted(maps.Keys(w.pending))
	w.pending = make(map[string]fsnotify.Op)
	return changed
}
