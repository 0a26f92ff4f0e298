package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/philipp01105/nlogfacade/levels"
)

// ReloadFunc is called after every reload attempt. cfg is nil when err
// is not.
type ReloadFunc func(cfg *Config, err error)

// WatchOption configures a Watcher.
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
	onReload ReloadFunc
}

// WithDebounce sets how long the file must be quiet before a reload
// (default: 100ms).
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// WithOnReload registers fn to observe reloads and watch errors. fn must
// not call Stop.
func WithOnReload(fn ReloadFunc) WatchOption {
	return func(o *watchOptions) {
		o.onReload = fn
	}
}

// Watcher reloads the levels of a configuration file into a level set
// whenever the file changes. Other settings are not reapplied.
type Watcher struct {
	path     string
	set      *levels.Set
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload ReloadFunc

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// Watch starts watching path and storing its levels into set. The
// directory is watched rather than the file, so editors that replace
// the file on save are followed. A file that fails to load leaves set
// unchanged.
func Watch(path string, set *levels.Set, opts ...WatchOption) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if set == nil {
		return nil, errors.New("config: nil level set")
	}
	if _, err := detectFormat(path); err != nil {
		return nil, err
	}

	options := &watchOptions{debounce: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(options)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "config: create watcher")
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		return nil, multierr.Append(errors.Wrapf(err, "config: watch %s", dir), fsw.Close())
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		set:      set,
		watcher:  fsw,
		debounce: options.debounce,
		onReload: options.onReload,
		ctx:      ctx,
		cancel:   cancel,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Reload loads the file now and stores its levels.
func (w *Watcher) Reload() error {
	cfg, err := Load(w.path)
	if err == nil {
		var set *levels.Set
		if set, err = cfg.LevelSet(); err == nil {
			w.set.Store(set.Mask())
		}
	}
	if err != nil {
		cfg = nil
	}
	if w.onReload != nil {
		w.onReload(cfg, err)
	}
	return err
}

// Stop stops watching. Pending reloads are cancelled and a running one
// is waited for.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	filename := filepath.Base(w.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onReload != nil {
				w.onReload(nil, errors.Wrap(err, "config: watch"))
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.debounced)
}

// debounced runs a reload unless Stop got there first. Stop waits for a
// reload that has started.
func (w *Watcher) debounced() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	_ = w.Reload()
}
