package config

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long a tracked file must stay quiet before its
// change is reported.
const DebounceInterval = 100 * time.Millisecond

type FileKind int

const (
	OtherFile FileKind = iota
	ConfigFile
	ScriptFile
)

// KindOf classifies path by extension.
func KindOf(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ConfigFile
	case ".tengo":
		return ScriptFile
	}
	return OtherFile
}

func IsConfigFile(path string) bool { return KindOf(path) == ConfigFile }

func IsScriptFile(path string) bool { return KindOf(path) == ScriptFile }

// Change is one settled edit of a tracked file.
type Change struct {
	Path string
	Kind FileKind
}

// Watcher reports edits to a set of config and script files. A burst of
// writes to one file, as editors do on save, is reported once after it ends.
type Watcher struct {
	Changes chan Change
	Errors  chan error

	fs *fsnotify.Watcher

	mu    sync.Mutex
	files map[string]FileKind
	dirs  map[string]bool

	stop      context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// NewWatcher tracks files. Their directories are watched so that editors
// which replace a file on save are still seen.
func NewWatcher(files ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	ctx, stop := context.WithCancel(context.Background())
	w := &Watcher{
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		fs:      fsw,
		files:   make(map[string]FileKind),
		dirs:    make(map[string]bool),
		stop:    stop,
		done:    make(chan struct{}),
	}
	for _, f := range files {
		if err := w.Track(f); err != nil {
			stop()
			_ = fsw.Close()
			return nil, err
		}
	}
	go w.run(ctx)
	return w, nil
}

// Track adds a config or script file to the watch.
func (w *Watcher) Track(path string) error {
	kind := KindOf(path)
	if kind == OtherFile {
		return fmt.Errorf("config: watch %s: not a config or script file", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("config: watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = kind
	return nil
}

func (w *Watcher) kind(path string) (FileKind, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return OtherFile, false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	k, ok := w.files[abs]
	return k, ok
}

// Close stops the watch and closes Changes and Errors.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.stop()
		w.closeErr = w.fs.Close()
		<-w.done
		close(w.Changes)
		close(w.Errors)
	})
	return w.closeErr
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	pending := make(map[string]FileKind)
	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			kind, ok := w.kind(ev.Name)
			if !ok {
				continue
			}
			abs, _ := filepath.Abs(ev.Name)
			pending[abs] = kind
			settle = time.After(DebounceInterval)
		case <-settle:
			settle = nil
			for _, p := range slices.Sorted(maps.Keys(pending)) {
				select {
				case w.Changes <- Change{Path: p, Kind: pending[p]}:
				case <-ctx.Done():
					return
				}
			}
			clear(pending)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		}
	}
}
