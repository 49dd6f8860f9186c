package clientgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// DefaultDebounce collapses bursts of file events into one run.
const DefaultDebounce = 500 * time.Millisecond

// Watcher re-runs generation whenever a watched source changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool // watched files; their directories are watched
	dirs     map[string]bool // directories watched as a whole
	ignore   string          // events under this directory are dropped
	debounce time.Duration
	onChange func(ctx context.Context) error

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches paths, which may be files or directories. Files are
// watched through their parent directory so editors that replace files on
// save are still seen. Events under ignoreDir (the output directory) never
// trigger a run.
func NewWatcher(paths []string, ignoreDir string, onChange func(ctx context.Context) error) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.NewInvalidInputError("nothing to watch")
	}
	if onChange == nil {
		return nil, errors.NewInvalidInputError("no change handler given")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	if ignoreDir != "" {
		w.ignore, _ = filepath.Abs(ignoreDir)
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		info, err := os.Stat(abs)
		if err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", p)
		}
		dir := abs
		if info.IsDir() {
			w.dirs[abs] = true
		} else {
			w.files[abs] = true
			dir = filepath.Dir(abs)
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
	}
	return w, nil
}

// SetDebounce overrides DefaultDebounce.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run blocks until ctx is done, calling the change handler after each
// debounced burst of relevant events. Handler errors are logged, not fatal.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if !w.relevant(event.Name) {
				continue
			}
			logger.Debugw("watched source changed", logger.FieldFile, event.Name, "op", event.Op.String())
			w.schedule(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

func (w *Watcher) relevant(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	if w.ignore != "" && (abs == w.ignore || strings.HasPrefix(abs, w.ignore+string(filepath.Separator))) {
		return false
	}
	if w.files[abs] {
		return true
	}
	return w.dirs[filepath.Dir(abs)]
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if ctx.Err() != nil {
			return
		}
		if err := w.onChange(ctx); err != nil {
			logger.Errorw("regeneration failed", logger.FieldError, err)
		}
	})
}
