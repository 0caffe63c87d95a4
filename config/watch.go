package config

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// ChangeKind tells the game what to reload for a changed file.
type ChangeKind int

const (
	ChangeSettings ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSettings:
		return "settings"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one reload-worthy file event.
type Change struct {
	Path string
	Kind ChangeKind
}

// classify maps a path to the reload it triggers.
func classify(path string) (ChangeKind, bool) {
	switch {
	case IsSettingsFile(path):
		return ChangeSettings, true
	case IsScriptFile(path):
		return ChangeScript, true
	default:
		return 0, false
	}
}

// debouncer drops repeated events for the same path inside window. Editors
// often write a file several times per save.
type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, last: make(map[string]time.Time)}
}

func (d *debouncer) allow(path string, now time.Time) bool {
	if t, ok := d.last[path]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[path] = now
	return true
}

const reloadOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// toChange filters a raw fsnotify event down to a Change.
func toChange(event fsnotify.Event, d *debouncer, now time.Time) (Change, bool) {
	if event.Op&reloadOps == 0 {
		return Change{}, false
	}
	kind, ok := classify(event.Name)
	if !ok || !d.allow(event.Name, now) {
		return Change{}, false
	}
	return Change{Path: event.Name, Kind: kind}, true
}

// Watcher reports settings and script files that changed on disk. The game
// drains it once per frame with Poll.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	errs    chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fs,
		changes: make(chan Change, 16),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.forward(newDebouncer(reloadDebounce))
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
	})
	return err
}

// Poll returns the changes seen since the last call without blocking.
func (w *Watcher) Poll() []Change {
	var out []Change
	for {
		select {
		case c := <-w.changes:
			out = append(out, c)
		default:
			return out
		}
	}
}

// Err returns the most recent watcher error, if any, without blocking.
func (w *Watcher) Err() error {
	select {
	case err := <-w.errs:
		return err
	default:
		return nil
	}
}

func (w *Watcher) forward(d *debouncer) {
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			c, ok := toChange(event, d, time.Now())
			if !ok {
				continue
			}
			select {
			case w.changes <- c:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func IsSettingsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func IsScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
