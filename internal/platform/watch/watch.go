// Package watch reports edits to level files so a running game can reload them.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/prince-of-oliver/internal/level/formats"
)

// Debounce is how long a file must stay quiet before it is reported.
// Editors often write a file several times per save.
const Debounce = 100 * time.Millisecond

// Watcher watches level files and directories. Events carries the path of a
// changed level file; both channels are closed after Close.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool // Watched single files; empty when watching dirs only
	Events  chan string
	Errors  chan error
	fired   chan string // Paths whose debounce timer ran out
	done    chan struct{}
	once    sync.Once
}

// New watches each path. A file path is watched through its directory so
// that rename-on-save editors keep working; a directory path reports every
// level file inside it.
func New(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		info, err := os.Stat(abs)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		dir := abs
		if !info.IsDir() {
			files[abs] = true
			dir = filepath.Dir(abs)
		} else {
			dirs[abs] = true
		}
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		fired:   make(chan string),
		done:    make(chan struct{}),
	}
	if len(dirs) == 0 {
		w.files = files
	}
	go w.run()
	return w, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) wants(name string) bool {
	if !formats.IsSupported(name) {
		return false
	}
	if len(w.files) == 0 {
		return true
	}
	abs, err := filepath.Abs(name)
	return err == nil && w.files[abs]
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.wants(event.Name) {
				continue
			}
			if t, ok := pending[event.Name]; ok && t.Reset(Debounce) {
				continue
			}
			pending[event.Name] = w.after(event.Name)

		case name := <-w.fired:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.done:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}

		case <-w.done:
			return
		}
	}
}

// after reports name once it has been quiet for Debounce.
func (w *Watcher) after(name string) *time.Timer {
	return time.AfterFunc(Debounce, func() {
		select {
		case w.fired <- name:
		case <-w.done:
		}
	})
}
