// Package watch reports changes to Java source files, coalescing bursts of
// file system events into one batch of paths.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("lst.watch")

const DefaultDebounce = 200 * time.Millisecond

// Watcher watches directories and single files for writes to .java files.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
	files     map[string]bool
	dirs      map[string]bool
	changes   chan []string
	done      chan struct{}
}

func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fsWatcher: fsw,
		debounce:  debounce,
		files:     make(map[string]bool),
		dirs:      make(map[string]bool),
		changes:   make(chan []string, 1),
		done:      make(chan struct{}),
	}, nil
}

// Add watches paths. A directory is watched with all its subdirectories,
// skipping hidden ones; a file is watched through its parent directory.
func (w *Watcher) Add(paths ...string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		if !info.IsDir() {
			w.files[filepath.Clean(path)] = true
			if err := w.addDir(filepath.Dir(path), false); err != nil {
				return err
			}
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil || !info.IsDir() {
				return err
			}
			if p != path && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return w.addDir(p, true)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) addDir(dir string, all bool) error {
	dir = filepath.Clean(dir)
	if all {
		w.dirs[dir] = true
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	return nil
}

// Start begins delivering batches of changed files, sorted by path.
func (w *Watcher) Start() <-chan []string {
	go w.loop()
	return w.changes
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	pending := make(map[string]bool)
	fire := func() <-chan time.Time {
		if timer != nil {
			return timer.C
		}
		return nil
	}

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			pending[filepath.Clean(event.Name)] = true
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-fire():
			timer = nil
			if len(pending) == 0 {
				continue
			}
			batch := make([]string, 0, len(pending))
			for p := range pending {
				batch = append(batch, p)
			}
			sort.Strings(batch)
			pending = make(map[string]bool)
			log.Debugf("%d files changed", len(batch))
			select {
			case w.changes <- batch:
			case <-w.done:
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warningf("watch error: %s", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if filepath.Ext(name) != ".java" {
		return false
	}
	return w.files[name] || w.dirs[filepath.Dir(name)]
}
