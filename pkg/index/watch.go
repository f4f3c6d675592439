package index

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const rebuildDebounce = 250 * time.Millisecond

// Watcher rebuilds the index when files under the docs directory
// change, publishing each rebuild through the store.
type Watcher struct {
	store   *Store
	docsDir string
}

// NewWatcher creates a watcher bound to a store and docs directory.
func NewWatcher(store *Store, docsDir string) *Watcher {
	return &Watcher{store: store, docsDir: docsDir}
}

// Start begins watching until ctx is cancelled. Rebuilds are debounced
// so editor save bursts trigger a single rebuild.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := addRecursive(fsw, w.docsDir); err != nil {
		fsw.Close()
		return err
	}

	go w.loop(ctx, fsw)
	log.Infof("Watching %s for documentation changes", w.docsDir)
	return nil
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer func() {
		if err := fsw.Close(); err != nil {
			log.Errorf("Closing watcher: %v", err)
		}
	}()

	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if shouldIgnore(event) {
				continue
			}
			log.Debugf("Change detected: %s", filepath.Base(event.Name))

			// New subdirectories need their own watch.
			if event.Op&fsnotify.Create != 0 {
				if err := addRecursive(fsw, event.Name); err != nil {
					log.Debugf("Not watching %s: %v", event.Name, err)
				}
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(rebuildDebounce, w.rebuild)

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Errorf("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) rebuild() {
	root, err := Build(w.docsDir)
	if err != nil {
		log.Errorf("Rebuild after change failed: %v", err)
		return
	}
	w.store.Replace(root)
}

func shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return true
	}
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, ".tmp") || strings.HasSuffix(base, "~") {
		return true
	}
	return false
}

// addRecursive watches dir and every subdirectory below it. Passing a
// file path is not an error; it is simply skipped.
func addRecursive(fsw *fsnotify.Watcher, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
