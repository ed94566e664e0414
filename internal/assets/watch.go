package assets

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/nightreef/internal/logger"
)

// Watcher reports writes to tracked asset files. Each change evicts the
// file from the manager's cache before it is delivered.
type Watcher struct {
	m   *Manager
	w   *fsnotify.Watcher
	log *zap.Logger

	mu      sync.Mutex
	tracked map[string]string // absolute path -> asset name
	dirs    map[string]bool

	changes chan string
	done    chan struct{}
}

// Watch starts a watcher for the manager's files.
func (m *Manager) Watch() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	aw := &Watcher{
		m:       m,
		w:       w,
		log:     logger.Named("assets"),
		tracked: make(map[string]string),
		dirs:    make(map[string]bool),
		changes: make(chan string, 64),
		done:    make(chan struct{}),
	}
	go aw.loop()
	return aw, nil
}

// Track starts watching an asset by name.
func (aw *Watcher) Track(name string) error {
	full, err := aw.m.Resolve(name)
	if err != nil {
		return err
	}
	full, err = filepath.Abs(full)
	if err != nil {
		return fmt.Errorf("watching %s: %w", name, err)
	}

	aw.mu.Lock()
	defer aw.mu.Unlock()

	aw.tracked[full] = name
	dir := filepath.Dir(full)
	if aw.dirs[dir] {
		return nil
	}
	if err := aw.w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	aw.dirs[dir] = true
	return nil
}

// Changes delivers the names of modified assets.
func (aw *Watcher) Changes() <-chan string {
	return aw.changes
}

// Close stops the watcher.
func (aw *Watcher) Close() error {
	err := aw.w.Close()
	<-aw.done
	return err
}

func (aw *Watcher) loop() {
	defer close(aw.done)
	for {
		select {
		case ev, ok := <-aw.w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			aw.handle(ev.Name)
		case err, ok := <-aw.w.Errors:
			if !ok {
				return
			}
			aw.log.Warn("watch error", zap.Error(err))
		}
	}
}

func (aw *Watcher) handle(path string) {
	full, err := filepath.Abs(path)
	if err != nil {
		return
	}
	aw.mu.Lock()
	name, ok := aw.tracked[full]
	aw.mu.Unlock()
	if !ok {
		return
	}

	aw.m.Invalidate(name)
	select {
	case aw.changes <- name:
		aw.log.Debug("asset changed", zap.String("name", name))
	default:
		aw.log.Warn("dropping asset change, queue full", zap.String("name", name))
	}
}
