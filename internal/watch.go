package internal

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	tt "github.com/pystyle/pystyle/internal/types"
)

// debounceDelay groups rapid successive writes to the same file.
const debounceDelay = 100 * time.Millisecond

// Watcher re-checks Python files whenever they change on disk.
type Watcher struct {
	engine     *Engine
	logger     *zap.Logger
	watcher    *fsnotify.Watcher
	isWatching atomic.Bool
	report     func(filename string, issues []tt.Issue)
}

// NewWatcher creates a watcher over the given directories. The report
// callback receives the findings of every re-check.
func NewWatcher(engine *Engine, logger *zap.Logger, dirs []string, report func(string, []tt.Issue)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating watcher: %w", err)
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("error adding %s to watcher: %w", dir, err)
		}
	}
	return &Watcher{
		engine:  engine,
		logger:  logger,
		watcher: fsw,
		report:  report,
	}, nil
}

// Start begins watching. It returns immediately; events are handled in the
// background until Stop is called.
func (w *Watcher) Start() error {
	if !w.isWatching.CompareAndSwap(false, true) {
		return fmt.Errorf("already watching")
	}
	go w.watchLoop()
	return nil
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	if !w.isWatching.Swap(false) {
		w.logger.Info("not watching")
	}
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for w.isWatching.Load() {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, ".py") {
		return
	}
	// wait for a while after the change to consider multiple writes as one
	time.Sleep(debounceDelay)
	issues, err := w.engine.Run(event.Name)
	if err != nil {
		w.logger.Error("error re-checking file", zap.String("file", event.Name), zap.Error(err))
		if len(issues) == 0 {
			return
		}
	}
	w.report(event.Name, issues)
}
