package parse

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher re-parses input files when they change on disk. Results are
// delivered through the OnResult callback.
type Watcher struct {
	engine    *Engine
	logger    *zap.Logger
	watcher   *fsnotify.Watcher
	dirs      []string
	isRunning bool

	// OnResult receives each re-parse outcome. Defaults to a log summary.
	OnResult func(FileResult)
}

// NewWatcher builds a Watcher over the given directories.
func NewWatcher(engine *Engine, logger *zap.Logger, dirs []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fs watcher: %w", err)
	}
	w := &Watcher{
		engine:  engine,
		logger:  logger,
		watcher: fsWatcher,
		dirs:    dirs,
	}
	w.OnResult = w.logResult
	return w, nil
}

// Start registers the directory trees and begins watching in a goroutine.
func (w *Watcher) Start() error {
	if w.isRunning {
		return fmt.Errorf("already watching")
	}

	for _, dir := range w.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("adding directory to watcher: %w", err)
		}
	}

	w.isRunning = true
	go w.loop()
	return nil
}

// Stop ends watching and releases the underlying watcher.
func (w *Watcher) Stop() error {
	w.isRunning = false
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for w.isRunning {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !w.engine.hasConfiguredExtension(event.Name) {
		return
	}

	// Editors often fire several writes in a row; settle before parsing.
	time.Sleep(100 * time.Millisecond)

	result, err := w.engine.RunFile(event.Name)
	if err != nil {
		w.logger.Error("re-parse failed", zap.String("file", event.Name), zap.Error(err))
		return
	}
	w.OnResult(result)
}

func (w *Watcher) logResult(result FileResult) {
	w.logger.Info("re-parsed",
		zap.String("file", result.Filename),
		zap.Int("nodes", len(result.Structure.Nodes)),
		zap.Int("members", len(result.Structure.Members)),
		zap.Int("supports", len(result.Structure.Supports)),
		zap.Int("dropped", result.Stats.Dropped),
		zap.Int("diagnostics", len(result.Diagnostics)),
	)
}
