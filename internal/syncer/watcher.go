package syncer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
)

// Watcher keeps the docs tree continuously translated: filesystem events on
// source-language files trigger a debounced sync, and a periodic full rescan
// catches anything the event stream missed.
type Watcher struct {
	syncer         *Syncer
	watcher        *fsnotify.Watcher
	scheduler      gocron.Scheduler
	sourceSuffix   string
	debounceTime   time.Duration
	rescanInterval time.Duration
	trigger        chan struct{}
}

// NewWatcher creates a watcher over the syncer's docs dir. rescanInterval
// of zero disables the periodic rescan.
func NewWatcher(s *Syncer, rescanInterval time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Watcher{
		syncer:         s,
		watcher:        fsWatcher,
		scheduler:      scheduler,
		sourceSuffix:   "." + s.cfg.DefaultLanguage + ".md",
		debounceTime:   2 * time.Second, // coalesce editor save bursts
		rescanInterval: rescanInterval,
		trigger:        make(chan struct{}, 1),
	}, nil
}

// Start runs an initial sync and then blocks, reacting to filesystem events
// and scheduled rescans until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	defer func() {
		_ = w.watcher.Close()
		if err := w.scheduler.Shutdown(); err != nil {
			slog.Warn("Failed to shut down scheduler", "error", err)
		}
	}()

	if err := w.addRecursive(w.syncer.cfg.DocsDir); err != nil {
		return err
	}

	if w.rescanInterval > 0 {
		_, err := w.scheduler.NewJob(
			gocron.DurationJob(w.rescanInterval),
			gocron.NewTask(w.requestSync),
			gocron.WithName("docs-rescan"),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule rescan job: %w", err)
		}
		w.scheduler.Start()
	}

	slog.Info("Watching docs tree",
		"docs_dir", w.syncer.cfg.DocsDir,
		"rescan_interval", w.rescanInterval)

	go w.watchLoop(ctx)

	// Initial pass so a fresh tree converges without waiting for events.
	w.requestSync()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.trigger:
			w.drainDebounce(ctx)
			if _, err := w.syncer.Run(ctx); err != nil && ctx.Err() == nil {
				slog.Error("Sync run failed", "error", err)
			}
		}
	}
}

// requestSync marks a sync as pending; multiple requests coalesce.
func (w *Watcher) requestSync() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// drainDebounce waits out the debounce window, absorbing further triggers.
func (w *Watcher) drainDebounce(ctx context.Context) {
	timer := time.NewTimer(w.debounceTime)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.trigger:
			// absorbed
		case <-timer.C:
			return
		}
	}
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("File watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		// New directories must be watched too.
		if err := w.addRecursive(event.Name); err != nil {
			slog.Debug("Not watching new path", "path", event.Name, "error", err)
		}
	}

	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Remove) {
		return
	}
	if !strings.HasSuffix(event.Name, w.sourceSuffix) {
		return
	}

	slog.Debug("Source file changed", "path", event.Name, "op", event.Op.String())
	w.requestSync()
}

// addRecursive watches path and, when it is a directory, every directory
// below it. Non-directories are ignored.
func (w *Watcher) addRecursive(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
		return nil
	})
}
