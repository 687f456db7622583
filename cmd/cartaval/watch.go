package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch calls recheck with the changed subset of paths until ctx is done.
// Directories are watched rather than files so that editors which replace
// files on save are still seen. Bursts of events are coalesced over the
// configured debounce interval.
func (a *app) watch(ctx context.Context, paths []string, recheck func(changed []string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = p
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	a.logger.Debug("watching", "files", len(paths), "dirs", len(dirs))

	pending := make(map[string]bool)
	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			p, tracked := watched[filepath.Clean(ev.Name)]
			if !tracked || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)) {
				continue
			}
			pending[p] = true
			if timer == nil {
				timer = time.NewTimer(a.cfg.Debounce)
			} else {
				timer.Reset(a.cfg.Debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			sort.Strings(changed)
			a.logger.Debug("files changed", "files", changed)
			recheck(changed)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", "error", err)
		}
	}
}
