// File: iniconf/watch.go
package iniconf

import (
	"context"
	"os"
	"time"
)

// Timing constants for file watching.
const (
	// MinPollInterval is the hard floor for file stat polling.
	MinPollInterval = 100 * time.Millisecond
	// DefaultPollInterval is the standard file monitoring frequency.
	DefaultPollInterval = time.Second
	// DefaultDebounce is the file change coalescence period.
	DefaultDebounce = 500 * time.Millisecond
)

// WatchOptions configures file watching behavior.
type WatchOptions struct {
	// PollInterval for file stat checks (minimum 100ms)
	PollInterval time.Duration

	// Debounce duration to avoid reloading mid-write
	Debounce time.Duration
}

// DefaultWatchOptions returns sensible defaults for file watching.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

// watcher tracks one file's identity between polls.
type watcher struct {
	path        string
	opts        WatchOptions
	lastModTime time.Time
	lastSize    int64
	stores      chan Store
	errs        chan error
}

// Watch re-parses path whenever it changes on disk and delivers each new
// Store on the first returned channel. Parse and stat failures go to the
// second channel and do not stop the watch; files are often observed
// mid-edit.
//
// Watching stops when ctx is cancelled; both channels are closed then.
// Deliveries are best-effort: if the subscriber is not keeping up, an
// update is dropped in favor of a later one.
//
// Watch fails up front if path cannot be stat'ed at all.
func Watch(ctx context.Context, path string, opts WatchOptions) (<-chan Store, <-chan error, error) {
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}

	w := &watcher{
		path:        path,
		opts:        opts,
		lastModTime: info.ModTime(),
		lastSize:    info.Size(),
		stores:      make(chan Store, 1),
		errs:        make(chan error, 1),
	}
	go w.run(ctx)

	return w.stores, w.errs, nil
}

func (w *watcher) run(ctx context.Context) {
	defer close(w.stores)
	defer close(w.errs)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !w.poll(ctx) {
				return
			}
		}
	}
}

// poll checks for a change and reloads after it settles. Returns false when
// ctx was cancelled.
func (w *watcher) poll(ctx context.Context) bool {
	info, err := os.Stat(w.path)
	if err != nil {
		w.reportErr(&IOError{Path: w.path, Err: err})
		return true
	}
	if info.ModTime().Equal(w.lastModTime) && info.Size() == w.lastSize {
		return true
	}

	// Let rapid successive writes settle before reloading.
	select {
	case <-ctx.Done():
		return false
	case <-time.After(w.opts.Debounce):
	}

	info, err = os.Stat(w.path)
	if err != nil {
		w.reportErr(&IOError{Path: w.path, Err: err})
		return true
	}
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()

	store, err := ReadFile(w.path)
	if err != nil {
		w.reportErr(err)
		return true
	}

	select {
	case w.stores <- store:
	default:
		// Subscriber is behind; drop this update.
	}
	return true
}

func (w *watcher) reportErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
