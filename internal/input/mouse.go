package input

import (
	"io"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
)

// How often the global cursor position is sampled for movement.
const mouseSampleInterval = 250 * time.Millisecond

// mouseWatcher reports global mouse movement by diffing the cursor
// position between samples.
type mouseWatcher struct {
	stopCh   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// WatchMouse starts a cursor-position watcher that invokes handler once
// per sample in which the pointer moved. Close the returned disposer to
// stop sampling.
func WatchMouse(interval time.Duration, handler func()) io.Closer {
	if interval <= 0 {
		interval = mouseSampleInterval
	}
	watcher := &mouseWatcher{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go watcher.run(interval, handler)
	return watcher
}

// Close stops the watcher and waits for the sampling loop to exit, so no
// handler call can arrive after Close returns.
func (watcher *mouseWatcher) Close() error {
	watcher.stopOnce.Do(func() {
		close(watcher.stopCh)
	})
	<-watcher.done
	return nil
}

func (watcher *mouseWatcher) run(interval time.Duration, handler func()) {
	defer close(watcher.done)

	lastX, lastY := robotgo.Location()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-watcher.stopCh:
			return
		case <-ticker.C:
			x, y := robotgo.Location()
			if x != lastX || y != lastY {
				lastX, lastY = x, y
				handler()
			}
		}
	}
}
