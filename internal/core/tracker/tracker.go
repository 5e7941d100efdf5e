package tracker

import (
	"fmt"
	"io"
	"sync"
	"time"

	"idlewatch/internal/core/model"
)

// InputSource installs input listeners. Each listener keeps delivering
// events until its disposer is closed.
type InputSource interface {
	ListenKeyboard(handler func(KeyEvent)) (io.Closer, error)
	ListenMouse(handler func()) (io.Closer, error)
}

// Tracker owns the last-activity timestamp and drives idle detection.
// It is safe for concurrent use.
type Tracker struct {
	// lifecycle serializes Start and Stop so a registration is always
	// fully torn down before the next one is installed.
	lifecycle sync.Mutex

	mu           sync.Mutex
	source       InputSource
	config       model.TrackerConfig
	lastActivity time.Time
	events       []chan Event
	session      *session
}

// session holds the registration for one start/stop cycle: the installed
// listener disposers and the poll loop's stop channel. At most one
// session is live at a time.
type session struct {
	stopCh  chan struct{}
	done    chan struct{}
	closers []io.Closer
}

// New creates a tracker reading input events from source. The initial
// last-activity time is the moment of construction.
func New(source InputSource) *Tracker {
	return &Tracker{
		source:       source,
		lastActivity: time.Now(),
	}
}

// Subscribe registers a new observer channel. Events that would block
// are dropped rather than stalling the tracker.
func (tracker *Tracker) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	tracker.mu.Lock()
	tracker.events = append(tracker.events, ch)
	tracker.mu.Unlock()
	return ch
}

// Start installs the input listeners and launches the poll loop with the
// given settings snapshot. Any prior registration is torn down first, so
// repeated calls never leave duplicate listeners or extra tickers behind.
func (tracker *Tracker) Start(config model.TrackerConfig) error {
	tracker.lifecycle.Lock()
	defer tracker.lifecycle.Unlock()

	tracker.teardown()

	config = config.Normalized()
	current := &session{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	keyboard, err := tracker.source.ListenKeyboard(func(event KeyEvent) {
		if QualifiesAsTyping(event.Key, event.Mods) {
			tracker.ResetActivity()
		}
	})
	if err != nil {
		return fmt.Errorf("install keyboard listener: %w", err)
	}
	current.closers = append(current.closers, keyboard)

	if config.IncludeMouse {
		mouse, err := tracker.source.ListenMouse(tracker.ResetActivity)
		if err != nil {
			_ = keyboard.Close()
			return fmt.Errorf("install mouse listener: %w", err)
		}
		current.closers = append(current.closers, mouse)
	}

	tracker.mu.Lock()
	tracker.config = config
	tracker.session = current
	tracker.emitLocked(Event{
		Type:  EventStateChange,
		State: StateActive,
		At:    time.Now(),
	})
	tracker.mu.Unlock()

	go tracker.run(current, config.CheckInterval)
	return nil
}

// Stop removes the listeners and cancels the poll loop. After it returns
// no further tick or input-triggered reset can be observed. Safe to call
// repeatedly; a stop with nothing registered is a no-op.
func (tracker *Tracker) Stop() {
	tracker.lifecycle.Lock()
	defer tracker.lifecycle.Unlock()
	tracker.teardown()
}

// ResetActivity records qualifying activity at the current instant and
// immediately notifies observers of the active state, without waiting
// for the next poll tick. Ignored when no registration is live.
func (tracker *Tracker) ResetActivity() {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if tracker.session == nil {
		return
	}
	now := time.Now()
	tracker.lastActivity = now
	tracker.emitLocked(Event{
		Type:  EventStateChange,
		State: StateActive,
		At:    now,
	})
}

// LastActivity returns the time of the most recent qualifying activity.
// Reading it does not count as activity.
func (tracker *Tracker) LastActivity() time.Time {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.lastActivity
}

// Running reports whether a listener registration is currently live.
func (tracker *Tracker) Running() bool {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.session != nil
}

// teardown retires the live session, detaches its listeners and waits
// for the poll loop to exit. Callers hold the lifecycle mutex but not
// the state mutex, so an in-flight input handler can still drain.
func (tracker *Tracker) teardown() {
	tracker.mu.Lock()
	retired := tracker.session
	tracker.session = nil
	tracker.mu.Unlock()

	if retired == nil {
		return
	}
	close(retired.stopCh)
	for _, closer := range retired.closers {
		_ = closer.Close()
	}
	retired.closers = nil
	<-retired.done
}

func (tracker *Tracker) run(current *session, interval time.Duration) {
	defer close(current.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-current.stopCh:
			return
		case tickTime := <-ticker.C:
			tracker.tick(current, tickTime)
		}
	}
}

// tick evaluates elapsed time against the threshold and reports the
// result. A tick racing with teardown sees a retired session and does
// nothing, so no report escapes after Stop returns.
func (tracker *Tracker) tick(current *session, now time.Time) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if tracker.session != current {
		return
	}

	elapsed := now.Sub(tracker.lastActivity)
	if elapsed < 0 {
		elapsed = 0
	}
	tracker.emitLocked(Event{
		Type:    EventProgress,
		State:   classify(elapsed, tracker.config.IdleThreshold),
		Elapsed: elapsed,
		At:      now,
	})
}

// classify maps elapsed inactivity to a state. Elapsed exactly equal to
// the threshold is still active.
func classify(elapsed, threshold time.Duration) State {
	if elapsed > threshold {
		return StateIdle
	}
	return StateActive
}

func (tracker *Tracker) emitLocked(event Event) {
	for _, ch := range tracker.events {
		select {
		case ch <- event:
		default:
		}
	}
}
