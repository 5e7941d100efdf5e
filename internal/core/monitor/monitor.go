// Package monitor coordinates the activity tracker with the settings
// snapshot, applying edits and persisting them.
package monitor

import (
	"log"
	"strconv"
	"strings"
	"time"

	"idlewatch/internal/core/model"
	"idlewatch/internal/core/report"
	"idlewatch/internal/ui/preferences"
)

// Tracker is the slice of the activity tracker the monitor drives.
type Tracker interface {
	Start(config model.TrackerConfig) error
	Stop()
	LastActivity() time.Time
}

// Store persists a settings snapshot.
type Store interface {
	Save(settings preferences.Settings) error
}

// StoreFunc adapts a function to the Store interface.
type StoreFunc func(settings preferences.Settings) error

// Save calls the wrapped function.
func (save StoreFunc) Save(settings preferences.Settings) error {
	return save(settings)
}

// Monitor holds the current settings snapshot and routes edits to the
// tracker and the settings store. Saves are fire-and-forget: the tracker
// keeps serving while a write is in flight.
type Monitor struct {
	tracker  Tracker
	store    Store
	settings preferences.Settings
	onChange func(preferences.Settings)
}

// New creates a monitor around a tracker and a settings store.
func New(tracker Tracker, store Store, settings preferences.Settings) *Monitor {
	return &Monitor{
		tracker:  tracker,
		store:    store,
		settings: settings,
	}
}

// SetOnChange registers a hook invoked with each new settings snapshot.
func (monitor *Monitor) SetOnChange(hook func(preferences.Settings)) {
	monitor.onChange = hook
}

// Settings returns the current snapshot.
func (monitor *Monitor) Settings() preferences.Settings {
	return monitor.settings
}

// Start launches the tracker with the current settings.
func (monitor *Monitor) Start() error {
	return monitor.tracker.Start(monitor.settings.TrackerConfig())
}

// Stop shuts the tracker down.
func (monitor *Monitor) Stop() {
	monitor.tracker.Stop()
}

// LastActivityNotice renders the on-demand last-activity line using the
// current clock preference.
func (monitor *Monitor) LastActivityNotice() string {
	return report.LastActivityNotice(monitor.tracker.LastActivity(), monitor.settings.TimeFormat24Hour)
}

// UpdateIdleThreshold sets the idle threshold from user text input,
// in milliseconds. Unparsable or non-positive input falls back to the
// default. Takes effect on the next tracker start.
func (monitor *Monitor) UpdateIdleThreshold(text string) {
	next := monitor.settings
	next.IdleThreshold = parseMillis(text, model.DefaultIdleThreshold)
	monitor.commit(next, false)
}

// UpdateCheckInterval sets the poll interval from user text input, in
// milliseconds, with the same fallback rule as UpdateIdleThreshold.
func (monitor *Monitor) UpdateCheckInterval(text string) {
	next := monitor.settings
	next.CheckInterval = parseMillis(text, model.DefaultCheckInterval)
	monitor.commit(next, false)
}

// UpdateIncludeMouseActivity toggles the mouse listener. The tracker is
// restarted so the listener registration matches the new setting.
func (monitor *Monitor) UpdateIncludeMouseActivity(enabled bool) {
	next := monitor.settings
	next.IncludeMouseActivity = enabled
	monitor.commit(next, true)
}

// UpdateTextColor sets the indicator text color.
func (monitor *Monitor) UpdateTextColor(value string) {
	next := monitor.settings
	next.TextColor = strings.TrimSpace(value)
	monitor.commit(next, false)
}

// UpdateRainbowMode toggles the rainbow indicator style.
func (monitor *Monitor) UpdateRainbowMode(enabled bool) {
	next := monitor.settings
	next.RainbowMode = enabled
	monitor.commit(next, false)
}

// UpdateTimeFormat24Hour toggles the 24-hour clock preference.
func (monitor *Monitor) UpdateTimeFormat24Hour(enabled bool) {
	next := monitor.settings
	next.TimeFormat24Hour = enabled
	monitor.commit(next, false)
}

// Apply replaces the whole snapshot, as the preferences window does on
// save. The tracker is restarted only when the mouse toggle changed.
func (monitor *Monitor) Apply(next preferences.Settings) {
	if next.IdleThreshold <= 0 {
		next.IdleThreshold = model.DefaultIdleThreshold
	}
	if next.CheckInterval <= 0 {
		next.CheckInterval = model.DefaultCheckInterval
	}
	restart := next.IncludeMouseActivity != monitor.settings.IncludeMouseActivity
	monitor.commit(next, restart)
}

func (monitor *Monitor) commit(next preferences.Settings, restart bool) {
	monitor.settings = next

	if restart {
		monitor.tracker.Stop()
		if err := monitor.tracker.Start(next.TrackerConfig()); err != nil {
			log.Printf("restart tracker: %v", err)
		}
	}

	go func() {
		if err := monitor.store.Save(next); err != nil {
			log.Printf("save settings: %v", err)
		}
	}()

	if monitor.onChange != nil {
		monitor.onChange(next)
	}
}

func parseMillis(text string, fallback time.Duration) time.Duration {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || value <= 0 {
		return fallback
	}
	return time.Duration(value) * time.Millisecond
}
