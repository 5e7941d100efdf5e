package model

import "time"

// Defaults applied whenever a stored or entered value is missing or invalid.
const (
	DefaultIdleThreshold = 30 * time.Second
	DefaultCheckInterval = time.Second
)

// TrackerConfig contains runtime settings for the activity tracker.
type TrackerConfig struct {
	IdleThreshold time.Duration
	CheckInterval time.Duration
	IncludeMouse  bool
}

// Normalized returns a copy with non-positive durations replaced by defaults.
func (config TrackerConfig) Normalized() TrackerConfig {
	if config.IdleThreshold <= 0 {
		config.IdleThreshold = DefaultIdleThreshold
	}
	if config.CheckInterval <= 0 {
		config.CheckInterval = DefaultCheckInterval
	}
	return config
}
