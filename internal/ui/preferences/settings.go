package preferences

import (
	"time"

	"idlewatch/internal/core/model"
)

// Settings defines editable user preferences. Values are replaced
// wholesale on save, never mutated in place.
type Settings struct {
	IdleThreshold        time.Duration
	CheckInterval        time.Duration
	IncludeMouseActivity bool
	TextColor            string
	RainbowMode          bool
	TimeFormat24Hour     bool
	Autostart            bool
}

// DefaultSettings returns default settings for IdleWatch.
func DefaultSettings() Settings {
	return Settings{
		IdleThreshold:        model.DefaultIdleThreshold,
		CheckInterval:        model.DefaultCheckInterval,
		IncludeMouseActivity: true,
		TextColor:            "",
		RainbowMode:          false,
		TimeFormat24Hour:     false,
		Autostart:            false,
	}
}

// TrackerConfig converts settings to a tracker configuration snapshot.
func (settings Settings) TrackerConfig() model.TrackerConfig {
	return model.TrackerConfig{
		IdleThreshold: settings.IdleThreshold,
		CheckInterval: settings.CheckInterval,
		IncludeMouse:  settings.IncludeMouseActivity,
	}
}
