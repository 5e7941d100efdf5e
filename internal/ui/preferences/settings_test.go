package preferences

import (
	"testing"
	"time"

	"idlewatch/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.IdleThreshold != 30*time.Second {
		t.Errorf("IdleThreshold = %v, want 30s", settings.IdleThreshold)
	}
	if settings.CheckInterval != time.Second {
		t.Errorf("CheckInterval = %v, want 1s", settings.CheckInterval)
	}
	if !settings.IncludeMouseActivity {
		t.Error("IncludeMouseActivity should default to true")
	}
	if settings.TextColor != "" || settings.RainbowMode || settings.TimeFormat24Hour {
		t.Errorf("display defaults wrong: %+v", settings)
	}
}

func TestTrackerConfigConversion(t *testing.T) {
	settings := Settings{
		IdleThreshold:        time.Minute,
		CheckInterval:        2 * time.Second,
		IncludeMouseActivity: false,
	}

	config := settings.TrackerConfig()
	if config.IdleThreshold != time.Minute || config.CheckInterval != 2*time.Second || config.IncludeMouse {
		t.Errorf("TrackerConfig() = %+v", config)
	}
}

func TestParseMillisEntry(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"5000", 5 * time.Second},
		{"1", time.Millisecond},
		{"abc", model.DefaultIdleThreshold},
		{"", model.DefaultIdleThreshold},
		{"-200", model.DefaultIdleThreshold},
		{"0", model.DefaultIdleThreshold},
	}

	for _, tc := range tests {
		if got := parseMillisEntry(tc.in, model.DefaultIdleThreshold); got != tc.want {
			t.Errorf("parseMillisEntry(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
