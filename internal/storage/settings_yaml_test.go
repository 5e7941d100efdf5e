package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"idlewatch/internal/ui/preferences"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), settingsFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestLoadMalformedNumericFieldFallsBack(t *testing.T) {
	path := writeSettingsFile(t, "idle_threshold_ms: abc\ncheck_interval_ms: 2000\n")

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings.IdleThreshold != 30*time.Second {
		t.Errorf("IdleThreshold = %v, want default 30s", settings.IdleThreshold)
	}
	if settings.CheckInterval != 2*time.Second {
		t.Errorf("CheckInterval = %v, want 2s", settings.CheckInterval)
	}
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	path := writeSettingsFile(t, "idle_threshold_ms: 0\ncheck_interval_ms: -5\n")

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings.IdleThreshold != 30*time.Second {
		t.Errorf("IdleThreshold = %v, want default", settings.IdleThreshold)
	}
	if settings.CheckInterval != time.Second {
		t.Errorf("CheckInterval = %v, want default", settings.CheckInterval)
	}
}

func TestLoadWrongTypeBoolFallsBack(t *testing.T) {
	path := writeSettingsFile(t, "include_mouse_activity: 17\nrainbow_mode: true\n")

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if !settings.IncludeMouseActivity {
		t.Error("IncludeMouseActivity should keep its default (true) on a wrong-type field")
	}
	if !settings.RainbowMode {
		t.Error("RainbowMode = false, want true")
	}
}

func TestLoadIsShallowMergeOverDefaults(t *testing.T) {
	path := writeSettingsFile(t, "text_color: \"#00ff00\"\ntime_format_24h: true\n")

	settings, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if settings.TextColor != "#00ff00" {
		t.Errorf("TextColor = %q", settings.TextColor)
	}
	if !settings.TimeFormat24Hour {
		t.Error("TimeFormat24Hour = false, want true")
	}
	// Untouched fields keep defaults.
	if settings.IdleThreshold != 30*time.Second || settings.CheckInterval != time.Second {
		t.Errorf("durations = %v/%v, want defaults", settings.IdleThreshold, settings.CheckInterval)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)

	saved := preferences.Settings{
		IdleThreshold:        45 * time.Second,
		CheckInterval:        500 * time.Millisecond,
		IncludeMouseActivity: false,
		TextColor:            "#ffaa00",
		RainbowMode:          true,
		TimeFormat24Hour:     true,
		Autostart:            true,
	}
	if err := SaveSettingsTo(path, saved); err != nil {
		t.Fatalf("SaveSettingsTo: %v", err)
	}

	loaded, err := LoadSettingsFrom(path)
	if err != nil {
		t.Fatalf("LoadSettingsFrom: %v", err)
	}
	if loaded != saved {
		t.Errorf("round trip: got %+v, want %+v", loaded, saved)
	}
}
