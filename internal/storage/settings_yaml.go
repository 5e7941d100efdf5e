package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"idlewatch/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	IdleThresholdMs      int    `yaml:"idle_threshold_ms"`
	CheckIntervalMs      int    `yaml:"check_interval_ms"`
	IncludeMouseActivity bool   `yaml:"include_mouse_activity"`
	TextColor            string `yaml:"text_color"`
	RainbowMode          bool   `yaml:"rainbow_mode"`
	TimeFormat24Hour     bool   `yaml:"time_format_24h"`
	Autostart            bool   `yaml:"autostart"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from the given file. Fields are
// merged shallowly over defaults: a missing, malformed or non-positive
// field keeps its default value rather than failing the load.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData map[string]yaml.Node
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to the given file.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		IdleThresholdMs:      int(settings.IdleThreshold / time.Millisecond),
		CheckIntervalMs:      int(settings.CheckInterval / time.Millisecond),
		IncludeMouseActivity: settings.IncludeMouseActivity,
		TextColor:            settings.TextColor,
		RainbowMode:          settings.RainbowMode,
		TimeFormat24Hour:     settings.TimeFormat24Hour,
		Autostart:            settings.Autostart,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData map[string]yaml.Node) {
	if ms, ok := positiveInt(fileData, "idle_threshold_ms"); ok {
		settings.IdleThreshold = time.Duration(ms) * time.Millisecond
	}
	if ms, ok := positiveInt(fileData, "check_interval_ms"); ok {
		settings.CheckInterval = time.Duration(ms) * time.Millisecond
	}
	if enabled, ok := boolField(fileData, "include_mouse_activity"); ok {
		settings.IncludeMouseActivity = enabled
	}
	if value, ok := stringField(fileData, "text_color"); ok {
		settings.TextColor = value
	}
	if enabled, ok := boolField(fileData, "rainbow_mode"); ok {
		settings.RainbowMode = enabled
	}
	if enabled, ok := boolField(fileData, "time_format_24h"); ok {
		settings.TimeFormat24Hour = enabled
	}
	if enabled, ok := boolField(fileData, "autostart"); ok {
		settings.Autostart = enabled
	}
}

func positiveInt(fileData map[string]yaml.Node, key string) (int, bool) {
	node, present := fileData[key]
	if !present {
		return 0, false
	}
	var value int
	if err := node.Decode(&value); err != nil || value <= 0 {
		return 0, false
	}
	return value, true
}

func boolField(fileData map[string]yaml.Node, key string) (bool, bool) {
	node, present := fileData[key]
	if !present {
		return false, false
	}
	var value bool
	if err := node.Decode(&value); err != nil {
		return false, false
	}
	return value, true
}

func stringField(fileData map[string]yaml.Node, key string) (string, bool) {
	node, present := fileData[key]
	if !present {
		return "", false
	}
	var value string
	if err := node.Decode(&value); err != nil {
		return "", false
	}
	return value, true
}
