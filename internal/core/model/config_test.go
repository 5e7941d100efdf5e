package model

import (
	"testing"
	"time"
)

func TestNormalizedAppliesDefaults(t *testing.T) {
	config := TrackerConfig{IdleThreshold: -1, CheckInterval: 0, IncludeMouse: true}

	normalized := config.Normalized()
	if normalized.IdleThreshold != DefaultIdleThreshold {
		t.Errorf("IdleThreshold = %v, want %v", normalized.IdleThreshold, DefaultIdleThreshold)
	}
	if normalized.CheckInterval != DefaultCheckInterval {
		t.Errorf("CheckInterval = %v, want %v", normalized.CheckInterval, DefaultCheckInterval)
	}
	if !normalized.IncludeMouse {
		t.Error("IncludeMouse was not preserved")
	}
}

func TestNormalizedKeepsValidValues(t *testing.T) {
	config := TrackerConfig{IdleThreshold: time.Minute, CheckInterval: 250 * time.Millisecond}

	if got := config.Normalized(); got != config {
		t.Errorf("Normalized() = %+v, want unchanged %+v", got, config)
	}
}
