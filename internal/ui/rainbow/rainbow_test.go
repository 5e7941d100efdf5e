package rainbow

import "testing"

func TestCycleWrapsAround(t *testing.T) {
	cycle := NewCycle(6)

	first := cycle.Next()
	for i := 0; i < 5; i++ {
		cycle.Next()
	}
	wrapped := cycle.Next()

	if first != wrapped {
		t.Errorf("cycle did not wrap: first %+v, after full revolution %+v", first, wrapped)
	}
}

func TestCycleColorsAreOpaqueAndVarying(t *testing.T) {
	cycle := NewCycle(12)

	previous := cycle.Next()
	changed := false
	for i := 0; i < 11; i++ {
		current := cycle.Next()
		if current.A != 255 {
			t.Fatalf("step %d: alpha = %d, want 255", i, current.A)
		}
		if current != previous {
			changed = true
		}
		previous = current
	}
	if !changed {
		t.Error("cycle never changed color")
	}
}

func TestNewCycleDefaultsSteps(t *testing.T) {
	cycle := NewCycle(0)
	if cycle.steps != defaultSteps {
		t.Errorf("steps = %d, want %d", cycle.steps, defaultSteps)
	}
}

func TestHueToRGBPrimaries(t *testing.T) {
	tests := []struct {
		hue     float64
		r, g, b uint8
	}{
		{0, 255, 0, 0},
		{120, 0, 255, 0},
		{240, 0, 0, 255},
	}
	for _, tc := range tests {
		got := hueToRGB(tc.hue)
		if got.R != tc.r || got.G != tc.g || got.B != tc.b {
			t.Errorf("hueToRGB(%v) = %+v, want {%d %d %d}", tc.hue, got, tc.r, tc.g, tc.b)
		}
	}
}
