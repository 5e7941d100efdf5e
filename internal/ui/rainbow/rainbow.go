// Package rainbow provides the hue cycle behind the indicator's rainbow
// style. The cycle is purely cosmetic and advances once per poll report,
// independent of the idle state.
package rainbow

import "image/color"

const defaultSteps = 48

// Cycle walks the hue wheel one step at a time.
type Cycle struct {
	step  int
	steps int
}

// NewCycle creates a cycle with the given number of hue steps per full
// revolution. Non-positive values fall back to the default.
func NewCycle(steps int) *Cycle {
	if steps <= 0 {
		steps = defaultSteps
	}
	return &Cycle{steps: steps}
}

// Next returns the current color and advances the cycle.
func (cycle *Cycle) Next() color.NRGBA {
	hue := float64(cycle.step) / float64(cycle.steps) * 360
	cycle.step = (cycle.step + 1) % cycle.steps
	return hueToRGB(hue)
}

// hueToRGB converts a hue in degrees to a fully saturated, full-value
// color.
func hueToRGB(hue float64) color.NRGBA {
	sector := int(hue/60) % 6
	fraction := hue/60 - float64(int(hue/60))
	rising := uint8(fraction * 255)
	falling := uint8((1 - fraction) * 255)

	switch sector {
	case 0:
		return color.NRGBA{R: 255, G: rising, B: 0, A: 255}
	case 1:
		return color.NRGBA{R: falling, G: 255, B: 0, A: 255}
	case 2:
		return color.NRGBA{R: 0, G: 255, B: rising, A: 255}
	case 3:
		return color.NRGBA{R: 0, G: falling, B: 255, A: 255}
	case 4:
		return color.NRGBA{R: rising, G: 0, B: 255, A: 255}
	default:
		return color.NRGBA{R: 255, G: 0, B: falling, A: 255}
	}
}
