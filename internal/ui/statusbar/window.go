// Package statusbar renders the small persistent indicator window. It
// owns presentation only: the status text and style flags come from the
// tracker and the settings snapshot.
package statusbar

import (
	"image/color"
	"strconv"
	"strings"

	"idlewatch/internal/ui/rainbow"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Style defines the indicator's rendering flags.
type Style struct {
	TextColor   string
	RainbowMode bool
}

// Window manages the indicator UI.
type Window struct {
	window     fyne.Window
	text       *canvas.Text
	background *canvas.Rectangle
	cycle      *rainbow.Cycle
	style      Style
}

var defaultTextColor = color.NRGBA{R: 220, G: 220, B: 220, A: 255}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the indicator window, undecorated where the driver allows.
func New(app fyne.App, style Style) *Window {
	window := app.NewWindow("IdleWatch")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 20, G: 20, B: 20, A: 235})

	text := canvas.NewText("All caught up!", defaultTextColor)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = 14

	window.SetContent(container.NewStack(background, container.NewCenter(text)))
	window.Resize(fyne.NewSize(300, 44))

	indicator := &Window{
		window:     window,
		text:       text,
		background: background,
		cycle:      rainbow.NewCycle(0),
	}
	indicator.applyStyle(style)
	return indicator
}

// Show displays the indicator.
func (indicator *Window) Show() {
	indicator.window.Show()
}

// Hide conceals the indicator.
func (indicator *Window) Hide() {
	indicator.window.Hide()
}

// Window exposes the underlying fyne window, used to bind the keyboard
// listener to the indicator surface.
func (indicator *Window) Window() fyne.Window {
	return indicator.window
}

// SetStatus replaces the displayed status text. Safe to call from any
// goroutine.
func (indicator *Window) SetStatus(status string) {
	fyne.Do(func() {
		indicator.text.Text = status
		indicator.text.Refresh()
	})
}

// SetStyle replaces the rendering flags.
func (indicator *Window) SetStyle(style Style) {
	fyne.Do(func() {
		indicator.applyStyle(style)
	})
}

// Advance steps the rainbow cycle by one tick. Called once per poll
// report; a no-op unless rainbow mode is on.
func (indicator *Window) Advance() {
	fyne.Do(func() {
		if !indicator.style.RainbowMode {
			return
		}
		indicator.text.Color = indicator.cycle.Next()
		indicator.text.Refresh()
	})
}

func (indicator *Window) applyStyle(style Style) {
	indicator.style = style
	if !style.RainbowMode {
		indicator.text.Color = parseHexColor(style.TextColor)
		indicator.text.Refresh()
	}
}

// parseHexColor reads "#RRGGBB" (or "RRGGBB"); anything else yields the
// default text color.
func parseHexColor(value string) color.NRGBA {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(value) != 6 {
		return defaultTextColor
	}
	parsed, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return defaultTextColor
	}
	return color.NRGBA{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
		A: 255,
	}
}
