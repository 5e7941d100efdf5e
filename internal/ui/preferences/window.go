package preferences

import (
	"fmt"
	"strconv"
	"time"

	"idlewatch/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the settings UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	threshold *widget.Entry
	interval  *widget.Entry
	color     *widget.Entry
	mouse     *widget.Check
	rainbow   *widget.Check
	clock24   *widget.Check
	autostart *widget.Check
}

// New creates a settings window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("IdleWatch Settings")

	threshold := widget.NewEntry()
	interval := widget.NewEntry()
	threshold.SetText(fmt.Sprintf("%d", settings.IdleThreshold.Milliseconds()))
	interval.SetText(fmt.Sprintf("%d", settings.CheckInterval.Milliseconds()))

	colorEntry := widget.NewEntry()
	colorEntry.SetPlaceHolder("#RRGGBB")
	colorEntry.SetText(settings.TextColor)

	mouse := widget.NewCheck("Count mouse movement as activity", nil)
	mouse.SetChecked(settings.IncludeMouseActivity)

	rainbow := widget.NewCheck("Rainbow text", nil)
	rainbow.SetChecked(settings.RainbowMode)

	clock24 := widget.NewCheck("24-hour clock", nil)
	clock24.SetChecked(settings.TimeFormat24Hour)

	autostart := widget.NewCheck("Start at login", nil)
	autostart.SetChecked(settings.Autostart)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Tracking", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Idle after"), threshold, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Check every"), interval, widget.NewLabel("ms")),
		mouse,
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Text color"), colorEntry),
		rainbow,
		clock24,
		autostart,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))

	prefs := &Window{
		window:    window,
		settings:  settings,
		onSave:    onSave,
		threshold: threshold,
		interval:  interval,
		color:     colorEntry,
		mouse:     mouse,
		rainbow:   rainbow,
		clock24:   clock24,
		autostart: autostart,
	}

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.threshold.SetText(fmt.Sprintf("%d", settings.IdleThreshold.Milliseconds()))
	prefs.interval.SetText(fmt.Sprintf("%d", settings.CheckInterval.Milliseconds()))
	prefs.color.SetText(settings.TextColor)
	prefs.mouse.SetChecked(settings.IncludeMouseActivity)
	prefs.rainbow.SetChecked(settings.RainbowMode)
	prefs.clock24.SetChecked(settings.TimeFormat24Hour)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	settings.IdleThreshold = parseMillisEntry(prefs.threshold.Text, model.DefaultIdleThreshold)
	settings.CheckInterval = parseMillisEntry(prefs.interval.Text, model.DefaultCheckInterval)
	settings.TextColor = prefs.color.Text
	settings.IncludeMouseActivity = prefs.mouse.Checked
	settings.RainbowMode = prefs.rainbow.Checked
	settings.TimeFormat24Hour = prefs.clock24.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

// parseMillisEntry reads a positive millisecond count from a numeric
// field; unparsable or non-positive text falls back to the default.
func parseMillisEntry(value string, fallback time.Duration) time.Duration {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return time.Duration(parsed) * time.Millisecond
}
