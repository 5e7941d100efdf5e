package tray

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPreferences  func()
	OnLastActivity func() string
	OnToggleShow   func()
	OnQuit         func()
}

// Manager handles system tray state.
type Manager struct {
	app          desktop.App
	statusItem   *fyne.MenuItem
	lastItem     *fyne.MenuItem
	showItem     *fyne.MenuItem
	callbacks    Callbacks
	statusLabel  string
	lastLabel    string
	indicatorVis bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:          app,
		callbacks:    callbacks,
		statusLabel:  "starting...",
		lastLabel:    "Show last activity",
		indicatorVis: true,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	// Clicking replaces the label with the current notice, the
	// on-demand equivalent of hovering the indicator.
	manager.lastItem = fyne.NewMenuItem(manager.lastLabel, func() {
		if manager.callbacks.OnLastActivity != nil {
			manager.lastLabel = manager.callbacks.OnLastActivity()
			manager.refreshMenu()
		}
	})

	manager.showItem = fyne.NewMenuItem("Hide indicator", func() {
		if manager.callbacks.OnToggleShow != nil {
			manager.callbacks.OnToggleShow()
		}
	})

	manager.refreshMenu()
	return manager
}

// SetStatus updates the status line shown in the tray menu.
func (manager *Manager) SetStatus(status string) {
	if status == manager.statusLabel {
		return
	}
	manager.statusLabel = status
	manager.refreshMenu()
}

// SetIndicatorVisible updates the show/hide toggle label.
func (manager *Manager) SetIndicatorVisible(visible bool) {
	manager.indicatorVis = visible
	if visible {
		manager.showItem.Label = "Hide indicator"
	} else {
		manager.showItem.Label = "Show indicator"
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.statusItem.Label = "Status: " + manager.statusLabel
	manager.lastItem.Label = manager.lastLabel

	manager.app.SetSystemTrayMenu(fyne.NewMenu("IdleWatch",
		manager.statusItem,
		manager.lastItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.showItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
