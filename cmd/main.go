package main

import (
	"log"
	"os"

	"idlewatch/internal/core/monitor"
	"idlewatch/internal/core/report"
	"idlewatch/internal/core/tracker"
	"idlewatch/internal/input"
	"idlewatch/internal/platform"
	"idlewatch/internal/storage"
	"idlewatch/internal/ui/preferences"
	"idlewatch/internal/ui/statusbar"
	"idlewatch/internal/ui/tray"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "IdleWatch"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v (using defaults)", err)
	}

	fyneApp := app.NewWithID("com.idlewatch.app")
	fyneApp.SetIcon(theme.ComputerIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return
	}

	indicator := statusbar.New(fyneApp, statusbar.Style{
		TextColor:   settings.TextColor,
		RainbowMode: settings.RainbowMode,
	})
	desktopApp.SetSystemTrayWindow(indicator.Window())

	activityTracker := tracker.New(input.NewSource(indicator.Window()))
	watch := monitor.New(activityTracker, monitor.StoreFunc(func(updated preferences.Settings) error {
		return storage.SaveSettings(appName, updated)
	}), settings)

	prefsWindow := preferences.New(fyneApp, settings, watch.Apply)

	watch.SetOnChange(func(updated preferences.Settings) {
		indicator.SetStyle(statusbar.Style{
			TextColor:   updated.TextColor,
			RainbowMode: updated.RainbowMode,
		})
		prefsWindow.UpdateSettings(updated)
		applyAutostart(updated.Autostart)
	})

	indicatorVisible := true
	var trayManager *tray.Manager
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnLastActivity: watch.LastActivityNotice,
		OnToggleShow: func() {
			if indicatorVisible {
				indicator.Hide()
			} else {
				indicator.Show()
			}
			indicatorVisible = !indicatorVisible
			trayManager.SetIndicatorVisible(indicatorVisible)
		},
		OnQuit: func() {
			watch.Stop()
			fyneApp.Quit()
		},
	})

	events := activityTracker.Subscribe(8)
	go func() {
		for event := range events {
			status := report.StatusActive
			if event.State == tracker.StateIdle {
				status = report.StatusIdle(event.Elapsed)
			}
			indicator.SetStatus(status)
			trayManager.SetStatus(status)
			if event.Type == tracker.EventProgress {
				indicator.Advance()
			}
		}
	}()

	if err := watch.Start(); err != nil {
		log.Printf("start tracker: %v", err)
	}
	defer watch.Stop()

	applyAutostart(settings.Autostart)

	indicator.Show()
	fyneApp.Run()
}

func applyAutostart(enabled bool) {
	service := platform.NewService()
	if enabled {
		execPath, err := os.Executable()
		if err != nil {
			log.Printf("autostart: resolve executable: %v", err)
			return
		}
		if err := service.EnableAutostart(appName, execPath); err != nil {
			log.Printf("autostart: %v", err)
		}
		return
	}
	if err := service.DisableAutostart(appName); err != nil {
		log.Printf("autostart: %v", err)
	}
}
