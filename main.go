// Package main provides the entry point for the Garment Studio application.
package main

import (
	"log"

	"garment-studio/internal/app"
	"garment-studio/internal/version"
	"garment-studio/ui/mainwindow"
	"garment-studio/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Garment Studio v%s", version.Version)

	fyneApp := fyneapp.NewWithID("io.garmentstudio.app")

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)
	win.ShowAndRun()
}
