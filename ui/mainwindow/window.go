// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image"

	"garment-studio/internal/app"
	"garment-studio/internal/imageload"
	"garment-studio/internal/projection"
	"garment-studio/internal/version"
	"garment-studio/ui/canvas"
	"garment-studio/ui/panels"
	"garment-studio/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	preview   *canvas.Preview
	sidePanel *panels.SidePanel
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Garment Studio")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePrefs()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.preview = canvas.NewPreview()
	mw.sidePanel = panels.NewSidePanel(mw.state, mw.prefs)
	mw.sidePanel.SetWindow(mw.Window)
	mw.statusBar = widget.NewLabel("Ready")

	// Preview drags feed the gesture controller directly.
	gest := mw.state.Gestures()
	mw.preview.OnGesture(gest.PointerDown, gest.PointerMove, gest.PointerUp)

	// Region selection stays in sync between preview and side panel.
	mw.preview.OnSelect(func(regionID string) {
		mw.sidePanel.Decorations().SelectRegion(regionID)
	})
	mw.sidePanel.Decorations().OnRegionSelect(func(regionID string) {
		mw.preview.SetActive(regionID)
	})

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.preview,
	)
	split.SetOffset(0.25)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(1100, 780))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Quit", func() { mw.savePrefs(); mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Front", func() { mw.state.SetView("front") }),
		fyne.NewMenuItem("Back", func() { mw.state.SetView("back") }),
		fyne.NewMenuItem("Left", func() { mw.state.SetView("left") }),
		fyne.NewMenuItem("Right", func() { mw.state.SetView("right") }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventTextureUpdated, func(data interface{}) {
		if tex, ok := data.(*image.RGBA); ok {
			mw.preview.SetTexture(tex)
		}
	})

	mw.state.On(app.EventViewChanged, func(data interface{}) {
		if projections, ok := data.([]projection.Projection); ok {
			mw.preview.SetScene(mw.state.Regions(), projections)
		}
		mw.prefs.SetString(prefs.KeyView, mw.state.ViewID())
		mw.updateStatus("View: " + mw.state.ViewID())
	})

	mw.state.On(app.EventGarmentChanged, func(data interface{}) {
		mw.preview.SetScene(mw.state.Regions(), mw.state.Projections())
		if id, ok := data.(string); ok {
			mw.prefs.SetString(prefs.KeyGarmentType, id)
			mw.updateStatus("Garment: " + id)
		}
	})

	mw.state.On(app.EventImageLoaded, func(data interface{}) {
		if c, ok := data.(imageload.Completion); ok && c.Err != nil {
			mw.updateStatus("Image load failed for " + c.RegionID)
			return
		}
		mw.updateStatus("Image loaded")
	})
}

// restorePrefs applies the persisted garment, view, and scene.
func (mw *MainWindow) restorePrefs() {
	if g := mw.prefs.String(prefs.KeyGarmentType); g != "" {
		mw.state.SetGarment(g)
	}
	if v := mw.prefs.String(prefs.KeyView); v != "" {
		mw.state.SetView(v)
	}

	mw.preview.SetScene(mw.state.Regions(), mw.state.Projections())
	mw.state.Recomposite()
	mw.preview.SetTexture(mw.state.Texture())
}

// savePrefs persists session settings to disk.
func (mw *MainWindow) savePrefs() {
	mw.prefs.SetString(prefs.KeyGarmentType, mw.state.GarmentType())
	mw.prefs.SetString(prefs.KeyView, mw.state.ViewID())
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Failed to save preferences: " + err.Error())
	}
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Garment Studio",
		fmt.Sprintf("Garment Studio v%s\n\n"+
			"A texture compositing and placement tool for\n"+
			"custom garment previews.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
