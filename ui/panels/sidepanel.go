// Package panels provides UI panels for the application.
package panels

import (
	"garment-studio/internal/app"
	"garment-studio/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the main side panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	garmentPanel    *GarmentPanel
	decorationPanel *DecorationPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State, p *prefs.Prefs) *SidePanel {
	sp := &SidePanel{state: state}

	sp.garmentPanel = NewGarmentPanel(state)
	sp.decorationPanel = NewDecorationPanel(state, p)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Garment", sp.garmentPanel.Container()),
		container.NewTabItem("Decoration", sp.decorationPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Decorations returns the decoration sub-panel.
func (sp *SidePanel) Decorations() *DecorationPanel {
	return sp.decorationPanel
}

// SetWindow sets the parent window for dialogs.
func (sp *SidePanel) SetWindow(w fyne.Window) {
	sp.decorationPanel.SetWindow(w)
}
