package panels

import (
	"fmt"
	"path/filepath"

	"garment-studio/internal/app"
	"garment-studio/internal/garment"
	"garment-studio/internal/placement"
	"garment-studio/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// DecorationPanel manages per-region decoration images and placement.
type DecorationPanel struct {
	state  *app.State
	prefs  *prefs.Prefs
	window fyne.Window

	container fyne.CanvasObject

	regionSelect   *widget.Select
	presetSelect   *widget.Select
	placementLabel *widget.Label

	// onRegionSelect lets the main window highlight the region on the
	// preview when the user picks it from the list.
	onRegionSelect func(regionID string)
}

// NewDecorationPanel creates the decoration panel.
func NewDecorationPanel(state *app.State, p *prefs.Prefs) *DecorationPanel {
	dp := &DecorationPanel{state: state, prefs: p}

	dp.regionSelect = widget.NewSelect(regionNames(state.Regions()), func(string) {
		dp.updatePlacementLabel()
		if dp.onRegionSelect != nil {
			dp.onRegionSelect(dp.selectedRegion())
		}
	})

	dp.presetSelect = widget.NewSelect(placement.PresetNames(), nil)
	dp.presetSelect.PlaceHolder = "Preset..."

	dp.placementLabel = widget.NewLabel("")
	dp.placementLabel.Wrapping = fyne.TextWrapWord

	loadBtn := widget.NewButton("Load Image...", dp.onLoadImage)
	clearBtn := widget.NewButton("Clear", func() {
		if id := dp.selectedRegion(); id != "" {
			dp.state.ClearRegion(id)
		}
	})
	clearAllBtn := widget.NewButton("Clear All", func() {
		dp.state.ClearRegion(placement.All)
	})
	applyBtn := widget.NewButton("Apply Preset", func() {
		id := dp.selectedRegion()
		if id != "" && dp.presetSelect.Selected != "" {
			dp.state.ApplyPreset(id, dp.presetSelect.Selected)
		}
	})

	dp.container = container.NewVBox(
		widget.NewLabel("Region"),
		dp.regionSelect,
		loadBtn,
		container.NewGridWithColumns(2, clearBtn, clearAllBtn),
		widget.NewSeparator(),
		container.NewGridWithColumns(2, dp.presetSelect, applyBtn),
		widget.NewSeparator(),
		dp.placementLabel,
	)

	state.On(app.EventGarmentChanged, func(interface{}) {
		dp.regionSelect.Options = regionNames(state.Regions())
		dp.regionSelect.ClearSelected()
		dp.updatePlacementLabel()
	})
	state.On(app.EventPlacementChanged, func(interface{}) {
		dp.updatePlacementLabel()
	})
	state.On(app.EventImageLoaded, func(interface{}) {
		dp.updatePlacementLabel()
	})

	return dp
}

// Container returns the panel container.
func (dp *DecorationPanel) Container() fyne.CanvasObject {
	return dp.container
}

// SetWindow sets the parent window for file dialogs.
func (dp *DecorationPanel) SetWindow(w fyne.Window) {
	dp.window = w
}

// OnRegionSelect sets a callback fired when the user picks a region.
func (dp *DecorationPanel) OnRegionSelect(callback func(regionID string)) {
	dp.onRegionSelect = callback
}

// SelectRegion syncs the region list with an externally made selection.
func (dp *DecorationPanel) SelectRegion(regionID string) {
	name := displayName(dp.state.Regions(), regionID)
	if name == "" {
		dp.regionSelect.ClearSelected()
		return
	}
	if dp.regionSelect.Selected != name {
		dp.regionSelect.SetSelected(name)
	}
}

// selectedRegion maps the display selection back to a region id.
func (dp *DecorationPanel) selectedRegion() string {
	for _, r := range dp.state.Regions() {
		if r.DisplayName == dp.regionSelect.Selected {
			return r.ID
		}
	}
	return ""
}

func (dp *DecorationPanel) onLoadImage() {
	regionID := dp.selectedRegion()
	if regionID == "" {
		dialog.ShowInformation("Load Image", "Select a region first.", dp.window)
		return
	}

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		dp.prefs.SetString(prefs.KeyLastDir, filepath.Dir(path))
		dp.state.LoadImageFile(regionID, path)
	}, dp.window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff", ".tif"}))
	if loc := dp.lastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (dp *DecorationPanel) lastDir() fyne.ListableURI {
	path := dp.prefs.String(prefs.KeyLastDir)
	if path == "" {
		return nil
	}
	listable, err := storage.ListerForURI(storage.NewFileURI(path))
	if err != nil {
		return nil
	}
	return listable
}

func (dp *DecorationPanel) updatePlacementLabel() {
	id := dp.selectedRegion()
	if id == "" {
		dp.placementLabel.SetText("")
		return
	}
	p, ok := dp.state.Placement(id)
	if !ok {
		dp.placementLabel.SetText("")
		return
	}
	if p.Image == nil {
		dp.placementLabel.SetText("No decoration")
		return
	}
	dp.placementLabel.SetText(fmt.Sprintf(
		"pos %.2f, %.2f\nscale %.2f\nrotation %.0f°",
		p.Position.X, p.Position.Y, p.Scale, p.RotationDeg))
}

func regionNames(regions []garment.Region) []string {
	names := make([]string, 0, len(regions))
	for _, r := range regions {
		names = append(names, r.DisplayName)
	}
	return names
}

func displayName(regions []garment.Region, regionID string) string {
	if r, ok := garment.Find(regions, regionID); ok {
		return r.DisplayName
	}
	return ""
}
