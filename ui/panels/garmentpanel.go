package panels

import (
	"image/color"

	"garment-studio/internal/app"
	"garment-studio/internal/coords"
	"garment-studio/internal/garment"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// swatch is a named base fabric color.
type swatch struct {
	name  string
	color color.RGBA
}

var swatches = []swatch{
	{"White", color.RGBA{235, 235, 235, 255}},
	{"Black", color.RGBA{35, 35, 38, 255}},
	{"Navy", color.RGBA{38, 52, 92, 255}},
	{"Red", color.RGBA{168, 42, 42, 255}},
	{"Forest", color.RGBA{40, 84, 48, 255}},
	{"Sand", color.RGBA{204, 186, 150, 255}},
}

// GarmentPanel selects the garment type, camera view, and base color.
type GarmentPanel struct {
	state     *app.State
	container fyne.CanvasObject

	garmentSelect *widget.Select
	viewGroup     *widget.RadioGroup
	colorLabel    *widget.Label
}

// NewGarmentPanel creates the garment panel.
func NewGarmentPanel(state *app.State) *GarmentPanel {
	gp := &GarmentPanel{state: state}

	gp.garmentSelect = widget.NewSelect(garment.Types(), func(selected string) {
		if selected != state.GarmentType() {
			state.SetGarment(selected)
		}
	})
	gp.garmentSelect.SetSelected(state.GarmentType())

	viewIDs := make([]string, 0, len(coords.Views()))
	for _, v := range coords.Views() {
		viewIDs = append(viewIDs, v.String())
	}
	gp.viewGroup = widget.NewRadioGroup(viewIDs, func(selected string) {
		if selected != "" && selected != state.ViewID() {
			state.SetView(selected)
		}
	})
	gp.viewGroup.SetSelected(state.ViewID())

	gp.colorLabel = widget.NewLabel("Base color")

	colorButtons := make([]fyne.CanvasObject, 0, len(swatches))
	for _, sw := range swatches {
		sw := sw
		colorButtons = append(colorButtons, widget.NewButton(sw.name, func() {
			state.SetBaseColor(sw.color)
			gp.colorLabel.SetText("Base color: " + sw.name)
		}))
	}

	gp.container = container.NewVBox(
		widget.NewLabel("Garment"),
		gp.garmentSelect,
		widget.NewSeparator(),
		widget.NewLabel("View"),
		gp.viewGroup,
		widget.NewSeparator(),
		gp.colorLabel,
		container.NewGridWithColumns(2, colorButtons...),
	)

	state.On(app.EventGarmentChanged, func(data interface{}) {
		if id, ok := data.(string); ok && gp.garmentSelect.Selected != id {
			gp.garmentSelect.SetSelected(id)
		}
	})

	return gp
}

// Container returns the panel container.
func (gp *GarmentPanel) Container() fyne.CanvasObject {
	return gp.container
}
