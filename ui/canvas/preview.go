// Package canvas provides the garment preview widget: the composed texture
// projected into a pseudo-3D panel view, with draggable placement handles.
package canvas

import (
	"image"
	"image/color"
	"math"
	"sort"

	"garment-studio/internal/garment"
	"garment-studio/internal/gesture"
	"garment-studio/internal/projection"
	"garment-studio/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// panel is one projected region placed on screen for the current view.
type panel struct {
	regionID string
	rect     geometry.Rect
	order    int
}

// Preview renders the composed garment texture as per-view panels. Each
// visible region's UV island is cut out of the texture, foreshortened by its
// view transform, and drawn back-to-front. The active region gets move,
// scale, and rotate handles that feed the gesture controller.
type Preview struct {
	widget.BaseWidget

	raster *fynecanvas.Raster

	texture     *image.RGBA
	regions     []garment.Region
	projections []projection.Projection

	// Screen placement of each drawn panel, rebuilt every draw. Hit tests
	// walk it front-to-back.
	panels []panel

	active   string
	dragging bool

	// Gesture sink; the main window wires this to app.State's controller.
	onPointerDown func(regionID string, ctrl gesture.Control, pos geometry.Point2D, overlay geometry.Size, center geometry.Point2D)
	onPointerMove func(pos geometry.Point2D)
	onPointerUp   func()
	onSelect      func(regionID string)
}

// NewPreview creates the preview widget.
func NewPreview() *Preview {
	p := &Preview{}
	p.raster = fynecanvas.NewRaster(p.draw)
	p.raster.SetMinSize(fyne.NewSize(400, 400))
	p.ExtendBaseWidget(p)
	return p
}

// SetTexture installs a newly composed texture and redraws.
func (p *Preview) SetTexture(tex *image.RGBA) {
	p.texture = tex
	p.Refresh()
}

// SetScene installs the region table and view projections and redraws.
func (p *Preview) SetScene(regions []garment.Region, projections []projection.Projection) {
	p.regions = regions
	p.projections = projections
	if _, ok := garment.Find(regions, p.active); !ok {
		p.active = ""
	}
	p.Refresh()
}

// SetActive highlights a region and shows its handles.
func (p *Preview) SetActive(regionID string) {
	p.active = regionID
	p.Refresh()
}

// Active returns the highlighted region id, or "".
func (p *Preview) Active() string {
	return p.active
}

// OnGesture wires pointer events through to a gesture controller.
func (p *Preview) OnGesture(
	down func(regionID string, ctrl gesture.Control, pos geometry.Point2D, overlay geometry.Size, center geometry.Point2D),
	move func(pos geometry.Point2D),
	up func(),
) {
	p.onPointerDown = down
	p.onPointerMove = move
	p.onPointerUp = up
}

// OnSelect sets a callback fired when the user taps a region panel.
func (p *Preview) OnSelect(callback func(regionID string)) {
	p.onSelect = callback
}

// Refresh redraws the raster.
func (p *Preview) Refresh() {
	p.raster.Refresh()
	p.BaseWidget.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (p *Preview) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

// Tapped selects the panel under the pointer.
func (p *Preview) Tapped(ev *fyne.PointEvent) {
	pos := geometry.Point2D{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	id := p.hitPanel(pos)
	p.active = id
	if p.onSelect != nil {
		p.onSelect(id)
	}
	p.Refresh()
}

// Dragged starts or continues a gesture on the active panel.
func (p *Preview) Dragged(ev *fyne.DragEvent) {
	pos := geometry.Point2D{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}

	if !p.dragging {
		// ev.Position already includes this event's delta; start the
		// gesture from the pre-drag point so the first step is not lost.
		start := geometry.Point2D{
			X: pos.X - float64(ev.Dragged.DX),
			Y: pos.Y - float64(ev.Dragged.DY),
		}
		region, ctrl, ok := p.hitControl(start)
		if !ok {
			return
		}
		p.dragging = true
		p.active = region.regionID
		if p.onPointerDown != nil {
			p.onPointerDown(region.regionID, ctrl, start,
				geometry.Size{Width: region.rect.Width, Height: region.rect.Height},
				region.rect.Center())
		}
	}

	if p.onPointerMove != nil {
		p.onPointerMove(pos)
	}
}

// DragEnd finishes the gesture.
func (p *Preview) DragEnd() {
	if !p.dragging {
		return
	}
	p.dragging = false
	if p.onPointerUp != nil {
		p.onPointerUp()
	}
	p.Refresh()
}

// hitPanel returns the front-most panel id containing pos, or "".
func (p *Preview) hitPanel(pos geometry.Point2D) string {
	for i := len(p.panels) - 1; i >= 0; i-- {
		if p.panels[i].rect.Contains(pos) {
			return p.panels[i].regionID
		}
	}
	return ""
}

// draw is the raster drawing function.
func (p *Preview) draw(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBackground(out)

	p.panels = p.panels[:0]
	if p.texture == nil || w == 0 || h == 0 {
		return out
	}

	for _, proj := range p.projections {
		if !proj.Visible {
			continue
		}
		region, ok := garment.Find(p.regions, proj.RegionID)
		if !ok {
			continue
		}
		rect := p.panelRect(proj, region, w, h)
		p.panels = append(p.panels, panel{
			regionID: proj.RegionID,
			rect:     rect,
			order:    proj.Transform.Order,
		})
	}

	// Back-to-front by projection order.
	sort.SliceStable(p.panels, func(i, j int) bool {
		return p.panels[i].order < p.panels[j].order
	})

	for _, pn := range p.panels {
		proj := p.findProjection(pn.regionID)
		region, ok := garment.Find(p.regions, pn.regionID)
		if proj == nil || !ok {
			continue
		}
		p.drawPanel(out, pn.rect, *proj, region)
	}

	if p.active != "" {
		for _, pn := range p.panels {
			if pn.regionID == p.active {
				drawHandles(out, pn.rect)
				break
			}
		}
	}
	return out
}

func (p *Preview) findProjection(regionID string) *projection.Projection {
	for i := range p.projections {
		if p.projections[i].RegionID == regionID {
			return &p.projections[i]
		}
	}
	return nil
}

// panelRect computes a region's on-screen rectangle for the current view.
// RotateY foreshortens the width, TranslateZ shrinks panels pushed away
// from the camera, TranslateX shifts them sideways.
func (p *Preview) panelRect(proj projection.Projection, region garment.Region, w, h int) geometry.Rect {
	island := region.UVRect
	aspect := island.Width() / island.Height()

	// Primary panels fill most of the height; depth pulls secondaries in.
	baseH := float64(h) * 0.72 * (1 + proj.Transform.TranslateZ)
	baseW := baseH * aspect * math.Abs(math.Cos(proj.Transform.RotateY*math.Pi/180))

	cx := float64(w)/2 + proj.Transform.TranslateX*float64(w)
	cy := float64(h) / 2

	return geometry.Rect{
		X:      cx - baseW/2,
		Y:      cy - baseH/2,
		Width:  baseW,
		Height: baseH,
	}
}

// drawPanel samples the region's UV island into its screen rect, dimming by
// the projection strength.
func (p *Preview) drawPanel(out *image.RGBA, rect geometry.Rect, proj projection.Projection, region garment.Region) {
	if rect.Width < 1 || rect.Height < 1 {
		return
	}
	texBounds := p.texture.Bounds()
	island := region.UVRect.ToRect(float64(texBounds.Dx()), float64(texBounds.Dy()))

	x0 := int(math.Max(rect.X, 0))
	y0 := int(math.Max(rect.Y, 0))
	x1 := int(math.Min(rect.X+rect.Width, float64(out.Bounds().Dx())))
	y1 := int(math.Min(rect.Y+rect.Height, float64(out.Bounds().Dy())))

	for y := y0; y < y1; y++ {
		v := (float64(y) - rect.Y) / rect.Height
		sy := int(island.Y + v*island.Height)
		for x := x0; x < x1; x++ {
			u := (float64(x) - rect.X) / rect.Width
			sx := int(island.X + u*island.Width)

			r, g, b, _ := p.texture.At(sx, sy).RGBA()
			out.SetRGBA(x, y, color.RGBA{
				R: dim(uint8(r>>8), proj.Strength),
				G: dim(uint8(g>>8), proj.Strength),
				B: dim(uint8(b>>8), proj.Strength),
				A: 255,
			})
		}
	}
}

func dim(v uint8, strength float64) uint8 {
	return uint8(float64(v) * strength)
}

func fillBackground(out *image.RGBA) {
	bg := color.RGBA{R: 38, G: 38, B: 42, A: 255}
	for i := 0; i < len(out.Pix); i += 4 {
		out.Pix[i] = bg.R
		out.Pix[i+1] = bg.G
		out.Pix[i+2] = bg.B
		out.Pix[i+3] = bg.A
	}
}
