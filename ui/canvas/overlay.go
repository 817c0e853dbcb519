// Overlay handle geometry and drawing for the active region panel.
package canvas

import (
	"image"
	"image/color"

	"garment-studio/internal/gesture"
	"garment-studio/pkg/geometry"
)

const handleSize = 12.0

var (
	outlineColor = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	handleColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// scaleHandle is the grab square at the panel's bottom-right corner.
func scaleHandle(rect geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X:      rect.X + rect.Width - handleSize,
		Y:      rect.Y + rect.Height - handleSize,
		Width:  handleSize,
		Height: handleSize,
	}
}

// rotateHandle is the grab square centered above the panel's top edge.
func rotateHandle(rect geometry.Rect) geometry.Rect {
	return geometry.Rect{
		X:      rect.X + rect.Width/2 - handleSize/2,
		Y:      rect.Y - handleSize*1.5,
		Width:  handleSize,
		Height: handleSize,
	}
}

// hitControl resolves a pointer-down position to a panel and gesture control.
// Handles of the active panel win over panel bodies; panel bodies are tested
// front-to-back.
func (p *Preview) hitControl(pos geometry.Point2D) (panel, gesture.Control, bool) {
	if p.active != "" {
		for _, pn := range p.panels {
			if pn.regionID != p.active {
				continue
			}
			if scaleHandle(pn.rect).Contains(pos) {
				return pn, gesture.ControlScale, true
			}
			if rotateHandle(pn.rect).Contains(pos) {
				return pn, gesture.ControlRotate, true
			}
			break
		}
	}

	for i := len(p.panels) - 1; i >= 0; i-- {
		if p.panels[i].rect.Contains(pos) {
			return p.panels[i], gesture.ControlMove, true
		}
	}
	return panel{}, gesture.ControlMove, false
}

// drawHandles outlines the active panel and draws its grab squares.
func drawHandles(out *image.RGBA, rect geometry.Rect) {
	drawRectOutline(out, rect, outlineColor)
	fillRect(out, scaleHandle(rect), handleColor)
	fillRect(out, rotateHandle(rect), handleColor)
}

func drawRectOutline(out *image.RGBA, rect geometry.Rect, col color.RGBA) {
	x0, y0 := int(rect.X), int(rect.Y)
	x1, y1 := int(rect.X+rect.Width), int(rect.Y+rect.Height)
	for x := x0; x <= x1; x++ {
		setPixel(out, x, y0, col)
		setPixel(out, x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		setPixel(out, x0, y, col)
		setPixel(out, x1, y, col)
	}
}

func fillRect(out *image.RGBA, rect geometry.Rect, col color.RGBA) {
	x0, y0 := int(rect.X), int(rect.Y)
	x1, y1 := int(rect.X+rect.Width), int(rect.Y+rect.Height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			setPixel(out, x, y, col)
		}
	}
}

func setPixel(out *image.RGBA, x, y int, col color.RGBA) {
	if !image.Pt(x, y).In(out.Bounds()) {
		return
	}
	out.SetRGBA(x, y, col)
}
