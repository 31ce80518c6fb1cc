package chartview

import (
	"math"

	"fyne.io/fyne/v2/driver/desktop"
)

var _ desktop.Hoverable = (*ChartView)(nil)

func (cv *ChartView) MouseIn(_ *desktop.MouseEvent) {
}

// MouseMoved hit-tests the pointer against every data point and updates the
// hover state. Only a change of the hovered index triggers a redraw.
func (cv *ChartView) MouseMoved(event *desktop.MouseEvent) {
	if cv.invalid {
		return
	}
	ox, oy := cv.surfaceOffset()
	idx := cv.hitTest(float64(event.Position.X)-ox, float64(event.Position.Y)-oy)
	if idx != cv.hover {
		cv.hover = idx
		cv.refreshImage()
	}
}

// surfaceOffset returns where the rendered bitmap sits inside the image
// object. ImageFillOriginal centers the bitmap when the layout hands the
// widget more space than its minimum, so event coordinates must be shifted
// back into surface space before hit-testing.
func (cv *ChartView) surfaceOffset() (float64, float64) {
	size := cv.image.Size()
	ox := (float64(size.Width) - float64(cv.width)) / 2
	oy := (float64(size.Height) - float64(cv.height)) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	return ox, oy
}

func (cv *ChartView) MouseOut() {
	if cv.invalid {
		return
	}
	if cv.hover != noHover {
		cv.hover = noHover
		cv.refreshImage()
	}
}

// hitTest returns the index of the data point nearest the pointer if it is
// strictly within hitRadius pixels, otherwise noHover. Equidistant points
// resolve to the lower index: the scan only replaces the current minimum on a
// strictly smaller distance.
func (cv *ChartView) hitTest(px, py float64) int {
	s := calcScales(cv.xs, cv.ys, cv.width, cv.height, cv.margin)
	m := newMapper(s, cv.margin, cv.height)

	best := noHover
	bestDist := math.MaxFloat64
	for i := range cv.xs {
		dx := m.pixelX(cv.xs[i]) - px
		dy := m.pixelY(cv.ys[i]) - py
		if d := math.Sqrt(dx*dx + dy*dy); d < bestDist {
			bestDist = d
			best = i
		}
	}
	if bestDist < hitRadius {
		return best
	}
	return noHover
}
