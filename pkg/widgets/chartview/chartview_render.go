package chartview

import (
	"image"
	"image/draw"
	"math"
	"strconv"
)

const (
	markerRadius = 4
	hoverRadius  = 7
)

// render produces a full frame. Every call redraws everything in a fixed
// layer order: background, grid, axes, polyline, markers, hover highlight.
func (cv *ChartView) render() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cv.width, cv.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	s := calcScales(cv.xs, cv.ys, cv.width, cv.height, cv.margin)
	m := newMapper(s, cv.margin, cv.height)

	cv.drawGrid(img, s, m)
	cv.drawAxes(img)
	if !cv.lineHidden {
		cv.drawPolyline(img, m)
	}
	cv.drawMarkers(img, m)
	if cv.hover != noHover {
		cv.drawHover(img, m)
	}
	return img
}

// gridSteps derives the gridline step count from the data range: min(10,
// range), never below 1. Note this deliberately reuses the range in data
// units as the step count, so a range of 3 yields 3 steps rather than 10.
func gridSteps(rng float64) int {
	steps := int(math.Min(10, rng))
	if steps < 1 {
		steps = 1
	}
	return steps
}

func (cv *ChartView) drawGrid(img *image.RGBA, s scales, m mapper) {
	top := cv.margin
	bottom := cv.height - cv.margin
	left := cv.margin
	right := cv.width - cv.margin

	stepsX := gridSteps(s.maxX - s.minX)
	for i := 0; i <= stepsX; i++ {
		x := s.minX + (s.maxX-s.minX)*float64(i)/float64(stepsX)
		px := int(m.pixelX(x))
		drawLine(img, px, top, px, bottom, cv.gridColor)
		drawText(img, strconv.FormatFloat(x, 'f', 2, 64), px-14, bottom+15, labelColor)
	}

	stepsY := gridSteps(s.maxY - s.minY)
	for i := 0; i <= stepsY; i++ {
		y := s.minY + (s.maxY-s.minY)*float64(i)/float64(stepsY)
		py := int(m.pixelY(y))
		drawLine(img, left, py, right, py, cv.gridColor)
		drawText(img, strconv.FormatFloat(y, 'f', 2, 64), left-44, py+4, labelColor)
	}
}

func (cv *ChartView) drawAxes(img *image.RGBA) {
	top := cv.margin
	bottom := cv.height - cv.margin
	left := cv.margin
	right := cv.width - cv.margin

	drawThickLine(img, left, bottom, right, bottom, axisColor)
	drawThickLine(img, left, top, left, bottom, axisColor)
}

// drawPolyline connects the points in index order. An input series that is
// unsorted in X zig-zags on purpose.
func (cv *ChartView) drawPolyline(img *image.RGBA, m mapper) {
	for i := 1; i < len(cv.xs); i++ {
		x0 := int(m.pixelX(cv.xs[i-1]))
		y0 := int(m.pixelY(cv.ys[i-1]))
		x1 := int(m.pixelX(cv.xs[i]))
		y1 := int(m.pixelY(cv.ys[i]))
		drawLine(img, x0, y0, x1, y1, cv.lineColor)
	}
}

func (cv *ChartView) drawMarkers(img *image.RGBA, m mapper) {
	for i := range cv.xs {
		fillCircle(img, int(m.pixelX(cv.xs[i])), int(m.pixelY(cv.ys[i])), markerRadius, cv.pointColor)
	}
}

func (cv *ChartView) drawHover(img *image.RGBA, m mapper) {
	i := cv.hover
	px := int(m.pixelX(cv.xs[i]))
	py := int(m.pixelY(cv.ys[i]))
	fillCircle(img, px, py, hoverRadius, cv.pointColor)
	label := "(" + strconv.FormatFloat(cv.xs[i], 'f', 2, 64) + ", " + strconv.FormatFloat(cv.ys[i], 'f', 2, 64) + ")"
	drawText(img, label, px+hoverRadius+2, py-hoverRadius-2, hoverTextColor)
}
