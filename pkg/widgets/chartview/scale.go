package chartview

// scales holds the data-space bounding box of a series and the per-axis
// factors mapping data units to pixels inside the margins.
type scales struct {
	minX, maxX float64
	minY, maxY float64
	scaleX     float64
	scaleY     float64
}

func calcScales(xs, ys []float64, width, height, margin int) scales {
	minX, maxX := findMinMax(xs)
	minY, maxY := findMinMax(ys)

	// A constant series has a zero-width bounding box. Substitute a unit
	// denominator so the chart renders a flat line instead of dividing by zero.
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}

	return scales{
		minX: minX, maxX: maxX,
		minY: minY, maxY: maxY,
		scaleX: float64(width-2*margin) / rangeX,
		scaleY: float64(height-2*margin) / rangeY,
	}
}

// mapper converts between data space and surface space. The Y axis is
// inverted: increasing data-Y maps to decreasing pixel-Y.
type mapper struct {
	minX, minY     float64
	scaleX, scaleY float64
	margin         float64
	height         float64
}

func newMapper(s scales, margin, height int) mapper {
	return mapper{
		minX:   s.minX,
		minY:   s.minY,
		scaleX: s.scaleX,
		scaleY: s.scaleY,
		margin: float64(margin),
		height: float64(height),
	}
}

func (m mapper) pixelX(x float64) float64 {
	return m.margin + (x-m.minX)*m.scaleX
}

func (m mapper) pixelY(y float64) float64 {
	return m.height - m.margin - (y-m.minY)*m.scaleY
}

func (m mapper) dataX(px float64) float64 {
	return m.minX + (px-m.margin)/m.scaleX
}

func (m mapper) dataY(py float64) float64 {
	return m.minY + (m.height-m.margin-py)/m.scaleY
}

func findMinMax(data []float64) (float64, float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
