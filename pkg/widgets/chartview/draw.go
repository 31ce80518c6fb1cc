package chartview

import (
	"image"
	"image/color"
)

// setPixel writes a single pixel, clipped to the image bounds. Hover labels
// and markers near the edges may produce off-surface coordinates.
func setPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return
	}
	img.SetRGBA(x, y, col)
}

// drawLine rasterizes a line segment with Bresenham's algorithm.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	absDx, absDy := abs(dx), abs(dy)

	xInc, yInc := sign(dx), sign(dy)

	if absDx == 0 && absDy == 0 {
		setPixel(img, x1, y1, col)
		return
	}

	var d, dInc1, dInc2 int
	isXDominant := absDx > absDy
	if isXDominant {
		d, dInc1, dInc2 = 2*absDy-absDx, 2*absDy, 2*(absDy-absDx)
	} else {
		d, dInc1, dInc2 = 2*absDx-absDy, 2*absDx, 2*(absDx-absDy)
	}

	for {
		setPixel(img, x1, y1, col)
		if x1 == x2 && y1 == y2 {
			break
		}
		if isXDominant {
			if d < 0 {
				d += dInc1
			} else {
				y1 += yInc
				d += dInc2
			}
			x1 += xInc
		} else {
			if d < 0 {
				d += dInc1
			} else {
				x1 += xInc
				d += dInc2
			}
			y1 += yInc
		}
	}
}

// drawThickLine draws a 2px stroke by doubling the line one pixel over on its
// minor axis. Used for the axes, which the grid must not visually drown out.
func drawThickLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	drawLine(img, x1, y1, x2, y2, col)
	if abs(x2-x1) >= abs(y2-y1) {
		drawLine(img, x1, y1+1, x2, y2+1, col)
	} else {
		drawLine(img, x1+1, y1, x2+1, y2, col)
	}
}

// fillCircle paints a filled disc of radius r centered on (cx, cy).
func fillCircle(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				setPixel(img, cx+dx, cy+dy, col)
			}
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	if n < 0 {
		return -1
	} else if n > 0 {
		return 1
	}
	return 0
}
