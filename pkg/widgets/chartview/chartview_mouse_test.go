package chartview

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func moveEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestHitTest(t *testing.T) {
	xs, ys := squareSeries()
	cv := New(xs, ys)

	// point 0 maps to (50, 350), point 9 to (550, 50)
	tests := []struct {
		name   string
		px, py float64
		want   int
	}{
		{name: "exactly on first point", px: 50, py: 350, want: 0},
		{name: "exactly on last point", px: 550, py: 50, want: 9},
		{name: "within threshold", px: 55, py: 345, want: 0},
		{name: "at threshold is a miss", px: 50, py: 330, want: noHover},
		{name: "25px away", px: 50, py: 325, want: noHover},
		{name: "far away", px: 300, py: 100, want: noHover},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cv.hitTest(tt.px, tt.py); got != tt.want {
				t.Errorf("hitTest(%v, %v) = %d, want %d", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestHitTestTieBreak(t *testing.T) {
	// points 0 and 2 both land on y = 350, 10px apart in x; a pointer midway
	// is 5px from each and must resolve to the lower index
	xs := []float64{0, 10, 0.2}
	ys := []float64{0, 5, 0}
	cv := New(xs, ys)

	if got := cv.hitTest(55, 350); got != 0 {
		t.Errorf("hitTest tie = %d, want 0", got)
	}
}

func TestMouseHover(t *testing.T) {
	test.NewApp()

	xs, ys := squareSeries()
	cv := New(xs, ys)

	cv.MouseMoved(moveEvent(550, 50))
	if cv.hover != 9 {
		t.Fatalf("hover = %d, want 9", cv.hover)
	}

	cv.MouseMoved(moveEvent(300, 100))
	if cv.hover != noHover {
		t.Fatalf("hover = %d, want %d", cv.hover, noHover)
	}

	cv.MouseMoved(moveEvent(50, 350))
	if cv.hover != 0 {
		t.Fatalf("hover = %d, want 0", cv.hover)
	}

	cv.MouseOut()
	if cv.hover != noHover {
		t.Fatalf("hover after MouseOut = %d, want %d", cv.hover, noHover)
	}

	// MouseOut with nothing hovered stays reset
	cv.MouseOut()
	if cv.hover != noHover {
		t.Fatalf("hover after second MouseOut = %d, want %d", cv.hover, noHover)
	}
}

func TestMouseHoverInLargerLayout(t *testing.T) {
	test.NewApp()

	xs, ys := squareSeries()
	cv := New(xs, ys)

	w := test.NewWindow(cv)
	defer w.Close()
	w.Resize(fyne.NewSize(780, 480))

	// the layout hands the widget more than its minimum, so the bitmap is
	// centered inside the image object and every marker shifts on screen
	ox, oy := cv.surfaceOffset()
	if ox == 0 && oy == 0 {
		t.Fatal("expected the bitmap to be offset inside the larger layout")
	}

	// point 9 renders at surface (550, 50); hover it where it is drawn
	cv.MouseMoved(moveEvent(float32(550+ox), float32(50+oy)))
	if cv.hover != 9 {
		t.Fatalf("hover = %d, want 9", cv.hover)
	}

	// the unshifted position no longer lies on the marker
	cv.MouseMoved(moveEvent(550, 50))
	if cv.hover != noHover {
		t.Fatalf("hover = %d, want %d", cv.hover, noHover)
	}

	cv.MouseOut()
	if cv.hover != noHover {
		t.Fatalf("hover after MouseOut = %d, want %d", cv.hover, noHover)
	}
}

func TestMouseMovedInvalidSeries(t *testing.T) {
	test.NewApp()

	cv := New([]float64{1, 2}, []float64{1})
	cv.MouseMoved(moveEvent(100, 100))
	if cv.hover != noHover {
		t.Fatalf("hover = %d, want %d", cv.hover, noHover)
	}
	cv.MouseOut()
}
