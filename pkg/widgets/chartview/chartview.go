package chartview

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/chartview/pkg/debug"
	"github.com/roffe/chartview/pkg/layout"
)

const (
	// hitRadius is the hover hit-test threshold in pixels. A pointer further
	// than this from every data point clears the hover state.
	hitRadius = 20

	noHover = -1

	legendWidth = 140
)

var (
	defaultLineColor  = color.RGBA{0x00, 0x7B, 0xFF, 0xFF}
	defaultPointColor = color.RGBA{0xDC, 0x35, 0x45, 0xFF}
	defaultGridColor  = color.RGBA{0x55, 0x55, 0x55, 0xFF}

	backgroundColor = color.RGBA{0x12, 0x12, 0x12, 0xFF}
	axisColor       = color.RGBA{0xC8, 0xC8, 0xC8, 0xFF}
	labelColor      = color.RGBA{0xA0, 0xA0, 0xA0, 0xFF}
	hoverTextColor  = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
)

// ChartView is a 2D line/scatter chart widget. It draws a single series as a
// polyline with point markers, gridlines and axis labels onto an image
// surface, and highlights the data point nearest the pointer.
type ChartView struct {
	widget.BaseWidget

	xs, ys []float64

	title  string
	width  int
	height int
	margin int

	lineColor  color.RGBA
	pointColor color.RGBA
	gridColor  color.RGBA

	hover      int
	lineHidden bool

	invalid bool

	image     *canvas.Image
	errText   *canvas.Text
	legend    *seriesLabel
	container *fyne.Container
}

type Opt func(*ChartView)

func WithSize(width, height int) Opt {
	return func(cv *ChartView) {
		cv.width = width
		cv.height = height
	}
}

func WithMargin(margin int) Opt {
	return func(cv *ChartView) {
		cv.margin = margin
	}
}

func WithTitle(title string) Opt {
	return func(cv *ChartView) {
		cv.title = title
	}
}

func WithLineColor(col color.RGBA) Opt {
	return func(cv *ChartView) {
		cv.lineColor = col
	}
}

func WithPointColor(col color.RGBA) Opt {
	return func(cv *ChartView) {
		cv.pointColor = col
	}
}

func WithGridColor(col color.RGBA) Opt {
	return func(cv *ChartView) {
		cv.gridColor = col
	}
}

// New creates a chart for the given series. The two slices must be the same
// non-zero length; if they are not, the widget shows an error message in
// place of the chart and never touches the drawing surface.
func New(xs, ys []float64, opts ...Opt) *ChartView {
	cv := &ChartView{
		xs:         xs,
		ys:         ys,
		title:      "series",
		width:      600,
		height:     400,
		margin:     50,
		lineColor:  defaultLineColor,
		pointColor: defaultPointColor,
		gridColor:  defaultGridColor,
		hover:      noHover,
	}

	for _, opt := range opts {
		opt(cv)
	}

	cv.ExtendBaseWidget(cv)

	if err := validateSeries(xs, ys); err != nil {
		cv.invalid = true
		debug.Log("chartview: " + err.Error())
		cv.errText = canvas.NewText(err.Error(), color.RGBA{0xFF, 0x45, 0x45, 0xFF})
		cv.errText.Alignment = fyne.TextAlignCenter
		cv.container = container.NewCenter(cv.errText)
		return cv
	}

	cv.image = canvas.NewImageFromImage(cv.render())
	cv.image.FillMode = canvas.ImageFillOriginal
	cv.image.ScaleMode = canvas.ImageScaleFastest

	cv.legend = newSeriesLabel(cv.title, cv.lineColor,
		func(enabled bool) {
			cv.lineHidden = !enabled
			cv.refreshImage()
		},
		func(col color.Color) {
			r, g, b, a := col.RGBA()
			cv.lineColor = color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
			cv.refreshImage()
		},
	)

	cv.container = container.NewBorder(
		nil,
		nil,
		nil,
		layout.NewFixedWidth(legendWidth, container.NewVBox(cv.legend)),
		container.NewStack(cv.image),
	)
	return cv
}

func validateSeries(xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("series length mismatch: %d x values, %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("empty series")
	}
	return nil
}

// SetSeries replaces the chart data and redraws. Mismatched or empty input
// is rejected and the current series stays on screen.
func (cv *ChartView) SetSeries(xs, ys []float64) {
	if cv.invalid {
		return
	}
	if err := validateSeries(xs, ys); err != nil {
		debug.Log("chartview: " + err.Error())
		return
	}
	cv.xs = xs
	cv.ys = ys
	cv.hover = noHover
	cv.refreshImage()
}

// Image returns the most recently rendered frame, or nil when the widget is
// in the error state.
func (cv *ChartView) Image() image.Image {
	if cv.invalid {
		return nil
	}
	return cv.image.Image
}

func (cv *ChartView) refreshImage() {
	cv.image.Image = cv.render()
	cv.image.Refresh()
}

func (cv *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return &chartViewRenderer{cv: cv}
}

type chartViewRenderer struct {
	cv   *ChartView
	size fyne.Size
}

func (r *chartViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.cv.width+legendWidth), float32(r.cv.height))
}

func (r *chartViewRenderer) Destroy() {}

func (r *chartViewRenderer) Refresh() {}

func (r *chartViewRenderer) Layout(size fyne.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.cv.container.Resize(size)
}

func (r *chartViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.cv.container}
}
