package chartview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"
)

// seriesLabel is the legend entry for the series. Tapping it toggles the
// polyline on and off, secondary tap opens a color picker for the line color.
type seriesLabel struct {
	widget.BaseWidget
	text          *canvas.Text
	enabled       bool
	onTapped      func(bool)
	onColorUpdate func(col color.Color)
	color         color.Color
}

func newSeriesLabel(name string, col color.Color, onTapped func(enabled bool), onColorUpdate func(col color.Color)) *seriesLabel {
	sl := &seriesLabel{
		text:          canvas.NewText(name, col),
		enabled:       true,
		onTapped:      onTapped,
		onColorUpdate: onColorUpdate,
		color:         col,
	}
	sl.text.TextSize = 11
	sl.text.TextStyle = fyne.TextStyle{Bold: true}
	sl.ExtendBaseWidget(sl)
	return sl
}

func (sl *seriesLabel) Tapped(*fyne.PointEvent) {
	sl.enabled = !sl.enabled
	if sl.enabled {
		sl.text.Color = sl.color
		sl.text.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		sl.text.Color = color.RGBA{128, 128, 128, 255}
		sl.text.TextStyle = fyne.TextStyle{Italic: true}
	}
	sl.text.Refresh()
	if sl.onTapped != nil {
		sl.onTapped(sl.enabled)
	}
}

func (sl *seriesLabel) TappedSecondary(*fyne.PointEvent) {
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetOnChanged(func(c color.Color) {
		sl.color = c
		if sl.enabled {
			sl.text.Color = c
			sl.text.Refresh()
		}
		if sl.onColorUpdate != nil {
			sl.onColorUpdate(c)
		}
	})

	cnv := fyne.CurrentApp().Driver().CanvasForObject(sl.text)

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), cnv)
	modal.Show()
}

func (sl *seriesLabel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sl.text)
}
