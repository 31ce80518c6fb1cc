package main

import (
	"image/png"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	sdialog "github.com/sqweek/dialog"

	"github.com/roffe/chartview/pkg/debug"
	"github.com/roffe/chartview/pkg/widgets/chartview"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	defer debug.Close()

	a := app.NewWithID("com.roffe.chartview")

	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i * i)
	}

	cv := chartview.New(xs, ys, chartview.WithTitle("y = x²"))

	w := a.NewWindow("chartview")
	w.SetContent(container.NewBorder(
		nil,
		widget.NewButton("Save PNG…", func() {
			savePNG(cv)
		}),
		nil,
		nil,
		cv,
	))
	w.Resize(fyne.NewSize(780, 480))
	w.ShowAndRun()
}

func savePNG(cv *chartview.ChartView) {
	img := cv.Image()
	if img == nil {
		return
	}
	filename, err := sdialog.File().Filter("PNG image", "png").SetStartFile("chart.png").Save()
	if err != nil {
		if err != sdialog.ErrCancelled {
			log.Println("save dialog:", err)
		}
		return
	}
	f, err := os.Create(filename)
	if err != nil {
		log.Println("create:", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Println("encode:", err)
	}
}
