package widgets

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	CameraAreaWidth     = 640
	CameraAreaHeight    = 480
	HistogramAreaWidth  = 400
	HistogramAreaHeight = 300
)

// ImageDisplay shows the live camera preview next to its histogram.
type ImageDisplay struct {
	container      fyne.CanvasObject
	cameraImage    *canvas.Image
	histogramImage *canvas.Image
	splitView      *container.Split
}

func NewImageDisplay() *ImageDisplay {
	display := &ImageDisplay{}
	display.createComponents()
	display.setupLayout()
	return display
}

func (id *ImageDisplay) createComponents() {
	id.cameraImage = canvas.NewImageFromImage(nil)
	id.cameraImage.FillMode = canvas.ImageFillContain
	id.cameraImage.ScaleMode = canvas.ImageScaleFastest
	id.cameraImage.SetMinSize(fyne.NewSize(CameraAreaWidth, CameraAreaHeight))

	id.histogramImage = canvas.NewImageFromImage(nil)
	id.histogramImage.FillMode = canvas.ImageFillContain
	id.histogramImage.ScaleMode = canvas.ImageScalePixels
	id.histogramImage.SetMinSize(fyne.NewSize(HistogramAreaWidth, HistogramAreaHeight))
}

func (id *ImageDisplay) setupLayout() {
	cameraContainer := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Camera**"),
		nil, nil, nil,
		id.cameraImage,
	)

	histogramContainer := container.NewBorder(
		widget.NewRichTextFromMarkdown("**Histogram**"),
		nil, nil, nil,
		id.histogramImage,
	)

	id.splitView = container.NewHSplit(cameraContainer, histogramContainer)
	id.splitView.SetOffset(0.6)
	id.container = id.splitView
}

func (id *ImageDisplay) GetContainer() fyne.CanvasObject {
	return id.container
}

func (id *ImageDisplay) SetCameraImage(img image.Image) {
	id.cameraImage.Image = img
	id.cameraImage.Refresh()
}

func (id *ImageDisplay) SetHistogramImage(img image.Image) {
	id.histogramImage.Image = img
	id.histogramImage.Refresh()
}

func (id *ImageDisplay) CameraImage() image.Image {
	return id.cameraImage.Image
}

func (id *ImageDisplay) HistogramImage() image.Image {
	return id.histogramImage.Image
}
