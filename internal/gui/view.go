package gui

import (
	"fmt"
	"image"

	"dip-challenge/internal/gui/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// View owns the widgets and doubles as the capture session's display sink.
type View struct {
	window     fyne.Window
	controller *Controller

	toolbar       *widgets.Toolbar
	imageDisplay  *widgets.ImageDisplay
	mainContainer *fyne.Container
}

func NewView(window fyne.Window) *View {
	view := &View{
		window: window,
	}

	view.setupComponents()
	view.setupLayout()

	return view
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	v.setupEventHandlers()
}

func (v *View) setupComponents() {
	v.toolbar = widgets.NewToolbar()
	v.imageDisplay = widgets.NewImageDisplay()
}

func (v *View) setupLayout() {
	v.mainContainer = container.NewBorder(
		nil,
		v.toolbar.GetContainer(),
		nil, nil,
		v.imageDisplay.GetContainer(),
	)
}

func (v *View) setupEventHandlers() {
	if v.controller == nil {
		return
	}

	v.toolbar.SetCaptureHandler(v.controller.ToggleCapture)
}

func (v *View) GetMainContainer() *fyne.Container {
	return v.mainContainer
}

func (v *View) ShowFrame(img image.Image) {
	v.imageDisplay.SetCameraImage(img)
}

func (v *View) ShowHistogram(img image.Image) {
	v.imageDisplay.SetHistogramImage(img)
}

func (v *View) SetCapturing(capturing bool) {
	v.toolbar.SetCapturing(capturing)
}

func (v *View) SetStatus(status string) {
	v.toolbar.SetStatus(status)
}

func (v *View) ShowError(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), v.window)
}

func (v *View) Toolbar() *widgets.Toolbar {
	return v.toolbar
}

func (v *View) ImageDisplay() *widgets.ImageDisplay {
	return v.imageDisplay
}

func (v *View) Show() {
	v.window.SetContent(v.mainContainer)
	v.window.Show()
}
