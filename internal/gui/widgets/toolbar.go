package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	StartCaptureLabel = "Start Capturing"
	StopCaptureLabel  = "Stop capturing"
)

type Toolbar struct {
	container     *fyne.Container
	captureButton *widget.Button
	statusLabel   *widget.Label

	captureHandler func()
}

func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.captureButton = widget.NewButtonWithIcon(StartCaptureLabel, theme.MediaPlayIcon(), t.onCaptureClicked)
	t.captureButton.Importance = widget.HighImportance

	t.statusLabel = widget.NewLabel("Ready")
}

func (t *Toolbar) buildLayout() {
	background := canvas.NewRectangle(color.RGBA{R: 250, G: 249, B: 245, A: 255})
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeWidth = 1.0
	border.StrokeColor = color.RGBA{R: 231, G: 231, B: 231, A: 255}

	content := container.NewBorder(
		nil, nil,
		container.NewHBox(t.captureButton),
		nil,
		container.NewHBox(widget.NewSeparator(), t.statusLabel),
	)

	t.container = container.NewStack(
		border,
		container.NewPadded(
			container.NewStack(background, container.NewPadded(content)),
		),
	)
}

func (t *Toolbar) onCaptureClicked() {
	if t.captureHandler != nil {
		t.captureHandler()
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

func (t *Toolbar) SetCaptureHandler(handler func()) {
	t.captureHandler = handler
}

// SetCapturing flips the button between its start and stop faces.
func (t *Toolbar) SetCapturing(capturing bool) {
	if capturing {
		t.captureButton.SetText(StopCaptureLabel)
		t.captureButton.SetIcon(theme.MediaStopIcon())
		return
	}
	t.captureButton.SetText(StartCaptureLabel)
	t.captureButton.SetIcon(theme.MediaPlayIcon())
}

func (t *Toolbar) CaptureButton() *widget.Button {
	return t.captureButton
}

func (t *Toolbar) SetStatus(status string) {
	t.statusLabel.SetText(status)
}

func (t *Toolbar) Status() string {
	return t.statusLabel.Text
}
