package gui

import (
	"fmt"

	"dip-challenge/internal/capture"
	"dip-challenge/internal/logger"
)

// Controller turns button presses into capture session transitions and keeps
// the toolbar in step with the session state.
type Controller struct {
	view    *View
	session *capture.Session
	device  int
	logger  logger.Logger
}

func NewController(session *capture.Session, device int, log logger.Logger) *Controller {
	return &Controller{
		session: session,
		device:  device,
		logger:  log,
	}
}

func (c *Controller) SetView(view *View) {
	c.view = view
	c.refreshState()
}

// ToggleCapture is bound to the start/stop button.
func (c *Controller) ToggleCapture() {
	wasRunning := c.session.Running()

	if err := c.session.Toggle(); err != nil {
		c.handleError("Capture error", err)
	}

	c.refreshState()

	if wasRunning {
		stats := c.session.Stats()
		c.logger.Debug("Controller", "capture toggled off", map[string]interface{}{
			"frames_processed": stats.FramesProcessed,
			"ticks_skipped":    stats.TicksSkipped,
		})
	}
}

func (c *Controller) refreshState() {
	if c.view == nil {
		return
	}

	running := c.session.Running()
	c.view.SetCapturing(running)

	if running {
		c.view.SetStatus(fmt.Sprintf("Capturing from device %d", c.device))
	} else {
		c.view.SetStatus("Ready")
	}
}

func (c *Controller) handleError(title string, err error) {
	c.logger.Error("Controller", err, map[string]interface{}{
		"title": title,
	})

	if c.view != nil {
		c.view.ShowError(title, err)
	}
}

// Shutdown releases the device without touching widgets, the window may
// already be gone.
func (c *Controller) Shutdown() {
	c.session.Close()
	c.logger.Info("Controller", "shutdown completed", nil)
}
