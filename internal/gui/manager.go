package gui

import (
	"dip-challenge/internal/capture"
	"dip-challenge/internal/config"
	"dip-challenge/internal/logger"

	"fyne.io/fyne/v2"
)

// Dependencies are the pieces of the capture pipeline that talk to hardware
// or the event loop.
type Dependencies struct {
	Open      capture.OpenFunc
	Scheduler capture.Scheduler
}

func DefaultDependencies() Dependencies {
	return Dependencies{
		Open:      capture.OpenVideoDevice,
		Scheduler: NewTickerScheduler(),
	}
}

type Manager struct {
	window     fyne.Window
	controller *Controller
	view       *View
	session    *capture.Session
	logger     logger.Logger
	isShutdown bool
}

func NewManager(window fyne.Window, cfg *config.Config, deps Dependencies, log logger.Logger) *Manager {
	manager := &Manager{
		window: window,
		logger: log,
	}

	manager.view = NewView(window)
	manager.session = capture.NewSession(cfg, deps.Open, deps.Scheduler, manager.view, log)
	manager.controller = NewController(manager.session, cfg.Capture.Device, log)

	manager.view.SetController(manager.controller)
	manager.controller.SetView(manager.view)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"window_title": window.Title(),
		"device":       cfg.Capture.Device,
	})

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return m.view.GetMainContainer()
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) View() *View {
	return m.view
}

func (m *Manager) Session() *capture.Session {
	return m.session
}

func (m *Manager) Show() {
	m.view.Show()
	m.logger.Info("GUIManager", "GUI displayed", nil)
}

// Shutdown stops capture and releases the device. Safe to call twice.
func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)

	if m.controller != nil {
		m.controller.Shutdown()
	}

	m.logger.Info("GUIManager", "shutdown completed", nil)
}
