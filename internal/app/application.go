package app

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"dip-challenge/internal/config"
	"dip-challenge/internal/gui"
	"dip-challenge/internal/gui/widgets"
	"dip-challenge/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

const (
	AppName    = "DIP Challenge"
	AppID      = "com.dipchallenge.app"
	AppVersion = "1.0.0"
)

type shutdownHandler interface {
	Shutdown()
}

type Application struct {
	fyneApp       fyne.App
	window        fyne.Window
	guiManager    *gui.Manager
	logger        logger.Logger
	shutdownables []shutdownHandler
	signals       chan os.Signal
	shutdown      chan struct{}
}

func NewApplication() (*Application, error) {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
		Build:   1,
	})

	cfg := config.Default()
	logLevel := config.LogLevel(zerolog.InfoLevel)
	log := logger.NewConsoleLogger(logLevel)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(cfg.Window.Title)

	windowSize := calculateMinimumWindowSize()
	window.Resize(windowSize)
	window.SetFixedSize(false)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":        AppVersion,
		"window_width":   windowSize.Width,
		"window_height":  windowSize.Height,
		"log_level":      logLevel.String(),
		"opencv_version": gocv.Version(),
	})

	guiManager := gui.NewManager(window, cfg, gui.DefaultDependencies(), log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		logger:     log,
		signals:    make(chan os.Signal, 1),
		shutdown:   make(chan struct{}),
		shutdownables: []shutdownHandler{
			guiManager,
		},
	}

	application.setupMenu()
	application.setupSignalHandling()
	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupMenu() {
	aboutAction := func() {
		a.logger.Debug("About", "menu action triggered", nil)
		a.showAbout()
	}

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", aboutAction),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(helpMenu))
}

func (a *Application) showAbout() {
	metadata := a.fyneApp.Metadata()

	name := metadata.Name
	if name == "" {
		name = AppName
	}

	version := metadata.Version
	if version == "" {
		version = AppVersion
	}

	aboutContent := container.NewVBox(
		widget.NewLabel(name),
		widget.NewLabel(fmt.Sprintf("Version: %s", version)),
		widget.NewLabel(""),
		widget.NewLabel("Live webcam preview with a per-channel histogram."),
		widget.NewLabel(""),
		widget.NewLabel("Runtime Info:"),
		widget.NewLabel(fmt.Sprintf("Go: %s", runtime.Version())),
		widget.NewLabel(fmt.Sprintf("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)),
		widget.NewLabel(fmt.Sprintf("OpenCV: %s", gocv.OpenCVVersion())),
	)

	dialog.ShowCustom("About", "Close", aboutContent, a.window)
}

func calculateMinimumWindowSize() fyne.Size {
	toolbarHeight := float32(60)

	return fyne.Size{
		Width:  float32(widgets.CameraAreaWidth + widgets.HistogramAreaWidth + 80),
		Height: float32(widgets.CameraAreaHeight) + toolbarHeight + 80,
	}
}

func (a *Application) setupSignalHandling() {
	signal.Notify(a.signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-a.signals:
			a.logger.Info("Application", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			fyne.Do(func() {
				a.initiateShutdown()
				a.fyneApp.Quit()
			})
		case <-a.shutdown:
			return
		}
	}()
}

// Run blocks until the window is closed or a signal arrives.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested via window close", nil)
		a.initiateShutdown()
		a.window.Close()
	})

	a.guiManager.Show()

	a.fyneApp.Run()

	// covers quitting through the OS menu, which skips the close intercept
	a.initiateShutdown()
	signal.Stop(a.signals)
	return nil
}

// initiateShutdown runs on the UI goroutine. Components are shut down in
// reverse registration order, once.
func (a *Application) initiateShutdown() {
	select {
	case <-a.shutdown:
		return
	default:
		close(a.shutdown)
	}

	a.logger.Info("Application", "shutdown sequence initiated", map[string]interface{}{
		"components": len(a.shutdownables),
	})

	for i := len(a.shutdownables) - 1; i >= 0; i-- {
		a.shutdownables[i].Shutdown()
	}

	a.logger.Info("Application", "shutdown sequence completed", nil)
}
