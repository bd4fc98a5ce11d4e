// Package capture owns the webcam capture session: opening the device,
// pulling frames on a timer and pushing preview and histogram images to
// the display.
//
// All Session methods must be called from the UI goroutine.
package capture

import (
	"errors"
	"fmt"
	"image"

	"dip-challenge/internal/config"
	"dip-challenge/internal/histogram"
	"dip-challenge/internal/logger"
	"dip-challenge/internal/opencv/bridge"
	"dip-challenge/internal/opencv/conversion"

	"gocv.io/x/gocv"
)

var (
	ErrDeviceUnavailable = errors.New("capture device unavailable")
	ErrNoFrame           = errors.New("no webcam found/available")
	ErrClosed            = errors.New("capture session closed")
)

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Sink receives the images produced for every processed frame.
type Sink interface {
	ShowFrame(img image.Image)
	ShowHistogram(img image.Image)
}

type Stats struct {
	FramesProcessed int
	TicksSkipped    int
}

type Session struct {
	cfg       config.CaptureConfig
	open      OpenFunc
	scheduler Scheduler
	sink      Sink
	builder   *histogram.Builder
	logger    logger.Logger

	// source and cancel are both set while Running and both nil while Idle.
	source Source
	cancel func()
	frame  gocv.Mat
	stats  Stats
	closed bool
}

func NewSession(cfg *config.Config, open OpenFunc, scheduler Scheduler, sink Sink, log logger.Logger) *Session {
	return &Session{
		cfg:       cfg.Capture,
		open:      open,
		scheduler: scheduler,
		sink:      sink,
		builder:   histogram.NewBuilder(cfg.Histogram),
		logger:    log,
		frame:     gocv.NewMat(),
	}
}

func (s *Session) State() State {
	if s.source != nil {
		return Running
	}
	return Idle
}

func (s *Session) Running() bool {
	return s.State() == Running
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Toggle is the start/stop button handler.
func (s *Session) Toggle() error {
	if s.Running() {
		s.Stop()
		return nil
	}
	return s.Start()
}

// Start opens the device and validates it with one synchronous read. That
// frame is shown right away, then the recurring timer is armed.
func (s *Session) Start() error {
	if s.Running() {
		return nil
	}

	if s.closed {
		return ErrClosed
	}

	source, err := s.open(s.cfg.Device)
	if err != nil {
		err = fmt.Errorf("%w: device %d: %v", ErrDeviceUnavailable, s.cfg.Device, err)
		s.logger.Error("CaptureSession", err, nil)
		return err
	}

	if !source.Read(&s.frame) || s.frame.Empty() {
		if closeErr := source.Close(); closeErr != nil {
			s.logger.Warning("CaptureSession", "release after failed read", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
		err := fmt.Errorf("%w: device %d", ErrNoFrame, s.cfg.Device)
		s.logger.Error("CaptureSession", err, nil)
		return err
	}

	s.stats = Stats{}
	if err := s.process(s.frame); err != nil {
		s.stats.TicksSkipped++
		s.logger.Warning("CaptureSession", "first frame not displayed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.source = source
	s.cancel = s.scheduler.Every(s.cfg.Interval, s.OnTick)

	s.logger.Info("CaptureSession", "capture started", map[string]interface{}{
		"device":   s.cfg.Device,
		"interval": s.cfg.Interval,
		"width":    s.frame.Cols(),
		"height":   s.frame.Rows(),
	})

	return nil
}

// Stop cancels the timer and releases the device.
func (s *Session) Stop() {
	if !s.Running() {
		return
	}

	s.cancel()
	if err := s.source.Close(); err != nil {
		s.logger.Warning("CaptureSession", "device release failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.source = nil
	s.cancel = nil

	s.logger.Info("CaptureSession", "capture stopped", map[string]interface{}{
		"frames_processed": s.stats.FramesProcessed,
		"ticks_skipped":    s.stats.TicksSkipped,
	})
}

// OnTick pulls and displays the next frame. A failed read skips the tick and
// the session keeps running.
func (s *Session) OnTick() {
	if !s.Running() {
		return
	}

	if !s.source.Read(&s.frame) || s.frame.Empty() {
		s.stats.TicksSkipped++
		s.logger.Debug("CaptureSession", "empty read, tick skipped", nil)
		return
	}

	if err := s.process(s.frame); err != nil {
		s.stats.TicksSkipped++
		s.logger.Warning("CaptureSession", "frame skipped", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Close releases everything the session holds. Safe to call more than once.
func (s *Session) Close() {
	s.Stop()
	if s.closed {
		return
	}
	s.closed = true
	s.frame.Close()
}

func (s *Session) process(frame gocv.Mat) error {
	rgb, err := conversion.ToDisplayRGB(frame)
	if err != nil {
		return fmt.Errorf("convert frame: %w", err)
	}
	defer rgb.Close()

	preview, err := bridge.MatToImage(rgb, bridge.OrderRGB)
	if err != nil {
		return fmt.Errorf("frame to image: %w", err)
	}

	raster, err := s.builder.Build(frame)
	if err != nil {
		return fmt.Errorf("build histogram: %w", err)
	}
	defer raster.Close()

	histImage, err := bridge.MatToImage(raster, bridge.OrderBGR)
	if err != nil {
		return fmt.Errorf("histogram to image: %w", err)
	}

	s.sink.ShowFrame(preview)
	s.sink.ShowHistogram(histImage)
	s.stats.FramesProcessed++
	return nil
}
