package config

import (
	"os"
	"time"

	"dip-challenge/internal/logger"

	"github.com/rs/zerolog"
)

const LogLevelEnv = "LOG_LEVEL"

// CaptureConfig describes which device the session opens and how often it polls.
type CaptureConfig struct {
	Device   int
	Interval time.Duration
}

// HistogramConfig is the size of the histogram canvas and the bin count.
type HistogramConfig struct {
	Width  int
	Height int
	Bins   int
}

type WindowConfig struct {
	Title         string
	PreviewWidth  float32
	PreviewHeight float32
}

type Config struct {
	Capture   CaptureConfig
	Histogram HistogramConfig
	Window    WindowConfig
}

func Default() *Config {
	return &Config{
		Capture: CaptureConfig{
			Device: 0,
			// 66 frames per second reads like video.
			Interval: time.Second / 66,
		},
		Histogram: HistogramConfig{
			Width:  400,
			Height: 300,
			Bins:   256,
		},
		Window: WindowConfig{
			Title:         "DIP Challenge",
			PreviewWidth:  640,
			PreviewHeight: 480,
		},
	}
}

// LogLevel reads LOG_LEVEL and falls back to def when it is unset or unknown.
func LogLevel(def zerolog.Level) zerolog.Level {
	return logger.ParseLevel(os.Getenv(LogLevelEnv), def)
}
