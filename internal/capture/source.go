package capture

import (
	"time"

	"gocv.io/x/gocv"
)

// Source is an open capture device. *gocv.VideoCapture satisfies it.
type Source interface {
	Read(frame *gocv.Mat) bool
	Close() error
}

// OpenFunc opens the capture device with the given index.
type OpenFunc func(device int) (Source, error)

// Scheduler arms a recurring callback. Calling the returned cancel stops it;
// after cancel returns fn is not invoked again.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

// OpenVideoDevice opens a webcam through OpenCV's videoio backend.
func OpenVideoDevice(device int) (Source, error) {
	vc, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, err
	}
	return vc, nil
}
