package edge

import (
	"fmt"

	"dip-challenge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Canny runs OpenCV's hysteresis edge linking with fixed thresholds.
type Canny struct {
	LowThreshold  float32
	HighThreshold float32
}

func NewCanny() *Canny {
	return &Canny{
		LowThreshold:  100,
		HighThreshold: 200,
	}
}

func (c *Canny) Name() string {
	return "canny"
}

func (c *Canny) Apply(src gocv.Mat) (gocv.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "canny"); err != nil {
		return gocv.NewMat(), err
	}

	edges := gocv.NewMat()
	gocv.Canny(src, &edges, c.LowThreshold, c.HighThreshold)

	if edges.Empty() {
		edges.Close()
		return gocv.NewMat(), fmt.Errorf("canny produced an empty result")
	}

	return edges, nil
}
