// Package histogram computes per-channel intensity histograms of BGR frames
// and rasterizes them as three overlaid polylines.
package histogram

import (
	"fmt"

	"dip-challenge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Planes of a BGR frame, in the order gocv.Split returns them.
const (
	Blue = iota
	Green
	Red
	channelCount
)

// Histogram holds one bin slice per BGR plane.
type Histogram struct {
	bins     int
	channels [channelCount][]float32
}

// Compute counts the samples of each plane of a 3-channel 8-bit frame into
// bins buckets spanning [0, 256).
func Compute(frame gocv.Mat, bins int) (*Histogram, error) {
	return compute(frame, bins, nil)
}

// ComputeNormalized is Compute followed by an independent min-max scaling of
// every channel into [0, height].
func ComputeNormalized(frame gocv.Mat, bins int, height float64) (*Histogram, error) {
	return compute(frame, bins, func(hist *gocv.Mat) {
		gocv.Normalize(*hist, hist, 0, height, gocv.NormMinMax)
	})
}

func compute(frame gocv.Mat, bins int, normalize func(*gocv.Mat)) (*Histogram, error) {
	if err := safe.ValidateChannels(frame, channelCount, "histogram"); err != nil {
		return nil, err
	}

	if frame.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("histogram requires an 8-bit frame, got Mat type %d", frame.Type())
	}

	if bins <= 0 || bins > 256 {
		return nil, fmt.Errorf("bin count must be between 1 and 256, got %d", bins)
	}

	planes := gocv.Split(frame)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()

	if len(planes) != channelCount {
		return nil, fmt.Errorf("split produced %d planes, want %d", len(planes), channelCount)
	}

	mask := gocv.NewMat()
	defer mask.Close()

	h := &Histogram{bins: bins}
	for c, plane := range planes {
		hist := gocv.NewMat()
		gocv.CalcHist([]gocv.Mat{plane}, []int{0}, mask, &hist, []int{bins}, []float64{0, 256}, false)

		if normalize != nil {
			normalize(&hist)
		}

		if hist.Rows() != bins {
			hist.Close()
			return nil, fmt.Errorf("histogram of plane %d has %d bins, want %d", c, hist.Rows(), bins)
		}

		values := make([]float32, bins)
		for b := range values {
			values[b] = hist.GetFloatAt(b, 0)
		}
		h.channels[c] = values
		hist.Close()
	}

	return h, nil
}

func (h *Histogram) Bins() int {
	return h.bins
}

// Channel returns a copy of the bins of plane c (Blue, Green or Red).
func (h *Histogram) Channel(c int) []float32 {
	out := make([]float32, len(h.channels[c]))
	copy(out, h.channels[c])
	return out
}

// Total is the sum of all bins of plane c.
func (h *Histogram) Total(c int) float64 {
	var sum float64
	for _, v := range h.channels[c] {
		sum += float64(v)
	}
	return sum
}
