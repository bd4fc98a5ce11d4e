package histogram

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"
)

const lineThickness = 2

// gocv maps color.RGBA onto BGR Mats, so these read correctly on screen
// once the canvas is bridged with bridge.OrderBGR.
var channelColors = [channelCount]color.RGBA{
	Blue:  {B: 255, A: 255},
	Green: {G: 255, A: 255},
	Red:   {R: 255, A: 255},
}

// Render draws each channel as a polyline on a zeroed width x height BGR
// canvas. Bin values are expected to be normalized into [0, height].
func (h *Histogram) Render(width, height int) (gocv.Mat, error) {
	if width <= 0 || height <= 0 {
		return gocv.NewMat(), fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
	binWidth := BinWidth(width, h.bins)

	for i := 1; i < h.bins; i++ {
		for c := 0; c < channelCount; c++ {
			values := h.channels[c]
			from := image.Pt(binWidth*(i-1), height-roundBin(values[i-1]))
			to := image.Pt(binWidth*i, height-roundBin(values[i]))
			gocv.Line(&canvas, from, to, channelColors[c], lineThickness)
		}
	}

	return canvas, nil
}

// BinWidth is the horizontal distance between two consecutive bins.
func BinWidth(width, bins int) int {
	return int(math.Round(float64(width) / float64(bins)))
}

func roundBin(v float32) int {
	return int(math.RoundToEven(float64(v)))
}
