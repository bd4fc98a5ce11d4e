package histogram

import (
	"fmt"

	"dip-challenge/internal/config"

	"gocv.io/x/gocv"
)

// Builder turns frames into histogram rasters of a fixed size.
type Builder struct {
	width  int
	height int
	bins   int
}

func NewBuilder(cfg config.HistogramConfig) *Builder {
	return &Builder{
		width:  cfg.Width,
		height: cfg.Height,
		bins:   cfg.Bins,
	}
}

// Build returns a width x height x 3 raster of the frame's BGR histograms.
// The caller closes the returned Mat.
func (b *Builder) Build(frame gocv.Mat) (gocv.Mat, error) {
	hist, err := ComputeNormalized(frame, b.bins, float64(b.height))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("compute histogram: %w", err)
	}

	raster, err := hist.Render(b.width, b.height)
	if err != nil {
		raster.Close()
		return gocv.NewMat(), fmt.Errorf("render histogram: %w", err)
	}

	return raster, nil
}
