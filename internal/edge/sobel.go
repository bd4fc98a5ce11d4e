package edge

import (
	"fmt"
	"image"

	"dip-challenge/internal/opencv/conversion"
	"dip-challenge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// Sobel blurs, converts to gray and blends the absolute x and y derivatives.
type Sobel struct {
	KernelSize int
	BlurSize   int
	Weight     float64
}

func NewSobel() *Sobel {
	return &Sobel{
		KernelSize: 3,
		BlurSize:   3,
		Weight:     0.5,
	}
}

func (s *Sobel) Name() string {
	return "sobel"
}

func (s *Sobel) Apply(src gocv.Mat) (gocv.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "sobel"); err != nil {
		return gocv.NewMat(), err
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(src, &blurred, image.Pt(s.BlurSize, s.BlurSize), 0, 0, gocv.BorderDefault)

	gray, err := conversion.ConvertToGrayscale(blurred)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("sobel grayscale: %w", err)
	}
	defer gray.Close()

	absX := s.absGradient(gray, 1, 0)
	defer absX.Close()

	absY := s.absGradient(gray, 0, 1)
	defer absY.Close()

	result := gocv.NewMat()
	gocv.AddWeighted(absX, s.Weight, absY, 1-s.Weight, 0, &result)

	if result.Empty() {
		result.Close()
		return gocv.NewMat(), fmt.Errorf("sobel produced an empty result")
	}

	return result, nil
}

// absGradient keeps the derivative in 16-bit signed precision, then folds it
// back into 8 bits.
func (s *Sobel) absGradient(gray gocv.Mat, dx, dy int) gocv.Mat {
	grad := gocv.NewMat()
	defer grad.Close()
	gocv.Sobel(gray, &grad, gocv.MatTypeCV16S, dx, dy, s.KernelSize, 1, 0, gocv.BorderDefault)

	abs := gocv.NewMat()
	gocv.ConvertScaleAbs(grad, &abs, 1, 0)
	return abs
}
