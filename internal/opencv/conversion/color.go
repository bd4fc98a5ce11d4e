package conversion

import (
	"fmt"

	"dip-challenge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

func CvtColorSafe(src gocv.Mat, dst *gocv.Mat, code gocv.ColorConversionCode) error {
	if err := safe.ValidateColorConversion(src, code); err != nil {
		return fmt.Errorf("color conversion validation failed: %w", err)
	}

	if dst == nil {
		return fmt.Errorf("destination Mat is nil")
	}

	gocv.CvtColor(src, dst, code)

	if dst.Empty() {
		return fmt.Errorf("color conversion produced an empty Mat")
	}

	return nil
}

// ConvertToGrayscale returns a new single channel Mat. The caller closes it.
func ConvertToGrayscale(src gocv.Mat) (gocv.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "ConvertToGrayscale"); err != nil {
		return gocv.NewMat(), err
	}

	switch channels := src.Channels(); channels {
	case 1:
		return src.Clone(), nil
	case 3:
		dst := gocv.NewMat()
		if err := CvtColorSafe(src, &dst, gocv.ColorBGRToGray); err != nil {
			dst.Close()
			return gocv.NewMat(), fmt.Errorf("BGR to Gray conversion failed: %w", err)
		}
		return dst, nil
	case 4:
		tempBGR := gocv.NewMat()
		defer tempBGR.Close()

		if err := CvtColorSafe(src, &tempBGR, gocv.ColorBGRAToBGR); err != nil {
			return gocv.NewMat(), fmt.Errorf("BGRA to BGR conversion failed: %w", err)
		}

		return ConvertToGrayscale(tempBGR)
	default:
		return gocv.NewMat(), fmt.Errorf("unsupported channel count for grayscale conversion: %d", channels)
	}
}

// ToDisplayRGB reorders a captured BGR frame into RGB for on-screen display.
// Gray frames are expanded to three channels.
func ToDisplayRGB(src gocv.Mat) (gocv.Mat, error) {
	if err := safe.ValidateMatForOperation(src, "ToDisplayRGB"); err != nil {
		return gocv.NewMat(), err
	}

	var code gocv.ColorConversionCode
	switch channels := src.Channels(); channels {
	case 1:
		// gray has no channel order, GrayToBGR yields identical planes
		code = gocv.ColorGrayToBGR
	case 3:
		code = gocv.ColorBGRToRGB
	default:
		return gocv.NewMat(), fmt.Errorf("unsupported channel count for display conversion: %d", channels)
	}

	dst := gocv.NewMat()
	if err := CvtColorSafe(src, &dst, code); err != nil {
		dst.Close()
		return gocv.NewMat(), fmt.Errorf("display conversion failed: %w", err)
	}

	return dst, nil
}
