package safe

import (
	"fmt"

	"gocv.io/x/gocv"
)

const maxDimension = 32768

// ValidateMatForOperation rejects empty or oversized Mats before they reach OpenCV.
func ValidateMatForOperation(mat gocv.Mat, operation string) error {
	if mat.Empty() {
		return fmt.Errorf("Mat is empty for operation: %s", operation)
	}

	if mat.Rows() <= 0 || mat.Cols() <= 0 {
		return fmt.Errorf("Mat has invalid dimensions %dx%d for operation: %s",
			mat.Cols(), mat.Rows(), operation)
	}

	if mat.Rows() > maxDimension || mat.Cols() > maxDimension {
		return fmt.Errorf("Mat dimensions %dx%d exceed maximum size for operation: %s",
			mat.Cols(), mat.Rows(), operation)
	}

	return nil
}

// ValidateChannels checks the Mat is usable and carries exactly want channels.
func ValidateChannels(mat gocv.Mat, want int, operation string) error {
	if err := ValidateMatForOperation(mat, operation); err != nil {
		return err
	}

	if got := mat.Channels(); got != want {
		return fmt.Errorf("%s requires %d channels, got %d", operation, want, got)
	}

	return nil
}

func ValidateColorConversion(src gocv.Mat, code gocv.ColorConversionCode) error {
	if err := ValidateMatForOperation(src, "CvtColor"); err != nil {
		return err
	}

	channels := src.Channels()

	switch code {
	case gocv.ColorBGRToGray, gocv.ColorRGBToGray:
		if channels != 3 {
			return fmt.Errorf("BGR/RGB to Gray conversion requires 3 channels, got %d", channels)
		}
	case gocv.ColorGrayToBGR:
		if channels != 1 {
			return fmt.Errorf("Gray to BGR conversion requires 1 channel, got %d", channels)
		}
	case gocv.ColorBGRToRGB:
		if channels != 3 {
			return fmt.Errorf("BGR/RGB conversion requires 3 channels, got %d", channels)
		}
	case gocv.ColorBGRAToBGR:
		if channels != 4 {
			return fmt.Errorf("BGRA to BGR conversion requires 4 channels, got %d", channels)
		}
	}

	return nil
}
