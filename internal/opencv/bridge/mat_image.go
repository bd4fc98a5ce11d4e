package bridge

import (
	"fmt"
	"image"

	"dip-challenge/internal/opencv/safe"

	"gocv.io/x/gocv"
)

// ChannelOrder names the byte order of a 3 or 4 channel Mat.
type ChannelOrder int

const (
	OrderBGR ChannelOrder = iota
	OrderRGB
)

// MatToImage copies an 8-bit Mat into a Go image so fyne can draw it.
func MatToImage(mat gocv.Mat, order ChannelOrder) (image.Image, error) {
	if err := safe.ValidateMatForOperation(mat, "MatToImage"); err != nil {
		return nil, err
	}

	if depth := mat.Type() & 7; depth != gocv.MatTypeCV8U {
		return nil, fmt.Errorf("unsupported Mat depth %d, want 8-bit", depth)
	}

	src := mat
	if !mat.IsContinuous() {
		src = mat.Clone()
		defer src.Close()
	}

	rows := src.Rows()
	cols := src.Cols()
	channels := src.Channels()
	data := src.ToBytes()

	if len(data) < rows*cols*channels {
		return nil, fmt.Errorf("Mat data too short: %d bytes for %dx%dx%d", len(data), cols, rows, channels)
	}

	switch channels {
	case 1:
		return matToGray(data, rows, cols), nil
	case 3:
		return matToRGBA(data, rows, cols, order), nil
	case 4:
		return matToRGBAWithAlpha(data, rows, cols, order), nil
	default:
		return nil, fmt.Errorf("unsupported number of channels: %d", channels)
	}
}

func matToGray(data []byte, rows, cols int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	copy(img.Pix, data[:rows*cols])
	return img
}

func matToRGBA(data []byte, rows, cols int, order ChannelOrder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	r, b := redBlueOffsets(order)

	for i, j := 0, 0; i < rows*cols*3; i, j = i+3, j+4 {
		img.Pix[j] = data[i+r]
		img.Pix[j+1] = data[i+1]
		img.Pix[j+2] = data[i+b]
		img.Pix[j+3] = 0xff
	}

	return img
}

func matToRGBAWithAlpha(data []byte, rows, cols int, order ChannelOrder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	r, b := redBlueOffsets(order)

	for i := 0; i < rows*cols*4; i += 4 {
		img.Pix[i] = data[i+r]
		img.Pix[i+1] = data[i+1]
		img.Pix[i+2] = data[i+b]
		img.Pix[i+3] = data[i+3]
	}

	return img
}

func redBlueOffsets(order ChannelOrder) (r, b int) {
	if order == OrderRGB {
		return 0, 2
	}
	return 2, 0
}
