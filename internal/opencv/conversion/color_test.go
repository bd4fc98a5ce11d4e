package conversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestConvertToGrayscale(t *testing.T) {
	bgr := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 20, 30, 0), 8, 12, gocv.MatTypeCV8UC3)
	defer bgr.Close()

	gray, err := ConvertToGrayscale(bgr)
	require.NoError(t, err)
	defer gray.Close()

	assert.Equal(t, 1, gray.Channels())
	assert.Equal(t, 8, gray.Rows())
	assert.Equal(t, 12, gray.Cols())
}

func TestConvertToGrayscale_AlreadyGray(t *testing.T) {
	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(77, 0, 0, 0), 3, 3, gocv.MatTypeCV8UC1)
	defer src.Close()

	gray, err := ConvertToGrayscale(src)
	require.NoError(t, err)
	defer gray.Close()

	assert.Equal(t, uint8(77), gray.GetUCharAt(1, 1))
}

func TestConvertToGrayscale_Empty(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	out, err := ConvertToGrayscale(empty)
	defer out.Close()
	assert.Error(t, err)
}

func TestToDisplayRGB_SwapsRedAndBlue(t *testing.T) {
	bgr := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 10, 0), 2, 2, gocv.MatTypeCV8UC3)
	defer bgr.Close()

	rgb, err := ToDisplayRGB(bgr)
	require.NoError(t, err)
	defer rgb.Close()

	assert.Equal(t, uint8(10), rgb.GetUCharAt3(0, 0, 0))
	assert.Equal(t, uint8(0), rgb.GetUCharAt3(0, 0, 1))
	assert.Equal(t, uint8(255), rgb.GetUCharAt3(0, 0, 2))
}

func TestToDisplayRGB_RejectsFourChannels(t *testing.T) {
	bgra := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC4)
	defer bgra.Close()

	out, err := ToDisplayRGB(bgra)
	defer out.Close()
	assert.Error(t, err)
}
