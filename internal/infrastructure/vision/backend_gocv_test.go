//go:build gocv
// +build gocv

package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGocvBackendName(t *testing.T) {
	require.Equal(t, "gocv", Backend())
}

func TestGocvGather_KeepsChannelOrder(t *testing.T) {
	var lut colorTable
	lut[0] = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	lut[3] = color.RGBA{R: 200, G: 5, B: 90, A: 255}

	mask := make([]byte, 16)
	mask[5] = 3

	out, err := gather(mask, 4, 4, &lut)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	require.Equal(t, lut[0], out.RGBAAt(0, 0))
	require.Equal(t, lut[3], out.RGBAAt(1, 1))
}

func TestGocvBlend_WeightsFrameAndMask(t *testing.T) {
	frame := solid(8, 8, color.RGBA{R: 200, A: 255})
	mask := solid(8, 8, color.RGBA{B: 100, A: 255})

	out, err := blend(frame, mask, 0.5)
	require.NoError(t, err)
	requireColorNear(t, color.RGBA{R: 100, B: 50, A: 255}, out, 4, 4)
}

func TestGocvHconcat(t *testing.T) {
	left := solid(3, 5, color.RGBA{R: 255, A: 255})
	right := solid(4, 5, color.RGBA{G: 255, A: 255})

	out, err := hconcat(left, right)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 7, 5), out.Bounds())
	require.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(2, 2))
	require.Equal(t, color.RGBA{G: 255, A: 255}, out.RGBAAt(3, 2))
}

func TestGocvPadRight_FillColor(t *testing.T) {
	fill := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	out, err := padRight(solid(6, 4, color.RGBA{A: 255}), 10, fill)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 16, 4), out.Bounds())
	require.Equal(t, color.RGBA{A: 255}, out.RGBAAt(5, 0))
	require.Equal(t, fill, out.RGBAAt(12, 3))
}

func TestGocvCanvas_SubImage(t *testing.T) {
	base := solid(40, 40, color.RGBA{A: 255})
	sub := base.SubImage(image.Rect(10, 10, 30, 30)).(*image.RGBA)

	c, err := newCanvas(sub)
	require.NoError(t, err)
	defer c.Close()
	c.Rectangle(image.Rect(0, 0, 20, 20), color.RGBA{G: 255, A: 255}, 2)

	out, err := c.Image()
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 20, 20), out.Bounds())
	require.Equal(t, color.RGBA{G: 255, A: 255}, out.RGBAAt(0, 10))
}
