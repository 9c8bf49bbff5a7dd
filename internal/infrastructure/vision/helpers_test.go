package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// requireColorNear сравнивает RGB с допуском на округление бэкенда
func requireColorNear(t *testing.T, want color.RGBA, img *image.RGBA, x, y int) {
	t.Helper()
	got := img.RGBAAt(x, y)
	require.InDelta(t, float64(want.R), float64(got.R), 2, "R at (%d,%d)", x, y)
	require.InDelta(t, float64(want.G), float64(got.G), 2, "G at (%d,%d)", x, y)
	require.InDelta(t, float64(want.B), float64(got.B), 2, "B at (%d,%d)", x, y)
}

// countPixels считает пиксели области r, удовлетворяющие условию
func countPixels(img *image.RGBA, r image.Rectangle, match func(c color.RGBA) bool) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if match(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

// reddish - пиксель красного цвета или его сглаженный край на чёрном фоне
func reddish(c color.RGBA) bool {
	return c.R > 64 && c.G < 32 && c.B < 32
}

// dark - тёмный пиксель текста на светлом фоне
func dark(c color.RGBA) bool {
	return c.R < 128 && c.G < 128 && c.B < 128
}
