//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"vision-render/internal/domain/entity"
)

const backendName = "gocv"

// matCanvas рисует через OpenCV
type matCanvas struct {
	mat gocv.Mat
}

func newCanvas(img *image.RGBA) (canvas, error) {
	mat, err := toMat(img)
	if err != nil {
		return nil, err
	}
	return &matCanvas{mat: mat}, nil
}

func (c *matCanvas) Rectangle(r image.Rectangle, col color.RGBA, thickness int) {
	gocv.Rectangle(&c.mat, r, col, thickness)
}

func (c *matCanvas) PutText(text string, org image.Point, face entity.FontFace, scale float64, col color.RGBA, thickness int) {
	gocv.PutText(&c.mat, text, org, hersheyFont(face), scale, col, thickness)
}

func (c *matCanvas) Image() (*image.RGBA, error) {
	return fromMat(c.mat)
}

func (c *matCanvas) Close() {
	c.mat.Close()
}

// blend смешивает кадр и маску: frame*(1-alpha) + mask*alpha
func blend(frame, mask *image.RGBA, alpha float64) (*image.RGBA, error) {
	a, err := toMat(frame)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	b, err := toMat(mask)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.AddWeighted(a, 1-alpha, b, alpha, 0, &out)

	return fromMat(out)
}

// hconcat склеивает изображения по горизонтали
func hconcat(left, right *image.RGBA) (*image.RGBA, error) {
	a, err := toMat(left)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	b, err := toMat(right)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.Hconcat(a, b, &out)

	return fromMat(out)
}

// padRight расширяет холст вправо на width пикселей цвета fill
func padRight(img *image.RGBA, width int, fill color.RGBA) (*image.RGBA, error) {
	src, err := toMat(img)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.CopyMakeBorder(src, &out, 0, 0, 0, width, gocv.BorderConstant, fill)

	return fromMat(out)
}

// gather раскрашивает маску одной операцией LUT по таблице цветов.
func gather(mask []byte, width, height int, lut *colorTable) (*image.RGBA, error) {
	src, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC1, mask)
	if err != nil {
		return nil, fmt.Errorf("wrap mask: %w", err)
	}
	defer src.Close()

	// LUT применяет таблицу поканально, поэтому индекс копируется во все три канала
	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.CvtColor(src, &bgr, gocv.ColorGrayToBGR)

	table := make([]byte, 0, len(lut)*3)
	for _, c := range lut {
		table = append(table, c.B, c.G, c.R)
	}
	lutMat, err := gocv.NewMatFromBytes(1, len(lut), gocv.MatTypeCV8UC3, table)
	if err != nil {
		return nil, fmt.Errorf("wrap color table: %w", err)
	}
	defer lutMat.Close()

	out := gocv.NewMat()
	defer out.Close()
	gocv.LUT(bgr, lutMat, &out)

	return fromMat(out)
}

// toMat превращает изображение в BGR gocv.Mat.
func toMat(img *image.RGBA) (gocv.Mat, error) {
	if isEmpty(img) {
		return gocv.NewMat(), entity.ErrEmptyImage
	}
	mat, err := gocv.ImageToMatRGB(img)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	mat.Close()
	if err == nil {
		err = entity.ErrEmptyImage
	}
	return gocv.NewMat(), fmt.Errorf("convert image to mat: %w", err)
}

// fromMat копирует BGR gocv.Mat в новое изображение.
func fromMat(mat gocv.Mat) (*image.RGBA, error) {
	if mat.Empty() {
		return nil, entity.ErrEmptyImage
	}
	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("convert mat to image: %w", err)
	}
	return toRGBA(img), nil
}

func hersheyFont(face entity.FontFace) gocv.HersheyFont {
	if face == entity.FontPlain {
		return gocv.FontHersheyPlain
	}
	return gocv.FontHersheySimplex
}
