//go:build !gocv
// +build !gocv

package vision

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"vision-render/internal/domain/entity"
)

const backendName = "gg"

// hersheyEmPixels - размер шрифта в пикселях, соответствующий масштабу 1.0 шрифтов Hershey
const hersheyEmPixels = 30.0

var (
	regularFont *truetype.Font
	monoFont    *truetype.Font
)

type faceKey struct {
	face entity.FontFace
	size float64
}

// init разбирает встроенные шрифты Go
func init() {
	var err error
	regularFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	monoFont, err = truetype.Parse(gomono.TTF)
	if err != nil {
		panic(err)
	}
}

// ggCanvas рисует прямо в переданное изображение.
// font.Face не потокобезопасен, поэтому у каждого холста свой набор.
type ggCanvas struct {
	img   *image.RGBA
	dc    *gg.Context
	faces map[faceKey]font.Face
}

func newCanvas(img *image.RGBA) (canvas, error) {
	if isEmpty(img) {
		return nil, entity.ErrEmptyImage
	}
	// gg рисует в абсолютных координатах буфера, поэтому подизображение
	// копируется в холст с началом в нуле; результат возвращает вызывающий код
	if img.Rect.Min != (image.Point{}) {
		img = toRGBA(img)
	}
	return &ggCanvas{
		img:   img,
		dc:    gg.NewContextForRGBA(img),
		faces: make(map[faceKey]font.Face),
	}, nil
}

// fontFace возвращает face для шрифта и масштаба, создавая его при первом обращении
func (c *ggCanvas) fontFace(face entity.FontFace, scale float64) font.Face {
	key := faceKey{face: face, size: scale * hersheyEmPixels}
	if f, ok := c.faces[key]; ok {
		return f
	}
	ttf := regularFont
	if face == entity.FontPlain {
		ttf = monoFont
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: key.size})
	c.faces[key] = f
	return f
}

func (c *ggCanvas) Rectangle(r image.Rectangle, col color.RGBA, thickness int) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if thickness < 0 {
		c.dc.Fill()
		return
	}
	c.dc.SetLineWidth(float64(thickness))
	c.dc.Stroke()
}

// PutText пишет строку; толщина штриха векторным шрифтом не поддерживается
func (c *ggCanvas) PutText(text string, org image.Point, face entity.FontFace, scale float64, col color.RGBA, _ int) {
	c.dc.SetFontFace(c.fontFace(face, scale))
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(org.X), float64(org.Y))
}

func (c *ggCanvas) Image() (*image.RGBA, error) {
	return c.img, nil
}

func (c *ggCanvas) Close() {
	for _, f := range c.faces {
		f.Close()
	}
}

// blend смешивает кадр и маску: frame*(1-alpha) + mask*alpha
func blend(frame, mask *image.RGBA, alpha float64) (*image.RGBA, error) {
	if isEmpty(frame) || isEmpty(mask) {
		return nil, entity.ErrEmptyImage
	}
	return toRGBA(imaging.Overlay(frame, mask, image.Pt(0, 0), alpha)), nil
}

// hconcat склеивает изображения по горизонтали
func hconcat(left, right *image.RGBA) (*image.RGBA, error) {
	if isEmpty(left) || isEmpty(right) {
		return nil, entity.ErrEmptyImage
	}
	lw := left.Bounds().Dx()
	dst := imaging.New(lw+right.Bounds().Dx(), left.Bounds().Dy(), color.Black)
	dst = imaging.Paste(dst, left, image.Pt(0, 0))
	dst = imaging.Paste(dst, right, image.Pt(lw, 0))
	return toRGBA(dst), nil
}

// padRight расширяет холст вправо на width пикселей цвета fill
func padRight(img *image.RGBA, width int, fill color.RGBA) (*image.RGBA, error) {
	if isEmpty(img) {
		return nil, entity.ErrEmptyImage
	}
	b := img.Bounds()
	dst := imaging.New(b.Dx()+width, b.Dy(), fill)
	return toRGBA(imaging.Paste(dst, img, image.Pt(0, 0))), nil
}

// gather раскрашивает маску одним проходом по буферу: таблица из 256 цветов
// строится заранее, и каждый байт маски выбирает готовые 4 байта RGBA без ветвлений.
// Это цикл по пикселям; image.Paletted + draw.Draw медленнее, так как идёт
// через обобщённый путь At/Set. Пакетный вариант (gocv.LUT) - в сборке с тегом gocv.
func gather(mask []byte, width, height int, lut *colorTable) (*image.RGBA, error) {
	var table [entity.MaxCategories][4]byte
	for i, c := range lut {
		table[i] = [4]byte{c.R, c.G, c.B, 255}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix
	for i, idx := range mask[:width*height] {
		copy(pix[i*4:i*4+4], table[idx][:])
	}
	return img, nil
}
