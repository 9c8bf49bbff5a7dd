package vision

import (
	"image"
	"image/color"
	"image/draw"

	"vision-render/internal/domain/entity"
)

// canvas - поверхность рисования конкретного бэкенда (gocv или чистый Go).
// Бэкенд выбирается тегом сборки gocv, остальной код пакета от него не зависит.
//
// Кроме canvas бэкенд предоставляет функции:
//
//	newCanvas(img *image.RGBA) (canvas, error)
//	blend(frame, mask *image.RGBA, alpha float64) (*image.RGBA, error)
//	hconcat(left, right *image.RGBA) (*image.RGBA, error)
//	padRight(img *image.RGBA, width int, fill color.RGBA) (*image.RGBA, error)
//	gather(mask []byte, width, height int, lut *colorTable) (*image.RGBA, error)
type canvas interface {
	// Rectangle рисует рамку толщиной thickness, entity.Filled заливает её
	Rectangle(r image.Rectangle, c color.RGBA, thickness int)
	// PutText пишет строку, org - левая точка базовой линии
	PutText(text string, org image.Point, face entity.FontFace, scale float64, c color.RGBA, thickness int)
	// Image возвращает результат рисования
	Image() (*image.RGBA, error)
	Close()
}

// colorTable - цвет для каждого возможного значения байта маски
type colorTable [entity.MaxCategories]color.RGBA

// toRGBA приводит изображение к *image.RGBA с началом координат в нуле.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func isEmpty(img *image.RGBA) bool {
	return img == nil || img.Bounds().Empty()
}

// Backend возвращает имя бэкенда рисования, выбранного при сборке
func Backend() string {
	return backendName
}
