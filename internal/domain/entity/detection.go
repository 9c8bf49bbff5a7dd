package entity

import "image"

// BoundingBox описывает прямоугольник детекции в пикселях (начало - левый верхний угол)
type BoundingBox struct {
	OriginX int // координата X левого верхнего угла
	OriginY int // координата Y левого верхнего угла
	Width   int // ширина в пикселях
	Height  int // высота в пикселях
}

// Rect возвращает прямоугольник в координатах image
func (b BoundingBox) Rect() image.Rectangle {
	return image.Rect(b.OriginX, b.OriginY, b.OriginX+b.Width, b.OriginY+b.Height)
}

// Detection - один результат модели: рамка и метка класса.
type Detection struct {
	Box   BoundingBox
	Label string
}
