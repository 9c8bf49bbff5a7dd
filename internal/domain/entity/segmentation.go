package entity

import (
	"fmt"
	"image/color"
)

// MaxCategories - максимальное число категорий, адресуемых байтовой маской
const MaxCategories = 256

// ColoredLabel - имя категории и её цвет на маске
type ColoredLabel struct {
	CategoryName string
	Color        color.RGBA
}

// SegmentationResult хранит маску категорий одного кадра.
type SegmentationResult struct {
	CategoryMask  []byte         // индекс категории на пиксель, построчно
	Width         int            // ширина маски
	Height        int            // высота маски
	ColoredLabels []ColoredLabel // таблица категорий, индекс = значение в маске
}

// Validate проверяет согласованность буфера и размеров
func (s *SegmentationResult) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil result", ErrInvalidSegmentation)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: non-positive size %dx%d", ErrInvalidSegmentation, s.Width, s.Height)
	}
	if len(s.CategoryMask) != s.Width*s.Height {
		return fmt.Errorf("%w: mask has %d bytes, want %d (%dx%d)",
			ErrInvalidSegmentation, len(s.CategoryMask), s.Width*s.Height, s.Width, s.Height)
	}
	return nil
}

// Histogram считает количество пикселей каждой категории за один проход.
func (s *SegmentationResult) Histogram() [MaxCategories]int {
	var counts [MaxCategories]int
	for _, idx := range s.CategoryMask {
		counts[idx]++
	}
	return counts
}
