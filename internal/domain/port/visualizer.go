package port

import (
	"image"

	"vision-render/internal/domain/entity"
)

// SegmentationVisualizer превращает маску категорий в изображение и совмещает его с кадром
type SegmentationVisualizer interface {
	// Convert строит цветную маску и список меток, отсортированный по площади
	Convert(seg *entity.SegmentationResult) (*image.RGBA, []entity.ColoredLabel, error)

	// Composite совмещает кадр с маской, рисует FPS и легенду
	Composite(frame, mask *image.RGBA, mode entity.DisplayMode, fps float64, labels []entity.ColoredLabel) (*image.RGBA, error)
}
