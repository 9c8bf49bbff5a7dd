package port

import (
	"image"

	"vision-render/internal/domain/entity"
)

// DetectionAnnotator рисует рамки детекций поверх кадра
type DetectionAnnotator interface {
	// Annotate рисует рамки и подписи на img, цвета берутся из palette
	Annotate(img *image.RGBA, palette *entity.LabelPalette, detections []entity.Detection) error
}
