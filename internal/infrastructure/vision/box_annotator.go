package vision

import (
	"fmt"
	"image"
	"image/draw"

	"vision-render/internal/domain/entity"
	"vision-render/internal/domain/port"
)

// BoxAnnotator рисует рамки детекций и подписи, у каждой метки свой цвет.
type BoxAnnotator struct {
	cfg     entity.RenderConfig
	palette *entity.LabelPalette
}

// NewBoxAnnotator создаёт аннотатор. Если palette == nil, создаётся собственная палитра.
func NewBoxAnnotator(cfg entity.RenderConfig, palette *entity.LabelPalette) *BoxAnnotator {
	if palette == nil {
		palette = entity.NewLabelPalette()
	}
	return &BoxAnnotator{cfg: cfg, palette: palette}
}

// Palette возвращает палитру аннотатора
func (a *BoxAnnotator) Palette() *entity.LabelPalette {
	return a.palette
}

// Draw рисует детекции на img цветами собственной палитры.
func (a *BoxAnnotator) Draw(img *image.RGBA, detections []entity.Detection) error {
	return a.Annotate(img, a.palette, detections)
}

// Annotate рисует детекции в порядке списка: рамку и подпись над левым верхним углом.
// Изображение меняется на месте. Пустой список не трогает изображение.
func (a *BoxAnnotator) Annotate(img *image.RGBA, palette *entity.LabelPalette, detections []entity.Detection) error {
	if len(detections) == 0 {
		return nil
	}
	if isEmpty(img) {
		return entity.ErrEmptyImage
	}
	if palette == nil {
		palette = a.palette
	}

	c, err := newCanvas(img)
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	defer c.Close()

	for _, d := range detections {
		col := palette.ColorFor(d.Label)
		rect := d.Box.Rect()
		c.Rectangle(rect, col, a.cfg.BoxThickness)

		org := image.Pt(rect.Min.X, rect.Min.Y-a.cfg.BoxLabelOffset)
		c.PutText(d.Label, org, a.cfg.BoxFont, a.cfg.BoxFontScale, col, a.cfg.BoxTextThickness)
	}

	out, err := c.Image()
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	// бэкенд мог рисовать в копии (gocv, подизображение), результат возвращается в исходный буфер
	if out != img {
		draw.Draw(img, img.Bounds(), out, image.Point{}, draw.Src)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.DetectionAnnotator = (*BoxAnnotator)(nil)
