package vision

import (
	"cmp"
	"fmt"
	"image"
	"slices"

	"vision-render/internal/domain/entity"
	"vision-render/internal/domain/port"
)

// MaskVisualizer раскрашивает маску сегментации и собирает итоговый кадр с легендой.
type MaskVisualizer struct {
	cfg entity.RenderConfig
}

// NewMaskVisualizer создаёт визуализатор с заданной конфигурацией
func NewMaskVisualizer(cfg entity.RenderConfig) *MaskVisualizer {
	return &MaskVisualizer{cfg: cfg}
}

// Convert раскрашивает маску и возвращает метки, отсортированные по убыванию площади.
// Категории с одинаковой площадью идут по возрастанию индекса.
func (v *MaskVisualizer) Convert(seg *entity.SegmentationResult) (*image.RGBA, []entity.ColoredLabel, error) {
	if err := seg.Validate(); err != nil {
		return nil, nil, err
	}

	counts := seg.Histogram()

	present := make([]int, 0, len(seg.ColoredLabels))
	for idx, n := range counts {
		if n == 0 {
			continue
		}
		if idx >= len(seg.ColoredLabels) {
			return nil, nil, fmt.Errorf("%w: mask value %d, %d colored labels",
				entity.ErrCategoryOutOfRange, idx, len(seg.ColoredLabels))
		}
		present = append(present, idx)
	}

	slices.SortStableFunc(present, func(a, b int) int {
		return cmp.Compare(counts[b], counts[a])
	})

	sorted := make([]entity.ColoredLabel, len(present))
	for i, idx := range present {
		sorted[i] = seg.ColoredLabels[idx]
	}

	var lut colorTable
	for i, l := range seg.ColoredLabels {
		if i >= len(lut) {
			break
		}
		lut[i] = l.Color
	}

	img, err := gather(seg.CategoryMask, seg.Width, seg.Height, &lut)
	if err != nil {
		return nil, nil, fmt.Errorf("colorize mask: %w", err)
	}
	return img, sorted, nil
}

// Composite совмещает кадр с маской, пишет FPS и добавляет справа панель легенды.
// Входные изображения не меняются.
func (v *MaskVisualizer) Composite(frame, mask *image.RGBA, mode entity.DisplayMode, fps float64, labels []entity.ColoredLabel) (*image.RGBA, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}
	if isEmpty(frame) || isEmpty(mask) {
		return nil, entity.ErrEmptyImage
	}

	fb, mb := frame.Bounds(), mask.Bounds()

	var (
		base *image.RGBA
		err  error
	)
	switch mode {
	case entity.DisplayOverlay:
		if fb.Size() != mb.Size() {
			return nil, fmt.Errorf("%w: overlay needs equal sizes, frame %v, mask %v",
				entity.ErrDimensionMismatch, fb.Size(), mb.Size())
		}
		base, err = blend(frame, mask, v.cfg.OverlayAlpha)
	case entity.DisplaySideBySide:
		if fb.Dy() != mb.Dy() {
			return nil, fmt.Errorf("%w: side-by-side needs equal heights, frame %d, mask %d",
				entity.ErrDimensionMismatch, fb.Dy(), mb.Dy())
		}
		base, err = hconcat(frame, mask)
	}
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", mode, err)
	}

	width, height := base.Bounds().Dx(), base.Bounds().Dy()

	out, err := padRight(base, v.cfg.LegendWidth, v.cfg.LegendBackground)
	if err != nil {
		return nil, fmt.Errorf("pad legend: %w", err)
	}

	c, err := newCanvas(out)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	c.PutText(fmt.Sprintf("FPS = %d", int(fps)), v.cfg.FPSOrigin,
		v.cfg.FPSFont, v.cfg.FPSFontScale, v.cfg.FPSColor, v.cfg.FPSThickness)

	x := width + v.cfg.LegendMargin
	y := v.legendStartY(height, len(labels))
	for _, l := range labels {
		swatch := image.Rect(x, y, x+v.cfg.LegendSwatchSize, y+v.cfg.LegendSwatchSize)
		c.Rectangle(swatch, l.Color, entity.Filled)

		org := image.Pt(swatch.Max.X+v.cfg.LegendMargin/2, swatch.Max.Y-v.cfg.LegendSwatchSize/4)
		c.PutText(l.CategoryName, org, v.cfg.LegendFont, v.cfg.LegendFontScale, v.cfg.LegendTextColor, v.cfg.LegendThickness)

		y += v.cfg.LegendRowHeight
	}

	return c.Image()
}

// legendStartY центрирует легенду по высоте кадра, но не выше отступа.
func (v *MaskVisualizer) legendStartY(height, rows int) int {
	return max(v.cfg.LegendMargin, (height-rows*v.cfg.LegendRowHeight)/2)
}

// Проверка реализации интерфейса
var _ port.SegmentationVisualizer = (*MaskVisualizer)(nil)
