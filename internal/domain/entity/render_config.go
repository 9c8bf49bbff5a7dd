package entity

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/multierr"
)

// FontFace шрифт подписи
type FontFace int

const (
	FontSimplex FontFace = iota // Hershey Simplex / Go Regular
	FontPlain                   // Hershey Plain / Go Mono
)

// Filled - толщина линии, означающая заливку фигуры
const Filled = -1

// RenderConfig собирает все визуальные константы отрисовки.
// Передаётся в компоненты при создании и после этого не меняется.
type RenderConfig struct {
	OverlayAlpha float64 // вес маски при наложении, вес кадра = 1 - alpha

	FPSOrigin    image.Point
	FPSFont      FontFace
	FPSFontScale float64
	FPSThickness int
	FPSColor     color.RGBA

	LegendMargin     int
	LegendRowHeight  int
	LegendSwatchSize int
	LegendWidth      int
	LegendBackground color.RGBA
	LegendTextColor  color.RGBA
	LegendFont       FontFace
	LegendFontScale  float64
	LegendThickness  int

	BoxThickness     int
	BoxLabelOffset   int
	BoxFont          FontFace
	BoxFontScale     float64
	BoxTextThickness int
}

// DefaultRenderConfig возвращает значения по умолчанию
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		OverlayAlpha: 0.5,

		FPSOrigin:    image.Pt(24, 50),
		FPSFont:      FontPlain,
		FPSFontScale: 1,
		FPSThickness: 1,
		FPSColor:     color.RGBA{R: 255, A: 255},

		LegendMargin:     10,
		LegendRowHeight:  20,
		LegendSwatchSize: 16,
		LegendWidth:      150,
		LegendBackground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LegendTextColor:  color.RGBA{A: 255},
		LegendFont:       FontSimplex,
		LegendFontScale:  0.4,
		LegendThickness:  1,

		BoxThickness:     2,
		BoxLabelOffset:   10,
		BoxFont:          FontSimplex,
		BoxFontScale:     0.5,
		BoxTextThickness: 2,
	}
}

// Validate проверяет конфигурацию и возвращает все найденные нарушения сразу.
func (c RenderConfig) Validate() error {
	var err error
	if c.OverlayAlpha < 0 || c.OverlayAlpha > 1 {
		err = multierr.Append(err, fmt.Errorf("overlay alpha %v is outside [0, 1]", c.OverlayAlpha))
	}
	if c.FPSFontScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("fps font scale must be positive, got %v", c.FPSFontScale))
	}
	if c.LegendFontScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("legend font scale must be positive, got %v", c.LegendFontScale))
	}
	if c.BoxFontScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("box font scale must be positive, got %v", c.BoxFontScale))
	}
	if c.LegendMargin < 0 {
		err = multierr.Append(err, fmt.Errorf("legend margin must not be negative, got %d", c.LegendMargin))
	}
	if c.LegendRowHeight <= 0 {
		err = multierr.Append(err, fmt.Errorf("legend row height must be positive, got %d", c.LegendRowHeight))
	}
	if c.LegendSwatchSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("legend swatch size must be positive, got %d", c.LegendSwatchSize))
	}
	if c.LegendWidth < 0 {
		err = multierr.Append(err, fmt.Errorf("legend width must not be negative, got %d", c.LegendWidth))
	}
	if c.BoxLabelOffset < 0 {
		err = multierr.Append(err, fmt.Errorf("box label offset must not be negative, got %d", c.BoxLabelOffset))
	}
	if c.FPSOrigin.X < 0 || c.FPSOrigin.Y < 0 {
		err = multierr.Append(err, fmt.Errorf("fps origin must not be negative, got %v", c.FPSOrigin))
	}
	if c.BoxThickness <= 0 {
		err = multierr.Append(err, fmt.Errorf("box thickness must be positive, got %d", c.BoxThickness))
	}
	if c.FPSThickness <= 0 || c.LegendThickness <= 0 || c.BoxTextThickness <= 0 {
		err = multierr.Append(err, fmt.Errorf("text thickness must be positive"))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
