package entity

import (
	"image/color"
	"math/rand/v2"
	"sync"
)

// LabelPalette хранит цвет для каждой метки. Цвет выбирается случайно при первом
// обращении и дальше не меняется. Записи не удаляются.
type LabelPalette struct {
	mu     sync.Mutex
	rng    *rand.Rand
	colors map[string]color.RGBA
}

// NewLabelPalette создаёт палитру со случайным зерном
func NewLabelPalette() *LabelPalette {
	return NewLabelPaletteWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewLabelPaletteWithSource создаёт палитру с заданным источником случайных чисел.
func NewLabelPaletteWithSource(src rand.Source) *LabelPalette {
	return &LabelPalette{
		rng:    rand.New(src),
		colors: make(map[string]color.RGBA),
	}
}

// ColorFor возвращает цвет метки, назначая новый при первом появлении
func (p *LabelPalette) ColorFor(label string) color.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.colors[label]; ok {
		return c
	}

	c := color.RGBA{
		R: uint8(p.rng.IntN(256)),
		G: uint8(p.rng.IntN(256)),
		B: uint8(p.rng.IntN(256)),
		A: 255,
	}
	p.colors[label] = c
	return c
}

// Set закрепляет цвет за меткой
func (p *LabelPalette) Set(label string, c color.RGBA) {
	p.mu.Lock()
	p.colors[label] = c
	p.mu.Unlock()
}

// Len возвращает число известных меток
func (p *LabelPalette) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.colors)
}
