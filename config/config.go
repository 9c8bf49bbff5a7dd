package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"

	"vision-render/internal/domain/entity"
)

type Config struct {
	LogLevel       string
	LogDevelopment bool
	FPSAvgFrames   int                   // по скольким кадрам усредняется FPS потока
	LabelColors    map[string]color.RGBA // закреплённые цвета меток
	Render         entity.RenderConfig
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	r := entity.DefaultRenderConfig()
	p := &parser{}

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDevelopment: p.getBool("LOG_DEVELOPMENT", false),
		FPSAvgFrames:   p.getInt("RENDER_FPS_AVG_FRAMES", entity.DefaultFPSAvgFrames),
		LabelColors:    p.getLabelColors("RENDER_LABEL_COLORS"),
	}

	r.OverlayAlpha = p.getFloat("RENDER_OVERLAY_ALPHA", r.OverlayAlpha)
	r.FPSOrigin.X = p.getInt("RENDER_FPS_X", r.FPSOrigin.X)
	r.FPSOrigin.Y = p.getInt("RENDER_FPS_Y", r.FPSOrigin.Y)
	r.FPSColor = p.getColor("RENDER_FPS_COLOR", r.FPSColor)
	r.LegendMargin = p.getInt("RENDER_LEGEND_MARGIN", r.LegendMargin)
	r.LegendRowHeight = p.getInt("RENDER_LEGEND_ROW_HEIGHT", r.LegendRowHeight)
	r.LegendSwatchSize = p.getInt("RENDER_LEGEND_SWATCH", r.LegendSwatchSize)
	r.LegendWidth = p.getInt("RENDER_LEGEND_WIDTH", r.LegendWidth)
	r.LegendBackground = p.getColor("RENDER_LEGEND_BACKGROUND", r.LegendBackground)
	r.LegendTextColor = p.getColor("RENDER_LEGEND_TEXT_COLOR", r.LegendTextColor)
	r.BoxThickness = p.getInt("RENDER_BOX_THICKNESS", r.BoxThickness)
	r.BoxLabelOffset = p.getInt("RENDER_BOX_LABEL_OFFSET", r.BoxLabelOffset)
	cfg.Render = r

	if p.err != nil {
		return nil, fmt.Errorf("load config: %w", p.err)
	}
	if err := cfg.Render.Validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parser читает переменные окружения и копит ошибки разбора
type parser struct {
	err error
}

func (p *parser) getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		p.err = multierr.Append(p.err, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return n
}

func (p *parser) getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		p.err = multierr.Append(p.err, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return f
}

func (p *parser) getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		p.err = multierr.Append(p.err, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return b
}

func (p *parser) getColor(key string, defaultValue color.RGBA) color.RGBA {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	c, err := parseHexColor(value)
	if err != nil {
		p.err = multierr.Append(p.err, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return c
}

// getLabelColors разбирает список вида "person=#ff0000,car=#00ff00"
func (p *parser) getLabelColors(key string) map[string]color.RGBA {
	colors := make(map[string]color.RGBA)
	value := os.Getenv(key)
	if value == "" {
		return colors
	}
	for _, pair := range strings.Split(value, ",") {
		label, hex, ok := strings.Cut(strings.TrimSpace(pair), "=")
		label = strings.TrimSpace(label)
		if !ok || label == "" {
			p.err = multierr.Append(p.err, fmt.Errorf("%s: malformed entry %q", key, pair))
			continue
		}
		c, err := parseHexColor(strings.TrimSpace(hex))
		if err != nil {
			p.err = multierr.Append(p.err, fmt.Errorf("%s: label %q: %w", key, label, err))
			continue
		}
		colors[label] = c
	}
	return colors
}

func parseHexColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
