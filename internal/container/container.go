package container

import (
	"go.uber.org/zap"

	"vision-render/config"
	app "vision-render/internal/application"
	"vision-render/internal/domain/port"
	"vision-render/internal/infrastructure/storage"
	"vision-render/internal/infrastructure/vision"
	"vision-render/internal/logger"
)

type Container struct {
	Logger         *zap.SugaredLogger
	SessionService *app.SessionService
	RenderService  *app.RenderService
}

func New(repo port.SessionRepository, factory app.SessionFactory, annotator port.DetectionAnnotator, visualizer port.SegmentationVisualizer, log *zap.SugaredLogger) *Container {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	sessionService := app.NewSessionService(repo, factory)
	renderService := app.NewRenderService(sessionService, annotator, visualizer, log)

	return &Container{
		Logger:         log,
		SessionService: sessionService,
		RenderService:  renderService,
	}
}

// NewFromConfig собирает сервисы из конфигурации: in-memory сессии и бэкенд отрисовки.
func NewFromConfig(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}

	// Проверяем конфигурацию, даже если она собрана вручную, а не через config.Load
	if err := cfg.Render.Validate(); err != nil {
		return nil, err
	}

	repo := storage.NewMemorySessionRepository(cfg.FPSAvgFrames, cfg.LabelColors)
	annotator := vision.NewBoxAnnotator(cfg.Render, nil)
	visualizer := vision.NewMaskVisualizer(cfg.Render)

	log.Infow("render container ready", "backend", vision.Backend(), "legend_width", cfg.Render.LegendWidth)
	return New(repo, repo, annotator, visualizer, log), nil
}
