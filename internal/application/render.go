package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"vision-render/internal/domain/entity"
	"vision-render/internal/domain/port"
)

type RenderService struct {
	sessions   *SessionService
	annotator  port.DetectionAnnotator
	visualizer port.SegmentationVisualizer
	logger     *zap.SugaredLogger
	now        func() time.Time
}

// RenderOutput содержит итоговый кадр сегментации и легенду.
type RenderOutput struct {
	Image  *image.RGBA
	Labels []entity.ColoredLabel // метки по убыванию площади
	FPS    float64
}

// NewRenderService создаёт сервис отрисовки результатов моделей по потокам.
func NewRenderService(sessions *SessionService, annotator port.DetectionAnnotator, visualizer port.SegmentationVisualizer, logger *zap.SugaredLogger) *RenderService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RenderService{
		sessions:   sessions,
		annotator:  annotator,
		visualizer: visualizer,
		logger:     logger,
		now:        time.Now,
	}
}

// AnnotateDetections рисует рамки детекций на кадре цветами палитры потока.
func (s *RenderService) AnnotateDetections(ctx context.Context, streamID string, frame *image.RGBA, detections []entity.Detection) error {
	if s.annotator == nil {
		return errors.New("annotator is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	session, err := s.sessions.Get(ctx, streamID)
	if err != nil {
		return fmt.Errorf("get session %s: %w", streamID, err)
	}

	if err := s.annotator.Annotate(frame, session.Palette, detections); err != nil {
		s.logger.Warnw("annotate detections failed", "stream", streamID, "error", err)
		return err
	}

	s.logger.Debugw("detections annotated", "stream", streamID, "count", len(detections),
		"session_age", s.now().Sub(session.CreatedAt))
	return nil
}

// VisualizeSegmentation раскрашивает маску, совмещает её с кадром и добавляет легенду.
// FPS считается по кадрам этого потока.
func (s *RenderService) VisualizeSegmentation(ctx context.Context, streamID string, frame *image.RGBA, seg *entity.SegmentationResult, mode entity.DisplayMode) (*RenderOutput, error) {
	if s.visualizer == nil {
		return nil, errors.New("visualizer is not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Режим проверяется до обновления счётчика кадров
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, streamID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", streamID, err)
	}
	fps := session.FPS.Tick(s.now())

	mask, labels, err := s.visualizer.Convert(seg)
	if err != nil {
		s.logger.Warnw("convert segmentation failed", "stream", streamID, "error", err)
		return nil, err
	}

	out, err := s.visualizer.Composite(frame, mask, mode, fps, labels)
	if err != nil {
		s.logger.Warnw("composite failed", "stream", streamID, "mode", mode, "error", err)
		return nil, err
	}

	s.logger.Debugw("segmentation rendered", "stream", streamID, "categories", len(labels), "fps", fps,
		"session_age", s.now().Sub(session.CreatedAt))
	return &RenderOutput{Image: out, Labels: labels, FPS: fps}, nil
}
