package app

import (
	"context"

	"vision-render/internal/domain/entity"
	"vision-render/internal/domain/port"
)

// SessionFactory создаёт новую сессию потока с настройками хранилища
type SessionFactory interface {
	NewSession(streamID string) *entity.Session
}

type SessionService struct {
	repo    port.SessionRepository
	factory SessionFactory
}

func NewSessionService(repo port.SessionRepository, factory SessionFactory) *SessionService {
	return &SessionService{repo: repo, factory: factory}
}

func (s *SessionService) Get(ctx context.Context, streamID string) (*entity.Session, error) {
	return s.repo.Get(ctx, streamID)
}

// Reset заменяет сессию потока новой: палитра и счётчик FPS начинаются заново.
func (s *SessionService) Reset(ctx context.Context, streamID string) (*entity.Session, error) {
	session := s.factory.NewSession(streamID)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Close(ctx context.Context, streamID string) error {
	return s.repo.Delete(ctx, streamID)
}
