package port

import (
	"context"

	"vision-render/internal/domain/entity"
)

// SessionRepository интерфейс хранилища сессий потоков
type SessionRepository interface {
	// Get возвращает сессию потока, создаёт новую если не найдена
	Get(ctx context.Context, streamID string) (*entity.Session, error)

	// Save сохраняет сессию
	Save(ctx context.Context, session *entity.Session) error

	// Delete удаляет сессию
	Delete(ctx context.Context, streamID string) error
}
