package storage

import (
	"context"
	"fmt"
	"image/color"
	"sync"
	"time"

	"vision-render/internal/domain/entity"
	"vision-render/internal/domain/port"
)

// MemorySessionRepository in-memory хранилище сессий потоков
type MemorySessionRepository struct {
	mu        sync.RWMutex
	sessions  map[string]*entity.Session
	avgFrames int
	pinned    map[string]color.RGBA
	now       func() time.Time
}

// NewMemorySessionRepository создаёт новое in-memory хранилище.
// pinned задаёт фиксированные цвета меток для каждой новой сессии.
func NewMemorySessionRepository(avgFrames int, pinned map[string]color.RGBA) *MemorySessionRepository {
	colors := make(map[string]color.RGBA, len(pinned))
	for label, c := range pinned {
		colors[label] = c
	}
	return &MemorySessionRepository{
		sessions:  make(map[string]*entity.Session),
		avgFrames: avgFrames,
		pinned:    colors,
		now:       time.Now,
	}
}

// Get возвращает сессию по ID потока, создаёт новую если не найдена
func (r *MemorySessionRepository) Get(ctx context.Context, streamID string) (*entity.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	session, exists := r.sessions[streamID]
	r.mu.RUnlock()

	if exists {
		return session, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Сессию мог создать параллельный вызов
	if session, exists := r.sessions[streamID]; exists {
		return session, nil
	}

	session = r.newSession(streamID)
	r.sessions[streamID] = session
	return session, nil
}

// Save сохраняет сессию
func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("save session: nil session")
	}

	r.mu.Lock()
	r.sessions[session.StreamID] = session
	r.mu.Unlock()

	return nil
}

// Delete удаляет сессию потока
func (r *MemorySessionRepository) Delete(ctx context.Context, streamID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[streamID]; !exists {
		return fmt.Errorf("%w: %s", entity.ErrSessionNotFound, streamID)
	}
	delete(r.sessions, streamID)
	return nil
}

// NewSession создаёт сессию с настройками хранилища, не сохраняя её
func (r *MemorySessionRepository) NewSession(streamID string) *entity.Session {
	return r.newSession(streamID)
}

func (r *MemorySessionRepository) newSession(streamID string) *entity.Session {
	session := entity.NewSession(streamID, r.avgFrames, r.now())
	for label, c := range r.pinned {
		session.Palette.Set(label, c)
	}
	return session
}

// Проверка реализации интерфейса
var _ port.SessionRepository = (*MemorySessionRepository)(nil)
