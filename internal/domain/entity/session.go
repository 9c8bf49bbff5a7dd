package entity

import "time"

// Session - состояние отрисовки одного видеопотока
type Session struct {
	StreamID  string        // идентификатор потока
	Palette   *LabelPalette // цвета меток этого потока
	FPS       *FPSCounter   // счётчик кадров
	CreatedAt time.Time
}

// NewSession создаёт сессию с пустой палитрой
func NewSession(streamID string, avgFrames int, now time.Time) *Session {
	return &Session{
		StreamID:  streamID,
		Palette:   NewLabelPalette(),
		FPS:       NewFPSCounter(avgFrames, now),
		CreatedAt: now,
	}
}
