package entity

import (
	"sync"
	"time"
)

// DefaultFPSAvgFrames - по скольким кадрам усредняется FPS
const DefaultFPSAvgFrames = 10

// FPSCounter считает средний FPS по окну из фиксированного числа кадров.
type FPSCounter struct {
	mu        sync.Mutex
	avgFrames int
	frames    uint64
	start     time.Time
	fps       float64
}

// NewFPSCounter создаёт счётчик; отсчёт окна начинается с момента start.
func NewFPSCounter(avgFrames int, start time.Time) *FPSCounter {
	if avgFrames <= 0 {
		avgFrames = DefaultFPSAvgFrames
	}
	return &FPSCounter{avgFrames: avgFrames, start: start}
}

// Tick отмечает новый кадр и возвращает текущее значение FPS.
// Значение обновляется раз в avgFrames кадров, до этого возвращается предыдущее.
func (c *FPSCounter) Tick(now time.Time) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames++
	if c.frames%uint64(c.avgFrames) == 0 {
		if elapsed := now.Sub(c.start).Seconds(); elapsed > 0 {
			c.fps = float64(c.avgFrames) / elapsed
		}
		c.start = now
	}
	return c.fps
}

// Frames возвращает общее число кадров
func (c *FPSCounter) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}
