package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig - некорректная конфигурация отрисовки
	ErrInvalidConfig = errors.New("invalid render config")
	// ErrCategoryOutOfRange - индекс категории в маске не имеет цвета в таблице
	ErrCategoryOutOfRange = errors.New("category index out of range")
	// ErrDimensionMismatch - размеры изображений не совпадают
	ErrDimensionMismatch = errors.New("image dimension mismatch")
	// ErrInvalidSegmentation - буфер маски не соответствует ширине и высоте
	ErrInvalidSegmentation = errors.New("invalid segmentation result")
	// ErrEmptyImage - изображение отсутствует или имеет нулевой размер
	ErrEmptyImage = errors.New("empty image")
	// ErrSessionNotFound - сессия потока не найдена
	ErrSessionNotFound = errors.New("session not found")
)

// UnsupportedDisplayModeError возвращается для неизвестного режима отображения.
type UnsupportedDisplayModeError struct {
	Mode DisplayMode
}

func (e *UnsupportedDisplayModeError) Error() string {
	return fmt.Sprintf("unsupported display mode %q: expected %q or %q", string(e.Mode), DisplayOverlay, DisplaySideBySide)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidConfig)
func (e *UnsupportedDisplayModeError) Unwrap() error {
	return ErrInvalidConfig
}
