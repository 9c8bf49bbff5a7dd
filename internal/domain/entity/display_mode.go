package entity

import "strings"

// DisplayMode режим совмещения кадра и маски
type DisplayMode string

const (
	DisplayOverlay    DisplayMode = "overlay"      // полупрозрачное наложение
	DisplaySideBySide DisplayMode = "side-by-side" // кадр и маска рядом
)

// ParseDisplayMode разбирает строку режима, пробелы по краям игнорируются.
func ParseDisplayMode(s string) (DisplayMode, error) {
	mode := DisplayMode(strings.TrimSpace(s))
	if err := mode.Validate(); err != nil {
		return "", err
	}
	return mode, nil
}

// Validate проверяет, что режим поддерживается
func (m DisplayMode) Validate() error {
	switch m {
	case DisplayOverlay, DisplaySideBySide:
		return nil
	default:
		return &UnsupportedDisplayModeError{Mode: m}
	}
}
