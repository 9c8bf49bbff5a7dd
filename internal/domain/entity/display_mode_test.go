package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDisplayMode(t *testing.T) {
	mode, err := ParseDisplayMode("overlay")
	require.NoError(t, err)
	require.Equal(t, DisplayOverlay, mode)

	mode, err = ParseDisplayMode(" side-by-side ")
	require.NoError(t, err)
	require.Equal(t, DisplaySideBySide, mode)
}

func TestParseDisplayMode_Bogus(t *testing.T) {
	_, err := ParseDisplayMode("bogus")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidConfig)

	var modeErr *UnsupportedDisplayModeError
	require.True(t, errors.As(err, &modeErr))
	require.Equal(t, DisplayMode("bogus"), modeErr.Mode)
	require.Contains(t, err.Error(), `"bogus"`)
}
