package storage

import (
	"context"
	"image/color"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"vision-render/internal/domain/entity"
)

func TestMemorySessionRepository_GetCreatesOnce(t *testing.T) {
	repo := NewMemorySessionRepository(10, nil)
	ctx := context.Background()

	first, err := repo.Get(ctx, "cam-1")
	require.NoError(t, err)
	second, err := repo.Get(ctx, "cam-1")
	require.NoError(t, err)
	require.Same(t, first, second)

	other, err := repo.Get(ctx, "cam-2")
	require.NoError(t, err)
	require.NotSame(t, first, other)
	require.NotSame(t, first.Palette, other.Palette)
}

func TestMemorySessionRepository_PinnedColors(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	repo := NewMemorySessionRepository(10, map[string]color.RGBA{"person": red})

	session, err := repo.Get(context.Background(), "cam-1")
	require.NoError(t, err)
	require.Equal(t, red, session.Palette.ColorFor("person"))
}

func TestMemorySessionRepository_SaveAndDelete(t *testing.T) {
	repo := NewMemorySessionRepository(10, nil)
	ctx := context.Background()

	fresh := repo.NewSession("cam-1")
	require.NoError(t, repo.Save(ctx, fresh))

	got, err := repo.Get(ctx, "cam-1")
	require.NoError(t, err)
	require.Same(t, fresh, got)

	require.NoError(t, repo.Delete(ctx, "cam-1"))
	require.ErrorIs(t, repo.Delete(ctx, "cam-1"), entity.ErrSessionNotFound)
}

func TestMemorySessionRepository_CancelledContext(t *testing.T) {
	repo := NewMemorySessionRepository(10, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Get(ctx, "cam-1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemorySessionRepository_ConcurrentGet(t *testing.T) {
	repo := NewMemorySessionRepository(10, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	sessions := make([]*entity.Session, 16)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := repo.Get(ctx, "shared")
			if err == nil {
				sessions[i] = s
			}
		}(i)
	}
	wg.Wait()

	for _, s := range sessions {
		require.Same(t, sessions[0], s)
	}
}
