package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_SequentialIDs(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	first, err := repo.CreateUser(ctx, models.User{Username: "asha1", Role: models.RoleAsha})
	require.NoError(t, err)
	second, err := repo.CreateUser(ctx, models.User{Username: "vol1", Role: models.RoleVolunteer})
	require.NoError(t, err)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
}

func TestMemoryUserRepository_FindExactMatch(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "Asha1", PasswordHash: "h"})
	require.NoError(t, err)

	got, found, err := repo.FindUserByUsername(ctx, "Asha1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "h", got.PasswordHash)

	_, found, err = repo.FindUserByUsername(ctx, "asha1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryUserRepository_Duplicate(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, models.User{Username: "asha1"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Username: "asha1"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestMemoryUserRepository_ConcurrentDuplicates(t *testing.T) {
	repo := NewMemoryUserRepository(logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.CreateUser(ctx, models.User{Username: "same", PasswordHash: fmt.Sprint(i)})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}
