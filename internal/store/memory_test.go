package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/models"
)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return "id-" + string(rune('0'+s.n))
}

func TestMemoryUserRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())

	_, err := repo.FindUserByEmail(ctx, "a@b.c")
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.UpdateUser(ctx, models.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	created, err := repo.CreateUser(ctx, models.User{Email: "a@b.c", UserProfile: models.UserProfile{FirstName: "Ann"}})
	require.NoError(t, err)
	assert.Equal(t, "Ann", created.FirstName)

	_, err = repo.CreateUser(ctx, models.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	updated, err := repo.UpdateUser(ctx, models.User{Email: "a@b.c", UserProfile: models.UserProfile{FirstName: "Anna"}})
	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.FirstName)

	found, err := repo.FindUserByEmail(ctx, "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, "Anna", found.FirstName)
}

func TestMemoryPetRepository_CreateAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryPetRepository(&seqIDs{}, logger.Nop())

	first, err := repo.CreatePet(ctx, models.Pet{Name: "Rex", OwnerEmail: "a@b.c"})
	require.NoError(t, err)
	second, err := repo.CreatePet(ctx, models.Pet{Name: "Tom", OwnerEmail: "x@y.z"})
	require.NoError(t, err)

	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, "id-2", second.ID)

	pets, err := repo.ListPetsByOwner(ctx, "a@b.c")
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Rex", pets[0].Name)
}

func TestMemoryPetRepository_RequiresOwner(t *testing.T) {
	repo := NewMemoryPetRepository(&seqIDs{}, logger.Nop())

	_, err := repo.CreatePet(context.Background(), models.Pet{Name: "Rex"})
	assert.ErrorIs(t, err, ErrPetNotSaved)
}

func TestMemoryPetRepository_ListEmptyIsNotNil(t *testing.T) {
	repo := NewMemoryPetRepository(&seqIDs{}, logger.Nop())

	pets, err := repo.ListPetsByOwner(context.Background(), "nobody@b.c")
	require.NoError(t, err)
	assert.NotNil(t, pets)
	assert.Empty(t, pets)
}

func TestMemoryUserRepository_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository(logger.Nop())
	_, err := repo.CreateUser(ctx, models.User{Email: "a@b.c"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.UpdateUser(ctx, models.User{Email: "a@b.c"})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.FindUserByEmail(ctx, "a@b.c")
		}()
	}
	wg.Wait()
}
