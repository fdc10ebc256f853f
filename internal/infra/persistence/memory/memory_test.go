package memory

import (
	"context"
	"sync"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_InsertRejectsDuplicates(t *testing.T) {
	repo := NewAddressRepository()
	ctx := context.Background()

	address := &entity.Address{ID: uuid.New(), Street: "1 Main St"}
	require.NoError(t, repo.Insert(ctx, address))

	err := repo.Insert(ctx, &entity.Address{ID: address.ID, Street: "2 Other St"})
	assert.ErrorIs(t, err, domainerrors.ErrAddressAlreadyExists)
}

func TestAddressRepository_SaveRequiresExistingID(t *testing.T) {
	repo := NewAddressRepository()

	err := repo.Save(context.Background(), &entity.Address{ID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	repo := NewAddressRepository()
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, 5)
	for range 5 {
		id := uuid.New()
		ids = append(ids, id)
		require.NoError(t, repo.Insert(ctx, &entity.Address{ID: id}))
	}

	addresses, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, addresses, 5)
	for i, address := range addresses {
		assert.Equal(t, ids[i], address.ID)
	}
}

func TestPersonRepository_CopiesDoNotAliasStoredState(t *testing.T) {
	repo := NewPersonRepository()
	ctx := context.Background()

	person := &entity.Person{
		ID:        uuid.New(),
		FirstName: "Ada",
		Addresses: []entity.Address{{ID: uuid.New(), City: "London"}},
	}
	require.NoError(t, repo.Save(ctx, person))

	// Mutating the caller's slice must not leak into the store.
	person.Addresses[0].City = "Mutated"

	stored, err := repo.FindByID(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, "London", stored.Addresses[0].City)
}

func TestAgeRepository_DeleteMaintainsOrder(t *testing.T) {
	repo := NewAgeRepository()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Save(ctx, &entity.Age{PersonName: name, BirthDate: "2000-01-01"}))
	}

	require.NoError(t, repo.Delete(ctx, "b"))

	ages, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, ages, 2)
	assert.Equal(t, "a", ages[0].PersonName)
	assert.Equal(t, "c", ages[1].PersonName)
}

func TestJobRepository_SaveIsUpsert(t *testing.T) {
	repo := NewJobRepository()
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, repo.Save(ctx, &entity.Job{ID: id, Title: "Engineer"}))
	require.NoError(t, repo.Save(ctx, &entity.Job{ID: id, Title: "Staff Engineer"}))

	jobs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Staff Engineer", jobs[0].Title)
}

func TestAddressRepository_ConcurrentAccess(t *testing.T) {
	repo := NewAddressRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Insert(ctx, &entity.Address{ID: uuid.New()})
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.FindAll(ctx)
		}()
	}
	wg.Wait()

	addresses, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, addresses, 50)
}
