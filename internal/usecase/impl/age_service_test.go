package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/infra/persistence/memory"
	"directory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAgeService(t *testing.T) usecase.AgeUsecase {
	t.Helper()

	return NewAgeService(memory.NewAgeRepository())
}

func intPtr(i int) *int {
	return &i
}

func TestAgeService_CreateAge_UpsertsSilently(t *testing.T) {
	service := createTestAgeService(t)
	ctx := context.Background()

	_, err := service.CreateAge(ctx, &entity.Age{PersonName: "Ada Lovelace", BirthDate: "1815-12-10"})
	require.NoError(t, err)

	// Creating under the same name overwrites without a conflict.
	_, err = service.CreateAge(ctx, &entity.Age{PersonName: "Ada Lovelace", BirthDate: "1815-12-10", CurrentAge: intPtr(36)})
	require.NoError(t, err)

	stored, err := service.GetAge(ctx, "Ada Lovelace")
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentAge)
	assert.Equal(t, 36, *stored.CurrentAge)

	ages, err := service.ListAges(ctx)
	require.NoError(t, err)
	assert.Len(t, ages, 1)
}

func TestAgeService_GetAge_NotFound(t *testing.T) {
	service := createTestAgeService(t)

	_, err := service.GetAge(context.Background(), "Nobody")
	assert.ErrorIs(t, err, domainerrors.ErrAgeNotFound)
}

func TestAgeService_ReplaceAge_NameMismatch(t *testing.T) {
	service := createTestAgeService(t)
	ctx := context.Background()

	// Mismatch fails before any existence check: the key is absent here.
	_, err := service.ReplaceAge(ctx, "Ada Lovelace", &entity.Age{PersonName: "Grace Hopper", BirthDate: "1906-12-09"})
	assert.ErrorIs(t, err, domainerrors.ErrAgeNameMismatch)

	// And still fails the same way when the key exists.
	_, err = service.CreateAge(ctx, &entity.Age{PersonName: "Ada Lovelace", BirthDate: "1815-12-10"})
	require.NoError(t, err)

	_, err = service.ReplaceAge(ctx, "Ada Lovelace", &entity.Age{PersonName: "Grace Hopper", BirthDate: "1906-12-09"})
	assert.ErrorIs(t, err, domainerrors.ErrAgeNameMismatch)
}

func TestAgeService_ReplaceAge_ActsAsCreateWhenAbsent(t *testing.T) {
	service := createTestAgeService(t)
	ctx := context.Background()

	replaced, err := service.ReplaceAge(ctx, "Grace Hopper", &entity.Age{PersonName: "Grace Hopper", BirthDate: "1906-12-09"})
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", replaced.PersonName)

	stored, err := service.GetAge(ctx, "Grace Hopper")
	require.NoError(t, err)
	assert.Equal(t, "1906-12-09", stored.BirthDate)
}

func TestAgeService_DeleteAge(t *testing.T) {
	service := createTestAgeService(t)
	ctx := context.Background()

	err := service.DeleteAge(ctx, "Nobody")
	assert.ErrorIs(t, err, domainerrors.ErrAgeNotFound)

	_, err = service.CreateAge(ctx, &entity.Age{PersonName: "Ada Lovelace", BirthDate: "1815-12-10"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteAge(ctx, "Ada Lovelace"))

	_, err = service.GetAge(ctx, "Ada Lovelace")
	assert.ErrorIs(t, err, domainerrors.ErrAgeNotFound)
}
