package impl

import (
	"context"
	"testing"

	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/infra/persistence/memory"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJobService(t *testing.T) usecase.JobUsecase {
	t.Helper()

	return NewJobService(memory.NewJobRepository())
}

func newTestJob(title string) *entity.Job {
	return &entity.Job{
		Title:     title,
		Company:   "GitHub",
		StartDate: "2023-06-01",
		IsCurrent: true,
	}
}

func TestJobService_CreateJob_GeneratesIDWhenAbsent(t *testing.T) {
	service := createTestJobService(t)
	ctx := context.Background()

	created, err := service.CreateJob(ctx, newTestJob("Software Engineer"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := service.GetJob(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestJobService_CreateJob_UpsertsUnderProvidedID(t *testing.T) {
	service := createTestJobService(t)
	ctx := context.Background()

	id := uuid.New()
	first := newTestJob("Software Engineer")
	first.ID = id
	_, err := service.CreateJob(ctx, first)
	require.NoError(t, err)

	second := newTestJob("Staff Engineer")
	second.ID = id
	_, err = service.CreateJob(ctx, second)
	require.NoError(t, err)

	stored, err := service.GetJob(ctx, id.String())
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", stored.Title)

	jobs, err := service.ListJobs(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestJobService_GetJob_NotFound(t *testing.T) {
	service := createTestJobService(t)

	_, err := service.GetJob(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}

func TestJobService_ReplaceJob_IDMismatch(t *testing.T) {
	service := createTestJobService(t)
	ctx := context.Background()

	payload := newTestJob("Software Engineer")
	payload.ID = uuid.New()

	// Mismatch fails regardless of whether the path key exists.
	_, err := service.ReplaceJob(ctx, uuid.NewString(), payload)
	assert.ErrorIs(t, err, domainerrors.ErrJobIDMismatch)
}

func TestJobService_ReplaceJob_UpsertsOnMatch(t *testing.T) {
	service := createTestJobService(t)
	ctx := context.Background()

	payload := newTestJob("Software Engineer")
	payload.ID = uuid.New()

	replaced, err := service.ReplaceJob(ctx, payload.ID.String(), payload)
	require.NoError(t, err)
	assert.Equal(t, payload.ID, replaced.ID)

	stored, err := service.GetJob(ctx, payload.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Software Engineer", stored.Title)
}

func TestJobService_DeleteJob(t *testing.T) {
	service := createTestJobService(t)
	ctx := context.Background()

	err := service.DeleteJob(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)

	created, err := service.CreateJob(ctx, newTestJob("Software Engineer"))
	require.NoError(t, err)

	require.NoError(t, service.DeleteJob(ctx, created.ID.String()))

	_, err = service.GetJob(ctx, created.ID.String())
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}
