package handler

import (
	"fmt"
	"net/http"
	"testing"

	"directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createJob(t *testing.T, f handlerFixtures, body string) entity.Job {
	t.Helper()

	c, rec := f.request(http.MethodPost, "/jobs", body)
	require.NoError(t, f.jobHandler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	return decodeBody[entity.Job](t, rec)
}

func TestJobHandler_Create_GeneratesIDWhenOmitted(t *testing.T) {
	f := createTestHandlers(t)

	created := createJob(t, f, `{"title":"Software Engineer","company":"GitHub","start_date":"2023-06-01"}`)
	assert.NotEqual(t, uuid.Nil, created.ID)
	// is_current defaults to true when omitted.
	assert.True(t, created.IsCurrent)
	assert.Nil(t, created.EndDate)
}

func TestJobHandler_Create_ExplicitIsCurrentFalse(t *testing.T) {
	f := createTestHandlers(t)

	created := createJob(t, f, `{"title":"Software Engineer","company":"GitHub","start_date":"2020-06-01","end_date":"2023-05-31","is_current":false}`)
	assert.False(t, created.IsCurrent)
	require.NotNil(t, created.EndDate)
	assert.Equal(t, "2023-05-31", *created.EndDate)
}

func TestJobHandler_Create_UpsertsUnderProvidedID(t *testing.T) {
	f := createTestHandlers(t)

	id := uuid.New()
	createJob(t, f, fmt.Sprintf(`{"id":%q,"title":"Software Engineer","company":"GitHub","start_date":"2023-06-01"}`, id))
	createJob(t, f, fmt.Sprintf(`{"id":%q,"title":"Staff Engineer","company":"GitHub","start_date":"2023-06-01"}`, id))

	c, rec := f.request(http.MethodGet, "/jobs", "")
	require.NoError(t, f.jobHandler.List(c))
	jobs := decodeBody[[]entity.Job](t, rec)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Staff Engineer", jobs[0].Title)
}

func TestJobHandler_Get_NotFound(t *testing.T) {
	f := createTestHandlers(t)

	missing := uuid.NewString()
	c, rec := f.request(http.MethodGet, "/jobs/"+missing, "")
	c.SetPath("/jobs/:id")
	c.SetParamNames("id")
	c.SetParamValues(missing)
	require.NoError(t, f.jobHandler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobHandler_Replace_IDMismatch(t *testing.T) {
	f := createTestHandlers(t)

	pathID := uuid.NewString()
	body := fmt.Sprintf(`{"id":%q,"title":"Software Engineer","company":"GitHub","start_date":"2023-06-01"}`, uuid.New())

	c, rec := f.request(http.MethodPut, "/jobs/"+pathID, body)
	c.SetPath("/jobs/:id")
	c.SetParamNames("id")
	c.SetParamValues(pathID)
	require.NoError(t, f.jobHandler.Replace(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "JOB_ID_MISMATCH", decodeError(t, rec).Error.Code)
}

func TestJobHandler_Replace_UpsertsOnMatch(t *testing.T) {
	f := createTestHandlers(t)

	id := uuid.New()
	body := fmt.Sprintf(`{"id":%q,"title":"Staff Engineer","company":"GitHub","start_date":"2023-06-01"}`, id)

	c, rec := f.request(http.MethodPut, "/jobs/"+id.String(), body)
	c.SetPath("/jobs/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, f.jobHandler.Replace(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Staff Engineer", decodeBody[entity.Job](t, rec).Title)
}

func TestJobHandler_Delete(t *testing.T) {
	f := createTestHandlers(t)

	missing := uuid.NewString()
	c, rec := f.request(http.MethodDelete, "/jobs/"+missing, "")
	c.SetPath("/jobs/:id")
	c.SetParamNames("id")
	c.SetParamValues(missing)
	require.NoError(t, f.jobHandler.Delete(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	created := createJob(t, f, `{"title":"Software Engineer","company":"GitHub","start_date":"2023-06-01"}`)

	c, rec = f.request(http.MethodDelete, "/jobs/"+created.ID.String(), "")
	c.SetPath("/jobs/:id")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())
	require.NoError(t, f.jobHandler.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = f.request(http.MethodGet, "/jobs/"+created.ID.String(), "")
	c.SetPath("/jobs/:id")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())
	require.NoError(t, f.jobHandler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
