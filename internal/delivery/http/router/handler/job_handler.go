package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/domain/entity"
	"directory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// JobHandlerParams holds dependencies for JobHandler, injected by Fx.
type JobHandlerParams struct {
	fx.In

	JobUC  usecase.JobUsecase
	Logger *slog.Logger
}

// JobHandler holds dependencies for job-related handlers
type JobHandler struct {
	jobUC  usecase.JobUsecase
	logger *slog.Logger
}

// NewJobHandler is the constructor for JobHandler
func NewJobHandler(params JobHandlerParams) *JobHandler {
	return &JobHandler{
		jobUC:  params.JobUC,
		logger: params.Logger,
	}
}

// JobRequest represents the request body for creating or replacing a job
// record. ID is optional on create; IsCurrent defaults to true when the
// field is omitted.
type JobRequest struct {
	ID        string  `json:"id" validate:"omitempty,uuid"`
	Title     string  `json:"title" validate:"required"`
	Company   string  `json:"company" validate:"required"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	IsCurrent *bool   `json:"is_current"`
}

func (r *JobRequest) toEntity() (*entity.Job, error) {
	var id uuid.UUID
	if r.ID != "" {
		parsed, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	isCurrent := true
	if r.IsCurrent != nil {
		isCurrent = *r.IsCurrent
	}

	return &entity.Job{
		ID:        id,
		Title:     r.Title,
		Company:   r.Company,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		IsCurrent: isCurrent,
	}, nil
}

// Create handles job creation. Creation is an upsert under the provided
// ID; a missing ID gets a freshly generated one.
func (h *JobHandler) Create(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	job, err := req.toEntity()
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	created, err := h.jobUC.CreateJob(c.Request().Context(), job)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// List handles listing all job records; no filters exist on this table.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobUC.ListJobs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, jobs)
}

// Get handles retrieval by ID string.
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobUC.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, job)
}

// Replace handles full replacement. The path ID must equal the string
// form of the payload's ID; the replace itself upserts.
func (h *JobHandler) Replace(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	job, err := req.toEntity()
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	replaced, err := h.jobUC.ReplaceJob(c.Request().Context(), c.Param("id"), job)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, replaced)
}

// Delete handles removal by ID string.
func (h *JobHandler) Delete(c echo.Context) error {
	if err := h.jobUC.DeleteJob(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
