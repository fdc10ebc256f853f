package handler

import (
	"log/slog"
	"net/http"
	"net/url"

	"directory/internal/delivery/http/response"
	"directory/internal/domain/entity"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AgeHandlerParams holds dependencies for AgeHandler, injected by Fx.
type AgeHandlerParams struct {
	fx.In

	AgeUC  usecase.AgeUsecase
	Logger *slog.Logger
}

// AgeHandler holds dependencies for age-related handlers
type AgeHandler struct {
	ageUC  usecase.AgeUsecase
	logger *slog.Logger
}

// NewAgeHandler is the constructor for AgeHandler
func NewAgeHandler(params AgeHandlerParams) *AgeHandler {
	return &AgeHandler{
		ageUC:  params.AgeUC,
		logger: params.Logger,
	}
}

// AgeRequest represents the request body for creating or replacing an
// age record.
type AgeRequest struct {
	PersonName string `json:"person_name" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	CurrentAge *int   `json:"current_age"`
}

func (r *AgeRequest) toEntity() *entity.Age {
	return &entity.Age{
		PersonName: r.PersonName,
		BirthDate:  r.BirthDate,
		CurrentAge: r.CurrentAge,
	}
}

// personNameParam returns the :person_name path segment. Names may carry
// spaces, so the segment is percent-decoded.
func personNameParam(c echo.Context) string {
	raw := c.Param("person_name")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}

	return raw
}

// Create handles age creation. Creation is an upsert: an existing record
// under the same person name is overwritten silently.
func (h *AgeHandler) Create(c echo.Context) error {
	var req AgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid age input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	created, err := h.ageUC.CreateAge(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// List handles listing all age records; no filters exist on this table.
func (h *AgeHandler) List(c echo.Context) error {
	ages, err := h.ageUC.ListAges(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, ages)
}

// Get handles retrieval by person name.
func (h *AgeHandler) Get(c echo.Context) error {
	age, err := h.ageUC.GetAge(c.Request().Context(), personNameParam(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, age)
}

// Replace handles full replacement. The path key must equal the payload's
// person name; the replace itself upserts.
func (h *AgeHandler) Replace(c echo.Context) error {
	var req AgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid age input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	replaced, err := h.ageUC.ReplaceAge(c.Request().Context(), personNameParam(c), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, replaced)
}

// Delete handles removal by person name.
func (h *AgeHandler) Delete(c echo.Context) error {
	if err := h.ageUC.DeleteAge(c.Request().Context(), personNameParam(c)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
