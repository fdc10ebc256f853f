// Package handler contains the HTTP handlers for every route group.
package handler

import (
	"log/slog"
	"net/http"

	"directory/internal/delivery/http/response"
	"directory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const welcomeMessage = "Welcome to the Person/Address/Age/Job API."

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	HealthUC usecase.HealthUsecase
	Logger   *slog.Logger
}

// HealthHandler holds dependencies for health-related handlers
type HealthHandler struct {
	healthUC usecase.HealthUsecase
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		healthUC: params.HealthUC,
		logger:   params.Logger,
	}
}

// Check handles GET /health and GET /health/:path_echo. Both echo inputs
// pass through unchanged and stay null when absent.
func (h *HealthHandler) Check(c echo.Context) error {
	var echoParam *string
	if c.QueryParams().Has("echo") {
		value := c.QueryParam("echo")
		echoParam = &value
	}

	var pathEcho *string
	if value := c.Param("path_echo"); value != "" {
		pathEcho = &value
	}

	health, err := h.healthUC.Check(c.Request().Context(), echoParam, pathEcho)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, health)
}

// Root handles GET / with a welcome message.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": welcomeMessage})
}
