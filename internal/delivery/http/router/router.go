// Package router contains routing setup for the HTTP delivery.
package router

import (
	"directory/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler  *handler.HealthHandler
	AddressHandler *handler.AddressHandler
	PersonHandler  *handler.PersonHandler
	AgeHandler     *handler.AgeHandler
	JobHandler     *handler.JobHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler  *handler.HealthHandler
	addressHandler *handler.AddressHandler
	personHandler  *handler.PersonHandler
	ageHandler     *handler.AgeHandler
	jobHandler     *handler.JobHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:  params.HealthHandler,
		addressHandler: params.AddressHandler,
		personHandler:  params.PersonHandler,
		ageHandler:     params.AgeHandler,
		jobHandler:     params.JobHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Root)
	e.GET("/health", r.healthHandler.Check)
	e.GET("/health/:path_echo", r.healthHandler.Check)

	addressGroup := e.Group("/addresses")
	{
		addressGroup.POST("", r.addressHandler.Create)
		addressGroup.GET("", r.addressHandler.List)
		addressGroup.GET("/:id", r.addressHandler.Get)
		addressGroup.PATCH("/:id", r.addressHandler.Update)
	}

	personGroup := e.Group("/persons")
	{
		personGroup.POST("", r.personHandler.Create)
		personGroup.GET("", r.personHandler.List)
		personGroup.GET("/:id", r.personHandler.Get)
		personGroup.PATCH("/:id", r.personHandler.Update)
	}

	ageGroup := e.Group("/ages")
	{
		ageGroup.POST("", r.ageHandler.Create)
		ageGroup.GET("", r.ageHandler.List)
		ageGroup.GET("/:person_name", r.ageHandler.Get)
		ageGroup.PUT("/:person_name", r.ageHandler.Replace)
		ageGroup.DELETE("/:person_name", r.ageHandler.Delete)
	}

	jobGroup := e.Group("/jobs")
	{
		jobGroup.POST("", r.jobHandler.Create)
		jobGroup.GET("", r.jobHandler.List)
		jobGroup.GET("/:id", r.jobHandler.Get)
		jobGroup.PUT("/:id", r.jobHandler.Replace)
		jobGroup.DELETE("/:id", r.jobHandler.Delete)
	}
}
