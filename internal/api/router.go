// Package api wires the HTTP surface: routes, middleware, error rendering.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/storefront/people-catalog/docs"
	"github.com/storefront/people-catalog/internal/api/handler"
	"github.com/storefront/people-catalog/internal/api/middleware"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// Services are the core operations the router exposes.
type Services struct {
	People  ports.PeopleService
	Catalog ports.CatalogService
	Query   ports.QueryService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, deps []handler.Dependency, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("catalog"))

	people := handler.NewPeopleHandler(svc.People)
	catalog := handler.NewCatalogHandler(svc.Catalog)
	query := handler.NewQueryHandler(svc.Query)

	v1 := e.Group("/v1")

	// --- People ---
	v1.POST("/customers", people.RegisterCustomer)
	v1.PATCH("/customers/:id", people.UpdateCustomer)
	v1.POST("/employees", people.RegisterEmployee)
	v1.PATCH("/employees/:id", people.UpdateEmployee)
	v1.DELETE("/people/:id", people.Delete)
	v1.DELETE("/people", people.Clear)

	// --- Catalog ---
	v1.POST("/categories", catalog.AddCategory)
	v1.PATCH("/categories/:id", catalog.EditCategory)
	v1.DELETE("/categories/:id", catalog.DeleteCategory)
	v1.POST("/items", catalog.AddItem)
	v1.PATCH("/items/:id", catalog.EditItem)
	v1.DELETE("/items/:id", catalog.DeleteItem)

	// --- Reads ---
	v1.GET("/people", query.People)
	v1.GET("/customers", query.Customers)
	v1.GET("/employees", query.Employees)
	v1.GET("/items", query.Items)
	v1.GET("/categories", query.Categories)

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
