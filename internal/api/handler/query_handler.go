package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/storefront/people-catalog/internal/api/metrics"
	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// QueryHandler serves the bounded list reads.
type QueryHandler struct {
	service ports.QueryService
}

func NewQueryHandler(service ports.QueryService) *QueryHandler {
	return &QueryHandler{service: service}
}

// limitParam reads ?num=N. A missing value yields 0, which selects the
// service default.
func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("num")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "num must be a positive integer")
	}
	return n, nil
}

func timeQuery(entity string) *prometheus.Timer {
	return prometheus.NewTimer(metrics.QueryDuration.WithLabelValues(entity))
}

// People handles GET /v1/people.
//
// @Summary      List people
// @Tags         queries
// @Produce      json
// @Param        num  query     int  false  "Maximum number of results (default 10)"
// @Success      200  {array}   personResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/people [get]
func (h *QueryHandler) People(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	defer timeQuery("people").ObserveDuration()

	people, err := h.service.People(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	out := make([]personResponse, 0, len(people))
	for _, p := range people {
		out = append(out, toPersonResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Customers handles GET /v1/customers.
//
// @Summary      List customers
// @Tags         queries
// @Produce      json
// @Param        num  query     int  false  "Maximum number of results (default 10)"
// @Success      200  {array}   customerResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/customers [get]
func (h *QueryHandler) Customers(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	defer timeQuery("customers").ObserveDuration()

	customers, err := h.service.Customers(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	out := make([]customerResponse, 0, len(customers))
	for _, cu := range customers {
		out = append(out, customerResponse{
			personResponse:       toPersonResponse(cu.Person),
			ShippingAddress:      cu.ShippingAddress,
			HasPremiumMembership: cu.HasPremiumMembership,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Employees handles GET /v1/employees.
//
// @Summary      List employees
// @Tags         queries
// @Produce      json
// @Param        num  query     int  false  "Maximum number of results (default 10)"
// @Success      200  {array}   employeeResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/employees [get]
func (h *QueryHandler) Employees(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	defer timeQuery("employees").ObserveDuration()

	employees, err := h.service.Employees(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	out := make([]employeeResponse, 0, len(employees))
	for _, em := range employees {
		out = append(out, employeeResponse{
			personResponse: toPersonResponse(em.Person),
			Salary:         em.Salary,
			Department:     em.Department.String(),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// Items handles GET /v1/items.
//
// @Summary      List items with their category
// @Tags         queries
// @Produce      json
// @Param        num  query     int  false  "Maximum number of results (default 10)"
// @Success      200  {array}   itemResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/items [get]
func (h *QueryHandler) Items(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	defer timeQuery("items").ObserveDuration()

	items, err := h.service.Items(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return c.JSON(http.StatusOK, out)
}

// Categories handles GET /v1/categories.
//
// @Summary      List categories
// @Tags         queries
// @Produce      json
// @Param        num  query     int  false  "Maximum number of results (default 10)"
// @Success      200  {array}   categoryResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/categories [get]
func (h *QueryHandler) Categories(c echo.Context) error {
	limit, err := limitParam(c)
	if err != nil {
		return err
	}
	defer timeQuery("categories").ObserveDuration()

	categories, err := h.service.Categories(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, categoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, out)
}

func toItemResponse(it domain.Item) itemResponse {
	resp := itemResponse{
		ID:               it.ID,
		Name:             it.Name,
		Price:            it.Price,
		Description:      it.Description,
		ShortDescription: it.ShortDescription(),
		Quantity:         it.Quantity,
		IsAvailable:      it.IsAvailable,
	}
	if it.Category != nil {
		resp.Category = &categoryResponse{ID: it.Category.ID, Name: it.Category.Name}
	}
	return resp
}
