package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storefront/people-catalog/internal/api/metrics"
	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// PeopleHandler handles registration and person mutations.
type PeopleHandler struct {
	service ports.PeopleService
}

func NewPeopleHandler(service ports.PeopleService) *PeopleHandler {
	return &PeopleHandler{service: service}
}

// RegisterCustomer handles POST /v1/customers.
//
// @Summary      Register a customer
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        body  body      registerCustomerRequest  true  "Customer"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /v1/customers [post]
func (h *PeopleHandler) RegisterCustomer(c echo.Context) error {
	var req registerCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.RegisterCustomer(c.Request().Context(), ports.RegisterCustomerInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		Age:             req.Age,
		Gender:          *req.Gender,
		HasPremium:      req.HasPremiumMembership,
		ShippingAddress: req.ShippingAddress,
	})
	return h.registered(c, "registerCustomer", domain.RoleCustomer, id, err)
}

// RegisterEmployee handles POST /v1/employees.
//
// @Summary      Register an employee
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        body  body      registerEmployeeRequest  true  "Employee"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  messageResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /v1/employees [post]
func (h *PeopleHandler) RegisterEmployee(c echo.Context) error {
	var req registerEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.RegisterEmployee(c.Request().Context(), ports.RegisterEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Age:        req.Age,
		Gender:     *req.Gender,
		Salary:     req.Salary,
		Department: req.Department,
	})
	return h.registered(c, "registerEmployee", domain.RoleEmployee, id, err)
}

func (h *PeopleHandler) registered(c echo.Context, op string, role domain.Role, id int64, err error) error {
	observe(op, err)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, messageResponse{Message: msgEmailExists})
		}
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	return c.JSON(http.StatusCreated, messageResponse{
		Message: fmt.Sprintf(msgRegistered, role, id),
		ID:      id,
	})
}

// UpdateCustomer handles PATCH /v1/customers/:id.
//
// @Summary      Partially update a customer
// @Description  Only keys present in the body are written. A value that breaks its type rule fails the whole call.
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Person id"
// @Param        body  body      updateCustomerRequest  true  "Sparse fields"
// @Success      200   {object}  compositeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  compositeResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /v1/customers/{id} [patch]
func (h *PeopleHandler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.UpdateCustomer(c.Request().Context(), id, ports.UpdateCustomerInput{
		Person:     req.PersonPatch,
		Customer:   req.CustomerPatch,
		Credential: req.CredentialPatch,
	})
	return h.updated(c, "updateCustomer", "Customer", res, err)
}

// UpdateEmployee handles PATCH /v1/employees/:id.
//
// @Summary      Partially update an employee
// @Tags         people
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Person id"
// @Param        body  body      updateEmployeeRequest  true  "Sparse fields"
// @Success      200   {object}  compositeResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  compositeResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /v1/employees/{id} [patch]
func (h *PeopleHandler) UpdateEmployee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.UpdateEmployee(c.Request().Context(), id, ports.UpdateEmployeeInput{
		Person:     req.PersonPatch,
		Employee:   req.EmployeePatch,
		Credential: req.CredentialPatch,
	})
	return h.updated(c, "updateEmployee", "Employee", res, err)
}

func (h *PeopleHandler) updated(c echo.Context, op, noun string, res *domain.CompositeResult, err error) error {
	observe(op, err)
	if err != nil {
		return err
	}
	if !res.Succeeded() {
		return c.JSON(http.StatusNotFound, compositeResponse{
			Message: fmt.Sprintf(msgCannotEdit, noun),
			Results: toTableResults(res),
		})
	}
	return c.JSON(http.StatusOK, compositeResponse{
		Message: msgEdited,
		Results: toTableResults(res),
	})
}

// Delete handles DELETE /v1/people/:id.
//
// @Summary      Delete a person and its dependents
// @Tags         people
// @Produce      json
// @Param        id   path      int  true  "Person id"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/people/{id} [delete]
func (h *PeopleHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := h.service.DeletePerson(c.Request().Context(), id)
	observe("deletePerson", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}

// Clear handles DELETE /v1/people.
//
// @Summary      Delete every person
// @Description  Customers, employees and credentials are removed with them.
// @Tags         people
// @Produce      json
// @Success      200  {object}  deleteResponse
// @Router       /v1/people [delete]
func (h *PeopleHandler) Clear(c echo.Context) error {
	deleted, err := h.service.ClearPeople(c.Request().Context())
	observe("clearPeople", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}

func toPersonResponse(p domain.Person) personResponse {
	return personResponse{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		JoinDate: p.JoinDate.UTC().Format(time.RFC3339),
		Age:      p.Age,
		Gender:   p.Gender.String(),
	}
}
