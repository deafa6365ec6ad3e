package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/people-catalog/internal/core/domain"
	"github.com/storefront/people-catalog/internal/core/ports"
)

// CatalogHandler handles category and item mutations.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// AddCategory handles POST /v1/categories.
//
// @Summary      Add a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  messageResponse
// @Router       /v1/categories [post]
func (h *CatalogHandler) AddCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.AddCategory(c.Request().Context(), req.Name)
	observe("addCategory", err)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCategory) {
			return c.JSON(http.StatusConflict, messageResponse{Message: msgCategoryExists})
		}
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: msgAdded, ID: id})
}

// EditCategory handles PATCH /v1/categories/:id.
//
// @Summary      Rename a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "New name"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /v1/categories/{id} [patch]
func (h *CatalogHandler) EditCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	ok, err := h.service.EditCategory(c.Request().Context(), id, req.Name)
	observe("editCategory", err)
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: fmt.Sprintf(msgCannotEdit, "Category")})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msgEdited, ID: id})
}

// DeleteCategory handles DELETE /v1/categories/:id.
//
// @Summary      Delete a category
// @Description  Fails (deleted=false) while items still reference the category.
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  deleteResponse
// @Router       /v1/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := h.service.DeleteCategory(c.Request().Context(), id)
	observe("deleteCategory", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}

// AddItem handles POST /v1/items.
//
// @Summary      Add an item
// @Description  The category is named and must already exist.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body      addItemRequest  true  "Item"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      422   {object}  messageResponse
// @Router       /v1/items [post]
func (h *CatalogHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.AddItem(c.Request().Context(), domain.NewItem{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Quantity:     req.Quantity,
		IsAvailable:  req.IsAvailable,
		CategoryName: req.Category,
	})
	observe("addItem", err)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, messageResponse{Message: msgAdded, ID: id})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return c.JSON(http.StatusUnprocessableEntity, messageResponse{Message: msgCategoryMissing})
	case errors.Is(err, domain.ErrInvalidParameters):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: msgInvalidItemParams})
	default:
		return err
	}
}

// EditItem handles PATCH /v1/items/:id.
//
// @Summary      Partially update an item
// @Description  Only keys present in the body are written. category is a category name.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Item id"
// @Param        body  body      editItemRequest  true  "Sparse fields"
// @Success      200   {object}  editResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  editResponse
// @Failure      422   {object}  ErrorResponse
// @Router       /v1/items/{id} [patch]
func (h *CatalogHandler) EditItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req editItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	rows, err := h.service.EditItem(c.Request().Context(), id, req.ItemPatch)
	if err != nil {
		observe("editItem", err)
		return err
	}
	if rows == 0 {
		observeUnchanged("editItem")
		return c.JSON(http.StatusNotFound, editResponse{Message: fmt.Sprintf(msgCannotEdit, "Item")})
	}
	observe("editItem", nil)
	return c.JSON(http.StatusOK, editResponse{Message: msgEdited, RowsAffected: rows})
}

// DeleteItem handles DELETE /v1/items/:id.
//
// @Summary      Delete an item
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Item id"
// @Success      200  {object}  deleteResponse
// @Router       /v1/items/{id} [delete]
func (h *CatalogHandler) DeleteItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := h.service.DeleteItem(c.Request().Context(), id)
	observe("deleteItem", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Deleted: deleted})
}
