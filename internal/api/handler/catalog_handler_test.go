package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/storefront/people-catalog/internal/core/domain"
)

type stubCatalogService struct {
	addCategoryErr error
	editCategoryOK bool
	addItemFn      func(ctx context.Context, in domain.NewItem) (int64, error)
	editItemFn     func(ctx context.Context, id int64, patch domain.ItemPatch) (int64, error)
	deleted        bool
}

func (s *stubCatalogService) AddCategory(context.Context, string) (int64, error) {
	if s.addCategoryErr != nil {
		return 0, s.addCategoryErr
	}
	return 1, nil
}

func (s *stubCatalogService) EditCategory(context.Context, int64, string) (bool, error) {
	return s.editCategoryOK, nil
}

func (s *stubCatalogService) DeleteCategory(context.Context, int64) (bool, error) {
	return s.deleted, nil
}

func (s *stubCatalogService) AddItem(ctx context.Context, in domain.NewItem) (int64, error) {
	return s.addItemFn(ctx, in)
}

func (s *stubCatalogService) EditItem(ctx context.Context, id int64, patch domain.ItemPatch) (int64, error) {
	return s.editItemFn(ctx, id, patch)
}

func (s *stubCatalogService) DeleteItem(context.Context, int64) (bool, error) {
	return s.deleted, nil
}

func TestCatalogHandler_AddCategory(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/v1/categories", `{"name":"Home"}`), rec)
	if err := NewCatalogHandler(&stubCatalogService{}).AddCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPost, "/v1/categories", `{"name":"Home"}`), rec)
	h := NewCatalogHandler(&stubCatalogService{addCategoryErr: domain.ErrDuplicateCategory})
	if err := h.AddCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp messageResponse
	decode(t, rec, &resp)
	if rec.Code != http.StatusConflict || resp.Message != msgCategoryExists {
		t.Fatalf("expected 409 %q, got %d %q", msgCategoryExists, rec.Code, resp.Message)
	}
}

func TestCatalogHandler_EditCategory_Missing(t *testing.T) {
	e := newTestEcho()
	h := NewCatalogHandler(&stubCatalogService{editCategoryOK: false})

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, "/v1/categories/9", `{"name":"Kitchen"}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.EditCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp messageResponse
	decode(t, rec, &resp)
	if rec.Code != http.StatusNotFound || resp.Message != "Cannot edit Category" {
		t.Fatalf("unexpected response: %d %+v", rec.Code, resp)
	}
}

func TestCatalogHandler_AddItem(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"created", nil, http.StatusCreated, msgAdded},
		{"missing category", domain.ErrCategoryNotFound, http.StatusUnprocessableEntity, msgCategoryMissing},
		{"invalid parameters", domain.ErrInvalidParameters, http.StatusBadRequest, msgInvalidItemParams},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubCatalogService{
				addItemFn: func(_ context.Context, in domain.NewItem) (int64, error) {
					if in.CategoryName != "Home" || in.Price != 9.5 {
						t.Fatalf("unexpected input: %+v", in)
					}
					if tc.err != nil {
						return 0, tc.err
					}
					return 4, nil
				},
			}

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/v1/items",
				`{"name":"Lamp","price":9.5,"description":"Desk lamp","quantity":2,"isAvailable":true,"category":"Home"}`), rec)

			if err := NewCatalogHandler(stub).AddItem(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			var resp messageResponse
			decode(t, rec, &resp)
			if rec.Code != tc.code || resp.Message != tc.message {
				t.Fatalf("expected %d %q, got %d %q", tc.code, tc.message, rec.Code, resp.Message)
			}
		})
	}
}

func TestCatalogHandler_EditItem(t *testing.T) {
	e := newTestEcho()
	stub := &stubCatalogService{
		editItemFn: func(_ context.Context, id int64, patch domain.ItemPatch) (int64, error) {
			if patch.Name.IsSet() {
				t.Fatalf("expected name to be absent")
			}
			if q, ok := patch.Quantity.Get(); !ok || q != 5 {
				t.Fatalf("expected quantity 5, got %+v", patch.Quantity)
			}
			if id == 404 {
				return 0, nil
			}
			return 1, nil
		},
	}
	h := NewCatalogHandler(stub)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPatch, "/v1/items/2", `{"quantity":5}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.EditItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp editResponse
	decode(t, rec, &resp)
	if rec.Code != http.StatusOK || resp.RowsAffected != 1 {
		t.Fatalf("unexpected response: %d %+v", rec.Code, resp)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(jsonRequest(http.MethodPatch, "/v1/items/404", `{"quantity":5}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("404")
	if err := h.EditItem(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCatalogHandler_DeleteCategory(t *testing.T) {
	e := newTestEcho()
	h := NewCatalogHandler(&stubCatalogService{deleted: false})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/categories/1", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeleteCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp deleteResponse
	decode(t, rec, &resp)
	if resp.Deleted {
		t.Fatalf("expected deleted=false")
	}
}
