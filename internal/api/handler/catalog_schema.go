package handler

import "github.com/storefront/people-catalog/internal/core/domain"

// --- Request types ---

type categoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// addItemRequest carries no validation tags: the category is checked first
// and the remaining parameters are judged by the service.
type addItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	IsAvailable bool    `json:"isAvailable"`
	Category    string  `json:"category"`
}

type editItemRequest struct {
	domain.ItemPatch
}

// --- Response types ---

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemResponse struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Price            float64           `json:"price"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	Quantity         int               `json:"quantity"`
	IsAvailable      bool              `json:"isAvailable"`
	Category         *categoryResponse `json:"category"`
}
