package dto

import (
	"github.com/alvozap/backoffice/internal/models"
	"github.com/alvozap/backoffice/internal/money"
)

type CreateCategoryRequest struct {
	Name   string `json:"name"`
	IconID string `json:"icon_id"`
}

// CreateProductRequest accepts the price as free text, the way the menu
// editor's masked input sends it ("4500" and "R$ 45,00" both mean 45 reais).
type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageRef    string `json:"image_ref"`
	Available   *bool  `json:"available"`
	CategoryID  string `json:"category_id"`
}

type UpdateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageRef    string `json:"image_ref"`
	Available   *bool  `json:"available"`
	CategoryID  string `json:"category_id"`
}

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
	Price       string `json:"price"`
	ImageRef    string `json:"image_ref"`
	Available   bool   `json:"available"`
	CategoryID  string `json:"category_id"`
}

func NewProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Price:       money.Format(p.PriceCents),
		ImageRef:    p.ImageRef,
		Available:   p.Available,
		CategoryID:  p.CategoryID,
	}
}

func NewProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = NewProductResponse(p)
	}
	return out
}
