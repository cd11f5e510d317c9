package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/alvozap/backoffice/internal/dto"
	"github.com/alvozap/backoffice/internal/models"
	"github.com/alvozap/backoffice/internal/money"
)

var (
	ErrCategoryExists   = errors.New("a category with this name already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrUnknownIcon      = errors.New("unknown category icon")
	ErrNameRequired     = errors.New("name is required")
	ErrPriceRequired    = errors.New("price is required")
)

const placeholderImage = "/placeholder.svg"

// CatalogService holds the menu editor's categories and products. The
// catalog lives in memory for the process lifetime only; it is seeded with
// sample data the way the reference ships.
type CatalogService struct {
	mu            sync.Mutex
	categories    []models.Category
	products      []models.Product
	nextProductID int64
}

func NewCatalogService() *CatalogService {
	s := &CatalogService{
		categories: []models.Category{
			{ID: "pizzas", Name: "Pizzas", IconID: "pizza"},
			{ID: "hamburgueres", Name: "Hamburgueres", IconID: "utensils"},
			{ID: "bebidas", Name: "Bebidas", IconID: "wine"},
			{ID: "sobremesas", Name: "Sobremesas", IconID: "ice-cream"},
			{ID: "adicionais", Name: "Adicionais", IconID: "plus"},
		},
		products: []models.Product{
			{ID: 1, Name: "Pizza Margherita", PriceCents: 4500, ImageRef: placeholderImage, Available: true, CategoryID: "pizzas"},
			{ID: 2, Name: "Pizza Calabresa", PriceCents: 4200, ImageRef: placeholderImage, Available: true, CategoryID: "pizzas"},
			{ID: 3, Name: "Pizza Quatro Queijos", PriceCents: 5000, ImageRef: placeholderImage, Available: false, CategoryID: "pizzas"},
			{ID: 4, Name: "Pizza Portuguesa", PriceCents: 4800, ImageRef: placeholderImage, Available: true, CategoryID: "pizzas"},
			{ID: 5, Name: "Burger Artesanal", PriceCents: 3500, ImageRef: placeholderImage, Available: true, CategoryID: "hamburgueres"},
			{ID: 6, Name: "Burger Duplo", PriceCents: 4500, ImageRef: placeholderImage, Available: true, CategoryID: "hamburgueres"},
		},
	}
	s.nextProductID = int64(len(s.products)) + 1
	return s
}

// Categories returns a snapshot of the category list.
func (s *CatalogService) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory derives the id from the name (lowercase, whitespace runs to
// hyphens). Two names that normalize to the same id collide and the second
// is rejected; the operator can rename instead.
func (s *CatalogService) AddCategory(name, iconID string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, ErrNameRequired
	}
	if !models.ValidIcon(iconID) {
		return models.Category{}, ErrUnknownIcon
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := slugify(name)
	for _, c := range s.categories {
		if c.ID == id {
			return models.Category{}, ErrCategoryExists
		}
	}

	category := models.Category{ID: id, Name: name, IconID: iconID}
	s.categories = append(s.categories, category)
	return category, nil
}

// Products returns products, optionally restricted to one category.
func (s *CatalogService) Products(categoryID string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AddProduct appends a product under the next monotonic id. Ids are a
// counter scoped to this store; they are never reused within a process.
func (s *CatalogService) AddProduct(req dto.CreateProductRequest) (models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Product{}, ErrNameRequired
	}
	priceCents := money.ParseInput(req.Price)
	if priceCents == 0 {
		return models.Product{}, ErrPriceRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.categoryExists(req.CategoryID) {
		return models.Product{}, ErrCategoryNotFound
	}

	imageRef := req.ImageRef
	if imageRef == "" {
		imageRef = placeholderImage
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := models.Product{
		ID:          s.nextProductID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		PriceCents:  priceCents,
		ImageRef:    imageRef,
		Available:   available,
		CategoryID:  req.CategoryID,
	}
	s.nextProductID++
	s.products = append(s.products, product)
	return product, nil
}

// EditProduct replaces the fields of the product with the matching id.
func (s *CatalogService) EditProduct(id int64, req dto.UpdateProductRequest) (models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Product{}, ErrNameRequired
	}
	priceCents := money.ParseInput(req.Price)
	if priceCents == 0 {
		return models.Product{}, ErrPriceRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProduct(id)
	if idx < 0 {
		return models.Product{}, ErrProductNotFound
	}
	if !s.categoryExists(req.CategoryID) {
		return models.Product{}, ErrCategoryNotFound
	}

	p := &s.products[idx]
	p.Name = name
	p.Description = strings.TrimSpace(req.Description)
	p.PriceCents = priceCents
	p.CategoryID = req.CategoryID
	if req.ImageRef != "" {
		p.ImageRef = req.ImageRef
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	return *p, nil
}

// ToggleAvailability flips the available flag on the matching product.
func (s *CatalogService) ToggleAvailability(id int64) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findProduct(id)
	if idx < 0 {
		return models.Product{}, ErrProductNotFound
	}
	s.products[idx].Available = !s.products[idx].Available
	return s.products[idx], nil
}

func (s *CatalogService) findProduct(id int64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogService) categoryExists(id string) bool {
	for _, c := range s.categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

// slugify lowercases the name and collapses whitespace runs into hyphens.
func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
