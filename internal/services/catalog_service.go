package services

import (
	"fmt"

	"doacoesonline/internal/domain"
	"doacoesonline/internal/repos"
	"doacoesonline/internal/validate"

	"github.com/google/uuid"
)

type CatalogService struct {
	Products *repos.ProductRepo
}

func NewCatalogService(products *repos.ProductRepo) *CatalogService {
	return &CatalogService{Products: products}
}

type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// CreateProduct stores a new listing for the authenticated company.
func (s *CatalogService) CreateProduct(companyID string, in ProductInput) (domain.Product, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if !validate.Qty(in.Quantity) {
		return domain.Product{}, fmt.Errorf("%w: quantity must be a positive integer", ErrValidation)
	}

	p := domain.Product{
		ID:          uuid.NewString(),
		CompanyID:   companyID,
		Name:        name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Status:      domain.ProductAvailable,
	}
	if err := s.Products.Create(p); err != nil {
		return domain.Product{}, err
	}
	return s.Products.Get(p.ID)
}

// ListProducts returns the public catalog, newest first.
func (s *CatalogService) ListProducts() ([]repos.ProductRow, error) {
	return s.Products.List()
}
