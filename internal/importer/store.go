package importer

import (
	"context"

	"llanero-admin-service/internal/models"
)

// CatalogStore is the persistence surface the reconciliation routine needs.
// It is passed in explicitly so the routine is independently testable; the
// gorm catalog repository is the production implementation.
type CatalogStore interface {
	// GetProductBySKU returns (nil, nil) when no product carries the SKU.
	GetProductBySKU(ctx context.Context, sku string) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSubcategories(ctx context.Context) ([]models.Subcategory, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error
}
