package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	// Insert persists a new product and returns its store-assigned id.
	Insert(ctx context.Context, p *domain.Product) (string, error)
	// InsertBatch writes all products in one atomic batch: either every
	// document is persisted or none is.
	InsertBatch(ctx context.Context, ps []domain.Product) error
	Exists(ctx context.Context, id string) (bool, error)
	// SKUExists reports whether any product already carries the sku.
	SKUExists(ctx context.Context, sku string) (bool, error)
	// FindExistingSKUs returns the subset of skus already present in the store.
	FindExistingSKUs(ctx context.Context, skus []string) ([]string, error)
	// NameExists reports whether any product already carries the display name.
	NameExists(ctx context.Context, name string) (bool, error)
	// AnyInContainer reports whether at least one product references the container.
	AnyInContainer(ctx context.Context, containerID string) (bool, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int64) ([]domain.Product, error)
}
