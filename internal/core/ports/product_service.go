package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// CreateProductInput carries all fields for a single explicit product creation.
type CreateProductInput struct {
	SKU               string
	Name              string
	Nomenclature      string
	Quantity          float64
	ActualPrice       float64
	NegotiablePrice   float64
	SellingPrice      float64
	ContainerID       string
	ImageURL          *string // optional
	ContainerQuantity float64
}

// BulkProductItem is one row of a bulk import (typically a spreadsheet line).
// The remaining product fields are derived by the service.
type BulkProductItem struct {
	SKU               string
	ImageURL          *string // optional
	Quantity          float64
	ContainerQuantity float64
	SellingPrice      float64
	ContainerID       string
}

// BulkCreateResult is returned after a successful atomic batch write.
type BulkCreateResult struct {
	CreatedCount int
	Products     []domain.Product
}

// ProductService defines the product registrar use cases.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput, callerUID string) (string, error)
	// CreateBatch atomically creates all items. importKey, when non-empty, is
	// an idempotency key: a key seen before rejects the whole request.
	CreateBatch(ctx context.Context, items []BulkProductItem, callerUID, importKey string) (*BulkCreateResult, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int64) ([]domain.Product, error)
}
