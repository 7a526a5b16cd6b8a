package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// nameAttempts is the budget for finding a free auto-generated display name
// in the bulk flow. Exhausting it is a fatal error, not a retryable one.
const nameAttempts = 10

// ImportGuard abstracts the replay-protection store (Redis) for bulk imports.
type ImportGuard interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// ProductService implements the single and bulk product registrars.
type ProductService struct {
	products   ports.ProductRepository
	containers ports.ContainerRepository
	guard      ImportGuard
	audit      ports.AuditRecorder
	logger     zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	containers ports.ContainerRepository,
	guard ImportGuard,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *ProductService {
	return &ProductService{products: products, containers: containers, guard: guard, audit: audit, logger: logger}
}

// Create registers a single product with explicit field values.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput, callerUID string) (string, error) {
	exists, err := s.containers.Exists(ctx, input.ContainerID)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	if !exists {
		return "", domain.ErrInvalidContainer
	}

	taken, err := s.products.SKUExists(ctx, input.SKU)
	if err != nil {
		return "", fmt.Errorf("create product: %w", err)
	}
	if taken {
		return "", domain.ErrSKUExists
	}

	now := time.Now().UTC()
	product := &domain.Product{
		SKU:               input.SKU,
		Name:              strings.TrimSpace(input.Name),
		Nomenclature:      strings.TrimSpace(input.Nomenclature),
		Quantity:          input.Quantity,
		ActualPrice:       input.ActualPrice,
		NegotiablePrice:   input.NegotiablePrice,
		SellingPrice:      input.SellingPrice,
		ContainerID:       input.ContainerID,
		ImageURL:          input.ImageURL,
		ContainerQuantity: input.ContainerQuantity,
		CreatedAt:         now,
		UpdatedAt:         now,
		CreatedBy:         callerUID,
	}

	id, err := s.products.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("sku", input.SKU).Msg("failed to create product")
		return "", fmt.Errorf("create product: %w", err)
	}

	s.audit.Record(domain.AuditEntry{Kind: "product", EntityID: id, Action: "created", ActorUID: callerUID, Timestamp: now})
	s.logger.Info().Str("product_id", id).Str("sku", input.SKU).Msg("product created")
	return id, nil
}

// CreateBatch atomically creates every item of a bulk import. Prices and the
// display name are derived: actual = selling, negotiable = selling * 1.2,
// nomenclature = sku.
func (s *ProductService) CreateBatch(ctx context.Context, items []ports.BulkProductItem, callerUID, importKey string) (*ports.BulkCreateResult, error) {
	if importKey != "" {
		seen, err := s.guard.Seen(ctx, importKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("import_key", importKey).Msg("import guard check failed, processing anyway")
		} else if seen {
			return nil, domain.ErrDuplicateImport
		}
	}

	// Every referenced container must exist before anything is written.
	checked := make(map[string]bool, len(items))
	for _, item := range items {
		if checked[item.ContainerID] {
			continue
		}
		exists, err := s.containers.Exists(ctx, item.ContainerID)
		if err != nil {
			return nil, fmt.Errorf("bulk create: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidContainer, item.ContainerID)
		}
		checked[item.ContainerID] = true
	}

	skus := make([]string, 0, len(items))
	for _, item := range items {
		skus = append(skus, item.SKU)
	}
	existing, err := s.products.FindExistingSKUs(ctx, skus)
	if err != nil {
		return nil, fmt.Errorf("bulk create: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSKUExists, strings.Join(existing, ", "))
	}

	now := time.Now().UTC()
	batch := make([]domain.Product, 0, len(items))
	for _, item := range items {
		name, err := s.generateProductName(ctx)
		if err != nil {
			return nil, err
		}
		batch = append(batch, domain.Product{
			SKU:               item.SKU,
			Name:              name,
			Nomenclature:      item.SKU,
			Quantity:          item.Quantity,
			ActualPrice:       item.SellingPrice,
			NegotiablePrice:   item.SellingPrice * domain.NegotiableMarkup,
			SellingPrice:      item.SellingPrice,
			ContainerID:       item.ContainerID,
			ImageURL:          item.ImageURL,
			ContainerQuantity: item.ContainerQuantity,
			CreatedAt:         now,
			UpdatedAt:         now,
			CreatedBy:         callerUID,
		})
	}

	// Atomicity is delegated to the store's batch primitive. The unique index
	// on sku also makes a batch carrying internal duplicates fail as a whole.
	if err := s.products.InsertBatch(ctx, batch); err != nil {
		s.logger.Error().Err(err).Int("batch_size", len(batch)).Msg("bulk create failed")
		return nil, fmt.Errorf("bulk create: %w", err)
	}

	if importKey != "" {
		if err := s.guard.Mark(ctx, importKey); err != nil {
			s.logger.Warn().Err(err).Str("import_key", importKey).Msg("failed to mark import key")
		}
	}

	for _, p := range batch {
		s.audit.Record(domain.AuditEntry{Kind: "product", EntityID: p.ID, Action: "bulk_created", ActorUID: callerUID, Timestamp: now})
	}
	s.logger.Info().Int("created_count", len(batch)).Msg("bulk create committed")

	return &ports.BulkCreateResult{CreatedCount: len(batch), Products: batch}, nil
}

// Delete removes a product. Products are leaf entities: no referential checks.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	exists, err := s.products.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.audit.Record(domain.AuditEntry{Kind: "product", EntityID: id, Action: "deleted", Timestamp: time.Now().UTC()})
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func (s *ProductService) List(ctx context.Context, limit int64) ([]domain.Product, error) {
	return s.products.List(ctx, limit)
}

// generateProductName draws random 4-digit display names of the form
// "<digits>-3" until one is free in the store, giving up after nameAttempts.
func (s *ProductService) generateProductName(ctx context.Context) (string, error) {
	for attempt := 0; attempt < nameAttempts; attempt++ {
		name := fmt.Sprintf("%d-3", 1000+rand.Intn(9000))
		taken, err := s.products.NameExists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("generate product name: %w", err)
		}
		if !taken {
			return name, nil
		}
	}
	return "", domain.ErrNameGenerationExhausted
}
