package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// ContainerService implements the container registrar.
type ContainerService struct {
	containers ports.ContainerRepository
	products   ports.ProductRepository
	audit      ports.AuditRecorder
	logger     zerolog.Logger
}

func NewContainerService(
	containers ports.ContainerRepository,
	products ports.ProductRepository,
	audit ports.AuditRecorder,
	logger zerolog.Logger,
) *ContainerService {
	return &ContainerService{containers: containers, products: products, audit: audit, logger: logger}
}

// Create registers a new container. A generated code that is already taken
// surfaces as a conflict; there is no automatic retry.
func (s *ContainerService) Create(ctx context.Context, input ports.CreateContainerInput, callerUID string) (*ports.ContainerResult, error) {
	supplier := strings.TrimSpace(input.Supplier)
	if supplier == "" {
		return nil, fmt.Errorf("%w: supplier name is required", domain.ErrInvalidInput)
	}

	code := NewContainerCode()
	taken, err := s.containers.CodeExists(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}
	if taken {
		return nil, domain.ErrContainerCodeExists
	}

	now := time.Now().UTC()
	container := &domain.Container{
		Supplier:      supplier,
		ContainerCode: code,
		Status:        domain.StatusCreated,
		Location:      strings.TrimSpace(input.Location),
		ArrivalDate:   nil,
		CreatedAt:     now,
		UpdatedAt:     now,
		CreatedBy:     callerUID,
	}

	// The unique index on container_code is the authoritative backstop for
	// the check-then-act window above.
	id, err := s.containers.Insert(ctx, container)
	if err != nil {
		s.logger.Error().Err(err).Str("container_code", code).Msg("failed to create container")
		return nil, fmt.Errorf("create container: %w", err)
	}

	s.audit.Record(domain.AuditEntry{Kind: "container", EntityID: id, Action: "created", ActorUID: callerUID, Timestamp: now})
	s.logger.Info().Str("container_id", id).Str("container_code", code).Msg("container created")

	return &ports.ContainerResult{ID: id, ContainerCode: code}, nil
}

// Delete removes a container. Containers referenced by at least one product
// cannot be deleted.
func (s *ContainerService) Delete(ctx context.Context, id string) error {
	exists, err := s.containers.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	if !exists {
		return domain.ErrContainerNotFound
	}

	referenced, err := s.products.AnyInContainer(ctx, id)
	if err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	if referenced {
		return domain.ErrContainerHasProducts
	}

	if err := s.containers.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete container: %w", err)
	}

	s.audit.Record(domain.AuditEntry{Kind: "container", EntityID: id, Action: "deleted", Timestamp: time.Now().UTC()})
	s.logger.Info().Str("container_id", id).Msg("container deleted")
	return nil
}

func (s *ContainerService) List(ctx context.Context) ([]domain.Container, error) {
	return s.containers.List(ctx)
}
