package ports

import (
	"context"

	"github.com/kcimports/inventory-api/internal/core/domain"
)

// CreateContainerInput carries the caller-supplied container fields.
type CreateContainerInput struct {
	Supplier string
	Location string // optional
}

// ContainerResult is returned after a successful container creation.
type ContainerResult struct {
	ID            string
	ContainerCode string
}

// ContainerService defines the container registrar use cases.
type ContainerService interface {
	Create(ctx context.Context, input CreateContainerInput, callerUID string) (*ContainerResult, error)
	// Delete removes a container; it fails when any product references it.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Container, error)
}
